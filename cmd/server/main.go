// cmd/server/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"dukapos-web/internal/chat"
	"dukapos-web/internal/common/config"
	"dukapos-web/internal/common/logger"
	"dukapos-web/internal/common/observability"
	"dukapos-web/internal/notify"
	"dukapos-web/internal/registry"
	"dukapos-web/internal/seo/content"
	"dukapos-web/internal/seo/linking"
	"dukapos-web/internal/seo/resolver"
	"dukapos-web/internal/server"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting site server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	log = logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)

	obs := observability.New(cfg.App.Name)

	ctx := context.Background()

	// --- Registries (built-in tables plus optional overrides) ---
	regs := registry.LoadWithOverrides(cfg.Registry.OverrideDir, log)

	// --- Content, linking and resolver engines ---
	offer := content.Offer{
		Brand:        cfg.Site.Brand,
		Product:      cfg.Site.Product,
		PriceLine:    cfg.Site.PriceLine,
		ContactPhone: cfg.Site.ContactPhone,
		WhatsApp:     cfg.Site.WhatsApp,
		SiteURL:      cfg.Site.BaseURL,
	}
	gen := content.NewGenerator(offer)
	links := linking.New(regs, cfg.Site.Brand)
	res := resolver.New(regs)
	builder := server.NewPageBuilder(regs, gen, links, cfg.Site.BaseURL)

	// --- Conversation store: Redis when configured, in-memory otherwise ---
	sessionTTL := time.Duration(cfg.Chat.SessionTTL) * time.Minute
	var store chat.Store
	if cfg.Redis.Address != "" {
		redisClient, err := chat.NewRedisClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			zapLog.Fatal("redis connection failed", zap.Error(err))
		}
		defer redisClient.Close()
		store = chat.NewRedisStore(redisClient, sessionTTL)
		zapLog.Info("using Redis conversation store", zap.String("addr", cfg.Redis.Address))
	} else {
		store = chat.NewMemoryStore(sessionTTL)
		zapLog.Info("using in-memory conversation store")
	}

	// --- Chat provider ---
	chatOffer := chat.Offer{
		Brand:        cfg.Site.Brand,
		Product:      cfg.Site.Product,
		PriceLine:    cfg.Site.PriceLine,
		ContactPhone: cfg.Site.ContactPhone,
		WhatsApp:     cfg.Site.WhatsApp,
	}
	provider, err := chat.NewAnthropicProvider(chat.AnthropicConfig{
		APIKey:      cfg.Chat.AnthropicAPIKey,
		Model:       cfg.Chat.Model,
		MaxTokens:   cfg.Chat.MaxTokens,
		Temperature: cfg.Chat.Temperature,
	}, chatOffer)
	if err != nil {
		zapLog.Fatal("chat provider init failed", zap.Error(err))
	}

	chatService := chat.NewService(provider, store, chatOffer, chat.ServiceConfig{
		Timeout:       config.GetDuration(cfg.Chat.Timeout),
		HistoryWindow: cfg.Chat.HistoryWindow,
	}, log)

	// --- Lead alert notifier ---
	notifier, err := notify.New(ctx, notify.Config{
		Enabled:    cfg.Notifications.Enabled,
		AWSRegion:  cfg.Notifications.AWSRegion,
		FromEmail:  cfg.Notifications.FromEmail,
		SalesEmail: cfg.Notifications.SalesEmail,
		SalesPhone: cfg.Notifications.SalesPhone,
		Timeout:    config.GetDuration(cfg.Notifications.Timeout),
	}, log)
	if err != nil {
		zapLog.Fatal("notifier init failed", zap.Error(err))
	}

	srv, err := server.New(server.Deps{
		Config:   cfg.Server,
		Logger:   log,
		Resolver: res,
		Builder:  builder,
		Chat:     chatService,
		Notifier: notifier,
		Obs:      obs,
		Regs:     regs,
		BaseURL:  cfg.Site.BaseURL,
	})
	if err != nil {
		zapLog.Fatal("server init failed", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	case sig := <-stop:
		zapLog.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("observability shutdown failed", zap.Error(err))
	}

	zapLog.Info("server stopped")
}
