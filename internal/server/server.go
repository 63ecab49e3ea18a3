// Package server exposes the programmatic pages and the JSON API over HTTP.
// Routing stays thin: every page route delegates to the resolver first and
// renders only identities the resolver validated.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dukapos-web/internal/chat"
	"dukapos-web/internal/common/config"
	"dukapos-web/internal/common/logger"
	"dukapos-web/internal/common/observability"
	"dukapos-web/internal/notify"
	"dukapos-web/internal/registry"
	"dukapos-web/internal/seo/resolver"
)

// Server wires the engines behind an HTTP listener.
type Server struct {
	cfg      config.ServerConfig
	log      logger.Logger
	resolver *resolver.Resolver
	builder  *PageBuilder
	chat     *chat.Service
	notifier *notify.Notifier
	obs      *observability.Observability
	regs     *registry.Registries
	baseURL  string

	httpServer *http.Server
	sitemap    []byte
}

type Deps struct {
	Config   config.ServerConfig
	Logger   logger.Logger
	Resolver *resolver.Resolver
	Builder  *PageBuilder
	Chat     *chat.Service
	Notifier *notify.Notifier
	Obs      *observability.Observability
	Regs     *registry.Registries
	BaseURL  string
}

func New(deps Deps) (*Server, error) {
	sitemap, err := BuildSitemap(deps.Regs, deps.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("build sitemap: %w", err)
	}

	s := &Server{
		cfg:      deps.Config,
		log:      deps.Logger,
		resolver: deps.Resolver,
		builder:  deps.Builder,
		chat:     deps.Chat,
		notifier: deps.Notifier,
		obs:      deps.Obs,
		regs:     deps.Regs,
		baseURL:  deps.BaseURL,
		sitemap:  sitemap,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", deps.Config.Host, deps.Config.Port),
		Handler:      s.routes(),
		ReadTimeout:  config.GetDuration(deps.Config.ReadTimeout),
		WriteTimeout: config.GetDuration(deps.Config.WriteTimeout),
	}
	return s, nil
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/sitemap.xml", s.handleSitemap)

	r.Route("/pos", func(r chi.Router) {
		r.Get("/", s.handleHub)
		r.Get("/{segment}", s.handleSegment)
		r.Get("/{city}/{segment}", s.handleCitySegment)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(corsMiddleware)
		r.Options("/*", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		r.Post("/chat", s.handleChat)
		r.Get("/chat/{sessionID}/history", s.handleChatHistory)
		r.Post("/leads", s.handleLead)
	})

	return r
}

// Start blocks serving HTTP until the listener closes.
func (s *Server) Start() error {
	s.log.Info("http server starting", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","time":%q}`, time.Now().UTC().Format(time.RFC3339))
}

func (s *Server) handleSitemap(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(s.sitemap)
}
