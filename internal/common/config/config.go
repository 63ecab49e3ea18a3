// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	Site          SiteConfig         `mapstructure:"site"`
	Chat          ChatConfig         `mapstructure:"chat"`
	Redis         RedisConfig        `mapstructure:"redis"`
	Registry      RegistryConfig     `mapstructure:"registry"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// SiteConfig carries the commercial offer referenced across generated copy.
// It is injected into the content generator rather than read as a global,
// so tests can substitute alternate offers without mutating shared state.
type SiteConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	Brand        string `mapstructure:"brand"`
	Product      string `mapstructure:"product"`
	PriceLine    string `mapstructure:"price_line"`
	ContactPhone string `mapstructure:"contact_phone"`
	WhatsApp     string `mapstructure:"whatsapp"`
}

// ChatConfig holds settings for the conversational assistant.
type ChatConfig struct {
	Provider        string  `mapstructure:"provider"` // currently "anthropic"
	AnthropicAPIKey string  `mapstructure:"anthropic_api_key"`
	Model           string  `mapstructure:"model"`
	Timeout         int     `mapstructure:"timeout"` // milliseconds
	MaxTokens       int     `mapstructure:"max_tokens"`
	Temperature     float64 `mapstructure:"temperature"`
	HistoryWindow   int     `mapstructure:"history_window"`
	SessionTTL      int     `mapstructure:"session_ttl"` // minutes
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RegistryConfig points at optional JSON override files for the static
// location/industry/intent tables.
type RegistryConfig struct {
	OverrideDir string `mapstructure:"override_dir"`
}

// NotificationConfig holds settings for sales lead alerts.
type NotificationConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	AWSRegion  string `mapstructure:"aws_region"`
	FromEmail  string `mapstructure:"from_email"`
	SalesEmail string `mapstructure:"sales_email"`
	SalesPhone string `mapstructure:"sales_phone"` // E.164, receives SMS alerts
	Timeout    int    `mapstructure:"timeout"`     // milliseconds
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
