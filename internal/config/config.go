package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Provider exposes the settings the rest of the application reads.
type Provider interface {
	GetAddr() string
	GetEndpointURL() string
	GetSessionSecret() string
	GetLoginPath() string
	GetTokenKey() string
	GetTokenDir() string
	GetNotificationTTL() time.Duration
	GetRedirectDelay() time.Duration
	GetRequestTimeout() time.Duration
	GetGatedActions() []string
	GetAllowedOrigins() []string
	GetLogFormat() string
}

// Config holds all configuration for the application.
type Config struct {
	Addr            string        `env:"USERDESK_ADDR" envDefault:":8080"`
	EndpointURL     string        `env:"USERDESK_ENDPOINT_URL" envDefault:"http://localhost:5000"`
	SessionSecret   string        `env:"USERDESK_SESSION_SECRET" envDefault:"change-me-userdesk-session-secret"`
	LoginPath       string        `env:"USERDESK_LOGIN_PATH" envDefault:"/login-page"`
	TokenKey        string        `env:"USERDESK_TOKEN_KEY" envDefault:"accessToken"`
	TokenDir        string        `env:"USERDESK_TOKEN_DIR" envDefault:".userdesk"`
	NotificationTTL time.Duration `env:"USERDESK_NOTIFICATION_TTL" envDefault:"5s"`
	RedirectDelay   time.Duration `env:"USERDESK_REDIRECT_DELAY" envDefault:"1s"`
	RequestTimeout  time.Duration `env:"USERDESK_REQUEST_TIMEOUT" envDefault:"15s"`
	// GatedActions lists actions that must pass the session gate and send the
	// bearer credential. Create is never gated by default.
	GatedActions []string `env:"USERDESK_GATED_ACTIONS" envSeparator:","`
	// AllowedOrigins are extra origin host patterns accepted by the
	// notification websocket. Empty means same-origin only.
	AllowedOrigins []string `env:"USERDESK_ALLOWED_ORIGINS" envSeparator:","`
	LogFormat      string   `env:"LOG_FORMAT" envDefault:"text"`
}

// New loads configuration from a .env file (if present) and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse reads configuration from the environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.EndpointURL) == "" {
		return fmt.Errorf("USERDESK_ENDPOINT_URL must not be empty")
	}
	if c.NotificationTTL <= 0 {
		return fmt.Errorf("USERDESK_NOTIFICATION_TTL must be positive, got %s", c.NotificationTTL)
	}
	if c.RedirectDelay < 0 {
		return fmt.Errorf("USERDESK_REDIRECT_DELAY must not be negative, got %s", c.RedirectDelay)
	}
	gated := c.GatedActions[:0]
	for _, a := range c.GatedActions {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
			gated = append(gated, a)
		}
	}
	c.GatedActions = gated
	origins := c.AllowedOrigins[:0]
	for _, o := range c.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.AllowedOrigins = origins
	return nil
}

func (c *Config) GetAddr() string                   { return c.Addr }
func (c *Config) GetEndpointURL() string            { return c.EndpointURL }
func (c *Config) GetSessionSecret() string          { return c.SessionSecret }
func (c *Config) GetLoginPath() string              { return c.LoginPath }
func (c *Config) GetTokenKey() string               { return c.TokenKey }
func (c *Config) GetTokenDir() string               { return c.TokenDir }
func (c *Config) GetNotificationTTL() time.Duration { return c.NotificationTTL }
func (c *Config) GetRedirectDelay() time.Duration   { return c.RedirectDelay }
func (c *Config) GetRequestTimeout() time.Duration  { return c.RequestTimeout }
func (c *Config) GetGatedActions() []string         { return c.GatedActions }
func (c *Config) GetAllowedOrigins() []string       { return c.AllowedOrigins }
func (c *Config) GetLogFormat() string              { return c.LogFormat }
