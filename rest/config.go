package rest

import (
	"github.com/kbukum/restkit/config"
	"github.com/kbukum/restkit/transport"
	"github.com/kbukum/restkit/validation"
)

// Config configures a Client.
type Config struct {
	// BaseURL is prepended to every route path. Trailing slashes are
	// stripped at construction.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" json:"base_url" validate:"required,url"`

	// Transport configures the HTTP transport built for the client when
	// none is injected via WithTransport.
	Transport transport.Config `yaml:"transport" mapstructure:"transport" json:"transport"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	c.Transport.ApplyDefaults()
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.Transport.Validate()
}

// LoadConfig loads a client Config for the named service from config.yml,
// .env, and environment variables.
func LoadConfig(service string, opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(service, &cfg, opts...); err != nil {
		return Config{}, err
	}
	cfg.ApplyDefaults()
	return cfg, cfg.Validate()
}
