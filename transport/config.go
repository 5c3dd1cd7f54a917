package transport

import (
	"fmt"
	"time"

	"github.com/kbukum/restkit/resilience"
)

const defaultTimeout = 30 * time.Second

// Config configures the transport.
type Config struct {
	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Auth configures default authentication applied to all requests.
	// Individual requests can override this.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// TLS configures TLS settings for the underlying HTTP transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// RequestID controls injection of an X-Request-Id header when the
	// request does not already carry one. Defaults to true.
	RequestID *bool `yaml:"request_id" mapstructure:"request_id"`

	// Retry configures retry behavior. Nil disables retry.
	Retry *resilience.RetryConfig `yaml:"-" mapstructure:"-"`

	// CircuitBreaker configures circuit breaker behavior. Nil disables it.
	CircuitBreaker *resilience.CircuitBreakerConfig `yaml:"-" mapstructure:"-"`

	// RateLimiter configures rate limiting. Nil disables it.
	RateLimiter *resilience.RateLimiterConfig `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.RequestID == nil {
		enabled := true
		c.RequestID = &enabled
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("transport: timeout must not be negative")
	}
	if c.TLS != nil {
		return c.TLS.Validate()
	}
	return nil
}

// DefaultRetryConfig returns a retry config suitable for HTTP transports:
// only connection-level failures and timeouts are retried.
func DefaultRetryConfig() *resilience.RetryConfig {
	cfg := resilience.DefaultRetryConfig()
	cfg.RetryIf = func(err error) bool {
		return IsConnection(err) || IsTimeout(err)
	}
	return &cfg
}
