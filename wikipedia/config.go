package wikipedia

import "time"

// Config holds configuration for the Wikipedia opensearch client.
type Config struct {
	// BaseURL is the MediaWiki api.php endpoint. A "%s" verb, when present,
	// is substituted with the language code of the queried wiki.
	// Example: "https://%s.wikipedia.org/w/api.php"
	BaseURL string

	// Timeout bounds a single search request.
	Timeout time.Duration

	// UserAgent identifies this client to the API, per Wikimedia policy.
	UserAgent string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithBaseURL sets the api.php endpoint pattern.
func WithBaseURL(baseURL string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) ConfigOption {
	return func(c *Config) {
		c.UserAgent = userAgent
	}
}

// DefaultConfig returns a Config pointing at the public Wikipedia API.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   "https://%s.wikipedia.org/w/api.php",
		Timeout:   5 * time.Second,
		UserAgent: "hamanand/1.0 (sentence similarity checker)",
	}
}

// NewConfig builds a Config from the defaults with options applied.
func NewConfig(opts ...ConfigOption) *Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrBaseURLRequired
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}
