package similarity

// Config holds the scoring constants.
//
// The default weights and window size are fixed design constants: the
// character-level signal is weighted slightly higher than the token-level
// signal to catch near-duplicate edits that token overlap misses.
type Config struct {
	// TokenWeight is the weight of the token-set Jaccard signal.
	TokenWeight float64

	// CharWeight is the weight of the character n-gram Jaccard signal.
	CharWeight float64

	// NGramSize is the character window length for the n-gram signal.
	NGramSize int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithTokenWeight sets the token-set Jaccard weight.
func WithTokenWeight(w float64) ConfigOption {
	return func(c *Config) {
		c.TokenWeight = w
	}
}

// WithCharWeight sets the character n-gram Jaccard weight.
func WithCharWeight(w float64) ConfigOption {
	return func(c *Config) {
		c.CharWeight = w
	}
}

// WithNGramSize sets the character window length.
func WithNGramSize(n int) ConfigOption {
	return func(c *Config) {
		c.NGramSize = n
	}
}

// DefaultConfig returns the standard scoring constants.
func DefaultConfig() *Config {
	return &Config{
		TokenWeight: 0.45,
		CharWeight:  0.55,
		NGramSize:   3,
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
	if c.TokenWeight < 0 || c.CharWeight < 0 {
		return ErrNegativeWeight
	}
	if c.TokenWeight+c.CharWeight == 0 {
		return ErrZeroWeights
	}
	if c.NGramSize < 1 {
		return ErrInvalidNGramSize
	}
	return nil
}
