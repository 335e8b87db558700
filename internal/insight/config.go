package insight

// Config controls insight generation parameters.
type Config struct {
	// MaxTokens bounds the generated response.
	MaxTokens int

	// Temperature for generation. A little warmth keeps the prose from
	// reading like a template.
	Temperature float64
}

// DefaultConfig returns the standard insight generation config.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}
