package commentary

// Config holds commentary generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	TopP        float64

	// Language is the reply language named in the prompt.
	Language string
}

// DefaultConfig returns the sampling settings the commentary was tuned with.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   400,
		Temperature: 0.9,
		TopP:        0.8,
		Language:    "English",
	}
}
