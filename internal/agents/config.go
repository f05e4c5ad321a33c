package agents

import "time"

// Config controls the model client.
type Config struct {
	// MockDelay is the artificial latency of offline replies.
	MockDelay time.Duration

	// MaxTokens is the token budget for each remote reply.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the standard client settings.
func DefaultConfig() Config {
	return Config{
		MockDelay:   time.Second,
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}
