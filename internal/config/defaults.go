package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			Path:          "",
			LookbackHours: 24,
		},
		Classifier: ClassifierConfig{
			Enabled:   true,
			Endpoint:  "https://api.openai.com/v1/chat/completions",
			Model:     "gpt-4o-mini",
			APIKey:    "",
			BatchSize: 20,
			TimeoutMs: 20000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
