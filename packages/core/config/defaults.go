package config

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	return &Settings{
		EnvFile:   "env.toml",
		Verbosity: "normal",
		Timeout:   0,
		NoColor:   false,
		Pretty:    false,
	}
}

// IsDefault returns true if the settings match defaults
func (s *Settings) IsDefault() bool {
	return *s == *DefaultSettings()
}
