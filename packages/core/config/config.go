package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Settings holds the tunables that can come from the environment.
type Settings struct {
	EnvFile   string        `env:"REQFILE_ENV_FILE" env-default:"env.toml" env-description:"Base request file merged beneath the request file"`
	Verbosity string        `env:"REQFILE_VERBOSITY" env-default:"normal" env-description:"Output level: minimal, normal or detailed"`
	Timeout   time.Duration `env:"REQFILE_TIMEOUT" env-default:"0s" env-description:"Request timeout, 0 for none (e.g. 5s, 1m)"`
	NoColor   bool          `env:"REQFILE_NO_COLOR" env-default:"false" env-description:"Disable coloured output"`
	Pretty    bool          `env:"REQFILE_PRETTY" env-default:"false" env-description:"Re-indent JSON response bodies"`
}

// Load reads Settings from the process environment, falling back to the
// env-default of every field.
func Load() (*Settings, error) {
	s := &Settings{}
	if err := cleanenv.ReadEnv(s); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

// Describe returns the table of supported environment variables.
func Describe() string {
	header := "Environment variables:"
	text, err := cleanenv.GetDescription(&Settings{}, &header)
	if err != nil {
		return ""
	}
	return text
}
