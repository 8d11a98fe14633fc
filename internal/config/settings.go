package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings are the CLI run settings.
type Settings struct {
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	MaxRounds int    `mapstructure:"max-rounds"`
	Out       string `mapstructure:"out"`
	Scenario  string `mapstructure:"scenario"`
	Events    bool   `mapstructure:"events"`
}

var defaults = Settings{
	LogLevel:  "info",
	LogFormat: "text",
	MaxRounds: 0,
	Out:       "out.json",
	Scenario:  "",
	Events:    true,
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log-level", defaults.LogLevel)
	v.SetDefault("log-format", defaults.LogFormat)
	v.SetDefault("max-rounds", defaults.MaxRounds)
	v.SetDefault("out", defaults.Out)
	v.SetDefault("scenario", defaults.Scenario)
	v.SetDefault("events", defaults.Events)
}

// RegisterFlags adds the settings flags to fs. Defaults live in viper, so flags
// only win when set explicitly.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "settings file (yaml/json/toml)")
	fs.String("scenario", defaults.Scenario, "scenario file; built-in demo when empty")
	fs.String("out", defaults.Out, "result output file")
	fs.Int("max-rounds", defaults.MaxRounds, "round limit; 0 uses the scenario's value")
	fs.String("log-level", defaults.LogLevel, "debug|info|warn|error")
	fs.String("log-format", defaults.LogFormat, "text|json")
	fs.Bool("events", defaults.Events, "record the full event log")
}

// LoadSettings merges defaults, the optional settings file, SKIRMISH_* env and
// explicitly set flags, in increasing precedence.
func LoadSettings(configFile string, fs *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("skirmish")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file: %w", err)
		}
	}

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &s, nil
}
