// Package config loads generator settings from a TOML file, falling back
// to sane defaults when none is found.
package config

import "github.com/spf13/viper"

// Settings holds the generator's file-system and tool-chain configuration.
type Settings struct {
	OutputDir      string `mapstructure:"output_dir"`
	BlarneyRoot    string `mapstructure:"blarney_root"`
	VerilatorFlags string `mapstructure:"verilator_flags"`
}

// DefaultSettings returns the settings used when no config file is found.
func DefaultSettings() Settings {
	return Settings{
		OutputDir:      ".",
		BlarneyRoot:    ".",
		VerilatorFlags: "--x-assign unique --x-initial unique",
	}
}

// Load reads configuration from a file named "vgen" with any extension
// viper supports (for example "vgen.toml", read as TOML).
// It looks in $HOME/.vgen and then in the current directory, for
// convenience. If no config file is found, DefaultSettings is returned.
func Load() (Settings, error) {
	viper.SetConfigName("vgen")
	viper.AddConfigPath("$HOME/.vgen")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		return DefaultSettings(), nil
	}
	s := DefaultSettings()
	if err := viper.UnmarshalKey("generator", &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
