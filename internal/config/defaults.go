package config

import (
	_ "embed"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration used when even the embedded
// YAML can't be parsed.
func Default() Config {
	return Config{
		Sound: true,
		Log: LogConfig{
			Level: "info",
		},
		Theme: Theme{
			Hidden:  "■",
			Flag:    "F",
			Mine:    "*",
			Empty:   "·",
			Cursor:  "8",
			Numbers: []string{"12", "10", "9", "5", "1", "6", "0", "7"},
		},
	}
}
