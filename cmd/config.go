package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the contents of a lispy configuration file.
type Config struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
	NoBanner    bool   `toml:"no_banner"`
	Verbose     bool   `toml:"verbose"`
}

// DefaultConfigPath returns the path of the configuration file used when
// --config is not given.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lispy.toml")
}

// LoadConfig decodes the TOML file at path.  When optional is true a missing
// file yields an empty Config.  Unknown keys are an error.
func LoadConfig(path string, optional bool) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
