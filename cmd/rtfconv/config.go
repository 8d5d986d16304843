package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const configFileName = "config.toml"

// fileConfig holds defaults read from the TOML config file. Flags given on
// the command line override every field.
type fileConfig struct {
	Target   string `toml:"target"`
	Theme    string `toml:"theme"`
	Width    int    `toml:"width"`
	SoftWrap bool   `toml:"soft_wrap"`
	Color    string `toml:"color"`
	Strict   bool   `toml:"strict"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, "rtfconv", configFileName)
}

// loadConfig reads path. A missing file is only an error when the path was
// given explicitly.
func loadConfig(path string, explicit bool) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	path = normalizePath(path)
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return fileConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Width < 0 {
		return fileConfig{}, fmt.Errorf("%s: width must be >= 0", path)
	}
	return cfg, nil
}
