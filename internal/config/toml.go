// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Lookup LookupConfig `toml:"lookup"`
}

// LookupConfig maps lookup-related settings. Unset keys stay nil so flags can
// tell them apart from zero values.
type LookupConfig struct {
	Lang      *string `toml:"lang"`
	Data      *string `toml:"data"`
	CacheSize *int    `toml:"cache-size"`
	History   *bool   `toml:"history"`
	Explain   *bool   `toml:"explain"`
	IPA       *bool   `toml:"ipa"`
	Syllables *bool   `toml:"syllables"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
