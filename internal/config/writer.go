package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Encode writes cfg as TOML to w.
func Encode(cfg *Config, w io.Writer) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// WriteConfig writes cfg to path as TOML.
func WriteConfig(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := Encode(cfg, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
