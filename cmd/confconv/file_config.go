package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/signadot/confconv"
	"github.com/signadot/confconv/format"

	"github.com/imdario/mergo"
	"github.com/pelletier/go-toml/v2"
)

// FileConfig holds defaults read from the confconv config file. Flags
// override them.
type FileConfig struct {
	Indent *int   `toml:"indent"`
	Output string `toml:"output"`
	Color  *bool  `toml:"color"`
}

func defaultFileConfig() FileConfig {
	indent := confconv.DefaultSpaces
	return FileConfig{
		Indent: &indent,
		Output: format.YAMLFormat.String(),
	}
}

// configPath returns $CONFCONV_CONFIG, or config.toml under the user
// config directory.
func configPath() string {
	if p := os.Getenv("CONFCONV_CONFIG"); p != "" {
		return p
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "confconv", "config.toml")
}

// loadFileConfig reads the config file at path, if any, and fills the
// settings it leaves out from the defaults.
func loadFileConfig(path string) (*FileConfig, error) {
	res := &FileConfig{}
	if path != "" {
		d, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := toml.Unmarshal(d, res); err != nil {
				return nil, fmt.Errorf("error reading config %s: %w", path, err)
			}
		}
	}
	if err := mergo.Merge(res, defaultFileConfig()); err != nil {
		return nil, err
	}
	if _, err := format.ParseFormat(res.Output); err != nil {
		return nil, fmt.Errorf("config %s: output: %w", path, err)
	}
	if *res.Indent < 0 {
		return nil, fmt.Errorf("config %s: negative indent %d", path, *res.Indent)
	}
	return res, nil
}
