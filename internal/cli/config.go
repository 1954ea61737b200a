package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	fwerrors "github.com/fractalwonder/fwdecode/pkg/errors"
)

// config holds optional user preferences loaded from a TOML file. Flags
// always take precedence over file values; a missing file simply yields the
// zero configuration.
type config struct {
	Display displayConfig `toml:"display"`
	Serve   serveConfig   `toml:"serve"`
}

// displayConfig controls report rendering defaults.
type displayConfig struct {
	NoColor bool `toml:"no_color"` // disable ANSI styling
	Raw     bool `toml:"raw"`      // always append the raw JSON document
}

// serveConfig controls the HTTP API defaults.
type serveConfig struct {
	Listen string `toml:"listen"` // listen address for the serve command
}

// defaultListen is used when neither flag nor config file set an address.
const defaultListen = "127.0.0.1:8420"

// loadConfig reads the config file at path, or the default location when
// path is empty. A nonexistent file is not an error; a malformed one is.
func loadConfig(path string) (config, error) {
	var cfg config

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return config{}, nil
		}
		return config{}, fwerrors.Wrap(fwerrors.ErrCodeInvalidInput, err, "cannot load config %s", path)
	}
	return cfg, nil
}

// defaultConfigPath resolves $XDG_CONFIG_HOME/fwdecode/config.toml, falling
// back to ~/.config. Returns "" when no home directory can be determined.
func defaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "fwdecode", "config.toml")
}
