package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// FileName is the optional settings file read from the working directory.
// It is JSONC: comments and trailing commas are allowed.
const FileName = "goconv.jsonc"

// Config holds optional user settings.
type Config struct {
	// ErrorLog overrides the batch driver's side-log path.
	ErrorLog string `json:"errorLog,omitempty"`

	// Verbose enables debug output without the -v flag.
	Verbose bool `json:"verbose,omitempty"`
}

// Default returns the zero configuration.
func Default() Config {
	return Config{}
}

// Load reads dir/goconv.jsonc. A missing file is not an error; the
// defaults are returned.
func Load(dir string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	if err := json.Unmarshal(std, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return cfg, nil
}
