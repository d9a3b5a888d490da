// Package params resolves runtime configuration for x12 tooling, in
// particular the directory holding externally stored map definitions.
// It reads YAML configuration files and environment overrides; it has no
// interaction with the path grammar.
package params

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/x12-format/go-x12/debug"
)

// DefaultMapPath is used when neither the environment nor any configuration
// file names a map directory.
const DefaultMapPath = "/usr/local/share/x12/maps"

// EnvMapPath overrides any configured map directory when set.
const EnvMapPath = "X12_MAP_PATH"

type config struct {
	MapPath string `yaml:"map_path"`
}

// Params holds resolved configuration.
type Params struct {
	cfg config
}

// Load reads the standard configuration files, the system file first and the
// per-user file second, later files overriding earlier ones.  Missing files
// are skipped.
func Load() (*Params, error) {
	files := []string{filepath.Join("/usr/local/etc", "x12.yaml")}
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".x12.yaml"))
	}
	return LoadFiles(files...)
}

// LoadFiles reads the given configuration files in order, later files
// overriding earlier ones.  Missing files are skipped.
func LoadFiles(files ...string) (*Params, error) {
	p := &Params{}
	for _, file := range files {
		d, err := os.ReadFile(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		var cfg config
		if err := yaml.Unmarshal(d, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", file, err)
		}
		if cfg.MapPath != "" {
			p.cfg.MapPath = cfg.MapPath
		}
		if debug.Params() {
			debug.Logf("params: loaded %s\n", file)
		}
	}
	return p, nil
}

// MapPath returns the directory for externally stored map definitions.
// The X12_MAP_PATH environment variable wins over configuration files, which
// win over DefaultMapPath.
func (p *Params) MapPath() string {
	if env := os.Getenv(EnvMapPath); env != "" {
		return env
	}
	if p.cfg.MapPath != "" {
		return p.cfg.MapPath
	}
	return DefaultMapPath
}
