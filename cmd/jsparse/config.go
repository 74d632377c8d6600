package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jsfront/parse/js"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Config is read from the YAML file given with -config. Flags override its values.
type Config struct {
	// Types maps file extensions, including the dot, to source type names.
	Types     map[string]string `yaml:"types"`
	Print     bool              `yaml:"print"`
	Positions bool              `yaml:"positions"`
	Stats     bool              `yaml:"stats"`
	Repeat    int               `yaml:"repeat"`
	Jobs      int               `yaml:"jobs"`
}

// LoadConfig reads and validates a configuration file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "decoding config %s", path)
	}
	for ext, name := range cfg.Types {
		if !strings.HasPrefix(ext, ".") {
			return cfg, errors.Errorf("config %s: extension %q must start with a dot", path, ext)
		} else if _, err := js.ParseSourceType(name); err != nil {
			return cfg, errors.Wrapf(err, "config %s", path)
		}
	}
	if cfg.Repeat < 0 || cfg.Jobs < 0 {
		return cfg, errors.Errorf("config %s: repeat and jobs must not be negative", path)
	}
	return cfg, nil
}

// sourceType returns the source type for path from the configured extensions, falling back to the defaults.
// The longest matching extension wins so that .d.ts can be told apart from .ts.
func (cfg Config) sourceType(path string) (js.SourceType, error) {
	name := filepath.Base(path)
	exts := make([]string, 0, len(cfg.Types))
	for ext := range cfg.Types {
		if strings.HasSuffix(name, ext) {
			exts = append(exts, ext)
		}
	}
	if 0 < len(exts) {
		sort.Slice(exts, func(i, j int) bool { return len(exts[j]) < len(exts[i]) })
		return js.ParseSourceType(cfg.Types[exts[0]])
	}
	return js.SourceTypeFromPath(path)
}
