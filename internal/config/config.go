package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Load when a field is left empty.
const (
	DefaultStartSymbol = "S"
	DefaultFormat      = "text"
	DefaultGrammarDir  = "grammars"
)

// ProjectConfig holds project-level settings loaded from cky.yml.
type ProjectConfig struct {
	GrammarDirs    []string `yaml:"grammarDirs,omitempty"`
	DefaultGrammar string   `yaml:"defaultGrammar,omitempty"`
	StartSymbol    string   `yaml:"startSymbol,omitempty"`
	Workers        int      `yaml:"workers,omitempty"`
	Output         string   `yaml:"output,omitempty"`
	Format         string   `yaml:"format,omitempty"`
	Verbose        bool     `yaml:"verbose,omitempty"`
}

// Load attempts to read cky.yml or cky.yaml from the given directory.
// Returns a default config (not an error) if no config file exists.
// Relative grammar directories are resolved against dir.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"cky.yml", "cky.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		cfg.resolve(dir)
		return &cfg, nil
	}
	cfg := &ProjectConfig{}
	cfg.resolve(dir)
	return cfg, nil
}

func (c *ProjectConfig) resolve(dir string) {
	if len(c.GrammarDirs) == 0 {
		c.GrammarDirs = []string{DefaultGrammarDir}
	}
	for i, d := range c.GrammarDirs {
		if !filepath.IsAbs(d) {
			c.GrammarDirs[i] = filepath.Join(dir, d)
		}
	}
	if c.StartSymbol == "" {
		c.StartSymbol = DefaultStartSymbol
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
}
