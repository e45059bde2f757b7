// Package config loads the YAML configuration of the journaltex command.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/riverfjs/journaltex-go/internal/types"
)

//go:embed default.yaml
var defaultYAML []byte

// FileName is the name looked up in the user configuration directory.
const FileName = "config.yaml"

// Feed is one input feed file and the section it is listed in.
type Feed struct {
	Path    string `yaml:"path"`
	Journal string `yaml:"journal"`
	Section string `yaml:"section"`
	// ShowJournal is one of "always", "never" or "if_different" (default).
	ShowJournal string `yaml:"show_journal"`
}

// Filter holds the raw filter rules.
type Filter struct {
	Journals []string `yaml:"journals"`
	Authors  []string `yaml:"authors"`
	Title    []string `yaml:"title"`
	Summary  []string `yaml:"summary"`
}

// Config 命令行工具的全部配置
type Config struct {
	Class        string   `yaml:"class"`
	ClassOptions string   `yaml:"class_options"`
	Preamble     []string `yaml:"preamble"`
	MaxAuthors   int      `yaml:"max_authors"`
	Concurrency  int      `yaml:"concurrency"`
	Days         int      `yaml:"days"`
	Filter       Filter   `yaml:"filter"`
	Feeds        []Feed   `yaml:"feeds"`
	// Rules overrides the normalizer tables when set.
	Rules *types.Rules `yaml:"rules,omitempty"`
}

// Parse decodes a YAML document and fills in defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	return Parse(defaultYAML)
}

// Load 加载配置
//
// path 非空时必须存在；否则在 $XDG_CONFIG_HOME/journaltex/ 中查找，找不到则使用内置默认配置。
// 本地配置整体替换默认配置，不做合并。返回值 source 是实际使用的来源。
func Load(path string) (cfg *Config, source string, err error) {
	if path == "" {
		path = userConfigPath()
		if _, statErr := os.Stat(path); statErr != nil {
			cfg, err = Default()
			return cfg, "default", err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read config: %w", err)
	}
	cfg, err = Parse(data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return cfg, path, nil
}

func userConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "journaltex", FileName)
}

func (c *Config) validate() error {
	if c.Class == "" {
		c.Class = "article"
	}
	if c.MaxAuthors == 0 {
		c.MaxAuthors = 3
	}
	if c.MaxAuthors < 2 {
		return errors.New("max_authors needs to be larger than 1")
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 1
	}
	if c.Days <= 0 {
		c.Days = 7
	}
	for i, f := range c.Feeds {
		if f.Path == "" {
			return fmt.Errorf("feed %d: missing path", i)
		}
		switch f.ShowJournal {
		case "", "always", "never", "if_different":
		default:
			return fmt.Errorf("feed %d: invalid show_journal %q", i, f.ShowJournal)
		}
	}
	return nil
}
