package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Project struct {
		Root   string   `yaml:"root"`
		Ignore []string `yaml:"ignore"` // extra ignored directory names
	} `yaml:"project"`
	Output struct {
		Dir    string `yaml:"dir"`
		Indent string `yaml:"indent"` // indentation unit for diagram nesting
	} `yaml:"output"`
	Index struct {
		DB string `yaml:"db"`
	} `yaml:"index"`
}

// Load reads the YAML config with env overrides layered on top. A missing
// config file is not an error: the tool works with defaults and no setup.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := defaults()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	fillDefaults(cfg)

	// 3. Override with Environment Variables if present
	if dir := os.Getenv("CSDIAG_OUTPUT_DIR"); dir != "" {
		cfg.Output.Dir = dir
	}
	if indent := os.Getenv("CSDIAG_INDENT"); indent != "" {
		cfg.Output.Indent = indent
	}
	if db := os.Getenv("CSDIAG_DB"); db != "" {
		cfg.Index.DB = db
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	fillDefaults(cfg)
	return cfg
}

func fillDefaults(cfg *Config) {
	if cfg.Project.Root == "" {
		cfg.Project.Root = "."
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "diagrams"
	}
	if cfg.Output.Indent == "" {
		cfg.Output.Indent = "    "
	}
	if cfg.Index.DB == "" {
		cfg.Index.DB = "csdiag.db"
	}
}
