package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Data    DataConfig    `yaml:"data"`
	Index   IndexConfig   `yaml:"index"`
	Console ConsoleConfig `yaml:"console"`
}

type DataConfig struct {
	Path           string `yaml:"path"`            // CSV file or SQLite database
	Format         string `yaml:"format"`          // "csv" or "sqlite"
	Table          string `yaml:"table"`           // SQLite table holding the export
	CurrencySymbol string `yaml:"currency_symbol"` // stripped before parsing amounts
	SkipHeader     *bool  `yaml:"skip_header"`
}

type IndexConfig struct {
	HashTableSize   int `yaml:"hash_table_size"`
	ReferenceDegree int `yaml:"reference_degree"`
}

type ConsoleConfig struct {
	Prompt       string `yaml:"prompt"`
	DisplayLimit int    `yaml:"display_limit"`
}

const (
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
)

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		for _, p := range []string{"configs/bids.yaml", "bids.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// ShouldSkipHeader reports whether the first CSV line is a header. Defaults to true.
func (d DataConfig) ShouldSkipHeader() bool {
	return d.SkipHeader == nil || *d.SkipHeader
}

func applyDefaults(cfg *Config) {
	if cfg.Data.Path == "" {
		cfg.Data.Path = "eBid_Monthly_Sales.csv"
	}
	if cfg.Data.Format != FormatSQLite {
		cfg.Data.Format = FormatCSV
	}
	if cfg.Data.Table == "" {
		cfg.Data.Table = "bids"
	}
	if cfg.Data.CurrencySymbol == "" {
		cfg.Data.CurrencySymbol = "$"
	}
	if cfg.Index.HashTableSize <= 0 {
		cfg.Index.HashTableSize = 17939
	}
	if cfg.Index.ReferenceDegree < 2 {
		cfg.Index.ReferenceDegree = 32
	}
	if cfg.Console.Prompt == "" {
		cfg.Console.Prompt = "bids> "
	}
	if cfg.Console.DisplayLimit <= 0 {
		cfg.Console.DisplayLimit = 20
	}
}
