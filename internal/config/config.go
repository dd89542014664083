package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CorpusConfig locates the on-disk corpus.
type CorpusConfig struct {
	Dir      string `yaml:"dir"`
	FileType string `yaml:"file_type"`
	Limit    int    `yaml:"limit,omitempty"`
}

// IndexConfig configures vocabulary seeding and store population.
type IndexConfig struct {
	Policy    string   `yaml:"policy"`
	SeedTerms []string `yaml:"seed_terms,omitempty"`
	// Documents maps document id to a file path; these are read and
	// indexed under the separate and union policies.
	Documents map[string]string `yaml:"documents,omitempty"`
}

// SearchConfig configures query-time behavior.
type SearchConfig struct {
	Verbose bool `yaml:"verbose"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Language string       `yaml:"language"`
	Corpus   CorpusConfig `yaml:"corpus"`
	Index    IndexConfig  `yaml:"index"`
	Search   SearchConfig `yaml:"search"`
	LogLevel string       `yaml:"log_level,omitempty"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./textmatch.yaml first, then ~/.config/textmatch/config.yaml.
// If neither exists, it writes defaults to ~/.config/textmatch/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "textmatch.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textmatch", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Language: "german",
		Corpus:   CorpusConfig{Dir: "data", FileType: "txt"},
		Index:    IndexConfig{Policy: "replace"},
		LogLevel: "info",
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Language == "" {
		cfg.Language = "german"
	}
	if cfg.Corpus.Dir == "" {
		cfg.Corpus.Dir = "data"
	}
	if cfg.Corpus.FileType == "" {
		cfg.Corpus.FileType = "txt"
	}
	if cfg.Index.Policy == "" {
		cfg.Index.Policy = "replace"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
