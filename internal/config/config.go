package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AI struct {
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"ai"`
	Report struct {
		Language  string `yaml:"language"`
		OutputDir string `yaml:"output_dir"`
	} `yaml:"report"`
}

func defaults() *Config {
	cfg := &Config{}
	cfg.AI.Provider = "gemini"
	cfg.AI.Model = "gemini-2.5-flash"
	cfg.Report.Language = "uk"
	cfg.Report.OutputDir = "diagnostics"
	return cfg
}

// LoadConfig reads config.yaml with .env and environment overrides. A missing
// config file is not an error: defaults apply and env vars still override.
func LoadConfig(path string) (*Config, error) {
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

	// 3. Override with environment variables if present
	if apiKey := os.Getenv("DIAGDOC_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if provider := os.Getenv("DIAGDOC_AI_PROVIDER"); provider != "" {
		cfg.AI.Provider = provider
	}
	if cfg.AI.APIKey == "" {
		// Fall back to the conventional Gemini SDK key names.
		if apiKey := os.Getenv("GOOGLE_API_KEY"); apiKey != "" {
			cfg.AI.APIKey = apiKey
		} else if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
			cfg.AI.APIKey = apiKey
		}
	}

	return cfg, nil
}
