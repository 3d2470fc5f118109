package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel     = "logistic"
	DefaultSteps     = 1000
	DefaultTransient = 0
)

type Config struct {
	Model     string             `yaml:"model"`
	Steps     int                `yaml:"steps"`
	Transient int                `yaml:"transient"`
	Seed      int64              `yaml:"seed"`
	InitState []float64          `yaml:"init_state"`
	Params    map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:     DefaultModel,
		Steps:     DefaultSteps,
		Transient: DefaultTransient,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
