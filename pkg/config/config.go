// Package config holds the engine configuration: per-backend artifact
// locations and the held-out evaluation metrics each backend reports
// through its metadata.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Metrics are held-out evaluation figures a backend reports as static
// metadata. They describe the trained model, not any particular run.
type Metrics struct {
	Accuracy  float64 `yaml:"accuracy" json:"accuracy"`
	F1        float64 `yaml:"f1" json:"f1"`
	Precision float64 `yaml:"precision" json:"precision"`
	Recall    float64 `yaml:"recall" json:"recall"`
}

// ModelConfig configures one backend.
type ModelConfig struct {
	// Artifact is the path to the backend's model file. Empty means no
	// artifact; the morphological backend then runs in simulation mode
	// and the transformer backend fails construction.
	Artifact string `yaml:"artifact"`

	// Metrics to report via ModelInfo. Nil for backends without held-out
	// figures.
	Metrics *Metrics `yaml:"metrics"`
}

// Config is the full engine configuration, keyed by backend selector
// ("legacy", "fine_tuned", "berturk").
type Config struct {
	Models map[string]ModelConfig `yaml:"models"`
}

// Default returns the built-in configuration. The morphological backend
// carries its published held-out metrics; the rule backend reports none.
func Default() Config {
	return Config{
		Models: map[string]ModelConfig{
			"legacy": {},
			"fine_tuned": {
				Artifact: "models/fine_tuned.yaml",
				Metrics: &Metrics{
					Accuracy:  0.8965,
					F1:        0.8871,
					Precision: 0.8912,
					Recall:    0.8832,
				},
			},
			"berturk": {
				Artifact: "models/berturk.db",
			},
		},
	}
}

// Load reads a YAML configuration file and merges it over Default():
// backends present in the file replace the built-in entry, backends
// absent from the file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg := Default()
	for name, mc := range loaded.Models {
		cfg.Models[name] = mc
	}
	return cfg, nil
}
