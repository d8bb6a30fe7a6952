package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCarriesMorphMetrics(t *testing.T) {
	cfg := Default()

	mc, ok := cfg.Models["fine_tuned"]
	if !ok {
		t.Fatal("fine_tuned backend missing from default config")
	}
	if mc.Metrics == nil {
		t.Fatal("fine_tuned backend has no metrics")
	}
	if mc.Metrics.Accuracy != 0.8965 {
		t.Errorf("accuracy = %v, want 0.8965", mc.Metrics.Accuracy)
	}

	if legacy := cfg.Models["legacy"]; legacy.Metrics != nil {
		t.Error("legacy backend must report no metrics")
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turkpos.yaml")
	doc := `
models:
  berturk:
    artifact: /opt/models/berturk.db
  fine_tuned:
    artifact: /opt/models/morph.yaml
    metrics:
      accuracy: 0.91
      f1: 0.9
      precision: 0.9
      recall: 0.9
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Models["berturk"].Artifact; got != "/opt/models/berturk.db" {
		t.Errorf("berturk artifact = %q", got)
	}
	if got := cfg.Models["fine_tuned"].Metrics.Accuracy; got != 0.91 {
		t.Errorf("overridden accuracy = %v", got)
	}
	if _, ok := cfg.Models["legacy"]; !ok {
		t.Error("legacy entry lost during merge")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
