package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"non power of two", func(c *Config) { c.TransformSize = 6000 }, "power of two"},
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }, "sample rate"},
		{"positive decay", func(c *Config) { c.Kick.Decay = 1 }, "decay"},
		{"inverted sweep", func(c *Config) { c.Kick.CeilFreq = 20 }, "ceiling"},
		{"zero seed", func(c *Config) { c.NoiseBands[0].Seed = 0 }, "seed"},
		{"empty band", func(c *Config) { c.NoiseBands[1].Low = 8000 }, "no transform bins"},
		{"above nyquist", func(c *Config) { c.NoiseBands[0].High = 30000 }, "outside"},
		{"missing band", func(c *Config) { c.NoiseBands = c.NoiseBands[:1] }, "tambourine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.NoiseBands = append([]NoiseBand(nil), cfg.NoiseBands...)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levelgen.json")
	body := `{
		"transformSize": 4096,
		"kick": {"saturation": 0.5},
		"noiseBands": [{"name": "hat", "low": 2000, "high": 9000, "seed": 7}]
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.TransformSize != 4096 || cfg.SampleRate != 48000 {
		t.Errorf("sizes = %d/%d", cfg.TransformSize, cfg.SampleRate)
	}
	if cfg.Kick.Saturation != 0.5 || cfg.Kick.Decay != -36 {
		t.Errorf("kick = %+v", cfg.Kick)
	}
	hat, _ := cfg.Band(Hat)
	if hat.Low != 2000 || hat.Seed != 7 {
		t.Errorf("hat = %+v", hat)
	}
	tamb, _ := cfg.Band(Tambourine)
	if tamb.Seed != 0x420420 {
		t.Errorf("tambourine = %+v", tamb)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"transformSize": 1000}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for a non power of two transform")
	}
}

func TestBins(t *testing.T) {
	low, high := NoiseBand{Low: 1000, High: 8000}.Bins(48000, 8192)
	if low != 170 || high != 1365 {
		t.Errorf("Bins() = %d, %d, want 170, 1365", low, high)
	}
}
