// Package config holds the tunable constants of a render: sample rate,
// transform size, kick parameters and the noise bands of the hat and
// tambourine.
package config

import (
	"encoding/json"
	"math"
	"os"

	"github.com/faiface/beep"
	"github.com/pkg/errors"
)

// Kick parameterises the pitched drum voice
type Kick struct {
	// Decay is the exponential rate of the pitch sweep, must be negative
	Decay float64 `json:"decay"`
	// CeilFreq is the starting pitch in Hz
	CeilFreq float64 `json:"ceilFreq"`
	// FloorFreq is the pitch the sweep settles at in Hz
	FloorFreq float64 `json:"floorFreq"`
	// EnvBoundary is the time in seconds at which the amplitude envelope hits zero
	EnvBoundary float64 `json:"envBoundary"`
	// Saturation of 0.5 is a clean sine, 0 is the most saturated without clipping
	Saturation float64 `json:"saturation"`
}

// NoiseBand describes one band-limited noise table
type NoiseBand struct {
	Name string  `json:"name"`
	Low  float64 `json:"low"`
	High float64 `json:"high"`
	Seed uint64  `json:"seed"`
}

// Config is the full configuration surface of the audio renderer
type Config struct {
	SampleRate    int         `json:"sampleRate"`
	TransformSize int         `json:"transformSize"`
	Kick          Kick        `json:"kick"`
	NoiseBands    []NoiseBand `json:"noiseBands"`
}

const (
	Hat        = "hat"
	Tambourine = "tambourine"
)

// Default returns the built-in configuration
func Default() Config {
	return Config{
		SampleRate:    48000,
		TransformSize: 8192,
		Kick: Kick{
			Decay:       -36,
			CeilFreq:    220,
			FloorFreq:   55,
			EnvBoundary: 0.5,
			Saturation:  0.2,
		},
		NoiseBands: []NoiseBand{
			{Name: Hat, Low: 1000, High: 8000, Seed: 0x696969},
			{Name: Tambourine, Low: 4000, High: 8000, Seed: 0x420420},
		},
	}
}

// Load reads a JSON file over the defaults. Fields missing from the file keep
// their default value, a noiseBands array replaces the default bands by name.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}

	var overlay struct {
		SampleRate    *int        `json:"sampleRate"`
		TransformSize *int        `json:"transformSize"`
		Kick          *Kick       `json:"kick"`
		NoiseBands    []NoiseBand `json:"noiseBands"`
	}
	// decode the kick over the defaults so partial objects keep the rest
	overlay.Kick = &cfg.Kick
	if err := json.Unmarshal(raw, &overlay); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}

	if overlay.SampleRate != nil {
		cfg.SampleRate = *overlay.SampleRate
	}
	if overlay.TransformSize != nil {
		cfg.TransformSize = *overlay.TransformSize
	}
	for _, band := range overlay.NoiseBands {
		cfg.SetBand(band)
	}

	return cfg, cfg.Validate()
}

// SetBand replaces the band with the same name or appends it
func (c *Config) SetBand(band NoiseBand) {
	for i := range c.NoiseBands {
		if c.NoiseBands[i].Name == band.Name {
			c.NoiseBands[i] = band
			return
		}
	}
	c.NoiseBands = append(c.NoiseBands, band)
}

// Band looks up a noise band by name
func (c Config) Band(name string) (NoiseBand, error) {
	for _, band := range c.NoiseBands {
		if band.Name == name {
			return band, nil
		}
	}
	return NoiseBand{}, errors.Errorf("no noise band named %q", name)
}

// Format is the output format of the PCM stream: mono, 16 bit
func (c Config) Format() beep.Format {
	return beep.Format{SampleRate: beep.SampleRate(c.SampleRate), NumChannels: 1, Precision: 2}
}

// Validate rejects configurations the renderer cannot use
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return errors.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	if c.TransformSize < 2 || c.TransformSize&(c.TransformSize-1) != 0 {
		return errors.Errorf("transform size must be a power of two, got %d", c.TransformSize)
	}
	if err := c.Kick.validate(); err != nil {
		return errors.Wrap(err, "kick")
	}
	for _, name := range []string{Hat, Tambourine} {
		band, err := c.Band(name)
		if err != nil {
			return err
		}
		if err := band.validate(c.SampleRate, c.TransformSize); err != nil {
			return errors.Wrapf(err, "noise band %s", name)
		}
	}
	return nil
}

func (k Kick) validate() error {
	switch {
	case !(k.Decay < 0):
		return errors.Errorf("decay must be negative, got %v", k.Decay)
	case !(k.FloorFreq > 0):
		return errors.Errorf("floor frequency must be positive, got %v", k.FloorFreq)
	case !(k.CeilFreq > k.FloorFreq):
		return errors.Errorf("ceiling frequency %v must exceed floor %v", k.CeilFreq, k.FloorFreq)
	case math.IsNaN(k.EnvBoundary) || math.IsInf(k.EnvBoundary, 0):
		return errors.Errorf("envelope boundary must be finite, got %v", k.EnvBoundary)
	case math.IsNaN(k.Saturation):
		return errors.New("saturation is NaN")
	}
	return nil
}

// Bins returns the inclusive bin range of the band for a transform of size n
func (b NoiseBand) Bins(sampleRate, n int) (low, high int) {
	low = int(b.Low * float64(n) / float64(sampleRate))
	high = int(b.High * float64(n) / float64(sampleRate))
	return low, high
}

func (b NoiseBand) validate(sampleRate, n int) error {
	if b.Seed == 0 {
		return errors.New("seed must be non-zero")
	}
	if b.Low < 0 || b.High*2 > float64(sampleRate) {
		return errors.Errorf("band [%v, %v) outside [0, %v]", b.Low, b.High, float64(sampleRate)/2)
	}
	low, high := b.Bins(sampleRate, n)
	if high <= low {
		return errors.Errorf("band [%v, %v) covers no transform bins", b.Low, b.High)
	}
	return nil
}
