package synth

import (
	"sync"

	"github.com/pkg/errors"
	"tjweldon/levelgen/src/config"
	"tjweldon/levelgen/src/util"
)

// NoiseLevel scales every table. The seed noise spans [-1, 1); at 1/16 of
// that the hat and tambourine peak below the kick's gain and the mix stays
// clear of the encoder's clamp.
const NoiseLevel = 1.0 / 16

// Table is one realisation of band-limited noise. It is never written after
// construction and is shared by every note that plays it.
type Table struct {
	band    config.NoiseBand
	samples []float64
}

// Band returns the parameters the table was built from
func (t *Table) Band() config.NoiseBand { return t.band }

// Len is the number of samples in the table
func (t *Table) Len() int { return len(t.samples) }

// At returns sample i of the table
func (t *Table) At(i int) float64 { return t.samples[i] }

// BuildTable filters white noise down to the band with a linear ramp across
// it, rising from silence at the low edge to full level at the high edge.
// The result is rescaled so narrow bands are about as loud as wide ones, then
// brought down to NoiseLevel.
func BuildTable(tr *Transform, sampleRate int, band config.NoiseBand) (*Table, error) {
	n := tr.Size()
	low, high := band.Bins(sampleRate, n)
	if high <= low {
		return nil, errors.Errorf("band [%v, %v) covers no bins of a %d point transform", band.Low, band.High, n)
	}
	width := float64(high - low)

	spec := NewSpectrum(n)
	rnd := NewXorshift(band.Seed)
	for i := range spec.Re {
		spec.Re[i] = rnd.Float()
	}

	tr.Forward(spec)
	for i := 0; i < n; i++ {
		f := i
		if i > n/2 {
			f = n - i
		}
		amp := 0.0
		if f >= low && f <= high {
			amp = float64(f-low) / width
		}
		spec.Re[i] *= amp
		spec.Im[i] *= amp
	}
	tr.Inverse(spec)

	scale := NoiseLevel * float64(n/2) / width / float64(n)
	samples := make([]float64, n)
	for i, v := range spec.Re {
		samples[i] = v * scale
	}
	return &Table{band: band, samples: samples}, nil
}

type bankKey struct {
	low, high float64
	seed      uint64
}

// NoiseBank builds each distinct noise table once and hands out the shared
// copy afterwards. Lookups are safe from multiple goroutines.
type NoiseBank struct {
	mu         sync.Mutex
	transform  *Transform
	sampleRate int
	tables     map[bankKey]*Table
	builds     int
}

// NewNoiseBank creates an empty bank over a transform
func NewNoiseBank(tr *Transform, sampleRate int) *NoiseBank {
	return &NoiseBank{
		transform:  tr,
		sampleRate: sampleRate,
		tables:     map[bankKey]*Table{},
	}
}

// Table returns the table for band, building it on first use
func (b *NoiseBank) Table(band config.NoiseBand) (*Table, error) {
	key := bankKey{band.Low, band.High, band.Seed}

	b.mu.Lock()
	defer b.mu.Unlock()
	if t, ok := b.tables[key]; ok {
		return t, nil
	}

	logger := logger.Ctx("NoiseBank.Table").Vol(util.Quiet)
	logger.Log("building", band.Name, "table", band.Low, "-", band.High, "Hz")
	t, err := BuildTable(b.transform, b.sampleRate, band)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s noise", band.Name)
	}
	b.tables[key] = t
	b.builds++
	return t, nil
}

// Builds reports how many tables have been constructed
func (b *NoiseBank) Builds() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.builds
}
