package synth

import (
	"github.com/pkg/errors"
	"tjweldon/levelgen/src/config"
	"tjweldon/levelgen/src/streams"
)

// Kit is the fixed instrument set of a render
type Kit struct {
	Kick       *Kick
	Hat        *Noise
	Tambourine *Noise
}

// NewKit builds the voices, pulling the noise tables from the bank
func NewKit(cfg config.Config, bank *NoiseBank) (*Kit, error) {
	logger := logger.Ctx("NewKit")
	rate := cfg.Format().SampleRate

	voices := map[string]*Noise{}
	for _, name := range []string{config.Hat, config.Tambourine} {
		band, err := cfg.Band(name)
		if err != nil {
			return nil, err
		}
		table, err := bank.Table(band)
		if err != nil {
			return nil, errors.Wrapf(err, "%s voice", name)
		}
		voices[name] = NewNoise(table, rate)
	}

	logger.Log("kit ready,", bank.Builds(), "noise tables built")
	return &Kit{
		Kick:       NewKick(cfg.Kick, rate),
		Hat:        voices[config.Hat],
		Tambourine: voices[config.Tambourine],
	}, nil
}

// Lanes orders the voices the way the schedule addresses them
func (k *Kit) Lanes() []streams.Voice {
	return []streams.Voice{k.Kick, k.Hat, k.Tambourine, k.Hat}
}

// Sequencer wires the kit into a sequencer
func (k *Kit) Sequencer() (streams.Sequencer, error) {
	return streams.NewSequencer(k.Lanes()...)
}
