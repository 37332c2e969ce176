package synth

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"tjweldon/levelgen/src/config"
	"tjweldon/levelgen/src/streams"
	"tjweldon/levelgen/src/timing"
)

// kickGain is the output level of the kick
const kickGain = 0.2

// Kick is a sine whose pitch falls exponentially from a ceiling to a floor
// frequency, softly saturated and faded out by an inverted exponential.
type Kick struct {
	params   config.Kick
	rate     beep.SampleRate
	boundary float64
}

// NewKick builds a kick voice
func NewKick(params config.Kick, rate beep.SampleRate) *Kick {
	return &Kick{
		params:   params,
		rate:     rate,
		boundary: (math.Log(params.FloorFreq) - math.Log(params.CeilFreq)) / params.Decay,
	}
}

// Phase is the integral of the instantaneous frequency, in cycles, t seconds
// after the trigger
func (k *Kick) Phase(t float64) float64 {
	p := k.params
	if t < k.boundary {
		return p.CeilFreq / p.Decay * (math.Exp(p.Decay*t) - 1)
	}
	return (p.FloorFreq-p.CeilFreq)/p.Decay + p.FloorFreq*(t-k.boundary)
}

// Envelope is the amplitude t seconds after the trigger. The voice stops at
// the first sample where it is no longer positive.
func (k *Kick) Envelope(t float64) float64 {
	return 1 - math.Exp(8*(t-k.params.EnvBoundary))
}

// Shape is a cubic c1*x + c2*x^3 with f(1) = 1 and f'(1) = 2*saturation
func (k *Kick) Shape(x float64) float64 {
	sat := k.params.Saturation
	return (1.5-sat)*x + (sat-0.5)*x*x*x
}

// Play renders the kick into s starting at the sample of at
func (k *Kick) Play(s *streams.Samples, at time.Duration) {
	start := timing.Offset(at, k.rate)
	for i := 0; ; i++ {
		t := float64(i) / float64(k.rate)
		e := k.Envelope(t)
		if e <= 0 {
			break
		}
		body := k.Shape(math.Sin(2 * math.Pi * k.Phase(t)))
		s.Add(start+i, e*body*kickGain)
	}
}
