package streams

import (
	"github.com/faiface/beep"
	"github.com/pkg/errors"
)

// initialCapacity is a little over a second at 48kHz
const initialCapacity = 1 << 16

// Samples is a growable mono signal. Every index past the logical length
// reads as silence, and writes past it extend the signal.
type Samples struct {
	data []float64
}

// NewSamples allocates an empty signal
func NewSamples() *Samples {
	return &Samples{data: make([]float64, 0, initialCapacity)}
}

// Len is one past the highest index ever written
func (s *Samples) Len() int { return len(s.data) }

// At reads a sample, anything outside the written range is 0
func (s *Samples) At(i int) float64 {
	if i < 0 || i >= len(s.data) {
		return 0
	}
	return s.data[i]
}

// Add mixes v into the signal at index i
func (s *Samples) Add(i int, v float64) {
	s.accommodate(i)
	s.data[i] += v
}

// accommodate extends the logical length to cover i, doubling the backing
// array when it runs out. The length never shrinks, so the region between len
// and cap has never been written and is still zero.
func (s *Samples) accommodate(i int) {
	if i < len(s.data) {
		return
	}
	if i >= cap(s.data) {
		grown := make([]float64, i+1, max(i+1, 2*cap(s.data)))
		copy(grown, s.data)
		s.data = grown
		return
	}
	s.data = s.data[:i+1]
}

// Streamer plays the signal from the start, duplicating it on both channels
func (s *Samples) Streamer() beep.StreamSeeker {
	return &samplesStreamer{s: s}
}

type samplesStreamer struct {
	s   *Samples
	pos int
}

func (ss *samplesStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if ss.pos >= ss.s.Len() {
		return 0, false
	}
	for n = range samples {
		if ss.pos >= ss.s.Len() {
			return n, true
		}
		v := ss.s.data[ss.pos]
		samples[n] = [2]float64{v, v}
		ss.pos++
	}
	return len(samples), true
}

func (ss *samplesStreamer) Err() error { return nil }

func (ss *samplesStreamer) Len() int { return ss.s.Len() }

func (ss *samplesStreamer) Position() int { return ss.pos }

func (ss *samplesStreamer) Seek(p int) error {
	if p < 0 || p > ss.s.Len() {
		return errors.Errorf("seek position %v out of range [%v, %v]", p, 0, ss.s.Len())
	}
	ss.pos = p
	return nil
}
