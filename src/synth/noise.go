package synth

import (
	"time"

	"github.com/faiface/beep"
	"tjweldon/levelgen/src/streams"
	"tjweldon/levelgen/src/timing"
)

// Noise plays a shared noise table under a parabolic decay, the hat and the
// tambourine differ only in their table
type Noise struct {
	table *Table
	rate  beep.SampleRate
}

// NewNoise builds a noise voice over a table
func NewNoise(table *Table, rate beep.SampleRate) *Noise {
	return &Noise{table: table, rate: rate}
}

// Play renders the whole table into s starting at the sample of at
func (n *Noise) Play(s *streams.Samples, at time.Duration) {
	start := timing.Offset(at, n.rate)
	length := float64(n.table.Len())
	for i := 0; i < n.table.Len(); i++ {
		t := float64(i) / length
		e := 1 - 2*t + t*t
		s.Add(start+i, n.table.At(i)*e)
	}
}
