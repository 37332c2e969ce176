// Package streams mixes triggered voices into a single signal and encodes it
// as raw PCM.
package streams

import (
	"time"

	"tjweldon/levelgen/src/util"
)

var logger = util.Logger{Volume: util.Normal}.Ctx("streams")

// Voice renders one note into a signal. Voices only ever add to the signal,
// so any number of notes may overlap.
type Voice interface {
	Play(s *Samples, at time.Duration)
}

// VoiceFunc adapts a function to the Voice interface
type VoiceFunc func(s *Samples, at time.Duration)

// Play calls f
func (f VoiceFunc) Play(s *Samples, at time.Duration) { f(s, at) }
