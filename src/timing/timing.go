// Package timing converts schedule coordinates (page, subbeat) into wall time,
// sample offsets and chart ticks.
package timing

import (
	"time"

	"github.com/faiface/beep"
)

// PageDuration is the length of one schedule page. There is no tempo mapping:
// a page lasts exactly one second of audio.
const PageDuration = time.Second

// Subdivision is the number of subbeats in a page
const Subdivision = 8

// TicksPerPage is the chart time base, one page per 480 ticks
const TicksPerPage = 480

// Trigger returns the offset of a subbeat from the start of the track
func Trigger(page, subbeat int) time.Duration {
	return time.Duration(page)*PageDuration + time.Duration(subbeat)*PageDuration/Subdivision
}

// Tick returns the chart tick of a subbeat
func Tick(page, subbeat int) int {
	return page*TicksPerPage + subbeat*(TicksPerPage/Subdivision)
}

// Tempo is a chart tempo in microseconds per page
func Tempo() float64 {
	return float64(PageDuration.Microseconds())
}

// Timing pairs a duration with its length in samples
type Timing struct {
	Duration time.Duration
	Samples  int
}

// From computes the sample count of d at the sample rate of f. Sample counts
// truncate, so a trigger lands on the sample at or before its exact time.
func (Timing) From(d time.Duration, f beep.Format) Timing {
	return Timing{Duration: d, Samples: Offset(d, f.SampleRate)}
}

// Offset is the sample index a voice triggered at d starts writing at, the
// same value as sr.N(d). Whole seconds and the remainder are scaled apart so
// the product never overflows for long tracks.
func Offset(d time.Duration, sr beep.SampleRate) int {
	secs, rem := d/time.Second, d%time.Second
	return int(secs)*int(sr) + sr.N(rem)
}
