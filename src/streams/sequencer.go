package streams

import (
	"fmt"

	"github.com/pkg/errors"
	"tjweldon/levelgen/src/schedule"
	"tjweldon/levelgen/src/timing"
	"tjweldon/levelgen/src/util"
)

// Sequencer walks a note schedule and plays one voice per lane
type Sequencer struct {
	Lanes [schedule.Lanes]Voice
}

// NewSequencer builds a sequencer from one voice per lane
func NewSequencer(lanes ...Voice) (Sequencer, error) {
	var seq Sequencer
	if len(lanes) != schedule.Lanes {
		return seq, errors.Errorf("sequencer needs %d lanes, got %d", schedule.Lanes, len(lanes))
	}
	for i, v := range lanes {
		if v == nil {
			return seq, errors.Errorf("lane %d has no voice", i)
		}
		seq.Lanes[i] = v
	}
	return seq, nil
}

// Render plays every note of pages into s and returns the number of notes
func (seq Sequencer) Render(pages schedule.Pages, s *Samples) (notes int) {
	logger := logger.Ctx("Sequencer.Render")
	logger.Log("rendering", len(pages), "pages")

	pages.Events(func(e schedule.Event) bool {
		at := timing.Trigger(e.Page, e.Subbeat)
		logger.Vol(util.Quieter).Log("page", e.Page, "position", e.Position, "lane", e.Lane, "at", at)
		seq.Lanes[e.Lane].Play(s, at)
		notes++
		return true
	})

	logger.Log("rendered", notes, "notes into", s.Len(), "samples")
	return notes
}

func (seq Sequencer) String() string {
	// omit the voices' state, their types say enough
	return fmt.Sprintf("Sequencer(%v)", util.Map(
		func(v Voice) string { return fmt.Sprintf("%T", v) },
		seq.Lanes[:],
	))
}
