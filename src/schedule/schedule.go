// Package schedule holds the note schedule shared by the audio renderer and the
// chart emitter. A schedule is a list of 32 bit pages; every set bit is a note.
package schedule

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// Positions is the number of note slots in a page
	Positions = 32
	// Lanes is the number of voices a page addresses
	Lanes = 4
	// Subbeats is the number of time slots in a page
	Subbeats = Positions / Lanes
)

// Pages is an ordered note schedule
type Pages []uint32

// Event is one set bit of a page
type Event struct {
	Page     int
	Position int
	Lane     int
	Subbeat  int
}

// At builds the event for a bit position, counted from the most significant bit
func At(page, position int) Event {
	return Event{
		Page:     page,
		Position: position,
		Lane:     position % Lanes,
		Subbeat:  position / Lanes,
	}
}

// Mask returns the page bit of the position
func Mask(position int) uint32 {
	return 1 << (Positions - 1 - position)
}

// Events calls yield for every note in schedule order: pages in order, bit
// positions most significant first. It stops early if yield returns false.
func (p Pages) Events(yield func(Event) bool) {
	for page, mask := range p {
		for pos := 0; pos < Positions; pos++ {
			if mask&Mask(pos) == 0 {
				continue
			}
			if !yield(At(page, pos)) {
				return
			}
		}
	}
}

// All collects every note of the schedule
func (p Pages) All() []Event {
	var out []Event
	p.Events(func(e Event) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Count returns the number of notes in the schedule
func (p Pages) Count() (n int) {
	p.Events(func(Event) bool {
		n++
		return true
	})
	return n
}

// Parse reads one page per line. Masks may be written in hex (0x), binary (0b)
// or decimal, underscores are allowed as separators. Blank lines and anything
// after a # are ignored.
func Parse(r io.Reader) (Pages, error) {
	var pages Pages
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		mask, err := strconv.ParseUint(text, 0, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "schedule line %d", line)
		}
		pages = append(pages, uint32(mask))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading schedule")
	}
	return pages, nil
}

// Default is the built-in practice pattern: a four-on-the-floor kick, hats on
// the off subbeats and tambourine fills every fourth page.
func Default() Pages {
	const (
		kick  = 0b1000_0000_0000_0000_1000_0000_0000_0000
		hats  = 0b0000_0100_0000_0100_0000_0100_0000_0100
		offs  = 0b0000_0000_0001_0000_0000_0000_0001_0000
		tambs = 0b0000_0000_0000_0000_0010_0000_0000_0010
	)
	pages := make(Pages, 0, 32)
	for i := 0; i < 32; i++ {
		mask := uint32(kick | hats)
		if i%2 == 1 {
			mask |= offs
		}
		if i%4 == 3 {
			mask |= tambs
		}
		pages = append(pages, mask)
	}
	return pages
}
