// Package render ties the stages of a level together: the audio track, the
// background image and the chart.
package render

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"tjweldon/levelgen/src/chart"
	"tjweldon/levelgen/src/config"
	"tjweldon/levelgen/src/raster"
	"tjweldon/levelgen/src/schedule"
	"tjweldon/levelgen/src/streams"
	"tjweldon/levelgen/src/synth"
	"tjweldon/levelgen/src/timing"
	"tjweldon/levelgen/src/util"
)

var logger = util.Logger{Volume: util.Loud}.Ctx("render")

// Track renders the schedule into a signal. Nothing is encoded here, so a
// failure leaves no partial output behind.
func Track(cfg config.Config, pages schedule.Pages) (*streams.Samples, error) {
	logger := logger.Ctx("Track").Vol(util.Normal)
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tr, err := synth.NewTransform(cfg.TransformSize)
	if err != nil {
		return nil, err
	}
	kit, err := synth.NewKit(cfg, synth.NewNoiseBank(tr, cfg.SampleRate))
	if err != nil {
		return nil, err
	}
	seq, err := kit.Sequencer()
	if err != nil {
		return nil, err
	}

	span := timing.Timing{}.From(time.Duration(len(pages))*timing.PageDuration, cfg.Format())
	s := streams.NewSamples()
	notes := seq.Render(pages, s)
	logger.Log("sequenced", notes, "notes over", len(pages), "pages,", span.Duration, "/", span.Samples, "samples")
	if tail := s.Len() - span.Samples; tail > 0 {
		logger.Vol(util.Quiet).Log("last notes ring", tail, "samples past the final page")
	}
	return s, nil
}

// Music renders the schedule and writes it to w as raw 16 bit mono PCM
func Music(w io.Writer, cfg config.Config, pages schedule.Pages) error {
	logger := logger.Ctx("Music")
	logger.Log("generating music")

	s, err := Track(cfg, pages)
	if err != nil {
		return err
	}
	frames, err := streams.Encode(w, s.Streamer(), cfg.Format())
	if err != nil {
		return err
	}
	logger.Vol(util.Normal).Log("wrote", frames, "samples at", cfg.SampleRate, "Hz")
	return nil
}

// Background draws the background and writes it to path
func Background(path string, format raster.Format) (err error) {
	logger := logger.Ctx("Background")
	logger.Log("generating background image")

	img := raster.Background(raster.Width, raster.Height)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating background")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "closing background")
		}
	}()
	if err := raster.Encode(f, img, format); err != nil {
		return err
	}
	logger.Vol(util.Normal).Log("wrote", path)
	return nil
}

// Chart writes level.json and the chart into dir
func Chart(dir string, meta chart.Meta, pages schedule.Pages) error {
	logger.Ctx("Chart").Log("generating chart")
	return chart.WriteFiles(dir, meta, pages)
}

// MusicFile renders the track and only then creates path, so a failed render
// leaves no file behind. A path of "-" writes to stdout.
func MusicFile(path string, cfg config.Config, pages schedule.Pages) (err error) {
	if path == "-" {
		return Music(os.Stdout, cfg, pages)
	}
	logger := logger.Ctx("MusicFile")
	logger.Log("generating music")

	s, err := Track(cfg, pages)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating audio output")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "closing audio output")
		}
	}()
	frames, err := streams.Encode(f, s.Streamer(), cfg.Format())
	if err != nil {
		return err
	}
	logger.Vol(util.Normal).Log("wrote", frames, "samples to", path)
	return nil
}
