package main

import (
	"os"
	"path/filepath"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"tjweldon/levelgen/src/chart"
	"tjweldon/levelgen/src/config"
	"tjweldon/levelgen/src/raster"
	"tjweldon/levelgen/src/render"
	"tjweldon/levelgen/src/schedule"
	"tjweldon/levelgen/src/util"
)

// Stage bits of the positional argument, a set bit skips the stage
const (
	SkipMusic = 1 << iota
	SkipBackground
	SkipChart
)

type Args struct {
	Disable    int    `arg:"positional" help:"bitmask of stages to skip: 1 music, 2 background, 4 chart"`
	Config     string `arg:"--config,env:LEVELGEN_CONFIG" help:"JSON file overriding the synthesis constants"`
	Schedule   string `arg:"--schedule,env:LEVELGEN_SCHEDULE" help:"note schedule, one 32 bit page mask per line"`
	Audio      string `arg:"--audio" default:"-" help:"raw s16le mono PCM output, - for stdout"`
	Background string `arg:"--background" default:"bg.png" help:"background image output"`
	Format     string `arg:"--format" help:"background format: png, pgm, bmp or tiff (default from extension)"`
	ChartDir   string `arg:"--chart-dir" default:"." help:"directory for level.json and chart.json"`
	Force      bool   `arg:"--force" help:"write PCM even when stdout is a terminal"`
	Verbose    int    `arg:"-v,--verbose" help:"log verbosity, higher is chattier"`
}

func (Args) Description() string {
	return "levelgen renders the audio, background and chart of a rhythm game level"
}

var logger = util.Logger{Volume: util.Loud}.Ctx("levelgen")

func main() {
	var args Args
	arg.MustParse(&args)
	util.Verbosity(args.Verbose).FilterBelow()

	cfg := config.Default()
	if args.Config != "" {
		var err error
		if cfg, err = config.Load(args.Config); err != nil {
			logger.Fatal(err)
		}
	}

	pages, err := loadSchedule(args.Schedule)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Vol(util.Normal).Log("schedule has", len(pages), "pages,", pages.Count(), "notes")

	if args.Disable&SkipMusic == 0 {
		if args.Audio == "-" && !args.Force && term.IsTerminal(int(os.Stdout.Fd())) {
			logger.Fatal("refusing to write PCM to a terminal, redirect stdout or pass --audio/--force")
		}
		if err := render.MusicFile(args.Audio, cfg, pages); err != nil {
			logger.Fatal(err)
		}
	}

	if args.Disable&SkipBackground == 0 {
		format := raster.FormatOf(args.Background)
		if args.Format != "" {
			if format, err = raster.ParseFormat(args.Format); err != nil {
				logger.Fatal(err)
			}
		}
		if err := render.Background(args.Background, format); err != nil {
			logger.Fatal(err)
		}
	}

	if args.Disable&SkipChart == 0 {
		meta := chart.DefaultMeta()
		meta.Background = filepath.Base(args.Background)
		if err := render.Chart(args.ChartDir, meta, pages); err != nil {
			logger.Fatal(err)
		}
	}
}

func loadSchedule(path string) (schedule.Pages, error) {
	if path == "" {
		return schedule.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening schedule")
	}
	defer f.Close()
	return schedule.Parse(f)
}
