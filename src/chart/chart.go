// Package chart writes the level descriptor and the note chart that go with
// the rendered audio. Both are built from the same schedule as the audio.
package chart

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"tjweldon/levelgen/src/schedule"
	"tjweldon/levelgen/src/timing"
	"tjweldon/levelgen/src/util"
)

var logger = util.Logger{Volume: util.Normal}.Ctx("chart")

const (
	LevelFile = "level.json"
	ChartFile = "chart.json"
)

type Asset struct {
	Path string `json:"path"`
}

type ChartRef struct {
	Type       string `json:"type"`
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
	Path       string `json:"path"`
}

// Level is the level.json descriptor
type Level struct {
	SchemaVersion     int        `json:"schema_version"`
	Version           int        `json:"version"`
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Artist            string     `json:"artist"`
	ArtistSource      string     `json:"artist_source"`
	Illustrator       string     `json:"illustrator"`
	IllustratorSource string     `json:"illustrator_source"`
	Charter           string     `json:"charter"`
	Music             Asset      `json:"music"`
	MusicPreview      Asset      `json:"music_preview"`
	Background        Asset      `json:"background"`
	Charts            []ChartRef `json:"charts"`
}

type Tempo struct {
	Tick  int     `json:"tick"`
	Value float64 `json:"value"`
}

type Page struct {
	StartTick         int `json:"start_tick"`
	EndTick           int `json:"end_tick"`
	ScanLineDirection int `json:"scan_line_direction"`
}

type Note struct {
	ID         int     `json:"id"`
	PageIndex  int     `json:"page_index"`
	Type       int     `json:"type"`
	Tick       int     `json:"tick"`
	X          float64 `json:"x"`
	HasSibling bool    `json:"has_sibling"`
	HoldTick   int     `json:"hold_tick"`
	NextID     int     `json:"next_id"`
	IsForward  bool    `json:"is_forward"`
}

// Chart is the note chart
type Chart struct {
	TimeBase       int     `json:"time_base"`
	MusicOffset    float64 `json:"music_offset"`
	TempoList      []Tempo `json:"tempo_list"`
	PageList       []Page  `json:"page_list"`
	NoteList       []Note  `json:"note_list"`
	EventOrderList []any   `json:"event_order_list"`
}

// Meta holds the free-text fields of the level
type Meta struct {
	ID, Title, Artist, Source string
	Music, Background         string
}

// DefaultMeta describes the practice level
func DefaultMeta() Meta {
	return Meta{
		ID:         "diamboy.4fprac.testing",
		Title:      "4f practice",
		Artist:     "diamboy",
		Source:     "https://github.com/Diamboy211/cytoid-idk/",
		Music:      "out.ogg",
		Background: "bg.png",
	}
}

// NewLevel builds the descriptor pointing at one easy chart
func NewLevel(meta Meta, chartPath string) Level {
	return Level{
		SchemaVersion:     2,
		Version:           1,
		ID:                meta.ID,
		Title:             meta.Title,
		Artist:            meta.Artist,
		ArtistSource:      meta.Source,
		Illustrator:       meta.Artist,
		IllustratorSource: meta.Source,
		Charter:           meta.Artist,
		Music:             Asset{meta.Music},
		MusicPreview:      Asset{meta.Music},
		Background:        Asset{meta.Background},
		Charts: []ChartRef{
			{Type: "easy", Name: "easy", Difficulty: 6, Path: chartPath},
		},
	}
}

// NewChart lays out one chart page per schedule page and one note per set bit.
// Notes alternate sides of the screen with the page so consecutive pages
// don't stack on the same columns.
func NewChart(pages schedule.Pages) Chart {
	c := Chart{
		TimeBase:       timing.TicksPerPage,
		TempoList:      []Tempo{{Tick: 0, Value: timing.Tempo()}},
		PageList:       make([]Page, 0, len(pages)),
		NoteList:       []Note{},
		EventOrderList: []any{},
	}
	for i := range pages {
		c.PageList = append(c.PageList, Page{
			StartTick:         timing.Tick(i, 0),
			EndTick:           timing.Tick(i+1, 0),
			ScanLineDirection: 1 - (i&1)*2,
		})
	}
	pages.Events(func(e schedule.Event) bool {
		c.NoteList = append(c.NoteList, Note{
			ID:        len(c.NoteList),
			PageIndex: e.Page,
			Tick:      timing.Tick(e.Page, e.Subbeat),
			X:         float64(e.Lane*2+(e.Page&1)) / 7,
		})
		return true
	})
	return c
}

// Write encodes v as JSON
func Write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return errors.Wrap(enc.Encode(v), "encoding json")
}

// WriteFiles writes level.json and the chart into dir
func WriteFiles(dir string, meta Meta, pages schedule.Pages) error {
	logger := logger.Ctx("WriteFiles")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "creating chart directory")
	}

	files := []struct {
		name string
		v    any
	}{
		{LevelFile, NewLevel(meta, ChartFile)},
		{ChartFile, NewChart(pages)},
	}
	for _, file := range files {
		path := filepath.Join(dir, file.name)
		if err := writeFile(path, file.v); err != nil {
			return err
		}
		logger.Log("wrote", path)
	}
	return nil
}

func writeFile(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating "+path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "closing "+path)
		}
	}()
	return errors.Wrap(Write(f, v), path)
}
