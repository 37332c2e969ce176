package util

import (
	"fmt"
	"log"
	"os"
)

// Map applies mapFunc to every element of s
func Map[T, U any](mapFunc func(T) U, s []T) (out []U) {
	for _, t := range s {
		out = append(out, mapFunc(t))
	}

	return out
}

type LogVolume int

const (
	Silent LogVolume = 1 << iota
	Quieter
	Quiet
	Normal
	Loud
	Louder
	Loudest
)

func (lv LogVolume) String() string {
	switch lv {
	case Silent:
		return "Silent"
	case Quieter:
		return "Quieter"
	case Quiet:
		return "Quiet"
	case Normal:
		return "Normal"
	case Loud:
		return "Loud"
	case Louder:
		return "Louder"
	case Loudest:
		return "Loudest"
	default:
		return fmt.Sprintf("%d", lv)
	}
}

// Verbosity maps a count of -v flags onto a threshold: no flags only lets
// Loud and above through, every extra flag opens up one more level
func Verbosity(count int) LogVolume {
	lv := Loud
	for ; count > 0 && lv > Silent; count-- {
		lv >>= 1
	}
	return lv
}

// stdout carries the rendered audio, so log lines always go to stderr
var std = log.New(os.Stderr, "", log.LstdFlags)

// initialise the log level as Loud by default
var filterBelow = func(lv LogVolume) *LogVolume { return &lv }(Loud)

// FilterBelow sets the log level below which messages will not be printed
func (lv LogVolume) FilterBelow() LogVolume {
	*filterBelow = lv
	return lv
}

// Logger is a context-aware logger
type Logger struct {
	prefixes []any
	Volume   LogVolume
}

// Ctx returns a copy of the logger with the given prefix added after all pre-existing prefixes
func (l Logger) Ctx(prefix string) Logger {
	prefixes := make([]any, 0, len(l.prefixes)+1)
	prefixes = append(prefixes, l.prefixes...)
	return Logger{append(prefixes, prefix+":"), l.Volume}
}

// Vol is like a -v option. A Loud logger will print all messages,
// a Silent one will print none
func (l Logger) Vol(v LogVolume) Logger {
	l.Volume = v
	return l
}

// Enabled reports whether messages at the logger's volume pass the filter
func (l Logger) Enabled() bool {
	return l.Volume >= *filterBelow
}

// Log shares its interface with log.Println
func (l Logger) Log(msgs ...any) {
	if l.Enabled() {
		line := append([]any{fmt.Sprintf("[%s]", l.Volume)}, l.prefixes...)
		std.Println(append(line, msgs...)...)
	}
}

// Fatal logs regardless of volume and exits
func (l Logger) Fatal(msgs ...any) {
	line := append([]any{"[Fatal]"}, l.prefixes...)
	std.Fatalln(append(line, msgs...)...)
}
