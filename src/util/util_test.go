package util

import (
	"reflect"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map(strconv.Itoa, []int{1, 2, 3})
	if !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Errorf("Map() = %v", got)
	}
	if Map(strconv.Itoa, nil) != nil {
		t.Error("Map() over nil should be nil")
	}
}

func TestVerbosity(t *testing.T) {
	tests := []struct {
		count int
		want  LogVolume
	}{
		{0, Loud},
		{1, Normal},
		{2, Quiet},
		{4, Silent},
		{10, Silent},
		{-1, Loud},
	}
	for _, tt := range tests {
		if got := Verbosity(tt.count); got != tt.want {
			t.Errorf("Verbosity(%d) = %s, want %s", tt.count, got, tt.want)
		}
	}
}

func TestLoggerEnabled(t *testing.T) {
	defer Loud.FilterBelow()
	Normal.FilterBelow()

	l := Logger{Volume: Loud}.Ctx("test")
	if !l.Enabled() || !l.Vol(Normal).Enabled() || l.Vol(Quiet).Enabled() {
		t.Error("filter threshold not applied")
	}
}

func TestLoggerCtxDoesNotAlias(t *testing.T) {
	base := Logger{Volume: Loud}.Ctx("a")
	b := base.Ctx("b")
	c := base.Ctx("c")
	if b.prefixes[1] != "b:" || c.prefixes[1] != "c:" {
		t.Errorf("prefixes = %v, %v", b.prefixes, c.prefixes)
	}
}
