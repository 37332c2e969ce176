package streams

import (
	"testing"
)

func TestSamplesZeroPadding(t *testing.T) {
	s := NewSamples()
	if s.Len() != 0 || s.At(0) != 0 || s.At(1<<20) != 0 || s.At(-1) != 0 {
		t.Fatal("an empty signal should read as silence")
	}

	s.Add(10, 0.5)
	if s.Len() != 11 {
		t.Errorf("Len() = %d, want 11", s.Len())
	}
	if s.At(10) != 0.5 || s.At(9) != 0 || s.At(11) != 0 {
		t.Errorf("unexpected values around index 10")
	}
}

func TestSamplesGrowthKeepsValues(t *testing.T) {
	s := NewSamples()
	indices := []int{0, 1, 100, initialCapacity - 1, initialCapacity, 3 * initialCapacity, 1 << 20}
	for n, i := range indices {
		s.Add(i, float64(n+1))
		if got := s.At(i + 1); got != 0 {
			t.Errorf("At(%d) past the highest write = %v", i+1, got)
		}
		for m, j := range indices[:n+1] {
			if got := s.At(j); got != float64(m+1) {
				t.Fatalf("after writing %d, At(%d) = %v, want %v", i, j, got, m+1)
			}
		}
	}
	if s.Len() != 1<<20+1 {
		t.Errorf("Len() = %d", s.Len())
	}
}

func TestSamplesLowerWriteKeepsLength(t *testing.T) {
	s := NewSamples()
	s.Add(500, 1)
	s.Add(3, 1)
	if s.Len() != 501 {
		t.Errorf("Len() = %d after a lower write, want 501", s.Len())
	}
	if s.At(500) != 1 {
		t.Error("a lower write discarded the tail")
	}
}

func TestSamplesAdditive(t *testing.T) {
	s := NewSamples()
	s.Add(7, 0.25)
	s.Add(7, 0.5)
	s.Add(7, -0.125)
	if got := s.At(7); got != 0.625 {
		t.Errorf("At(7) = %v, want 0.625", got)
	}
}

func TestSamplesStreamer(t *testing.T) {
	s := NewSamples()
	for i := 0; i < 5; i++ {
		s.Add(i, float64(i))
	}
	st := s.Streamer()
	if st.Len() != 5 {
		t.Fatalf("Len() = %d", st.Len())
	}

	buf := make([][2]float64, 3)
	n, ok := st.Stream(buf)
	if n != 3 || !ok || buf[2] != [2]float64{2, 2} {
		t.Errorf("first Stream() = %d, %v, %v", n, ok, buf)
	}
	n, ok = st.Stream(buf)
	if n != 2 || !ok || buf[1] != [2]float64{4, 4} {
		t.Errorf("second Stream() = %d, %v, %v", n, ok, buf)
	}
	if n, ok = st.Stream(buf); n != 0 || ok {
		t.Errorf("drained Stream() = %d, %v", n, ok)
	}

	if err := st.Seek(1); err != nil || st.Position() != 1 {
		t.Errorf("Seek(1) = %v, Position() = %d", err, st.Position())
	}
	if err := st.Seek(6); err == nil {
		t.Error("Seek past the end should fail")
	}
}
