package streams

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeSamples(t *testing.T) {
	s := NewSamples()
	for i, v := range []float64{0.5, -1.0, 0.0, 1.0} {
		s.Add(i, v)
	}

	var buf bytes.Buffer
	n, err := EncodeSamples(&buf, s, 48000)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("encoded %d frames, want 4", n)
	}
	want := []byte{0xFF, 0x3F, 0x01, 0x80, 0x00, 0x00, 0xFF, 0x7F}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Encode() = % X, want % X", buf.Bytes(), want)
	}
}

func TestEncodeClamps(t *testing.T) {
	s := NewSamples()
	s.Add(0, 3.5)
	s.Add(1, -7)
	s.Add(2, -0.5)

	var buf bytes.Buffer
	if _, err := EncodeSamples(&buf, s, 48000); err != nil {
		t.Fatal(err)
	}
	// -0.5 * 32767 truncates to -16383
	want := []byte{0xFF, 0x7F, 0x01, 0x80, 0x01, 0xC0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Encode() = % X, want % X", buf.Bytes(), want)
	}
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	n, err := EncodeSamples(&buf, NewSamples(), 48000)
	if err != nil || n != 0 || buf.Len() != 0 {
		t.Errorf("empty signal encoded to %d frames, %d bytes, err %v", n, buf.Len(), err)
	}
}

func TestEncodeLong(t *testing.T) {
	s := NewSamples()
	const frames = 3*chunk + 17
	s.Add(frames-1, 0)

	var buf bytes.Buffer
	n, err := EncodeSamples(&buf, s, 48000)
	if err != nil || n != frames || buf.Len() != 2*frames {
		t.Errorf("encoded %d frames, %d bytes, err %v", n, buf.Len(), err)
	}
}

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestEncodeWriteError(t *testing.T) {
	s := NewSamples()
	s.Add(10, 0.1)
	if _, err := EncodeSamples(brokenPipe{}, s, 48000); err == nil {
		t.Error("expected the write error to propagate")
	}
}
