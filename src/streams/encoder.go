package streams

import (
	"bufio"
	"io"

	"github.com/faiface/beep"
	"github.com/pkg/errors"
)

// chunk is the number of frames pulled from the streamer per write
const chunk = 512

// Encode drains s and writes it as headerless signed PCM in the given format.
// Samples are clamped to [-1, 1], scaled by the largest positive integer of
// the precision and truncated toward zero, low byte first.
func Encode(w io.Writer, s beep.Streamer, format beep.Format) (written int, err error) {
	logger := logger.Ctx("Encode")
	bw := bufio.NewWriter(w)
	width := format.Width()
	frames := make([][2]float64, chunk)
	p := make([]byte, chunk*width)

	for {
		n, ok := s.Stream(frames)
		for i := range frames[:n] {
			format.EncodeSigned(p[i*width:], frames[i])
		}
		if n > 0 {
			if _, err := bw.Write(p[:n*width]); err != nil {
				return written, errors.Wrap(err, "writing pcm")
			}
			written += n
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return written, errors.Wrap(err, "streaming samples")
	}
	if err := bw.Flush(); err != nil {
		return written, errors.Wrap(err, "flushing pcm")
	}

	logger.Log("encoded", written, "frames")
	return written, nil
}

// EncodeSamples writes the whole signal as 16 bit mono PCM at the given rate
func EncodeSamples(w io.Writer, s *Samples, rate beep.SampleRate) (int, error) {
	return Encode(w, s.Streamer(), beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2})
}
