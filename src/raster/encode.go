package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image container
type Format string

const (
	PNG  Format = "png"
	PGM  Format = "pgm"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// FormatOf guesses the format from a file extension, defaulting to PNG
func FormatOf(path string) Format {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "pgm", "pbm":
		return PGM
	case "bmp":
		return BMP
	case "tif", "tiff":
		return TIFF
	default:
		return PNG
	}
}

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case PNG, PGM, BMP, TIFF:
		return f, nil
	case "tif":
		return TIFF, nil
	default:
		return "", errors.Errorf("unknown image format %q", name)
	}
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img *image.Gray, format Format) error {
	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case PGM:
		err = encodePGM(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Errorf("unknown image format %q", format)
	}
	return errors.Wrapf(err, "encoding %s", format)
}

// encodePGM writes a binary greymap, the header is followed by raw rows
func encodePGM(w io.Writer, img *image.Gray) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		if _, err := bw.Write(img.Pix[off : off+b.Dx()]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
