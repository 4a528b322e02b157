package lut

import (
	"fmt"
	"image/png"
	"os"

	"github.com/OCharnyshevich/tilenoise/pkg/noise"
)

// WritePNG stores a table as an 8-bit RGBA PNG with raw channel bytes.
// No gamma or color-space conversion is applied; consumers must load
// the file the same way (noise.FromImage does).
func WritePNG(t *noise.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, t.Image()); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// ReadPNG loads a table previously written by WritePNG, reading the
// channel bytes as linear values.
func ReadPNG(path string) (*noise.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return noise.FromImage(img), nil
}
