package main

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/OCharnyshevich/tilenoise/pkg/noise"
)

// previewImage renders one z-slice of fractal noise to a grayscale
// image.
func previewImage(s *noise.Sampler, size int, scale float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := s.Fractal3(noise.Vec3{
				X: float64(x) * scale,
				Y: float64(y) * scale,
				Z: 0.5,
			}, 4, 0.5)
			img.Pix[y*img.Stride+x] = uint8(v*255 + 0.5)
		}
	}
	return img
}

// parseVec2 parses "x,y" into a vector.
func parseVec2(s string) (noise.Vec2, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return noise.Vec2{}, fmt.Errorf("want x,y got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return noise.Vec2{}, fmt.Errorf("parse %q: %w", parts[0], err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return noise.Vec2{}, fmt.Errorf("parse %q: %w", parts[1], err)
	}
	return noise.Vec2{X: x, Y: y}, nil
}
