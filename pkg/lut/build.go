// Package lut authors the lookup tables that package noise samples.
//
// A built table satisfies the shifted-channel contract: green equals
// red offset by ZOffset, blue equals red offset by WOffset, and alpha
// equals red offset by both, all wrapping at the table edges. That
// redundancy is what lets the single-fetch entry points emulate the z
// and w axes. The offsets baked in here and the offsets used at
// sampling time must be the same Params; the table format has no
// metadata, so nothing can catch a mismatch later — run Verify here,
// at authoring time, because the sampler cannot.
package lut

import (
	"fmt"
	"math"

	"github.com/dgravesa/go-parallel/parallel"

	"github.com/OCharnyshevich/tilenoise/pkg/noise"
)

// Params configures a table build.
type Params struct {
	Width, Height int
	Seed          uint32
	Noise         noise.Params
}

// DefaultParams returns a 256×256 build with the stock noise constants.
func DefaultParams() Params {
	return Params{Width: 256, Height: 256, Seed: 1, Noise: noise.DefaultParams()}
}

// Build generates a channel-redundant lookup table. The red plane is
// filled sequentially from the LFSR (the register is stateful); the
// dependent channels are derived from it row-parallel.
func Build(p Params) (*noise.Table, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("invalid table size %dx%d", p.Width, p.Height)
	}
	zx, zy, err := texelOffset(p.Noise.ZOffset)
	if err != nil {
		return nil, fmt.Errorf("z offset: %w", err)
	}
	wx, wy, err := texelOffset(p.Noise.WOffset)
	if err != nil {
		return nil, fmt.Errorf("w offset: %w", err)
	}

	red := make([]uint8, p.Width*p.Height)
	reg := NewLFSR(p.Seed)
	for i := range red {
		red[i] = reg.Byte()
	}

	t, err := noise.NewTable(p.Width, p.Height)
	if err != nil {
		return nil, err
	}

	at := func(x, y int) float64 {
		x = wrap(x, p.Width)
		y = wrap(y, p.Height)
		return float64(red[y*p.Width+x]) / 255
	}

	parallel.For(p.Height, func(y, _ int) {
		for x := 0; x < p.Width; x++ {
			t.Set(x, y, noise.Vec4{
				X: at(x, y),
				Y: at(x+zx, y+zy),
				Z: at(x+wx, y+wy),
				W: at(x+zx+wx, y+zy+wy),
			})
		}
	})
	return t, nil
}

// Verify checks that a table satisfies the shifted-channel contract
// for the given constants, then round-trips a handful of scalar
// samples against a manual red/green blend of the raw fetch. It
// reports the first violation found.
func Verify(t *noise.Table, np noise.Params) error {
	zx, zy, err := texelOffset(np.ZOffset)
	if err != nil {
		return fmt.Errorf("z offset: %w", err)
	}
	wx, wy, err := texelOffset(np.WOffset)
	if err != nil {
		return fmt.Errorf("w offset: %w", err)
	}

	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			v := t.At(x, y)
			if v.Y != t.At(x+zx, y+zy).X {
				return fmt.Errorf("green(%d,%d) != red shifted by zOffset", x, y)
			}
			if v.Z != t.At(x+wx, y+wy).X {
				return fmt.Errorf("blue(%d,%d) != red shifted by wOffset", x, y)
			}
			if v.W != t.At(x+zx+wx, y+zy+wy).X {
				return fmt.Errorf("alpha(%d,%d) != red shifted by zOffset+wOffset", x, y)
			}
		}
	}

	// Round-trip: the single-fetch scalar path must agree with blending
	// the raw channels by hand.
	s := noise.New(t, np)
	for i := 0; i < 64; i++ {
		c := noise.Vec3{
			X: float64(i) * 0.73,
			Y: float64(i) * 1.31,
			Z: float64(i) * 0.17,
		}
		got := s.SampleScalar3(c)
		want := manualScalar3(t, np, c)
		if math.Abs(got-want) > 1e-12 {
			return fmt.Errorf("scalar round-trip mismatch at %+v: got %v want %v", c, got, want)
		}
	}
	return nil
}

// manualScalar3 recomputes SampleScalar3 from the raw fetch, blending
// red and green directly.
func manualScalar3(t *noise.Table, np noise.Params, v noise.Vec3) float64 {
	c := np.Matrix.Apply3(v)
	px := math.Floor(c.X)
	py := math.Floor(c.Y)
	pz := math.Floor(c.Z)
	sx := ease(c.X - px)
	sy := ease(c.Y - py)
	sz := ease(c.Z - pz)

	f := t.Fetch(px+sx+pz*np.ZOffset.X, py+sy+pz*np.ZOffset.Y)
	return f.X + (f.Y-f.X)*sz
}

func ease(f float64) float64 {
	return f * f * (3 - 2*f)
}

// texelOffset validates that an offset is a whole-texel vector. Exact
// channel equality is impossible with fractional offsets.
func texelOffset(o noise.Vec2) (x, y int, err error) {
	if o.X != math.Trunc(o.X) || o.Y != math.Trunc(o.Y) {
		return 0, 0, fmt.Errorf("offset %+v is not a whole-texel vector", o)
	}
	return int(o.X), int(o.Y), nil
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
