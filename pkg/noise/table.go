package noise

import (
	"fmt"
	"image"
	"math"
)

// Table is a periodic 2D grid of 4-channel samples in [0,1]. It is
// authored once offline and read-only afterwards; all addressing wraps
// at the boundaries, so the noise tiles with the table's period.
type Table struct {
	w, h   int
	texels []Vec4 // row-major, y*w+x
}

// NewTable returns an all-zero table of the given size.
func NewTable(w, h int) (*Table, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid table size %dx%d", w, h)
	}
	return &Table{w: w, h: h, texels: make([]Vec4, w*h)}, nil
}

// FromImage builds a table from an image, reading the channel bytes as
// linear values (no gamma decode). Images carrying a color profile must
// have been written with conversion disabled, or the shifted-channel
// equality the scalar entry points rely on is destroyed.
func FromImage(img image.Image) *Table {
	b := img.Bounds()
	t := &Table{w: b.Dx(), h: b.Dy(), texels: make([]Vec4, b.Dx()*b.Dy())}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := rawRGBA(img, x, y)
			t.texels[i] = Vec4{
				X: float64(r) / 255,
				Y: float64(g) / 255,
				Z: float64(bl) / 255,
				W: float64(a) / 255,
			}
			i++
		}
	}
	return t
}

// rawRGBA reads one pixel as unassociated 8-bit channels. NRGBA images
// are read byte-for-byte; everything else goes through the generic
// color model, which for fully opaque pixels gives the same result.
func rawRGBA(img image.Image, x, y int) (r, g, b, a uint8) {
	if n, ok := img.(*image.NRGBA); ok {
		i := n.PixOffset(x, y)
		return n.Pix[i], n.Pix[i+1], n.Pix[i+2], n.Pix[i+3]
	}
	r16, g16, b16, a16 := img.At(x, y).RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}

// Width returns the table width in texels.
func (t *Table) Width() int { return t.w }

// Height returns the table height in texels.
func (t *Table) Height() int { return t.h }

// At returns the texel at integer coordinates, wrapping both axes.
func (t *Table) At(x, y int) Vec4 {
	return t.texels[wrapIndex(y, t.h)*t.w+wrapIndex(x, t.w)]
}

// Set stores a texel, wrapping both axes.
func (t *Table) Set(x, y int, v Vec4) {
	t.texels[wrapIndex(y, t.h)*t.w+wrapIndex(x, t.w)] = v
}

// Fetch samples the table at a continuous texel-space coordinate with
// 4-tap bilinear filtering and wrap addressing. The caller's smoothing
// is already baked into the coordinate, so the blend weights are the
// raw fractional parts. This is the software stand-in for a hardware
// bilinear fetch; no half-texel bias is needed.
func (t *Table) Fetch(u, v float64) Vec4 {
	uf := math.Floor(u)
	vf := math.Floor(v)
	fx := u - uf
	fy := v - vf

	x0 := wrapIndex(int(uf), t.w)
	y0 := wrapIndex(int(vf), t.h)
	x1 := x0 + 1
	if x1 == t.w {
		x1 = 0
	}
	y1 := y0 + 1
	if y1 == t.h {
		y1 = 0
	}

	top := lerp4(t.texels[y0*t.w+x0], t.texels[y0*t.w+x1], fx)
	bot := lerp4(t.texels[y1*t.w+x0], t.texels[y1*t.w+x1], fx)
	return lerp4(top, bot, fy)
}

// Image renders the table to an NRGBA image with raw (linear) channel
// bytes, the inverse of FromImage for byte-derived tables.
func (t *Table) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.w, t.h))
	for y := 0; y < t.h; y++ {
		for x := 0; x < t.w; x++ {
			v := t.texels[y*t.w+x]
			i := img.PixOffset(x, y)
			img.Pix[i+0] = quantize(v.X)
			img.Pix[i+1] = quantize(v.Y)
			img.Pix[i+2] = quantize(v.Z)
			img.Pix[i+3] = quantize(v.W)
		}
	}
	return img
}

func quantize(v float64) uint8 {
	q := int(v*255 + 0.5)
	if q < 0 {
		q = 0
	}
	if q > 255 {
		q = 255
	}
	return uint8(q)
}

// wrapIndex reduces i modulo n, mapping negatives into [0,n).
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
