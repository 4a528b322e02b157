package noise

// Params holds the constants shared between table authoring and
// sampling: the texel offsets that fold the z and w axes into the 2D
// table, and the lattice permutation matrix. Nothing writes to a
// Params at runtime; treat it as configuration, not state.
//
// The same Params must be used to build the table and to sample it.
// There is no way to detect a mismatch afterwards.
type Params struct {
	// ZOffset and WOffset are whole-texel 2D offsets. Integer steps
	// along z move the UV by ZOffset; steps along w move it by WOffset.
	ZOffset Vec2
	WOffset Vec2

	// Matrix rotates/shears the input coordinate before the lattice
	// split, decorrelating lattice axes from world axes.
	Matrix Mat4
}

// DefaultParams returns the stock constants.
//
// The matrix was tuned offline by random search over unit-row matrices,
// keeping the rows of every leading submatrix away from the coordinate
// axes and mutually separated by roughly 60°. Perfectly axis-aligned
// viewing still shows faint artifacts; substitute a better matrix here
// if one turns up, the sampling code does not care.
func DefaultParams() Params {
	return Params{
		ZOffset: Vec2{X: 51, Y: 111},
		WOffset: Vec2{X: 93, Y: 59},
		Matrix: Mat4{
			{0.7031, 0.4781, 0.2188, 0.4787},
			{0.6236, -0.4663, -0.2012, 0.5943},
			{0.6085, -0.2336, 0.7488, 0.1204},
			{0.5991, 0.6734, 0.2148, -0.3761},
		},
	}
}

// Sampler evaluates tileable noise against a read-only lookup table.
// It holds no mutable state and is safe for concurrent use.
type Sampler struct {
	table *Table
	p     Params
}

// New returns a Sampler over the given table and constants.
func New(table *Table, p Params) *Sampler {
	return &Sampler{table: table, p: p}
}

// Params returns the constants the sampler was built with.
func (s *Sampler) Params() Params { return s.p }

// Table returns the underlying lookup table.
func (s *Sampler) Table() *Table { return s.table }

// Sample2 evaluates 2D noise with a single fetch. All four channels
// are returned as-is; with a redundant table they are shifted copies
// of one field, with an independently random table they are four
// independent fields.
func (s *Sampler) Sample2(v Vec2) Vec4 {
	c := s.p.Matrix.Apply2(v)
	px, fx := split(c.X)
	py, fy := split(c.Y)
	return s.table.Fetch(px+smooth(fx), py+smooth(fy))
}

// Sample3 evaluates 3D noise with two fetches, blending the cells
// above and below the z coordinate. Works against any table; the four
// channels are four independent 3D fields when the table is.
func (s *Sampler) Sample3(v Vec3) Vec4 {
	c := s.p.Matrix.Apply3(v)
	px, fx := split(c.X)
	py, fy := split(c.Y)
	pz, fz := split(c.Z)

	u := px + smooth(fx) + pz*s.p.ZOffset.X
	w := py + smooth(fy) + pz*s.p.ZOffset.Y

	a := s.table.Fetch(u, w)
	b := s.table.Fetch(u+s.p.ZOffset.X, w+s.p.ZOffset.Y)
	return lerp4(a, b, smooth(fz))
}

// SampleScalar3 evaluates one channel of 3D noise with a single fetch.
// It blends the red and green channels by the smoothed z fraction,
// which is only correct against a table whose green channel is the red
// channel shifted by ZOffset.
func (s *Sampler) SampleScalar3(v Vec3) float64 {
	c := s.p.Matrix.Apply3(v)
	px, fx := split(c.X)
	py, fy := split(c.Y)
	pz, fz := split(c.Z)

	t := s.table.Fetch(
		px+smooth(fx)+pz*s.p.ZOffset.X,
		py+smooth(fy)+pz*s.p.ZOffset.Y,
	)
	return lerp(t.X, t.Y, smooth(fz))
}

// SamplePair3 evaluates two decorrelated channels of 3D noise with a
// single fetch, blending (red,blue) and (green,alpha) by the smoothed
// z fraction. Because blue and alpha are the WOffset-shifted copies,
// this entry point folds z into UV via WOffset; the two outputs are
// the same underlying field sampled ZOffset texels apart, which is far
// enough to be independent for rendering purposes. Requires a
// redundant table.
func (s *Sampler) SamplePair3(v Vec3) Vec2 {
	c := s.p.Matrix.Apply3(v)
	px, fx := split(c.X)
	py, fy := split(c.Y)
	pz, fz := split(c.Z)

	t := s.table.Fetch(
		px+smooth(fx)+pz*s.p.WOffset.X,
		py+smooth(fy)+pz*s.p.WOffset.Y,
	)
	sz := smooth(fz)
	return Vec2{
		X: lerp(t.X, t.Z, sz),
		Y: lerp(t.Y, t.W, sz),
	}
}

// Sample4 evaluates 4D noise with four fetches, bilinearly blending
// across z and then w. Works against any table.
func (s *Sampler) Sample4(v Vec4) Vec4 {
	c := s.p.Matrix.Apply4(v)
	px, fx := split(c.X)
	py, fy := split(c.Y)
	pz, fz := split(c.Z)
	pw, fw := split(c.W)

	u := px + smooth(fx) + pz*s.p.ZOffset.X + pw*s.p.WOffset.X
	w := py + smooth(fy) + pz*s.p.ZOffset.Y + pw*s.p.WOffset.Y

	z0w0 := s.table.Fetch(u, w)
	z1w0 := s.table.Fetch(u+s.p.ZOffset.X, w+s.p.ZOffset.Y)
	z0w1 := s.table.Fetch(u+s.p.WOffset.X, w+s.p.WOffset.Y)
	z1w1 := s.table.Fetch(u+s.p.ZOffset.X+s.p.WOffset.X, w+s.p.ZOffset.Y+s.p.WOffset.Y)

	sz := smooth(fz)
	return lerp4(lerp4(z0w0, z1w0, sz), lerp4(z0w1, z1w1, sz), smooth(fw))
}

// SampleScalar4 evaluates one channel of 4D noise with a single fetch,
// blending all four channels pairwise: red/green by the smoothed z
// fraction, blue/alpha likewise, then the two results by the smoothed
// w fraction. Requires a redundant table; w is blended last, matching
// how the offsets compose in the UV.
func (s *Sampler) SampleScalar4(v Vec4) float64 {
	c := s.p.Matrix.Apply4(v)
	px, fx := split(c.X)
	py, fy := split(c.Y)
	pz, fz := split(c.Z)
	pw, fw := split(c.W)

	t := s.table.Fetch(
		px+smooth(fx)+pz*s.p.ZOffset.X+pw*s.p.WOffset.X,
		py+smooth(fy)+pz*s.p.ZOffset.Y+pw*s.p.WOffset.Y,
	)
	sz := smooth(fz)
	return lerp(lerp(t.X, t.Y, sz), lerp(t.Z, t.W, sz), smooth(fw))
}
