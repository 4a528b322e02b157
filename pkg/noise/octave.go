package noise

// Fractal3 layers multiple octaves of scalar 3D noise, halving the
// feature size and scaling the amplitude by persistence each octave.
// Output stays in [0,1]. Requires a redundant table, like
// SampleScalar3.
func (s *Sampler) Fractal3(v Vec3, octaves int, persistence float64) float64 {
	var total, maxVal float64
	amplitude := 1.0
	frequency := 1.0

	for range octaves {
		total += s.SampleScalar3(Vec3{v.X * frequency, v.Y * frequency, v.Z * frequency}) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2.0
	}
	return total / maxVal
}

// Fractal2 layers multiple octaves of the red channel of 2D noise.
// Output stays in [0,1].
func (s *Sampler) Fractal2(v Vec2, octaves int, persistence float64) float64 {
	var total, maxVal float64
	amplitude := 1.0
	frequency := 1.0

	for range octaves {
		total += s.Sample2(Vec2{v.X * frequency, v.Y * frequency}).X * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2.0
	}
	return total / maxVal
}
