package noise

import "math"

// Vec2 is a 2D vector.
type Vec2 struct{ X, Y float64 }

// Vec3 is a 3D vector.
type Vec3 struct{ X, Y, Z float64 }

// Vec4 is a 4D vector.
type Vec4 struct{ X, Y, Z, W float64 }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Mat4 is a row-major 4×4 matrix. Lower-arity transforms use the
// leading principal submatrix, so a single constant serves 2D, 3D,
// and 4D queries.
type Mat4 [4][4]float64

// Apply2 transforms v by the leading 2×2 submatrix.
func (m *Mat4) Apply2(v Vec2) Vec2 {
	return Vec2{
		X: m[0][0]*v.X + m[0][1]*v.Y,
		Y: m[1][0]*v.X + m[1][1]*v.Y,
	}
}

// Apply3 transforms v by the leading 3×3 submatrix.
func (m *Mat4) Apply3(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Apply4 transforms v by the full matrix.
func (m *Mat4) Apply4(v Vec4) Vec4 {
	return Vec4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// Identity returns the identity matrix. Useful for tests and for
// callers that want lattice-aligned sampling despite the artifacts.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// split separates c into its integer lattice cell and fractional
// offset. The fraction is always in [0,1), also for negative c.
func split(c float64) (cell, fr float64) {
	cell = math.Floor(c)
	return cell, c - cell
}

// smooth is the cubic Hermite ease curve f²(3−2f). It maps 0→0 and
// 1→1 with zero slope at both ends, which removes the first-derivative
// discontinuities a raw bilinear blend would show at cell boundaries.
func smooth(f float64) float64 {
	return f * f * (3 - 2*f)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerp4(a, b Vec4, t float64) Vec4 {
	return Vec4{
		X: lerp(a.X, b.X, t),
		Y: lerp(a.Y, b.Y, t),
		Z: lerp(a.Z, b.Z, t),
		W: lerp(a.W, b.W, t),
	}
}
