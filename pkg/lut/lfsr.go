package lut

// LFSR is a 32-bit Galois linear-feedback shift register with taps at
// bits 32, 30, 26, and 25 (a maximal-length polynomial, period 2³²−1).
// It is the unbiased bit source the table contract asks for; filling
// the table from a low-quality generator shows up as visible grid
// artifacts in the sampled noise.
type LFSR struct {
	state uint32
}

// NewLFSR seeds the register. A zero seed would lock the register at
// zero forever, so it is remapped to a fixed nonzero constant.
func NewLFSR(seed uint32) *LFSR {
	if seed == 0 {
		seed = 0xACE1
	}
	return &LFSR{state: seed}
}

// Bit advances the register one step and returns the output bit.
func (l *LFSR) Bit() uint32 {
	out := l.state & 1
	l.state >>= 1
	if out != 0 {
		l.state ^= 0xA3000000 // taps 32,30,26,25
	}
	return out
}

// Byte returns the next 8 output bits, most significant first.
func (l *LFSR) Byte() uint8 {
	var b uint8
	for i := 0; i < 8; i++ {
		b = b<<1 | uint8(l.Bit())
	}
	return b
}
