package synth

import "math"

// Xorshift is a xorshift64* generator
type Xorshift struct {
	state uint64
}

// NewXorshift seeds a generator. A zero seed gets stuck at zero.
func NewXorshift(seed uint64) *Xorshift {
	return &Xorshift{state: seed}
}

// Next advances the state and returns the scrambled output
func (x *Xorshift) Next() uint64 {
	x.state ^= x.state >> 12
	x.state ^= x.state << 25
	x.state ^= x.state << 27
	return x.state * 0x2545F4914F6CDD1D
}

// Float returns the next value in [-1, 1). The low 23 bits of the output
// become the mantissa of a float32 in [1, 2) which is then stretched.
func (x *Xorshift) Float() float64 {
	f := math.Float32frombits(0x3F800000 | uint32(x.Next()&0x7FFFFF))
	return float64(f)*2 - 3
}
