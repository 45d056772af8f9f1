package rotozoom

import (
	"errors"
	"math/bits"
)

// ErrNotPowerOfTwo is returned when a dimension required to be a power of
// two is not one.
var ErrNotPowerOfTwo = errors.New("rotozoom: dimension is not a power of two")

// Pow2 is a positive power-of-two dimension. The zero value is not valid;
// obtain one from NewPow2.
type Pow2 struct {
	n int
}

// NewPow2 validates n and returns it as a Pow2.
func NewPow2(n int) (Pow2, error) {
	if n <= 0 || bits.OnesCount(uint(n)) != 1 {
		return Pow2{}, ErrNotPowerOfTwo
	}
	return Pow2{n: n}, nil
}

// Int returns the dimension.
func (p Pow2) Int() int {
	return p.n
}

// Mask returns n-1, the wrap mask for the dimension.
func (p Pow2) Mask() int {
	return p.n - 1
}

// Pow2Buffer is a Buffer whose width and height are both powers of two.
// It is the only source type accepted by RotateWrapPow2.
type Pow2Buffer[P any] struct {
	buf    *Buffer[P]
	width  Pow2
	height Pow2
}

// NewPow2Buffer checks both dimensions of b once and wraps it.
func NewPow2Buffer[P any](b *Buffer[P]) (*Pow2Buffer[P], error) {
	w, err := NewPow2(b.width)
	if err != nil {
		return nil, err
	}
	h, err := NewPow2(b.height)
	if err != nil {
		return nil, err
	}
	return &Pow2Buffer[P]{buf: b, width: w, height: h}, nil
}

// Buffer returns the wrapped buffer.
func (p *Pow2Buffer[P]) Buffer() *Buffer[P] {
	return p.buf
}

// Width returns the validated width.
func (p *Pow2Buffer[P]) Width() Pow2 {
	return p.width
}

// Height returns the validated height.
func (p *Pow2Buffer[P]) Height() Pow2 {
	return p.height
}
