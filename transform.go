package rotozoom

import (
	"errors"
	"math"

	"golang.org/x/image/math/f32"
)

var (
	// ErrZeroScale is returned when the scale factor cannot be used as a
	// divisor.
	ErrZeroScale = errors.New("rotozoom: scale must be finite and non-zero")

	// ErrInvalidTransform is returned when a center or the angle is not finite.
	ErrInvalidTransform = errors.New("rotozoom: non-finite transform parameter")
)

// Transform describes a rotation and scale that maps the destination center
// onto the source center.
//
// Angle is in radians; positive angles rotate the source counter-clockwise
// on screen (y down). Scale is the magnification: one source pixel covers
// Scale destination pixels, so a scale of 2 shows the source at twice its
// size. Each destination step advances 1/Scale in source space.
type Transform struct {
	DstCenter f32.Vec2
	SrcCenter f32.Vec2
	Angle     float32
	Scale     float32
}

// Validate reports whether t can be used for sampling.
func (t Transform) Validate() error {
	s := float64(t.Scale)
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return ErrZeroScale
	}
	for _, v := range [...]float32{t.DstCenter[0], t.DstCenter[1], t.SrcCenter[0], t.SrcCenter[1], t.Angle} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return ErrInvalidTransform
		}
	}
	return nil
}

// Mapping is the inverse affine map from destination pixel indices to
// source coordinates, in the form consumed by the sampling loop.
type Mapping struct {
	// Origin is the source coordinate of destination pixel (0, 0).
	Origin f32.Vec2

	// DX is added to the source coordinate per destination column.
	DX f32.Vec2

	// DY is added to the source coordinate per destination row.
	DY f32.Vec2
}

// Mapping derives the stepping vectors for t. All arithmetic is float32 so
// the result matches the sampler bit for bit.
func (t Transform) Mapping() Mapping {
	inv := 1 / t.Scale
	duCol := float32(math.Sin(float64(-t.Angle))) * inv
	dvCol := float32(math.Cos(float64(-t.Angle))) * inv
	duRow := dvCol
	dvRow := -duCol

	dcx, dcy := t.DstCenter[0], t.DstCenter[1]
	return Mapping{
		Origin: f32.Vec2{
			t.SrcCenter[0] - (dcx*dvCol + dcy*duCol),
			t.SrcCenter[1] - (dcx*dvRow + dcy*duRow),
		},
		DX: f32.Vec2{duRow, dvRow},
		DY: f32.Vec2{duCol, dvCol},
	}
}

// At returns the closed-form source coordinate of destination pixel (x, y).
// The sampler steps incrementally instead, so for large images the two can
// differ in the last bits.
func (m Mapping) At(x, y int) f32.Vec2 {
	fx, fy := float32(x), float32(y)
	return f32.Vec2{
		m.Origin[0] + fx*m.DX[0] + fy*m.DY[0],
		m.Origin[1] + fx*m.DX[1] + fy*m.DY[1],
	}
}

// rowStarts returns the stepped starting coordinate of each of n rows.
func (m Mapping) rowStarts(n int) []f32.Vec2 {
	starts := make([]f32.Vec2, n)
	rowu, rowv := m.Origin[0], m.Origin[1]
	for y := range starts {
		starts[y] = f32.Vec2{rowu, rowv}
		rowu += m.DY[0]
		rowv += m.DY[1]
	}
	return starts
}
