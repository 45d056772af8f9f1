package rotozoom

import (
	"errors"
	"image"
)

// Common errors for buffer construction.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("rotozoom: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than width.
	ErrInvalidStride = errors.New("rotozoom: stride too small for width")

	// ErrDataTooSmall is returned when a pixel slice cannot hold the
	// addressed extent.
	ErrDataTooSmall = errors.New("rotozoom: pixel slice too small")
)

// Buffer is a rectangular grid of pixels of type P stored row-major in a
// single slice. Stride is measured in pixels, not bytes.
//
// P is treated as an opaque value: the sampler only reads and copies it.
// A zero-sized Buffer is valid and has no addressable pixels.
//
// Thread safety: concurrent reads are safe. Writes require external
// synchronization.
type Buffer[P any] struct {
	pix    []P
	width  int
	height int
	stride int
}

// NewBuffer allocates a buffer of the given size with stride equal to width.
func NewBuffer[P any](width, height int) (*Buffer[P], error) {
	return NewBufferWithStride[P](width, height, width)
}

// NewBufferWithStride allocates a buffer whose rows are stride pixels apart.
// Stride must be at least width.
func NewBufferWithStride[P any](width, height, stride int) (*Buffer[P], error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width {
		return nil, ErrInvalidStride
	}
	return &Buffer[P]{
		pix:    make([]P, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// FromSlice wraps existing pixels without copying.
// The slice must hold at least (height-1)*stride + width elements.
func FromSlice[P any](pix []P, width, height, stride int) (*Buffer[P], error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width {
		return nil, ErrInvalidStride
	}
	n := extent(width, height, stride)
	if len(pix) < n {
		return nil, ErrDataTooSmall
	}
	return &Buffer[P]{
		pix:    pix[:n],
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// extent is the number of slice elements spanned by a width x height region.
func extent(width, height, stride int) int {
	if width == 0 || height == 0 {
		return 0
	}
	return (height-1)*stride + width
}

// Width returns the buffer width in pixels.
func (b *Buffer[P]) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer[P]) Height() int {
	return b.height
}

// Stride returns the distance between rows in pixels.
func (b *Buffer[P]) Stride() int {
	return b.stride
}

// Bounds returns the buffer rectangle anchored at the origin.
func (b *Buffer[P]) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Empty reports whether the buffer has no pixels.
func (b *Buffer[P]) Empty() bool {
	return b.width == 0 || b.height == 0
}

// Pix returns the underlying pixel slice, including stride padding.
func (b *Buffer[P]) Pix() []P {
	return b.pix
}

// Row returns the width pixels of row y, or nil if y is out of range.
func (b *Buffer[P]) Row(y int) []P {
	if y < 0 || y >= b.height || b.width == 0 {
		return nil
	}
	start := y * b.stride
	return b.pix[start : start+b.width]
}

// PixOffset returns the slice index of pixel (x, y), or -1 when the
// coordinates are outside the buffer.
func (b *Buffer[P]) PixOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x
}

// At returns the pixel at (x, y). Out-of-range coordinates yield the zero P.
func (b *Buffer[P]) At(x, y int) P {
	i := b.PixOffset(x, y)
	if i < 0 {
		var zero P
		return zero
	}
	return b.pix[i]
}

// Set writes the pixel at (x, y). Out-of-range coordinates are ignored.
func (b *Buffer[P]) Set(x, y int, p P) {
	if i := b.PixOffset(x, y); i >= 0 {
		b.pix[i] = p
	}
}

// Fill sets every addressable pixel to p. Stride padding is left untouched.
func (b *Buffer[P]) Fill(p P) {
	for y := range b.height {
		row := b.Row(y)
		for x := range row {
			row[x] = p
		}
	}
}

// Clone returns a deep copy with the same stride.
func (b *Buffer[P]) Clone() *Buffer[P] {
	pix := make([]P, len(b.pix))
	copy(pix, b.pix)
	return &Buffer[P]{
		pix:    pix,
		width:  b.width,
		height: b.height,
		stride: b.stride,
	}
}

// Sub returns a view of the w x h region at (x, y) sharing storage with b.
// Writes through the view are visible in b. Returns nil if the region is
// not contained in b. A zero-sized region yields an empty view.
func (b *Buffer[P]) Sub(x, y, w, h int) *Buffer[P] {
	if x < 0 || y < 0 || w < 0 || h < 0 {
		return nil
	}
	if x+w > b.width || y+h > b.height {
		return nil
	}
	if w == 0 || h == 0 {
		return &Buffer[P]{width: w, height: h, stride: b.stride}
	}
	start := y*b.stride + x
	return &Buffer[P]{
		pix:    b.pix[start : start+extent(w, h, b.stride)],
		width:  w,
		height: h,
		stride: b.stride,
	}
}
