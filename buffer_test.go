package rotozoom

import (
	"errors"
	"image"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		stride        int
		wantErr       error
	}{
		{"valid", 4, 3, 4, nil},
		{"padded", 4, 3, 8, nil},
		{"empty", 0, 0, 0, nil},
		{"zero height", 5, 0, 5, nil},
		{"negative width", -1, 3, 4, ErrInvalidDimensions},
		{"negative height", 4, -3, 4, ErrInvalidDimensions},
		{"short stride", 4, 3, 3, ErrInvalidStride},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBufferWithStride[uint32](tt.width, tt.height, tt.stride)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewBufferWithStride() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if b.Width() != tt.width || b.Height() != tt.height || b.Stride() != tt.stride {
				t.Errorf("got %dx%d stride %d, want %dx%d stride %d",
					b.Width(), b.Height(), b.Stride(), tt.width, tt.height, tt.stride)
			}
			if b.Empty() != (tt.width == 0 || tt.height == 0) {
				t.Errorf("Empty() = %v", b.Empty())
			}
			if got, want := b.Bounds(), image.Rect(0, 0, tt.width, tt.height); got != want {
				t.Errorf("Bounds() = %v, want %v", got, want)
			}
		})
	}
}

func TestFromSlice(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		w, h, s int
		wantErr error
	}{
		{"exact", 12, 4, 3, 4, nil},
		{"last row unpadded", 2*6 + 4, 4, 3, 6, nil},
		{"one short", 2*6 + 3, 4, 3, 6, ErrDataTooSmall},
		{"empty", 0, 0, 0, 0, nil},
		{"stride", 12, 4, 3, 2, ErrInvalidStride},
		{"dimensions", 12, -4, 3, 4, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pix := make([]uint8, tt.n)
			b, err := FromSlice(pix, tt.w, tt.h, tt.s)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FromSlice() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if tt.n > 0 {
				b.Set(0, 0, 42)
				if pix[0] != 42 {
					t.Error("FromSlice copied the data, want shared storage")
				}
			}
		})
	}
}

func TestBuffer_AtSet(t *testing.T) {
	b, _ := NewBufferWithStride[int](3, 2, 5)

	b.Set(2, 1, 7)
	if got := b.At(2, 1); got != 7 {
		t.Errorf("At(2, 1) = %d, want 7", got)
	}
	if got := b.PixOffset(2, 1); got != 7 {
		t.Errorf("PixOffset(2, 1) = %d, want 7", got)
	}

	for _, p := range []image.Point{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		b.Set(p.X, p.Y, 99)
		if got := b.At(p.X, p.Y); got != 0 {
			t.Errorf("At(%v) = %d, want 0", p, got)
		}
		if got := b.PixOffset(p.X, p.Y); got != -1 {
			t.Errorf("PixOffset(%v) = %d, want -1", p, got)
		}
	}
	for i, v := range b.Pix() {
		if v == 99 {
			t.Errorf("out-of-range Set wrote index %d", i)
		}
	}
}

func TestBuffer_Row(t *testing.T) {
	b, _ := NewBufferWithStride[int](3, 2, 5)
	b.Fill(1)

	row := b.Row(1)
	if len(row) != 3 {
		t.Fatalf("len(Row(1)) = %d, want 3", len(row))
	}
	row[0] = 5
	if b.At(0, 1) != 5 {
		t.Error("Row does not alias the buffer")
	}
	if b.Row(2) != nil || b.Row(-1) != nil {
		t.Error("out-of-range Row should be nil")
	}
}

func TestBuffer_FillKeepsPadding(t *testing.T) {
	b, _ := NewBufferWithStride[int](2, 2, 4)
	b.Fill(3)

	want := []int{3, 3, 0, 0, 3, 3, 0, 0}
	for i, v := range b.Pix() {
		if v != want[i] {
			t.Fatalf("Pix() = %v, want %v", b.Pix(), want)
		}
	}
}

func TestBuffer_Clone(t *testing.T) {
	b, _ := NewBuffer[int](2, 2)
	b.Set(1, 1, 4)

	c := b.Clone()
	c.Set(1, 1, 8)
	if b.At(1, 1) != 4 {
		t.Error("Clone shares storage with the original")
	}
	if c.Stride() != b.Stride() || c.Width() != 2 || c.Height() != 2 {
		t.Error("Clone changed the geometry")
	}
}

func TestBuffer_Sub(t *testing.T) {
	b, _ := NewBuffer[int](5, 4)
	for y := range 4 {
		for x := range 5 {
			b.Set(x, y, x+10*y)
		}
	}

	s := b.Sub(1, 2, 3, 2)
	if s == nil {
		t.Fatal("Sub returned nil")
	}
	if s.Width() != 3 || s.Height() != 2 || s.Stride() != 5 {
		t.Fatalf("Sub geometry %dx%d stride %d", s.Width(), s.Height(), s.Stride())
	}
	if got := s.At(0, 0); got != 21 {
		t.Errorf("s.At(0, 0) = %d, want 21", got)
	}
	if got := s.At(2, 1); got != 33 {
		t.Errorf("s.At(2, 1) = %d, want 33", got)
	}

	s.Set(2, 1, -1)
	if b.At(3, 3) != -1 {
		t.Error("write through Sub not visible in parent")
	}

	for _, r := range [][4]int{{-1, 0, 1, 1}, {4, 0, 2, 1}, {0, 3, 1, 2}, {0, 0, -1, 1}} {
		if b.Sub(r[0], r[1], r[2], r[3]) != nil {
			t.Errorf("Sub%v should be nil", r)
		}
	}

	e := b.Sub(5, 4, 0, 0)
	if e == nil || !e.Empty() {
		t.Error("zero-sized Sub at the corner should be an empty view")
	}
}
