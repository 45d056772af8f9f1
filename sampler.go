package rotozoom

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/rotozoom/internal/parallel"
)

// ErrEmptySource is returned when a wrapping policy is given a source with
// no pixels to tile.
var ErrEmptySource = errors.New("rotozoom: empty source for wrapping policy")

// Sampler fills destination buffers from a source under a Transform using a
// fixed Policy. Every destination pixel is written exactly once per pass,
// in row-major order within each row band.
//
// A Sampler is safe for concurrent use as long as concurrent calls write to
// disjoint destinations. Close must not race with Rotate.
type Sampler[P any] struct {
	policy Policy
	opts   options[P]
	pool   *parallel.Pool
}

// NewSampler returns a Sampler for the given policy. When WithWorkers asks
// for more than one worker, the Sampler owns a worker pool and must be
// closed.
func NewSampler[P any](policy Policy, opts ...Option[P]) *Sampler[P] {
	s := &Sampler[P]{policy: policy, opts: defaultOptions[P]()}
	for _, opt := range opts {
		opt(&s.opts)
	}
	if s.opts.workers > 1 {
		s.pool = parallel.NewPool(s.opts.workers)
	}
	return s
}

// Policy returns the edge policy of the sampler.
func (s *Sampler[P]) Policy() Policy {
	return s.policy
}

// Workers returns the number of row bands used per pass.
func (s *Sampler[P]) Workers() int {
	return s.opts.workers
}

// Close releases the worker pool, if any. The Sampler keeps working
// serially afterwards. Close is safe to call multiple times.
func (s *Sampler[P]) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Rotate fills dst from src under t.
//
// An empty dst is a no-op and returns nil without inspecting anything else.
// Errors are reported before any pixel is written: an invalid transform,
// an empty source for the wrapping policies, or a non power-of-two source
// for WrapPow2 (wrapping ErrNotPowerOfTwo).
func (s *Sampler[P]) Rotate(dst, src *Buffer[P], t Transform) error {
	if dst.Empty() {
		return nil
	}
	if err := t.Validate(); err != nil {
		return err
	}

	switch s.policy {
	case WrapGeneric:
		if src.Empty() {
			return ErrEmptySource
		}
		pass(dst, src, t, wrapResolver{w: src.width, h: src.height}, s.policy, &s.opts, s.pool)
	case WrapPow2:
		ps, err := NewPow2Buffer(src)
		if err != nil {
			Logger().Warn("rotozoom: source rejected for pow2 policy",
				"width", src.width, "height", src.height)
			return fmt.Errorf("rotozoom: %dx%d source: %w", src.width, src.height, err)
		}
		pass(dst, src, t, maskResolver{wmask: ps.width.Mask(), hmask: ps.height.Mask()}, s.policy, &s.opts, s.pool)
	case ClipZero:
		pass(dst, src, t, clipResolver{w: float32(src.width), h: float32(src.height)}, s.policy, &s.opts, s.pool)
	default:
		return fmt.Errorf("rotozoom: unknown policy %v", s.policy)
	}
	return nil
}

// RotateWrap fills dst from src, tiling the source in both directions.
// src may have any non-zero size.
//
// An empty dst is a no-op. An empty src or an invalid transform is a
// caller error and panics before any pixel is written.
func RotateWrap[P any](dst, src *Buffer[P], t Transform, opts ...Option[P]) {
	if dst.Empty() {
		return
	}
	mustValidate(t)
	if src.Empty() {
		panic(ErrEmptySource)
	}
	once(dst, src, t, wrapResolver{w: src.width, h: src.height}, WrapGeneric, opts)
}

// RotateWrapPow2 is RotateWrap for power-of-two sources. Wrapping is done
// with a bitmask instead of a division.
func RotateWrapPow2[P any](dst *Buffer[P], src *Pow2Buffer[P], t Transform, opts ...Option[P]) {
	if dst.Empty() {
		return
	}
	mustValidate(t)
	res := maskResolver{wmask: src.width.Mask(), hmask: src.height.Mask()}
	once(dst, src.buf, t, res, WrapPow2, opts)
}

// RotateClip fills dst from src without wrapping. Destination pixels whose
// source coordinate is not strictly inside (0, W) x (0, H) get the zero P.
func RotateClip[P any](dst, src *Buffer[P], t Transform, opts ...Option[P]) {
	if dst.Empty() {
		return
	}
	mustValidate(t)
	once(dst, src, t, clipResolver{w: float32(src.width), h: float32(src.height)}, ClipZero, opts)
}

func mustValidate(t Transform) {
	if err := t.Validate(); err != nil {
		panic(err)
	}
}

// once runs a single pass with a throwaway configuration.
func once[P any, R resolver](dst, src *Buffer[P], t Transform, res R, policy Policy, opts []Option[P]) {
	o := defaultOptions[P]()
	for _, opt := range opts {
		opt(&o)
	}
	var pool *parallel.Pool
	if o.workers > 1 {
		pool = parallel.NewPool(o.workers)
		defer pool.Close()
	}
	pass(dst, src, t, res, policy, &o, pool)
}

// centerMark is the resolved debug overlay for one pass.
type centerMark[P any] struct {
	enabled bool
	cx, cy  int
	color   P
}

// pass writes every pixel of dst. dst must not be empty.
func pass[P any, R resolver](dst, src *Buffer[P], t Transform, res R, policy Policy, o *options[P], pool *parallel.Pool) {
	m := t.Mapping()
	mk := centerMark[P]{
		enabled: o.marker.enabled,
		cx:      int(t.SrcCenter[0]),
		cy:      int(t.SrcCenter[1]),
		color:   o.marker.color,
	}

	h := dst.height
	bands := 1
	if pool != nil && pool.IsRunning() {
		bands = min(o.workers, h)
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("rotozoom: pass",
			"policy", policy,
			"dst", dst.Bounds().Size(),
			"src", src.Bounds().Size(),
			"angle", t.Angle,
			"scale", t.Scale,
			"bands", bands,
			"marker", mk.enabled)
	}

	if bands <= 1 {
		rowu, rowv := m.Origin[0], m.Origin[1]
		for y := range h {
			sampleRow(dst.Row(y), src, m.DX, res, &mk, rowu, rowv)
			rowu += m.DY[0]
			rowv += m.DY[1]
		}
		return
	}

	// Row starts come from the same serial stepping, so banded output is
	// bit-identical to the serial loop above.
	starts := m.rowStarts(h)
	pool.Rows(h, bands, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			sampleRow(dst.Row(y), src, m.DX, res, &mk, starts[y][0], starts[y][1])
		}
	})
}

// sampleRow fills one destination row starting at source coordinate (u, v).
func sampleRow[P any, R resolver](row []P, src *Buffer[P], dx f32.Vec2, res R, mk *centerMark[P], u, v float32) {
	var zero P
	for x := range row {
		if mk.enabled && int(u) == mk.cx && int(v) == mk.cy {
			row[x] = mk.color
		} else if sx, sy, ok := res.resolve(u, v); ok {
			row[x] = src.pix[sy*src.stride+sx]
		} else {
			row[x] = zero
		}
		u += dx[0]
		v += dx[1]
	}
}
