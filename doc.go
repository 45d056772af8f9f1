// Package rotozoom rotates and scales one pixel buffer into another by
// inverse mapping.
//
// # Overview
//
// For every destination pixel the sampler computes the source coordinate
// that lands on it and copies the nearest source pixel. Coordinates are
// stepped incrementally, one vector add per column and one per row, so the
// inner loop has no trigonometry and no division.
//
// # Quick Start
//
//	src, _ := rotozoom.NewBuffer[uint32](256, 256)
//	dst, _ := rotozoom.NewBuffer[uint32](320, 240)
//
//	t := rotozoom.Transform{
//	    DstCenter: f32.Vec2{160, 120},
//	    SrcCenter: f32.Vec2{128, 128},
//	    Angle:     math.Pi / 6,
//	    Scale:     2, // show the source at twice its size
//	}
//	rotozoom.RotateWrap(dst, src, t)
//
// # Edge Policies
//
// A source coordinate outside [0, W) x [0, H) is resolved by the policy:
//   - WrapGeneric: tiles the source with modulo arithmetic, any size
//   - WrapPow2: tiles with a bitmask; the source must be a Pow2Buffer
//   - ClipZero: writes the zero pixel; coordinates exactly on 0 are outside
//
// The wrapping policies move negative coordinates down one index before
// wrapping so that column and row 0 are not drawn twice across the seam.
//
// # Pixels
//
// Buffer is generic over the pixel type. Pixels are only read and copied,
// so any fixed-size value works: uint32, color.RGBA, a palette index.
// FromImage and ToImage convert to and from the standard image package.
//
// # Concurrency
//
// Each pass is synchronous. WithWorkers splits a pass into row bands on a
// worker pool; the output is identical to a serial pass.
package rotozoom
