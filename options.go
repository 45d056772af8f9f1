package rotozoom

import "image/color"

// DefaultMarker32 is the overlay color for packed 32-bit pixels: white in
// either byte order, alpha byte clear.
const DefaultMarker32 uint32 = 0xFFFFFF

// DefaultMarkerRGBA is opaque white.
var DefaultMarkerRGBA = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Option configures a Sampler or a single Rotate* call.
//
// Example:
//
//	s := rotozoom.NewSampler[uint32](rotozoom.WrapGeneric,
//	    rotozoom.WithDebugMarker(rotozoom.DefaultMarker32),
//	    rotozoom.WithWorkers[uint32](4))
//	defer s.Close()
type Option[P any] func(*options[P])

// options holds the per-sampler configuration.
type options[P any] struct {
	marker  marker[P]
	workers int
}

// marker is the debug overlay written where the sample lands on the
// source center.
type marker[P any] struct {
	enabled bool
	color   P
}

func defaultOptions[P any]() options[P] {
	return options[P]{workers: 1}
}

// WithDebugMarker enables the center overlay: every destination pixel whose
// truncated source coordinate equals the truncated source center is set to
// c instead of being sampled.
func WithDebugMarker[P any](c P) Option[P] {
	return func(o *options[P]) {
		o.marker = marker[P]{enabled: true, color: c}
	}
}

// WithWorkers splits each pass into row bands processed by n goroutines.
// Output is identical to a serial pass. Values below 2 mean serial.
func WithWorkers[P any](n int) Option[P] {
	return func(o *options[P]) {
		o.workers = max(n, 1)
	}
}
