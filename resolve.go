package rotozoom

// resolver turns a source coordinate into pixel indices. ok is false when
// the destination pixel should receive the zero value instead.
//
// Each policy is its own struct type, passed to pass and sampleRow as a
// type parameter rather than an interface value.
type resolver interface {
	resolve(u, v float32) (sx, sy int, ok bool)
}

// wrapResolver tiles with modulo arithmetic.
type wrapResolver struct {
	w, h int
}

func (r wrapResolver) resolve(u, v float32) (int, int, bool) {
	return wrapIndex(u, r.w), wrapIndex(v, r.h), true
}

// wrapIndex truncates c and wraps it into [0, n).
//
// Truncation maps (-1, 1) onto 0, so a negative coordinate is moved down one
// index first. Otherwise column 0 would be drawn twice where the coordinate
// crosses zero and the tiling shows a seam.
//
// Coordinates past the int range and NaN convert to an implementation-defined
// value, which can be negative; the result is still kept inside [0, n).
func wrapIndex(c float32, n int) int {
	i := int(c)
	if c < 0 {
		i--
		i = n - (-i % n)
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// maskResolver tiles with a bitmask. No division is performed.
type maskResolver struct {
	wmask, hmask int
}

func (r maskResolver) resolve(u, v float32) (int, int, bool) {
	sx, sy := int(u), int(v)
	if u < 0 {
		sx--
	}
	if v < 0 {
		sy--
	}
	return sx & r.wmask, sy & r.hmask, true
}

// clipResolver rejects coordinates outside (0, w) x (0, h).
type clipResolver struct {
	w, h float32
}

func (r clipResolver) resolve(u, v float32) (int, int, bool) {
	if u > 0 && v > 0 && u < r.w && v < r.h {
		return int(u), int(v), true
	}
	return 0, 0, false
}
