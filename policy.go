package rotozoom

import (
	"fmt"
	"strings"
)

// Policy selects how a source coordinate outside [0, W) x [0, H) is resolved.
type Policy uint8

const (
	// WrapGeneric tiles the source using modulo arithmetic.
	// Works for any source size.
	WrapGeneric Policy = iota

	// WrapPow2 tiles the source using a bitmask.
	// Source width and height must be powers of two.
	WrapPow2

	// ClipZero writes the zero pixel wherever the coordinate falls outside
	// the source. Coordinates exactly on 0 count as outside.
	ClipZero
)

// String returns the short name of the policy.
func (p Policy) String() string {
	switch p {
	case WrapGeneric:
		return "wrap"
	case WrapPow2:
		return "pow2"
	case ClipZero:
		return "clip"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// ParsePolicy converts a policy name back into a Policy. It accepts the names
// produced by String and the aliases "generic" (WrapGeneric), "fast"
// (WrapPow2) and "zero" (ClipZero). Case and surrounding space are ignored.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap", "generic":
		return WrapGeneric, nil
	case "pow2", "fast":
		return WrapPow2, nil
	case "clip", "zero":
		return ClipZero, nil
	default:
		return 0, fmt.Errorf("rotozoom: unknown policy %q", s)
	}
}
