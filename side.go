package sortsearch

import (
	"fmt"
	"strings"
)

// Side selects the tie-break rule for elements equal to the query.
type Side uint8

const (
	// Left inserts before equal elements: the first index i with a[i] >= v.
	Left Side = iota
	// Right inserts after equal elements: the first index i with a[i] > v.
	Right
)

// String returns "left" or "right".
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

// Valid reports whether s is Left or Right.
func (s Side) Valid() bool {
	return s == Left || s == Right
}

// ParseSide parses "left" or "right" (case-insensitive).
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Left, fmt.Errorf("%w: %q", ErrInvalidSide, s)
	}
}
