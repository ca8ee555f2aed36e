package geometry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Rotation is a display rotation, matching the Surface.ROTATION_* values.
type Rotation int

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// ErrInvalidRotation is returned when a rotation cannot be parsed.
var ErrInvalidRotation = errors.New("invalid rotation")

// IsRotated reports whether width and height are swapped at this rotation.
func (r Rotation) IsRotated() bool {
	n := r.normalized()
	return n == Rotation90 || n == Rotation270
}

// Degrees returns the rotation in degrees.
func (r Rotation) Degrees() int {
	return int(r.normalized()) * 90
}

func (r Rotation) String() string {
	return fmt.Sprintf("ROTATION_%d", r.Degrees())
}

func (r Rotation) normalized() Rotation {
	n := r % 4
	if n < 0 {
		n += 4
	}
	return n
}

// ParseRotation parses "0".."3", "90", "180", "270" or "ROTATION_90" style names.
func ParseRotation(s string) (Rotation, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "ROTATION_")

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRotation, s)
	}

	switch n {
	case 0, 1, 2, 3:
		return Rotation(n), nil
	case 90:
		return Rotation90, nil
	case 180:
		return Rotation180, nil
	case 270:
		return Rotation270, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRotation, s)
}

func (r *Rotation) UnmarshalText(text []byte) error {
	parsed, err := ParseRotation(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Rotation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
