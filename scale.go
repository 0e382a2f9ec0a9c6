package geom

import (
	"errors"
	"fmt"
	"math"
)

// Scaling selects how ScaleToSize resizes a rect toward a target size.
type Scaling uint8

const (
	ScaleProportionally Scaling = iota // Fit inside the target preserving aspect ratio
	ScaleToFit                         // Force to the exact target size, distorting if necessary
	ScaleNone                          // Keep the source size; caller clips
)

// ErrInvalidScaling is returned when a Scaling value outside the defined
// constants is passed to ScaleToSize.
var ErrInvalidScaling = errors.New("invalid scaling mode")

// String returns a human-readable name for the scaling mode.
func (s Scaling) String() string {
	switch s {
	case ScaleProportionally:
		return "proportional"
	case ScaleToFit:
		return "to-fit"
	case ScaleNone:
		return "none"
	default:
		return fmt.Sprintf("scaling(%d)", uint8(s))
	}
}

// ScaleToSize returns a rect at r's origin resized toward size under the
// given scaling mode. ScaleNone keeps the source size, ScaleToFit takes the
// target size exactly, and ScaleProportionally shrinks or grows both axes by
// the same factor so the result fits inside the target on both axes.
func (r Rect) ScaleToSize(size Size, scaling Scaling) (Rect, error) {
	switch scaling {
	case ScaleNone:
		return r, nil
	case ScaleToFit:
		return Rect{Origin: r.Origin, Size: size}, nil
	case ScaleProportionally:
		return r.scaleProportionally(size), nil
	default:
		return Rect{}, fmt.Errorf("%w: %v", ErrInvalidScaling, scaling)
	}
}

// scaleProportionally picks the smaller of the width and height ratios so
// the scaled rect never exceeds the target on either axis. A zero source
// dimension places no constraint on the scale; if both dimensions are zero
// the result is a zero-size rect at the original origin.
func (r Rect) scaleProportionally(target Size) Rect {
	scale := math.Inf(1)
	if r.Size.Width != 0 {
		scale = math.Min(scale, target.Width/r.Size.Width)
	}
	if r.Size.Height != 0 {
		scale = math.Min(scale, target.Height/r.Size.Height)
	}
	if math.IsInf(scale, 1) {
		return Rect{Origin: r.Origin}
	}
	return Rect{
		Origin: r.Origin,
		Size:   Size{Width: r.Size.Width * scale, Height: r.Size.Height * scale},
	}
}
