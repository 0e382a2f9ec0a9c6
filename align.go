package geom

import (
	"errors"
	"fmt"
)

// Alignment names an anchor point on the 3x3 grid of a rectangle: its
// center, the midpoints of its four edges, or its four corners.
type Alignment uint8

const (
	AlignCenter Alignment = iota
	AlignTop
	AlignTopLeft
	AlignTopRight
	AlignLeft
	AlignBottom
	AlignBottomLeft
	AlignBottomRight
	AlignRight
)

// ErrInvalidAlignment is returned when an Alignment value outside the
// defined constants is passed to Align.
var ErrInvalidAlignment = errors.New("invalid alignment")

// String returns a human-readable name for the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignTop:
		return "top"
	case AlignTopLeft:
		return "top-left"
	case AlignTopRight:
		return "top-right"
	case AlignLeft:
		return "left"
	case AlignBottom:
		return "bottom"
	case AlignBottomLeft:
		return "bottom-left"
	case AlignBottomRight:
		return "bottom-right"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("alignment(%d)", uint8(a))
	}
}

// Align returns a copy of r repositioned so that its anchor point for the
// given alignment coincides with the same anchor point of aligner. The size
// of r is unchanged; only the origin moves.
func (r Rect) Align(aligner Rect, alignment Alignment) (Rect, error) {
	anchor, err := anchorQuery(alignment)
	if err != nil {
		return Rect{}, err
	}
	// The anchor's offset from r's own origin is the same query applied to
	// a zero-origin rect of r's size.
	offset := anchor(RectOfSize(r.Size))
	return Rect{Origin: anchor(aligner).Sub(offset), Size: r.Size}, nil
}

// anchorQuery maps an alignment to the rect query producing its anchor point.
func anchorQuery(alignment Alignment) (func(Rect) Point, error) {
	switch alignment {
	case AlignCenter:
		return Rect.Center, nil
	case AlignTop:
		return Rect.MidTop, nil
	case AlignTopLeft:
		return Rect.TopLeft, nil
	case AlignTopRight:
		return Rect.TopRight, nil
	case AlignLeft:
		return Rect.MidLeft, nil
	case AlignBottom:
		return Rect.MidBottom, nil
	case AlignBottomLeft:
		return Rect.BottomLeft, nil
	case AlignBottomRight:
		return Rect.BottomRight, nil
	case AlignRight:
		return Rect.MidRight, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlignment, alignment)
	}
}
