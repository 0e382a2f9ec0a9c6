package geom

// Size is a width and height. Dimensions are not validated: negative
// values are carried through and produce degenerate rects downstream.
type Size struct {
	Width, Height float64
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}
