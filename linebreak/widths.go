package linebreak

import "math"

// LineWidths supplies the width available to each line of the
// paragraph, indexed by line number. Widths may vary per line (text
// flowing around figures, first-line indents).
type LineWidths interface {
	LineWidth(line int) float64
}

type constantWidths float64

func (w constantWidths) LineWidth(int) float64 { return float64(w) }

// ConstantLineWidths gives every line the same width.
func ConstantLineWidths(width float64) LineWidths {
	return constantWidths(width)
}

type rectangleWidths struct {
	first      float64
	rest       float64
	firstCount int
}

func (r rectangleWidths) LineWidth(line int) float64 {
	if line < r.firstCount {
		return r.first
	}
	return r.rest
}

// RectangleLineWidths gives the first firstCount lines one width and
// all following lines another, the common shape for indents.
func RectangleLineWidths(first, rest float64, firstCount int) LineWidths {
	return rectangleWidths{first: first, rest: rest, firstCount: firstCount}
}

// TabStops resolves tab advances: NextTab returns the x position of the
// next stop at or beyond x, relative to the start of the line.
type TabStops interface {
	NextTab(x float64) float64
}

// DefaultTabStops holds a list of explicit stops followed by a regular
// grid.
type DefaultTabStops struct {
	stops     []float64
	increment float64
}

// NewTabStops creates tab stops from explicit positions plus a repeat
// increment used beyond the last explicit stop.
func NewTabStops(stops []float64, increment float64) *DefaultTabStops {
	return &DefaultTabStops{stops: stops, increment: increment}
}

// NextTab returns the next stop strictly beyond x.
//
// Interface TabStops
func (t *DefaultTabStops) NextTab(x float64) float64 {
	for _, stop := range t.stops {
		if stop > x {
			return stop
		}
	}
	if t.increment <= 0 {
		return x
	}
	return math.Floor(x/t.increment+1) * t.increment
}
