package geometry

import (
	"fmt"
	"sort"
)

// Rect is an axis-aligned rectangle. Right and Bottom are exclusive.
type Rect struct {
	Left   int `json:"left" yaml:"left"`
	Top    int `json:"top" yaml:"top"`
	Right  int `json:"right" yaml:"right"`
	Bottom int `json:"bottom" yaml:"bottom"`
}

// NewRect creates a rect from its edges.
func NewRect(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// IsEmpty reports whether the rect has no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Intersect returns the overlap of two rects, or an empty rect.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Left:   max(r.Left, o.Left),
		Top:    max(r.Top, o.Top),
		Right:  min(r.Right, o.Right),
		Bottom: min(r.Bottom, o.Bottom),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	if o.IsEmpty() {
		return true
	}
	return o.Left >= r.Left && o.Top >= r.Top && o.Right <= r.Right && o.Bottom <= r.Bottom
}

func (r Rect) Equal(o Rect) bool {
	if r.IsEmpty() && o.IsEmpty() {
		return true
	}
	return r == o
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%d, %d - %d, %d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Region is the union of a set of rects.
type Region struct {
	Rects []Rect `json:"rects" yaml:"rects"`
}

// NewRegion creates a region from rects, dropping empty ones.
func NewRegion(rects ...Rect) Region {
	var region Region
	for _, r := range rects {
		if !r.IsEmpty() {
			region.Rects = append(region.Rects, r)
		}
	}
	return region
}

func (g Region) IsEmpty() bool {
	for _, r := range g.Rects {
		if !r.IsEmpty() {
			return false
		}
	}
	return true
}

// Bounds returns the smallest rect containing the whole region.
func (g Region) Bounds() Rect {
	var bounds Rect
	first := true
	for _, r := range g.Rects {
		if r.IsEmpty() {
			continue
		}
		if first {
			bounds = r
			first = false
			continue
		}
		bounds.Left = min(bounds.Left, r.Left)
		bounds.Top = min(bounds.Top, r.Top)
		bounds.Right = max(bounds.Right, r.Right)
		bounds.Bottom = max(bounds.Bottom, r.Bottom)
	}
	return bounds
}

// Union returns a region covering both g and o.
func (g Region) Union(o Region) Region {
	rects := make([]Rect, 0, len(g.Rects)+len(o.Rects))
	rects = append(rects, g.Rects...)
	rects = append(rects, o.Rects...)
	return NewRegion(rects...)
}

// Covers reports whether every point of target lies inside the region.
func (g Region) Covers(target Rect) bool {
	return len(g.Uncovered(target)) == 0
}

// Uncovered returns the parts of target not covered by the region. The
// result is split along the edges of the region's rects.
func (g Region) Uncovered(target Rect) []Rect {
	if target.IsEmpty() {
		return nil
	}

	xs := []int{target.Left, target.Right}
	ys := []int{target.Top, target.Bottom}
	var clipped []Rect
	for _, r := range g.Rects {
		c := r.Intersect(target)
		if c.IsEmpty() {
			continue
		}
		clipped = append(clipped, c)
		xs = append(xs, c.Left, c.Right)
		ys = append(ys, c.Top, c.Bottom)
	}
	xs = sortedUnique(xs)
	ys = sortedUnique(ys)

	var uncovered []Rect
	for j := 0; j+1 < len(ys); j++ {
		for i := 0; i+1 < len(xs); i++ {
			cell := NewRect(xs[i], ys[j], xs[i+1], ys[j+1])
			if !containedByAny(clipped, cell) {
				uncovered = append(uncovered, cell)
			}
		}
	}
	return uncovered
}

// Equal reports whether both regions cover the same set of points.
func (g Region) Equal(o Region) bool {
	for _, r := range g.Rects {
		if !o.Covers(r) {
			return false
		}
	}
	for _, r := range o.Rects {
		if !g.Covers(r) {
			return false
		}
	}
	return true
}

func (g Region) String() string {
	if g.IsEmpty() {
		return "Region(empty)"
	}
	if len(g.Rects) == 1 {
		return fmt.Sprintf("Region(%d, %d - %d, %d)", g.Rects[0].Left, g.Rects[0].Top, g.Rects[0].Right, g.Rects[0].Bottom)
	}
	return fmt.Sprintf("Region(%d rects, bounds %v)", len(g.Rects), g.Bounds())
}

func containedByAny(rects []Rect, cell Rect) bool {
	for _, r := range rects {
		if r.Contains(cell) {
			return true
		}
	}
	return false
}

func sortedUnique(values []int) []int {
	sort.Ints(values)
	out := make([]int, 0, len(values))
	for _, v := range values {
		if len(out) == 0 || out[len(out)-1] != v {
			out = append(out, v)
		}
	}
	return out
}
