package trace

import (
	"strings"

	"github.com/abdul-hamid-achik/flicker/packages/geometry"
)

// Layer is a surface compositor layer.
type Layer struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Visible       bool            `json:"visible"`
	VisibleRegion geometry.Region `json:"visibleRegion"`
}

// IsVisible reports whether the layer is shown and has something on screen.
func (l Layer) IsVisible() bool {
	return l.Visible && !l.VisibleRegion.IsEmpty()
}

// LayerState is a layer snapshot.
type LayerState struct {
	Timestamp int64   `json:"timestamp"`
	Layers    []Layer `json:"layers"`
}

// Find returns every layer whose name contains name.
func (s *LayerState) Find(name string) []Layer {
	var found []Layer
	for _, l := range s.Layers {
		if strings.Contains(l.Name, name) {
			found = append(found, l)
		}
	}
	return found
}

// VisibleRegion returns the union of the visible regions of the visible
// layers matching name.
func (s *LayerState) VisibleRegion(name string) geometry.Region {
	var region geometry.Region
	for _, l := range s.Find(name) {
		if l.IsVisible() {
			region = region.Union(l.VisibleRegion)
		}
	}
	return region
}

// VisibleUnion returns the union of every visible layer's region.
func (s *LayerState) VisibleUnion() geometry.Region {
	var region geometry.Region
	for _, l := range s.Layers {
		if l.IsVisible() {
			region = region.Union(l.VisibleRegion)
		}
	}
	return region
}
