package assertions

import (
	"fmt"

	"github.com/abdul-hamid-achik/flicker/packages/geometry"
	"github.com/abdul-hamid-achik/flicker/packages/trace"
)

// LayerBuilder registers checks over layer states.
type LayerBuilder = Builder[*trace.LayerState]

// NewLayerBuilder creates a builder for layer states.
func NewLayerBuilder() *LayerBuilder {
	return NewBuilder[*trace.LayerState]("layers")
}

// ShowsLayer requires a visible layer whose name contains name.
func ShowsLayer(name string) StateAssertion[*trace.LayerState] {
	return func(s *trace.LayerState) error {
		layers := s.Find(name)
		if len(layers) == 0 {
			return fmt.Errorf("layer %q not found (t=%d)", name, s.Timestamp)
		}
		for _, l := range layers {
			if l.IsVisible() {
				return nil
			}
		}
		return fmt.Errorf("layer %q is not visible (t=%d)", name, s.Timestamp)
	}
}

// HasNotLayer requires that no layer name contains name.
func HasNotLayer(name string) StateAssertion[*trace.LayerState] {
	return func(s *trace.LayerState) error {
		if layers := s.Find(name); len(layers) > 0 {
			return fmt.Errorf("layer %q is present (t=%d, id %d)", name, s.Timestamp, layers[0].ID)
		}
		return nil
	}
}

// HasVisibleRegion requires the visible region of the layers matching name
// to be exactly expected.
func HasVisibleRegion(name string, expected geometry.Region) StateAssertion[*trace.LayerState] {
	return func(s *trace.LayerState) error {
		actual := s.VisibleRegion(name)
		if actual.Equal(expected) {
			return nil
		}
		return fmt.Errorf("layer %q visible region is %v, expected %v (t=%d)", name, actual, expected, s.Timestamp)
	}
}

// CoversAtLeastRegion requires the visible layers together to cover rect.
func CoversAtLeastRegion(rect geometry.Rect) StateAssertion[*trace.LayerState] {
	return func(s *trace.LayerState) error {
		uncovered := s.VisibleUnion().Uncovered(rect)
		if len(uncovered) == 0 {
			return nil
		}
		return fmt.Errorf("region %v is not covered (t=%d, uncovered: %v)", rect, s.Timestamp, uncovered)
	}
}
