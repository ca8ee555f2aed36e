// Package geometry provides display geometry for flicker assertions.
//
// It provides:
//   - Rect and Region types used by layer visible regions
//   - Screen rotations (Rotation0 through Rotation270)
//   - Display metrics: display bounds, navigation bar and status bar
//     positions for a given rotation
package geometry
