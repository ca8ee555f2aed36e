// Package flicker provides common assertions for window manager flicker tests.
//
// Each helper registers one or more named checks on an assertion builder:
//
//	wm := assertions.NewWindowBuilder()
//	flicker.StatusBarWindowIsAlwaysVisible(wm)
//
//	layers := assertions.NewLayerBuilder()
//	flicker.NoUncoveredRegions(layers, display, geometry.Rotation0, geometry.Rotation90, true)
//	flicker.NavBarLayerRotatesAndScales(layers, display, geometry.Rotation0, geometry.Rotation90,
//		flicker.BugID(140855415))
//
// A helper given a bug id registers its checks disabled unless Enabled is
// also passed.
package flicker
