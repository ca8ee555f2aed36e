// Package scenario parses flicker scenario files.
//
// A scenario is a YAML file naming the common assertions to register for a
// captured transition:
//
//	name: rotate-app
//	trace: rotate-app.trace.yaml
//	setup:
//	  - ./pull_trace.sh rotate-app.trace.yaml
//	beginRotation: 0
//	endRotation: 90
//	assertions:
//	  - helper: statusBarWindowIsAlwaysVisible
//	  - helper: noUncoveredRegions
//	    allStates: false
//	  - helper: navBarLayerRotatesAndScales
//	    bugId: 140855415
//	  - helper: focusChanges
//	    windows: [Launcher, Settings]
//
// Rotations default to the scenario level values; endRotation defaults to
// beginRotation and allStates defaults to true.
package scenario
