package flicker

// Names of the checks the helpers register.
const (
	CheckStatusBarWindowIsAlwaysVisible   = "statusBarWindowIsAlwaysVisible"
	CheckNavBarWindowIsAlwaysVisible      = "navBarWindowIsAlwaysVisible"
	CheckNoUncoveredRegions               = "noUncoveredRegions"
	CheckNoUncoveredRegionsStartingPos    = "noUncoveredRegions_StartingPos"
	CheckNoUncoveredRegionsEndingPos      = "noUncoveredRegions_EndingPos"
	CheckStatusBarLayerIsAlwaysVisible    = "statusBarLayerIsAlwaysVisible"
	CheckNavBarLayerIsAlwaysVisible       = "navBarLayerIsAlwaysVisible"
	CheckAppPairsDividerIsVisible         = "appPairsDividerIsVisible"
	CheckAppPairsDividerIsInvisible       = "appPairsDividerIsInvisible"
	CheckDockedStackDividerIsVisible      = "dockedStackDividerIsVisible"
	CheckDockedStackDividerIsInvisible    = "dockedStackDividerIsInvisible"
	CheckNavBarLayerRotatesAndScales      = "navBarLayerRotatesAndScales"
	CheckNavBarLayerRotatesAndScalesStart = "navBarLayerRotatesAndScales_StartingPos"
	CheckNavBarLayerRotatesAndScalesEnd   = "navBarLayerRotatesAndScales_EndingPos"
	CheckStatusBarLayerRotatesScalesStart = "statusBarLayerRotatesScales_StartingPos"
	CheckStatusBarLayerRotatesScalesEnd   = "statusBarLayerRotatesScales_EndingPos"
	CheckFocusChanges                     = "focusChanges"
	CheckFocusDoesNotChange               = "focusDoesNotChange"
)

// Names existing flicker dashboards and bug filters know these checks by.
const (
	LegacyAppPairsDividerIsInvisible     = "appPairsDividerIsInVisible"
	LegacyNavBarLayerRotatesAndScalesEnd = "navBarLayerRotatesAndScales_EndingPost"
)

var legacyNames = map[string]string{
	CheckAppPairsDividerIsInvisible:     LegacyAppPairsDividerIsInvisible,
	CheckNavBarLayerRotatesAndScalesEnd: LegacyNavBarLayerRotatesAndScalesEnd,
}

// LegacyName returns the older name of a check, or "" if it never had one.
func LegacyName(check string) string {
	return legacyNames[check]
}
