package geometry

// Metrics computes where system bars and the display lie for a rotation.
type Metrics interface {
	DisplayBounds(rotation Rotation) Rect
	NavigationBarPosition(rotation Rotation) Region
	StatusBarPosition(rotation Rotation) Region
}

// Display describes a device screen in its natural (Rotation0) orientation.
type Display struct {
	Width                    int  `json:"width"`
	Height                   int  `json:"height"`
	NavBarHeight             int  `json:"navBarHeight"`             // bottom bar height
	NavBarWidth              int  `json:"navBarWidth"`              // side bar width in landscape
	StatusBarHeightPortrait  int  `json:"statusBarHeightPortrait"`  // at 0 and 180
	StatusBarHeightLandscape int  `json:"statusBarHeightLandscape"` // at 90 and 270
	Tablet                   bool `json:"tablet,omitempty"`         // nav bar stays at the bottom
}

// DefaultDisplay returns a 1080x1920 phone at 420dpi.
func DefaultDisplay() Display {
	return Display{
		Width:                    1080,
		Height:                   1920,
		NavBarHeight:             126,
		NavBarWidth:              126,
		StatusBarHeightPortrait:  63,
		StatusBarHeightLandscape: 63,
	}
}

func (d Display) size(rotation Rotation) (int, int) {
	if rotation.IsRotated() {
		return d.Height, d.Width
	}
	return d.Width, d.Height
}

func (d Display) DisplayBounds(rotation Rotation) Rect {
	w, h := d.size(rotation)
	return NewRect(0, 0, w, h)
}

func (d Display) NavigationBarPosition(rotation Rotation) Region {
	w, h := d.size(rotation)

	switch {
	case d.Tablet || !rotation.IsRotated():
		return NewRegion(NewRect(0, h-d.NavBarHeight, w, h))
	case rotation.normalized() == Rotation90:
		return NewRegion(NewRect(w-d.NavBarWidth, 0, w, h))
	default:
		return NewRegion(NewRect(0, 0, d.NavBarWidth, h))
	}
}

func (d Display) StatusBarPosition(rotation Rotation) Region {
	w, _ := d.size(rotation)
	height := d.StatusBarHeightPortrait
	if rotation.IsRotated() {
		height = d.StatusBarHeightLandscape
	}
	return NewRegion(NewRect(0, 0, w, height))
}
