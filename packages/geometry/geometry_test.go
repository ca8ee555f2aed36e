package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegion_Covers(t *testing.T) {
	screen := NewRect(0, 0, 100, 200)

	tests := []struct {
		name   string
		region Region
		covers bool
	}{
		{
			name:   "single exact rect",
			region: NewRegion(screen),
			covers: true,
		},
		{
			name:   "two halves",
			region: NewRegion(NewRect(0, 0, 100, 100), NewRect(0, 100, 100, 200)),
			covers: true,
		},
		{
			name:   "overlapping pieces",
			region: NewRegion(NewRect(0, 0, 60, 200), NewRect(40, 0, 100, 200)),
			covers: true,
		},
		{
			name:   "gap in the middle",
			region: NewRegion(NewRect(0, 0, 100, 90), NewRect(0, 110, 100, 200)),
			covers: false,
		},
		{
			name:   "larger than target",
			region: NewRegion(NewRect(-10, -10, 500, 500)),
			covers: true,
		},
		{
			name:   "empty region",
			region: NewRegion(),
			covers: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.covers, tt.region.Covers(screen))
		})
	}
}

func TestRegion_Uncovered(t *testing.T) {
	region := NewRegion(NewRect(0, 0, 100, 90), NewRect(0, 110, 100, 200))

	uncovered := region.Uncovered(NewRect(0, 0, 100, 200))
	require.Len(t, uncovered, 1)
	assert.Equal(t, NewRect(0, 90, 100, 110), uncovered[0])
}

func TestRegion_Equal(t *testing.T) {
	whole := NewRegion(NewRect(0, 0, 100, 100))
	split := NewRegion(NewRect(0, 0, 50, 100), NewRect(50, 0, 100, 100))

	assert.True(t, whole.Equal(split))
	assert.True(t, split.Equal(whole))
	assert.False(t, whole.Equal(NewRegion(NewRect(0, 0, 100, 99))))
	assert.True(t, NewRegion().Equal(Region{}))
}

func TestRegion_Bounds(t *testing.T) {
	region := NewRegion(NewRect(10, 10, 20, 20), NewRect(50, 0, 60, 5))
	assert.Equal(t, NewRect(10, 0, 60, 20), region.Bounds())
}

func TestParseRotation(t *testing.T) {
	tests := []struct {
		input    string
		expected Rotation
		wantErr  bool
	}{
		{input: "0", expected: Rotation0},
		{input: "1", expected: Rotation90},
		{input: "90", expected: Rotation90},
		{input: "ROTATION_180", expected: Rotation180},
		{input: "rotation_270", expected: Rotation270},
		{input: "3", expected: Rotation270},
		{input: "45", wantErr: true},
		{input: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := ParseRotation(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRotation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
		})
	}
}

func TestDisplay_DisplayBounds(t *testing.T) {
	d := DefaultDisplay()

	assert.Equal(t, NewRect(0, 0, 1080, 1920), d.DisplayBounds(Rotation0))
	assert.Equal(t, NewRect(0, 0, 1920, 1080), d.DisplayBounds(Rotation90))
	assert.Equal(t, d.DisplayBounds(Rotation0), d.DisplayBounds(Rotation180))
}

func TestDisplay_NavigationBarPosition(t *testing.T) {
	d := DefaultDisplay()

	t.Run("portrait at the bottom", func(t *testing.T) {
		pos := d.NavigationBarPosition(Rotation0)
		assert.True(t, pos.Equal(NewRegion(NewRect(0, 1794, 1080, 1920))))
	})

	t.Run("seascape on the right", func(t *testing.T) {
		pos := d.NavigationBarPosition(Rotation90)
		assert.True(t, pos.Equal(NewRegion(NewRect(1794, 0, 1920, 1080))))
	})

	t.Run("landscape on the left", func(t *testing.T) {
		pos := d.NavigationBarPosition(Rotation270)
		assert.True(t, pos.Equal(NewRegion(NewRect(0, 0, 126, 1080))))
	})

	t.Run("tablet keeps the bottom", func(t *testing.T) {
		tablet := d
		tablet.Tablet = true
		pos := tablet.NavigationBarPosition(Rotation90)
		assert.True(t, pos.Equal(NewRegion(NewRect(0, 954, 1920, 1080))))
	})
}

func TestDisplay_StatusBarPosition(t *testing.T) {
	d := DefaultDisplay()
	d.StatusBarHeightLandscape = 48

	assert.True(t, d.StatusBarPosition(Rotation0).Equal(NewRegion(NewRect(0, 0, 1080, 63))))
	assert.True(t, d.StatusBarPosition(Rotation270).Equal(NewRegion(NewRect(0, 0, 1920, 48))))
}
