package render

import "testing"

func TestCameraClampsToLevel(t *testing.T) {
	// 20 columns show 10 tiles; 8 rows show 8 tiles.
	c := NewCamera(20, 8)
	c.Fit(80, 50)

	c.Follow(40, 25)
	if c.X != 35 || c.Y != 21 {
		t.Errorf("middle: top-left %d,%d, want 35,21", c.X, c.Y)
	}
	c.Follow(1, 1)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("near origin: top-left %d,%d, want 0,0", c.X, c.Y)
	}
	c.Follow(79, 49)
	if c.X != 70 || c.Y != 42 {
		t.Errorf("far corner: top-left %d,%d, want 70,42", c.X, c.Y)
	}
}

func TestCameraCentresSmallLevel(t *testing.T) {
	c := NewCamera(40, 10)
	c.Fit(10, 4)
	c.Follow(9, 3)
	// 20 tiles of view for 10 tiles of level: 5 tiles of margin each side.
	if c.X != -5 || c.Y != -3 {
		t.Errorf("top-left %d,%d, want -5,-3", c.X, c.Y)
	}
	sx, sy, ok := c.ToScreen(0, 0)
	if !ok || sx != 10 || sy != 3 {
		t.Errorf("origin drawn at %d,%d (%v)", sx, sy, ok)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(30, 12)
	c.Fit(80, 50)
	c.Follow(20, 20)
	sx, sy, ok := c.ToScreen(22, 19)
	if !ok {
		t.Fatal("tile near focus is off screen")
	}
	if x, y := c.ToTile(sx+1, sy); x != 22 || y != 19 {
		t.Errorf("right half of the glyph maps to %d,%d", x, y)
	}
	if _, _, ok := c.ToScreen(c.X-1, c.Y); ok {
		t.Error("tile left of the view reported visible")
	}
}

func TestCameraResizeKeepsFocus(t *testing.T) {
	c := NewCamera(20, 8)
	c.Fit(80, 50)
	c.Follow(40, 25)
	c.Resize(40, 20)
	if c.X != 30 || c.Y != 15 {
		t.Errorf("after resize top-left %d,%d, want 30,15", c.X, c.Y)
	}
}
