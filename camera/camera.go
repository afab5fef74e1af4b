// Package camera provides a 2D camera system for viewport control.
package camera

// Padding is the screen margin kept around the arena at zoom 1, in pixels.
const Padding float32 = 16

// Camera maps the arena (centered at the origin, y up) onto the screen
// (origin top-left, y down). Supports pan and zoom.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level on top of the fit scale (1.0 = whole arena visible)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Arena dimensions
	ArenaW, ArenaH float32

	// Zoom constraints
	MinZoom, MaxZoom float32

	// pixels per world unit at zoom 1
	fit float32
}

// New creates a camera centered on the arena with the whole arena in view.
func New(viewportW, viewportH, arenaW, arenaH float32) *Camera {
	c := &Camera{
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		ArenaW:    arenaW,
		ArenaH:    arenaH,
		MinZoom:   1.0,
		MaxZoom:   4.0,
	}
	c.fit = fitScale(viewportW, viewportH, arenaW, arenaH)
	return c
}

// fitScale returns the largest scale that shows the padded arena with its
// aspect ratio preserved.
func fitScale(viewportW, viewportH, arenaW, arenaH float32) float32 {
	usableW := viewportW - 2*Padding
	usableH := viewportH - 2*Padding
	if usableW <= 0 || usableH <= 0 || arenaW <= 0 || arenaH <= 0 {
		return 1
	}
	sx := usableW / arenaW
	sy := usableH / arenaH
	if sy < sx {
		return sy
	}
	return sx
}

// Scale returns screen pixels per world unit.
func (c *Camera) Scale() float32 {
	return c.fit * c.Zoom
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	s := c.Scale()
	sx = c.ViewportW/2 + (wx-c.X)*s
	sy = c.ViewportH/2 - (wy-c.Y)*s
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	s := c.Scale()
	wx = c.X + (sx-c.ViewportW/2)/s
	wy = c.Y - (sy-c.ViewportH/2)/s
	return wx, wy
}

// IsVisible returns true if a box centered at (wx, wy) with the given
// half-extents could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, halfW, halfH float32) bool {
	minX, minY, maxX, maxY := c.VisibleWorldBounds()
	return wx+halfW >= minX && wx-halfW <= maxX && wy+halfH >= minY && wy-halfH <= maxY
}

// Resize updates viewport dimensions and recalculates the fit scale.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.fit = fitScale(viewportW, viewportH, c.ArenaW, c.ArenaH)
}

// Pan moves the camera by the given delta in screen pixels.
// The center stays inside the arena.
func (c *Camera) Pan(dx, dy float32) {
	s := c.Scale()
	c.X = clamp(c.X+dx/s, -c.ArenaW/2, c.ArenaW/2)
	c.Y = clamp(c.Y-dy/s, -c.ArenaH/2, c.ArenaH/2)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the default position and zoom.
func (c *Camera) Reset() {
	c.X = 0
	c.Y = 0
	c.Zoom = 1.0
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
// Returns (minX, minY, maxX, maxY) in world coordinates.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	s := c.Scale()
	halfW := c.ViewportW / (2 * s)
	halfH := c.ViewportH / (2 * s)

	minX = c.X - halfW
	maxX = c.X + halfW
	minY = c.Y - halfH
	maxY = c.Y + halfH
	return
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
