package sim

import "github.com/vovakirdan/vanara-leap/internal/core"

// Camera is the horizontal viewport offset in world units.
type Camera struct {
	X float64
}

// CameraTarget returns where the camera wants to be: the player centered,
// clamped so the viewport never leaves [0, levelWidth].
func CameraTarget(playerX, levelWidth, canvasWidth float64) float64 {
	return core.ClampF(playerX-canvasWidth/2, 0, levelWidth-canvasWidth)
}

// Follow eases the camera toward the target by the smoothing factor.
// The camera itself is never clamped; it converges on an already-clamped target.
func (c *Camera) Follow(playerX, levelWidth float64, t Tuning) {
	target := CameraTarget(playerX, levelWidth, t.Canvas.Width)
	c.X += (target - c.X) * t.Camera.Smoothing
}
