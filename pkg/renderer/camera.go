package renderer

import (
	"fmt"
	"math"

	"github.com/mdillard/go-pathtracer/pkg/core"
)

// CameraConfig contains the user-chosen framing and sampling parameters a
// camera is derived from
type CameraConfig struct {
	AspectRatio     float64   // Ratio of image width over height
	Width           int       // Rendered image width in pixels
	SamplesPerPixel int       // Random samples averaged per pixel
	MaxDepth        int       // Maximum ray bounce depth
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Eye position
	LookAt          core.Vec3 // Point the camera looks at
	VUp             core.Vec3 // Camera-relative up direction
	DefocusAngle    float64   // Variation angle of rays through each pixel, in degrees
	FocusDistance   float64   // Distance from eye to plane of perfect focus
}

// DefaultCameraConfig returns the documented defaults
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		Width:           400,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
	}
}

// Camera generates rays for rendering. All viewport state is derived once
// at construction and never mutated, so a camera is safe to share across
// workers.
type Camera struct {
	config       CameraConfig
	height       int
	center       core.Vec3
	pixel00      core.Vec3 // World-space location of the center of pixel (0,0)
	pixelDeltaU  core.Vec3 // Offset between horizontally adjacent pixels
	pixelDeltaV  core.Vec3 // Offset between vertically adjacent pixels
	defocusDiskU core.Vec3 // Defocus disk horizontal basis vector
	defocusDiskV core.Vec3 // Defocus disk vertical basis vector
}

// NewCamera derives the viewport basis and pixel grid from config.
// Degenerate framing (coincident lookfrom/lookat, up vector collinear with
// the view direction) is a configuration error, reported before any
// rendering work starts.
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 {
		return nil, fmt.Errorf("camera width must be positive, got %d", config.Width)
	}
	if config.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera aspect ratio must be positive, got %g", config.AspectRatio)
	}
	if config.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("samples per pixel must be positive, got %d", config.SamplesPerPixel)
	}
	if config.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth must not be negative, got %d", config.MaxDepth)
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("vertical fov must be in (0, 180) degrees, got %g", config.VFov)
	}
	if config.FocusDistance <= 0 {
		return nil, fmt.Errorf("focus distance must be positive, got %g", config.FocusDistance)
	}

	view := config.LookFrom.Subtract(config.LookAt)
	if view.NearZero() {
		return nil, fmt.Errorf("lookfrom and lookat coincide at %v", config.LookFrom)
	}

	// Orthonormal camera basis: w opposes the view direction
	w := view.Normalize()
	uCross := config.VUp.Cross(w)
	if uCross.NearZero() {
		return nil, fmt.Errorf("up vector %v is collinear with the view direction", config.VUp)
	}
	u := uCross.Normalize()
	v := w.Cross(u)

	height := int(float64(config.Width) / config.AspectRatio)
	if height < 1 {
		height = 1
	}

	// Viewport dimensions from the vertical field of view at the focus plane
	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float64(config.Width) / float64(height))

	center := config.LookFrom
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	viewportUpperLeft := center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(config.DefocusAngle/2*math.Pi/180)

	return &Camera{
		config:       config,
		height:       height,
		center:       center,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}, nil
}

// GetRay generates a ray through pixel (i, j), jittered by a uniform offset
// in [-0.5, 0.5) on both axes for box-filter antialiasing. With a positive
// defocus angle the ray originates on the defocus disk instead of the
// camera center, simulating a thin lens.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// defocusDiskSample returns a random origin on the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int {
	return c.config.Width
}

// ImageHeight returns the image height in pixels
func (c *Camera) ImageHeight() int {
	return c.height
}

// SamplesPerPixel returns the number of samples averaged per pixel
func (c *Camera) SamplesPerPixel() int {
	return c.config.SamplesPerPixel
}

// MaxDepth returns the ray bounce limit
func (c *Camera) MaxDepth() int {
	return c.config.MaxDepth
}
