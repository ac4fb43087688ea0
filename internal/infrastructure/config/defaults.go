package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for out-of-range or unknown values.
var ErrInvalid = errors.New("invalid config")

const (
	ViewportExtend = "extend"
	ViewportFit    = "fit"

	MotionLeftToRight = "leftToRight"
	MotionRightToLeft = "rightToLeft"
)

// Defaults returns the configuration used when app.json leaves a value unset.
func Defaults() *AppConfig {
	return &AppConfig{
		Display: DisplayConfig{
			WorldWidth:  700,
			WorldHeight: 300,
			WindowScale: 1,
			TPS:         60,
			Title:       "screenkit",
			ClearColor:  [4]uint8{0, 0, 0, 255},
		},
		Transitions: TransitionConfig{
			FadeSpeed:   0.5,
			SlideLerp:   0.1,
			SlideMotion: MotionRightToLeft,
		},
		Camera: CameraConfig{
			FollowLerp: 0.075,
			Viewport:   ViewportExtend,
		},
		Physics: PhysicsConfig{
			Gravity:            Vec2{X: 0, Y: -9.8},
			Timestep:           1.0 / 60.0,
			VelocityIterations: 6,
			PositionIterations: 2,
			PixelsPerMeter:     100,
		},
		Audio: AudioConfig{
			SampleRate: 44100,
		},
		Profiler: ProfilerConfig{
			ReportEvery: 600,
		},
	}
}

// applyDefaults fills zero values from Defaults.
func (c *AppConfig) applyDefaults() {
	d := Defaults()

	if c.Display.WorldWidth == 0 {
		c.Display.WorldWidth = d.Display.WorldWidth
	}
	if c.Display.WorldHeight == 0 {
		c.Display.WorldHeight = d.Display.WorldHeight
	}
	if c.Display.WindowScale == 0 {
		c.Display.WindowScale = d.Display.WindowScale
	}
	if c.Display.TPS == 0 {
		c.Display.TPS = d.Display.TPS
	}
	if c.Display.Title == "" {
		c.Display.Title = d.Display.Title
	}
	if c.Display.ClearColor == ([4]uint8{}) {
		c.Display.ClearColor = d.Display.ClearColor
	}

	if c.Transitions.FadeSpeed == 0 {
		c.Transitions.FadeSpeed = d.Transitions.FadeSpeed
	}
	if c.Transitions.SlideLerp == 0 {
		c.Transitions.SlideLerp = d.Transitions.SlideLerp
	}
	if c.Transitions.SlideMotion == "" {
		c.Transitions.SlideMotion = d.Transitions.SlideMotion
	}

	if c.Camera.FollowLerp == 0 {
		c.Camera.FollowLerp = d.Camera.FollowLerp
	}
	if c.Camera.Viewport == "" {
		c.Camera.Viewport = d.Camera.Viewport
	}

	if c.Physics.Gravity == (Vec2{}) {
		c.Physics.Gravity = d.Physics.Gravity
	}
	if c.Physics.Timestep == 0 {
		c.Physics.Timestep = d.Physics.Timestep
	}
	if c.Physics.VelocityIterations == 0 {
		c.Physics.VelocityIterations = d.Physics.VelocityIterations
	}
	if c.Physics.PositionIterations == 0 {
		c.Physics.PositionIterations = d.Physics.PositionIterations
	}
	if c.Physics.PixelsPerMeter == 0 {
		c.Physics.PixelsPerMeter = d.Physics.PixelsPerMeter
	}

	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = d.Audio.SampleRate
	}
	if c.Profiler.ReportEvery == 0 {
		c.Profiler.ReportEvery = d.Profiler.ReportEvery
	}
}

// Validate reports the first invalid value, wrapped in ErrInvalid.
func (c *AppConfig) Validate() error {
	switch {
	case c.Display.WorldWidth <= 0 || c.Display.WorldHeight <= 0:
		return fmt.Errorf("%w: world size %dx%d", ErrInvalid, c.Display.WorldWidth, c.Display.WorldHeight)
	case c.Display.WindowScale <= 0:
		return fmt.Errorf("%w: windowScale %g", ErrInvalid, c.Display.WindowScale)
	case c.Display.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.Display.TPS)
	case c.Transitions.FadeSpeed <= 0:
		return fmt.Errorf("%w: fadeSpeed %g must be positive", ErrInvalid, c.Transitions.FadeSpeed)
	case c.Transitions.SlideLerp <= 0 || c.Transitions.SlideLerp > 1:
		return fmt.Errorf("%w: slideLerp %g must be in (0, 1]", ErrInvalid, c.Transitions.SlideLerp)
	case c.Camera.FollowLerp <= 0 || c.Camera.FollowLerp > 1:
		return fmt.Errorf("%w: followLerp %g must be in (0, 1]", ErrInvalid, c.Camera.FollowLerp)
	case c.Physics.Timestep <= 0:
		return fmt.Errorf("%w: timestep %g", ErrInvalid, c.Physics.Timestep)
	case c.Physics.PixelsPerMeter <= 0:
		return fmt.Errorf("%w: pixelsPerMeter %g", ErrInvalid, c.Physics.PixelsPerMeter)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sampleRate %d", ErrInvalid, c.Audio.SampleRate)
	}

	switch c.Transitions.SlideMotion {
	case MotionLeftToRight, MotionRightToLeft:
	default:
		return fmt.Errorf("%w: slideMotion %q", ErrInvalid, c.Transitions.SlideMotion)
	}
	switch c.Camera.Viewport {
	case ViewportExtend, ViewportFit:
	default:
		return fmt.Errorf("%w: viewport %q", ErrInvalid, c.Camera.Viewport)
	}

	defaults := 0
	for i, a := range c.Assets {
		if a.Key == "" || a.Path == "" {
			return fmt.Errorf("%w: assets[%d] needs a key and a path", ErrInvalid, i)
		}
		if a.Default {
			defaults++
		}
	}
	if defaults > 1 {
		return fmt.Errorf("%w: %d default atlases", ErrInvalid, defaults)
	}
	return nil
}
