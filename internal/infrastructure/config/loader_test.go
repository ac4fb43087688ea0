package config

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadApp(t *testing.T) {
	loader := NewLoader("../../../cmd/demo/configs")

	cfg, err := loader.LoadApp()
	require.NoError(t, err)

	assert.Equal(t, 700, cfg.Display.WorldWidth)
	assert.Equal(t, 300, cfg.Display.WorldHeight)
	assert.Equal(t, 60, cfg.Display.TPS)
	assert.Equal(t, 0.5, cfg.Transitions.FadeSpeed)
	assert.Equal(t, MotionRightToLeft, cfg.Transitions.SlideMotion)
	assert.Equal(t, ViewportExtend, cfg.Camera.Viewport)
	assert.Equal(t, -9.8, cfg.Physics.Gravity.Y)
	assert.Equal(t, 6, cfg.Physics.VelocityIterations)
	assert.True(t, cfg.Physics.Debug)
}

func TestLoader_FillsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		AppFile: {Data: []byte(`{"display": {"title": "custom"}}`)},
	}

	cfg, err := NewFSLoader(fsys, "mem").LoadApp()
	require.NoError(t, err)

	d := Defaults()
	assert.Equal(t, "custom", cfg.Display.Title)
	assert.Equal(t, d.Display.WorldWidth, cfg.Display.WorldWidth)
	assert.Equal(t, d.Transitions, cfg.Transitions)
	assert.Equal(t, d.Physics, cfg.Physics)
	assert.Equal(t, d.Camera, cfg.Camera)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		invalid bool
	}{
		{"missing file", fstest.MapFS{}, false},
		{"malformed json", fstest.MapFS{AppFile: {Data: []byte(`{`)}}, false},
		{"negative world", fstest.MapFS{AppFile: {Data: []byte(`{"display": {"worldWidth": -1}}`)}}, true},
		{"unknown motion", fstest.MapFS{AppFile: {Data: []byte(`{"transitions": {"slideMotion": "up"}}`)}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, "mem").LoadApp()
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errorsIsInvalid(err))
		})
	}
}

func TestAppConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *AppConfig)
	}{
		{"zero height", func(c *AppConfig) { c.Display.WorldHeight = 0 }},
		{"zero fade speed", func(c *AppConfig) { c.Transitions.FadeSpeed = 0 }},
		{"zero slide lerp", func(c *AppConfig) { c.Transitions.SlideLerp = 0 }},
		{"slide lerp above one", func(c *AppConfig) { c.Transitions.SlideLerp = 1.5 }},
		{"follow lerp", func(c *AppConfig) { c.Camera.FollowLerp = -0.1 }},
		{"unknown viewport", func(c *AppConfig) { c.Camera.Viewport = "stretch" }},
		{"timestep", func(c *AppConfig) { c.Physics.Timestep = 0 }},
		{"asset without path", func(c *AppConfig) {
			c.Assets = []AtlasConfig{{Key: "ui"}}
		}},
		{"two default atlases", func(c *AppConfig) {
			c.Assets = []AtlasConfig{
				{Key: "a", Path: "a.json", Default: true},
				{Key: "b", Path: "b.json", Default: true},
			}
		}},
	}

	require.NoError(t, Defaults().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func errorsIsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}
