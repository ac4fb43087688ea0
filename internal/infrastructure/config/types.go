package config

// AppConfig is the root config for app.json
type AppConfig struct {
	Display     DisplayConfig    `json:"display"`
	Transitions TransitionConfig `json:"transitions"`
	Camera      CameraConfig     `json:"camera"`
	Physics     PhysicsConfig    `json:"physics"`
	Audio       AudioConfig      `json:"audio"`
	Assets      []AtlasConfig    `json:"assets"`
	Profiler    ProfilerConfig   `json:"profiler"`
}

type DisplayConfig struct {
	WorldWidth  int      `json:"worldWidth"`
	WorldHeight int      `json:"worldHeight"`
	WindowScale float64  `json:"windowScale"`
	TPS         int      `json:"tps"`
	Title       string   `json:"title"`
	ClearColor  [4]uint8 `json:"clearColor"` // RGBA
}

type TransitionConfig struct {
	FadeSpeed   float64 `json:"fadeSpeed"`
	SlideLerp   float64 `json:"slideLerp"`
	SlideMotion string  `json:"slideMotion"` // "leftToRight" or "rightToLeft"
}

type CameraConfig struct {
	FollowLerp float64 `json:"followLerp"`
	Viewport   string  `json:"viewport"` // "extend" or "fit"
}

type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PhysicsConfig struct {
	Gravity            Vec2    `json:"gravity"`
	Timestep           float64 `json:"timestep"`
	VelocityIterations int     `json:"velocityIterations"`
	PositionIterations int     `json:"positionIterations"`
	PixelsPerMeter     float64 `json:"pixelsPerMeter"`
	Debug              bool    `json:"debug"`
}

type AudioConfig struct {
	SampleRate int               `json:"sampleRate"`
	Sounds     map[string]string `json:"sounds"` // name -> path
	Music      map[string]string `json:"music"`
}

// AtlasConfig describes one texture atlas to load at startup.
type AtlasConfig struct {
	Key     string `json:"key"`
	Path    string `json:"path"`
	Default bool   `json:"default"`
}

type ProfilerConfig struct {
	Enabled bool `json:"enabled"`
	// ReportEvery is the number of frames between console reports.
	ReportEvery int `json:"reportEvery"`
}
