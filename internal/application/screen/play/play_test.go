package play

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/screenkit/internal/application/screen"
	"github.com/younwookim/screenkit/internal/application/transition"
	"github.com/younwookim/screenkit/internal/domain/camera"
	"github.com/younwookim/screenkit/internal/domain/entity"
	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
	"github.com/younwookim/screenkit/internal/infrastructure/graphics/graphicstest"
)

// fakeRegions hands out one region per name.
type fakeRegions struct {
	byName map[string]*graphics.Region
}

func (f *fakeRegions) region(name string) *graphics.Region {
	if f.byName == nil {
		f.byName = make(map[string]*graphics.Region)
	}
	r, ok := f.byName[name]
	if !ok {
		r = &graphics.Region{}
		f.byName[name] = r
	}
	return r
}

func (f *fakeRegions) Take(name string, key ...string) *graphics.Region {
	return f.region(name)
}

func (f *fakeRegions) Regions(name string, key ...string) []*graphics.Region {
	return []*graphics.Region{f.region(name + "_0"), f.region(name + "_1")}
}

type mockSwitcher struct {
	screens     []screen.Screen
	transitions []transition.Transition
}

func (m *mockSwitcher) SwitchTo(s screen.Screen) { m.screens = append(m.screens, s) }

func (m *mockSwitcher) SwitchToWith(s screen.Screen, t transition.Transition) {
	m.screens = append(m.screens, s)
	m.transitions = append(m.transitions, t)
}

type stubScreen struct{ screen.Adapter }

func (s *stubScreen) Update(float64)        {}
func (s *stubScreen) Render(graphics.Batch) {}
func (s *stubScreen) Dispose()              {}

func newTestPlay() (*Play, *camera.Orthographic, *fakeRegions, *mockSwitcher) {
	cam := camera.NewOrthographic(700, 300)
	camera.Center(cam, 700, 300)
	regions := &fakeRegions{}
	sw := &mockSwitcher{}
	p := New(Options{
		Switcher:    sw,
		Camera:      cam,
		Regions:     regions,
		Back:        func() screen.Screen { return &stubScreen{} },
		WorldWidth:  700,
		WorldHeight: 300,
		FollowLerp:  0.075,
		FadeSpeed:   0.5,
	})
	return p, cam, regions, sw
}

func TestPlay_HoldToWalk(t *testing.T) {
	p, _, _, _ := newTestPlay()

	p.Update(1.0 / 60.0)
	assert.Equal(t, HeroStart, p.Hero().Position)

	assert.True(t, p.TouchDown(0, 0, 0, ebiten.MouseButtonLeft))
	for range 10 {
		p.Update(1.0 / 60.0)
	}
	assert.InDelta(t, HeroStart.X()+10*entity.HeroStep, p.Hero().Position.X(), 1e-9)

	assert.True(t, p.TouchUp(0, 0, 0, ebiten.MouseButtonLeft))
	p.Update(1.0 / 60.0)
	assert.InDelta(t, HeroStart.X()+10*entity.HeroStep, p.Hero().Position.X(), 1e-9)
}

func TestPlay_KeyboardWalk(t *testing.T) {
	p, _, _, _ := newTestPlay()

	assert.True(t, p.KeyDown(ebiten.KeyRight))
	p.Update(1.0 / 60.0)
	assert.True(t, p.KeyUp(ebiten.KeyRight))
	p.Update(1.0 / 60.0)
	assert.InDelta(t, HeroStart.X()+entity.HeroStep, p.Hero().Position.X(), 1e-9)

	assert.False(t, p.KeyUp(ebiten.KeyA))
}

func TestPlay_CameraFollowsHero(t *testing.T) {
	p, cam, _, _ := newTestPlay()
	start := cam.Position

	p.Update(1.0 / 60.0)
	expected := mgl64.Vec2{
		start.X() + (HeroStart.X()-start.X())*0.075,
		start.Y() + (HeroStart.Y()-start.Y())*0.075,
	}
	assert.InDelta(t, expected.X(), cam.Position.X(), 1e-9)
	assert.InDelta(t, expected.Y(), cam.Position.Y(), 1e-9)

	for range 500 {
		p.Update(1.0 / 60.0)
	}
	assert.InDelta(t, HeroStart.X(), cam.Position.X(), 1e-6)
	assert.InDelta(t, HeroStart.Y(), cam.Position.Y(), 1e-6)
}

func TestPlay_Render(t *testing.T) {
	p, cam, regions, _ := newTestPlay()
	batch := graphicstest.NewBatch()

	p.Render(batch)

	require.Len(t, batch.Projections, 1)
	assert.Equal(t, cam.Combined(), batch.Projections[0])
	require.Len(t, batch.Draws, numTrees+2)
	assert.Equal(t, 1, batch.Begins)
	assert.Equal(t, 1, batch.Ends)

	assert.Same(t, regions.byName[entity.Tree1], batch.Draws[0].Region)
	assert.Same(t, regions.byName[entity.Tree2], batch.Draws[1].Region)

	ground := batch.Draws[numTrees]
	assert.Same(t, regions.byName[entity.BlankQuad], ground.Region)
	assert.Equal(t, entity.GroundColor, ground.Color)

	hero := batch.Draws[numTrees+1]
	assert.Same(t, regions.byName[entity.HeroIdle], hero.Region)
	assert.Equal(t, graphics.White, hero.Color)
}

func TestPlay_EscapeFadesBack(t *testing.T) {
	p, _, _, sw := newTestPlay()

	assert.True(t, p.KeyDown(ebiten.KeyEscape))
	assert.False(t, p.KeyDown(ebiten.KeyEscape))
	require.Len(t, sw.transitions, 1)
	assert.IsType(t, &transition.Fade{}, sw.transitions[0])
	assert.IsType(t, &stubScreen{}, sw.screens[0])

	p.Hide()
	assert.True(t, p.KeyDown(ebiten.KeyEscape))
}

func TestPlay_PauseStopsHero(t *testing.T) {
	p, _, _, _ := newTestPlay()
	p.TouchDown(0, 0, 0, ebiten.MouseButtonLeft)
	p.Pause()
	assert.False(t, p.Hero().Moving())
}
