// Package game drives a screen manager from the Ebitengine loop.
package game

import (
	"image/color"
	"io"
	"log"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenkit/internal/application/input"
	"github.com/younwookim/screenkit/internal/application/manager"
	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
	"github.com/younwookim/screenkit/internal/infrastructure/profiler"
)

// Backend is a graphics backend that draws into the image Ebitengine hands
// to Draw.
type Backend interface {
	graphics.Backend
	SetScreen(screen *ebiten.Image)
	SetSize(width, height int)
}

// Options configures a Game. The zero value polls nothing and clears to black.
type Options struct {
	Clear  color.Color
	Source input.Source
	// Profile receives a frame timing report every ReportEvery updates.
	Profile     io.Writer
	ReportEvery int
	// Screenshot opens the destination of a PNG capture. The frame drawn
	// after ScreenshotKey is pressed is written to it.
	Screenshot    func() (io.WriteCloser, error)
	ScreenshotKey ebiten.Key
}

// Game implements ebiten.Game on top of a screen manager.
type Game struct {
	manager    *manager.Manager
	backend    Backend
	source     input.Source
	dispatcher *input.Dispatcher
	clear      color.Color
	dt         float64

	width, height int

	focused   bool
	isFocused func() bool

	update      *profiler.Counter
	render      *profiler.Counter
	profile     io.Writer
	reportEvery int

	screenshot    func() (io.WriteCloser, error)
	screenshotKey ebiten.Key
	shoot         bool

	closed bool
}

// New creates a Game. The backend's current size is taken as the starting
// layout so the first Layout call only resizes on a real change.
func New(m *manager.Manager, backend Backend, opts Options) *Game {
	w, h := backend.Size()
	clr := opts.Clear
	if clr == nil {
		clr = color.Black
	}
	return &Game{
		manager:     m,
		backend:     backend,
		source:      opts.Source,
		dispatcher:  input.NewDispatcher(),
		clear:       clr,
		dt:          1.0 / 60.0, // Default to 60 FPS
		width:       w,
		height:      h,
		focused:     true,
		isFocused:   ebiten.IsFocused,
		update:      profiler.New("update"),
		render:      profiler.New("render"),
		profile:     opts.Profile,
		reportEvery: opts.ReportEvery,

		screenshot:    opts.Screenshot,
		screenshotKey: opts.ScreenshotKey,
	}
}

// Manager returns the driven manager.
func (g *Game) Manager() *manager.Manager {
	return g.manager
}

// Update polls input, forwards it to the manager's input target and updates
// the manager. It returns ebiten.Termination once the input source runs dry
// or the game is closed.
func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}
	g.checkFocus()

	if g.source != nil {
		snap, ok := g.source.Poll()
		if !ok {
			return ebiten.Termination
		}
		g.dispatcher.Dispatch(g.manager.InputTarget(), snap)
		if g.screenshot != nil && slices.Contains(snap.KeysDown, g.screenshotKey) {
			g.shoot = true
		}
	}

	g.update.Profile(func() { g.manager.Update(g.dt) })
	g.report()
	return nil
}

func (g *Game) checkFocus() {
	focused := g.isFocused()
	if focused == g.focused {
		return
	}
	g.focused = focused
	if focused {
		g.manager.Resume()
	} else {
		g.manager.Pause()
	}
}

func (g *Game) report() {
	if g.profile == nil || g.reportEvery <= 0 {
		return
	}
	if g.update.Report().Count%g.reportEvery != 0 {
		return
	}
	for _, c := range []*profiler.Counter{g.update, g.render} {
		if err := c.PrettyPrint(g.profile); err != nil {
			log.Printf("Warning: Failed to print profile: %v", err)
		}
		c.Reset()
	}
}

// Draw clears the frame and renders the manager into it.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.closed {
		return
	}
	g.backend.SetScreen(screen)
	g.backend.Clear(g.clear)
	g.render.Profile(g.manager.Render)
	if g.shoot {
		g.shoot = false
		g.capture(screen)
	}
}

func (g *Game) capture(screen *ebiten.Image) {
	w, err := g.screenshot()
	if err != nil {
		log.Printf("Warning: Failed to open screenshot: %v", err)
		return
	}
	defer func() { _ = w.Close() }()
	if err := graphics.SaveScreenshot(screen, w); err != nil {
		log.Printf("Warning: Failed to save screenshot: %v", err)
	}
}

// ScreenshotPending reports whether the next Draw writes a screenshot.
func (g *Game) ScreenshotPending() bool {
	return g.shoot
}

// Layout uses the outside size as the framebuffer size and resizes the
// manager whenever it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if !g.closed && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.backend.SetSize(outsideWidth, outsideHeight)
		g.manager.Resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Close disposes the manager. Calls after the first do nothing.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.manager.Dispose()
}

// Closed reports whether Close has been called.
func (g *Game) Closed() bool {
	return g.closed
}
