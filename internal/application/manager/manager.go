// Package manager owns the current screen, the screen being transitioned to,
// and the transition between them.
//
// A Manager is driven once per frame by the application loop: Update, then
// Render. It is not safe for concurrent use and must not be called from
// inside a screen's own Update or Render.
package manager

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/screenkit/internal/application/screen"
	"github.com/younwookim/screenkit/internal/application/transition"
	"github.com/younwookim/screenkit/internal/domain/camera"
	"github.com/younwookim/screenkit/internal/domain/viewport"
	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

// Manager switches between screens, optionally through a transition.
type Manager struct {
	backend  graphics.Backend
	batch    graphics.Batch
	camera   *camera.Orthographic
	viewport viewport.Viewport
	targets  *targetPair

	worldWidth  int
	worldHeight int
	// composite maps the world rectangle onto the viewport regardless of
	// where screens have moved the camera.
	composite mgl64.Mat4

	current    screen.Screen
	next       screen.Screen
	transition transition.Transition
	input      screen.InputProcessor

	disposed bool
}

// New creates a manager for a worldWidth x worldHeight world. Both
// off-screen targets are allocated at the backend's current window size and
// the camera is centered on the world.
func New(backend graphics.Backend, cam *camera.Orthographic, vp viewport.Viewport, worldWidth, worldHeight int) *Manager {
	if backend == nil || cam == nil || vp == nil {
		panic("manager: New requires a backend, a camera and a viewport")
	}
	w, h := backend.Size()
	m := &Manager{
		backend:     backend,
		batch:       backend.Batch(),
		camera:      cam,
		viewport:    vp,
		targets:     newTargetPair(backend, w, h),
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
		composite:   mgl64.Ortho(0, float64(worldWidth), 0, float64(worldHeight), -1, 1),
	}
	vp.Update(w, h, false)
	camera.Center(cam, worldWidth, worldHeight)
	m.batch.SetViewport(vp.ScreenBounds())
	m.batch.SetProjection(cam.Combined())
	return m
}

func (m *Manager) mustBeLive(op string) {
	if m.batch == nil {
		panic("manager: " + op + " called on a Manager not created by New")
	}
	if m.disposed {
		panic("manager: " + op + " called after Dispose")
	}
}

// SwitchTo replaces the current screen without animation. The previous
// screen is hidden but not disposed; its owner decides when to dispose it.
// A transition in flight is abandoned and its pending screen disposed.
func (m *Manager) SwitchTo(s screen.Screen) {
	m.mustBeLive("SwitchTo")
	if s == nil {
		panic("manager: SwitchTo with a nil screen")
	}
	if m.current != nil {
		m.current.Hide()
	}
	m.dropNext(s)
	if m.transition != nil {
		m.transition.Finish()
		m.transition = nil
	}
	m.current = s
	m.input = s
	m.resizePass()
}

// SwitchToWith replaces the current screen through t. Input is detached
// until the transition completes, then the previous screen is hidden and
// disposed. A screen still pending from an earlier call is disposed. With no current screen, s is installed
// immediately and t is not used.
func (m *Manager) SwitchToWith(s screen.Screen, t transition.Transition) {
	m.mustBeLive("SwitchToWith")
	if s == nil {
		panic("manager: SwitchToWith with a nil screen")
	}
	if t == nil {
		panic("manager: SwitchToWith with a nil transition; use SwitchTo")
	}

	if m.current == nil {
		m.current = s
		m.input = s
		m.resizePass()
		return
	}

	m.dropNext(s)
	if m.transition != nil {
		m.transition.Finish()
	}
	m.input = nil
	m.next = s
	m.transition = t
	t.Start()
	m.resizePass()
}

// dropNext hides and disposes a pending screen that will never be promoted,
// unless it is keep, the screen being switched to.
func (m *Manager) dropNext(keep screen.Screen) {
	if m.next != nil && m.next != keep {
		m.next.Hide()
		m.next.Dispose()
	}
	m.next = nil
}

// Update advances the current screen and any running transition. The
// pending screen is never updated.
func (m *Manager) Update(dt float64) {
	m.mustBeLive("Update")
	if m.current != nil {
		m.current.Update(dt)
	}
	if m.transition != nil && m.transition.Running() {
		m.transition.Update(dt)
	}
}

// Render draws the current screen, promotes the pending screen once the
// transition has completed, or composites both through the transition.
func (m *Manager) Render() {
	m.mustBeLive("Render")

	switch {
	case m.next == nil:
		if m.current != nil {
			m.current.Render(m.batch)
		}

	case m.transition.Completed():
		outgoing := m.current
		m.current = m.next
		m.next = nil
		m.transition.Finish()
		m.transition = nil
		outgoing.Hide()
		outgoing.Dispose()
		m.current.Render(m.batch)
		m.input = m.current

	default:
		cur := capture(m.targets.current, func() { m.current.Render(m.batch) })
		next := capture(m.targets.next, func() { m.next.Render(m.batch) })

		m.batch.SetProjection(m.composite)
		m.transition.Render(m.batch, cur, next)
		m.batch.SetProjection(m.camera.Combined())
	}
}

// Resize updates the viewport and projection for a width x height window,
// forwards the size to both screens and reallocates the off-screen targets.
func (m *Manager) Resize(width, height int) {
	m.mustBeLive("Resize")
	m.viewport.Update(width, height, false)
	m.batch.SetViewport(m.viewport.ScreenBounds())
	m.batch.SetProjection(m.camera.Combined())
	if m.current != nil {
		m.current.Resize(width, height)
	}
	if m.next != nil {
		m.next.Resize(width, height)
	}
	m.targets.resize(width, height)
}

func (m *Manager) resizePass() {
	m.Resize(m.backend.Size())
}

// Pause forwards to the current and pending screens.
func (m *Manager) Pause() {
	m.mustBeLive("Pause")
	if m.current != nil {
		m.current.Pause()
	}
	if m.next != nil {
		m.next.Pause()
	}
}

// Resume forwards to the current and pending screens.
func (m *Manager) Resume() {
	m.mustBeLive("Resume")
	if m.current != nil {
		m.current.Resume()
	}
	if m.next != nil {
		m.next.Resume()
	}
}

// Dispose disposes the current screen, then the pending one, then releases
// the off-screen targets. It must be called exactly once.
func (m *Manager) Dispose() {
	m.mustBeLive("Dispose")
	if m.current != nil {
		m.current.Dispose()
	}
	if m.next != nil {
		m.next.Dispose()
	}
	m.targets.dispose()
	m.input = nil
	m.disposed = true
}

// Current returns the visible screen, or nil.
func (m *Manager) Current() screen.Screen { return m.current }

// Next returns the screen being transitioned to, or nil.
func (m *Manager) Next() screen.Screen { return m.next }

// Transition returns the transition in flight, or nil.
func (m *Manager) Transition() transition.Transition { return m.transition }

// InputTarget returns the processor input events should be delivered to.
// It is nil while a transition is in flight.
func (m *Manager) InputTarget() screen.InputProcessor { return m.input }

func (m *Manager) Camera() *camera.Orthographic { return m.camera }

func (m *Manager) Viewport() viewport.Viewport { return m.viewport }

func (m *Manager) Batch() graphics.Batch { return m.batch }

// WorldSize returns the virtual world size the manager was created with.
func (m *Manager) WorldSize() (int, int) { return m.worldWidth, m.worldHeight }

// TargetSizes returns the sizes of the current and next off-screen targets.
func (m *Manager) TargetSizes() [2]image.Point { return m.targets.sizes() }
