// Package menu is the demo's title screen.
package menu

import (
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/screenkit/internal/application/screen"
	"github.com/younwookim/screenkit/internal/application/transition"
	"github.com/younwookim/screenkit/internal/domain/viewport"
	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
	"github.com/younwookim/screenkit/internal/infrastructure/typeset"
)

// Message IDs shown on the menu.
const (
	Title = "This is the menu state!"
	Hint  = "Click: slide to the hero   F: fade   P: physics sandbox"
)

// ClickSound is played when the menu switches away.
const ClickSound = "click"

var textColor = color.Black

// Options wires the menu to the rest of the app.
type Options struct {
	Switcher   screen.Switcher
	Viewport   viewport.Viewport
	Face       text.Face
	Translator screen.Translator
	Sounds     screen.SoundPlayer

	Play    screen.Factory
	Sandbox screen.Factory

	WorldWidth  int
	WorldHeight int
	Motion      transition.Motion
	SlideLerp   float64
	FadeSpeed   float64
}

// Menu shows centered text and waits for a choice.
type Menu struct {
	screen.Adapter
	opts       Options
	projection mgl64.Mat4
	leaving    bool

	title *typeset.Label
	hint  *typeset.Label
}

func New(opts Options) *Menu {
	return &Menu{
		Adapter:    screen.NewAdapter(opts.Viewport),
		opts:       opts,
		projection: mgl64.Ortho(0, float64(opts.WorldWidth), 0, float64(opts.WorldHeight), -1, 1),
	}
}

func (m *Menu) translate(s string) string {
	if m.opts.Translator == nil {
		return s
	}
	return m.opts.Translator.Get(s)
}

func (m *Menu) slide() transition.Transition {
	return transition.NewHorizontalSlide(m.opts.Motion, m.opts.SlideLerp,
		float64(m.opts.WorldWidth), float64(m.opts.WorldHeight))
}

func (m *Menu) fade() transition.Transition {
	return transition.NewFade(m.opts.FadeSpeed, float64(m.opts.WorldWidth), float64(m.opts.WorldHeight))
}

func (m *Menu) leave(to screen.Factory, t transition.Transition) bool {
	if m.leaving || to == nil {
		return false
	}
	m.leaving = true
	if m.opts.Sounds != nil {
		if _, err := m.opts.Sounds.Play(ClickSound, 1); err != nil {
			log.Printf("menu: %v", err)
		}
	}
	m.opts.Switcher.SwitchToWith(to(), t)
	return true
}

func (m *Menu) TouchDown(x, y, pointer int, button ebiten.MouseButton) bool {
	return m.leave(m.opts.Play, m.slide())
}

func (m *Menu) KeyDown(key ebiten.Key) bool {
	switch key {
	case ebiten.KeyF:
		return m.leave(m.opts.Play, m.fade())
	case ebiten.KeyP:
		return m.leave(m.opts.Sandbox, m.slide())
	}
	return false
}

func (m *Menu) Update(dt float64) {}

func (m *Menu) Render(batch graphics.Batch) {
	if m.opts.Face == nil {
		return
	}
	if m.title == nil {
		m.title = typeset.NewLabel(m.translate(Title), m.opts.Face, textColor)
		m.hint = typeset.NewLabel(m.translate(Hint), m.opts.Face, textColor)
	}

	titlePos := typeset.Center(m.title.Text, m.opts.Face, m.opts.WorldWidth, m.opts.WorldHeight)
	hintY := titlePos.Y() - 2*typeset.LineSpacing(m.opts.Face)
	hintPos := typeset.CenterX(m.hint.Text, m.opts.Face, hintY, m.opts.WorldWidth)

	batch.SetProjection(m.projection)
	batch.Begin()
	batch.SetColor(graphics.White)
	m.title.Draw(batch, titlePos)
	m.hint.Draw(batch, hintPos)
	batch.End()
}

// Hide lets a menu that is shown again accept input.
func (m *Menu) Hide() {
	m.leaving = false
}

func (m *Menu) Dispose() {
	if m.title != nil {
		m.title.Dispose()
		m.hint.Dispose()
		m.title, m.hint = nil, nil
	}
}

var _ screen.Screen = (*Menu)(nil)
