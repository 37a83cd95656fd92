package display

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

func init() {
	Register("ebiten", func(opts Options) Surface { return NewEbiten(opts.Title) })
}

var captionBackdrop = color.RGBA{A: 0xa0}

// Ebiten draws into an offscreen image that is copied to the window on every
// ebiten Draw call. Ebiten owns the main loop, so the driver runs through RunLoop.
type Ebiten struct {
	title   string
	width   int
	height  int
	canvas  *ebiten.Image
	caption string
	open    bool
}

// NewEbiten returns an unopened ebiten window surface
func NewEbiten(title string) *Ebiten {
	return &Ebiten{title: title}
}

func (e *Ebiten) Open(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("[Ebiten.Open] invalid window size %dx%d", width, height)
	}
	e.width, e.height = width, height

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowClosingHandled(true)

	e.open = true
	return nil
}

func (e *Ebiten) FillRect(r image.Rectangle, c color.RGBA) error {
	if !e.open {
		return errors.New("[Ebiten.FillRect] window not open")
	}
	// images can only be created once the game loop is running
	if e.canvas == nil {
		e.canvas = ebiten.NewImage(e.width, e.height)
	}
	vector.DrawFilledRect(e.canvas, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
	return nil
}

// Present is a no-op: ebiten calls Draw after every Update and the canvas is
// complete by then.
func (e *Ebiten) Present() error {
	if !e.open {
		return errors.New("[Ebiten.Present] window not open")
	}
	return nil
}

func (e *Ebiten) PollEvents() []Event {
	var events []Event
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		events = append(events, Event{Kind: EventQuit})
	}
	return events
}

func (e *Ebiten) Close() error {
	if !e.open {
		return errors.New("[Ebiten.Close] window not open")
	}
	if e.canvas != nil {
		e.canvas.Deallocate()
		e.canvas = nil
	}
	e.open = false
	return nil
}

func (e *Ebiten) SetCaption(caption string) {
	e.caption = caption
}

// RunLoop runs frame at fps ticks per second until it reports quit
func (e *Ebiten) RunLoop(fps int, frame func() (bool, error)) error {
	ebiten.SetTPS(fps)
	if err := ebiten.RunGame(&ebitenGame{surface: e, frame: frame}); err != nil {
		return errors.Wrap(err, "[Ebiten.RunLoop] game loop failed")
	}
	return nil
}

// ebitenGame adapts the driver's frame function to ebiten.Game
type ebitenGame struct {
	surface *Ebiten
	frame   func() (bool, error)
}

func (g *ebitenGame) Update() error {
	quit, err := g.frame()
	if err != nil {
		return err
	}
	if quit {
		return ebiten.Termination
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	if g.surface.canvas != nil {
		screen.DrawImage(g.surface.canvas, nil)
	}
	if g.surface.caption != "" {
		w := len(g.surface.caption)*basicfont.Face7x13.Advance + 12
		vector.DrawFilledRect(screen, 0, 0, float32(w), 22, captionBackdrop, false)
		text.Draw(screen, g.surface.caption, basicfont.Face7x13, 6, 16, color.White)
	}
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.surface.width, g.surface.height
}
