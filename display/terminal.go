package display

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	// gridPosBlock is drawn twice per pixel so cells come out roughly square
	gridPosBlock = '█'
	pixelColumns = 2

	// statusRows lines at the top of the terminal are kept for the caption
	statusRows = 1
)

func init() {
	Register("terminal", func(Options) Surface { return NewTerminal(tcell.NewScreen) })
}

// Terminal renders to a terminal through tcell. One pixel is two columns of
// one row, so callers normally use a cell size of 1.
type Terminal struct {
	newScreen func() (tcell.Screen, error)
	screen    tcell.Screen
	caption   string
}

// NewTerminal returns a terminal surface whose screen is created by newScreen on Open
func NewTerminal(newScreen func() (tcell.Screen, error)) *Terminal {
	return &Terminal{newScreen: newScreen}
}

func (t *Terminal) Open(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("[Terminal.Open] invalid surface size %dx%d", width, height)
	}

	screen, err := t.newScreen()
	if err != nil {
		return errors.Wrap(err, "[Terminal.Open] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[Terminal.Open] failed to initialise screen")
	}
	screen.HideCursor()
	screen.Clear()

	t.screen = screen
	return nil
}

func (t *Terminal) FillRect(r image.Rectangle, c color.RGBA) error {
	if t.screen == nil {
		return errors.New("[Terminal.FillRect] screen not open")
	}
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			for col := 0; col < pixelColumns; col++ {
				t.screen.SetContent(x*pixelColumns+col, y+statusRows, gridPosBlock, nil, style)
			}
		}
	}
	return nil
}

func (t *Terminal) Present() error {
	if t.screen == nil {
		return errors.New("[Terminal.Present] screen not open")
	}
	width, _ := t.screen.Size()
	captionRunes := []rune(t.caption)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(captionRunes) {
			r = captionRunes[x]
		}
		t.screen.SetContent(x, 0, r, nil, tcell.StyleDefault)
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) PollEvents() []Event {
	if t.screen == nil {
		return nil
	}
	var events []Event
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' || ev.Rune() == 'Q' {
				events = append(events, Event{Kind: EventQuit})
			} else {
				events = append(events, Event{Kind: EventKey})
			}
		case *tcell.EventResize:
			t.screen.Sync()
			events = append(events, Event{Kind: EventResize})
		case nil:
			// screen finalized
			return append(events, Event{Kind: EventQuit})
		}
	}
	return events
}

func (t *Terminal) Close() error {
	if t.screen == nil {
		return errors.New("[Terminal.Close] screen not open")
	}
	t.screen.Fini()
	t.screen = nil
	return nil
}

func (t *Terminal) SetCaption(caption string) {
	t.caption = caption
}
