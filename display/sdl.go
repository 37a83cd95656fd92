//go:build sdl

package display

import (
	"image"
	"image/color"
	"runtime"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL video calls must come from the main OS thread
	runtime.LockOSThread()
	Register("sdl", func(opts Options) Surface { return NewSDL(opts.Title) })
}

// SDL draws straight into the window surface of an SDL2 window.
// Built only with the sdl tag since it needs cgo and the SDL2 libraries.
type SDL struct {
	title   string
	window  *sdl.Window
	surface *sdl.Surface
}

// NewSDL returns an unopened SDL window surface
func NewSDL(title string) *SDL {
	return &SDL{title: title}
}

func (s *SDL) Open(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("[SDL.Open] invalid window size %dx%d", width, height)
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "[SDL.Open] failed to initialise video")
	}

	window, err := sdl.CreateWindow(s.title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return errors.Wrap(err, "[SDL.Open] failed to create window")
	}

	surface, err := window.GetSurface()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return errors.Wrap(err, "[SDL.Open] failed to get window surface")
	}

	s.window, s.surface = window, surface
	return nil
}

func (s *SDL) FillRect(r image.Rectangle, c color.RGBA) error {
	if s.surface == nil {
		return errors.New("[SDL.FillRect] window not open")
	}
	rect := sdl.Rect{X: int32(r.Min.X), Y: int32(r.Min.Y), W: int32(r.Dx()), H: int32(r.Dy())}
	pixel := sdl.MapRGBA(s.surface.Format, c.R, c.G, c.B, c.A)
	return errors.Wrap(s.surface.FillRect(&rect, pixel), "[SDL.FillRect]")
}

func (s *SDL) Present() error {
	if s.window == nil {
		return errors.New("[SDL.Present] window not open")
	}
	return errors.Wrap(s.window.UpdateSurface(), "[SDL.Present]")
}

func (s *SDL) PollEvents() []Event {
	var events []Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			events = append(events, Event{Kind: EventQuit})
		case *sdl.KeyboardEvent:
			if ev.State != sdl.PRESSED {
				continue
			}
			if ev.Keysym.Sym == sdl.K_ESCAPE || ev.Keysym.Sym == sdl.K_q {
				events = append(events, Event{Kind: EventQuit})
			} else {
				events = append(events, Event{Kind: EventKey})
			}
		}
	}
	return events
}

func (s *SDL) Close() error {
	if s.window == nil {
		return errors.New("[SDL.Close] window not open")
	}
	err := s.window.Destroy()
	s.window, s.surface = nil, nil
	sdl.Quit()
	return errors.Wrap(err, "[SDL.Close] failed to destroy window")
}

func (s *SDL) SetCaption(caption string) {
	if s.window != nil {
		s.window.SetTitle(caption)
	}
}
