package display

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/pkg/errors"
)

func init() {
	Register("headless", func(opts Options) Surface { return NewHeadless(opts.MaxFrames) })
}

// Headless is an in-memory surface. It never shows anything; it keeps the
// last frame as an image and can stop the run after a fixed number of frames.
type Headless struct {
	maxFrames int

	back      *image.RGBA
	front     *image.RGBA
	opens     int
	closes    int
	presented int
	fills     int
	caption   string
	pending   []Event
}

// NewHeadless returns a headless surface that emits a quit event once
// maxFrames frames have been presented. maxFrames <= 0 never quits.
func NewHeadless(maxFrames int) *Headless {
	return &Headless{maxFrames: maxFrames}
}

func (h *Headless) Open(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("[Headless.Open] invalid surface size %dx%d", width, height)
	}
	if h.back != nil {
		return errors.New("[Headless.Open] surface already open")
	}
	h.back = image.NewRGBA(image.Rect(0, 0, width, height))
	h.front = image.NewRGBA(h.back.Rect)
	h.opens++
	return nil
}

func (h *Headless) FillRect(r image.Rectangle, c color.RGBA) error {
	if h.back == nil {
		return errors.New("[Headless.FillRect] surface not open")
	}
	draw.Draw(h.back, r, image.NewUniform(c), image.Point{}, draw.Src)
	h.fills++
	return nil
}

func (h *Headless) Present() error {
	if h.back == nil {
		return errors.New("[Headless.Present] surface not open")
	}
	copy(h.front.Pix, h.back.Pix)
	h.presented++
	return nil
}

func (h *Headless) PollEvents() []Event {
	events := h.pending
	h.pending = nil
	if h.maxFrames > 0 && h.presented >= h.maxFrames {
		events = append(events, Event{Kind: EventQuit})
	}
	return events
}

func (h *Headless) Close() error {
	if h.back == nil {
		return errors.New("[Headless.Close] surface not open")
	}
	h.back = nil
	h.closes++
	return nil
}

func (h *Headless) SetCaption(caption string) {
	h.caption = caption
}

// Push queues an event for the next PollEvents call
func (h *Headless) Push(ev Event) {
	h.pending = append(h.pending, ev)
}

// Frame returns the last presented frame, or nil before the first Open
func (h *Headless) Frame() *image.RGBA {
	return h.front
}

// Presented returns the number of presented frames
func (h *Headless) Presented() int { return h.presented }

// Fills returns the number of FillRect calls
func (h *Headless) Fills() int { return h.fills }

// Opens returns how many times the surface was opened
func (h *Headless) Opens() int { return h.opens }

// Closes returns how many times the surface was closed
func (h *Headless) Closes() int { return h.closes }

// Caption returns the last caption set on the surface
func (h *Headless) Caption() string { return h.caption }
