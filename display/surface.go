// Package display defines the drawing surface the simulation renders to and
// the backends that implement it.
package display

import (
	"image"
	"image/color"
)

// EventKind identifies a polled event
type EventKind int

const (
	// EventQuit asks the simulation to stop: window closed, Escape, Q or Ctrl-C
	EventQuit EventKind = iota + 1
	// EventKey is any other key press
	EventKey
	// EventResize reports a change of the host window or terminal size
	EventResize
)

// Event is a single input event returned by PollEvents
type Event struct {
	Kind EventKind
}

// Surface is a window or screen that the driver draws grid cells on.
//
// All methods are called from a single goroutine. PollEvents must not block.
type Surface interface {
	// Open creates the window with the given size in pixels
	Open(width, height int) error
	// FillRect fills r with c on the back buffer
	FillRect(r image.Rectangle, c color.RGBA) error
	// Present shows the back buffer
	Present() error
	// PollEvents returns the events queued since the last call
	PollEvents() []Event
	// Close releases the window
	Close() error
}

// LoopOwner is implemented by surfaces whose library insists on running the
// main loop itself. RunLoop calls frame fps times per second until frame
// reports quit or fails.
type LoopOwner interface {
	RunLoop(fps int, frame func() (quit bool, err error)) error
}

// Captioner is implemented by surfaces that can show a one-line status
type Captioner interface {
	SetCaption(caption string)
}

// HasQuit reports whether events contains a quit request
func HasQuit(events []Event) bool {
	for _, ev := range events {
		if ev.Kind == EventQuit {
			return true
		}
	}
	return false
}
