package display

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func openSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	term := NewTerminal(func() (tcell.Screen, error) { return sim, nil })
	if err := term.Open(10, 5); err != nil {
		t.Fatalf("Open: %v", err)
	}
	return term, sim
}

func TestTerminalFillRect(t *testing.T) {
	term, sim := openSimTerminal(t)
	defer term.Close()

	orange := color.RGBA{R: 255, G: 155, A: 255}
	if err := term.FillRect(image.Rect(1, 2, 2, 3), orange); err != nil {
		t.Fatal(err)
	}
	term.SetCaption("Gen: 1")
	if err := term.Present(); err != nil {
		t.Fatal(err)
	}

	for _, col := range []int{2, 3} {
		r, _, style, _ := sim.GetContent(col, 2+statusRows)
		fg, _, _ := style.Decompose()
		if r != gridPosBlock || fg != tcell.NewRGBColor(255, 155, 0) {
			t.Errorf("column %d: rune %q fg %v", col, r, fg)
		}
	}
	if r, _, _, _ := sim.GetContent(0, 0); r != 'G' {
		t.Errorf("caption not drawn, got %q", r)
	}
}

func TestTerminalQuitKeys(t *testing.T) {
	cases := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			term, sim := openSimTerminal(t)
			defer term.Close()

			if HasQuit(term.PollEvents()) {
				t.Fatal("quit before any key")
			}
			sim.InjectKey(c.key, c.r, tcell.ModNone)
			if !HasQuit(term.PollEvents()) {
				t.Fatal("key did not quit")
			}
		})
	}
}

func TestTerminalRejectsBadSize(t *testing.T) {
	term := NewTerminal(func() (tcell.Screen, error) { return tcell.NewSimulationScreen(""), nil })
	if err := term.Open(0, 3); err == nil {
		t.Fatal("Open accepted zero width")
	}
	if err := term.Close(); err == nil {
		t.Fatal("Close of unopened terminal succeeded")
	}
}
