package model

import "testing"

func mustGrid(t testing.TB, width, height int) *Grid {
	t.Helper()
	g, err := NewGrid(width, height)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", width, height, err)
	}
	return g
}

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	cases := []struct{ width, height int }{
		{0, 10},
		{10, 0},
		{-1, 5},
		{5, -3},
		{0, 0},
	}
	for _, c := range cases {
		if g, err := NewGrid(c.width, c.height); err == nil {
			t.Errorf("NewGrid(%d, %d) = %v, want error", c.width, c.height, g)
		}
	}
}

func TestNewGridAllDead(t *testing.T) {
	g := mustGrid(t, 7, 4)
	if g.GetWidth() != 7 || g.GetHeight() != 4 {
		t.Fatalf("dimensions %dx%d, want 7x4", g.GetWidth(), g.GetHeight())
	}
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("new grid has %d living cells", n)
	}
}

func TestSetGetOutOfRange(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Set(-1, 0, true)
	g.Set(3, 1, true)
	g.Set(1, 3, true)
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("out-of-range Set changed %d cells", n)
	}
	if g.Get(-1, -1) || g.Get(3, 0) || g.Get(0, 3) {
		t.Fatal("out-of-range Get reported a live cell")
	}

	g.Set(2, 2, true)
	if !g.Get(2, 2) {
		t.Fatal("Set(2, 2) not visible through Get")
	}
}

func TestCountLiveNeighborsBounds(t *testing.T) {
	g := mustGrid(t, 5, 5)
	for y := range 5 {
		for x := range 5 {
			g.Set(x, y, true)
		}
	}

	cases := []struct {
		x, y, want int
	}{
		{0, 0, 3},
		{4, 0, 3},
		{0, 4, 3},
		{4, 4, 3},
		{2, 0, 5},
		{0, 2, 5},
		{4, 2, 5},
		{2, 4, 5},
		{2, 2, 8},
		{1, 3, 8},
	}
	for _, c := range cases {
		if got := g.CountLiveNeighbors(c.x, c.y); got != c.want {
			t.Errorf("CountLiveNeighbors(%d, %d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}

	for y := range 5 {
		for x := range 5 {
			if n := g.CountLiveNeighbors(x, y); n < 0 || n > 8 {
				t.Errorf("CountLiveNeighbors(%d, %d) = %d, out of [0,8]", x, y, n)
			}
		}
	}
}

func TestCountLiveNeighborsDoesNotWrap(t *testing.T) {
	g := mustGrid(t, 4, 4)
	// cells that would neighbor (0,0) on a torus
	g.Set(3, 0, true)
	g.Set(0, 3, true)
	g.Set(3, 3, true)
	if n := g.CountLiveNeighbors(0, 0); n != 0 {
		t.Fatalf("corner saw %d wrapped neighbors", n)
	}

	lone := mustGrid(t, 4, 4)
	lone.Set(0, 0, true)
	if n := lone.CountLiveNeighbors(0, 0); n != 0 {
		t.Fatalf("lone cell counted itself: %d", n)
	}
	if n := lone.CountLiveNeighbors(1, 1); n != 1 {
		t.Fatalf("CountLiveNeighbors(1, 1) = %d, want 1", n)
	}
}

func TestCloneAndEqual(t *testing.T) {
	g := mustGrid(t, 4, 3)
	g.Stamp(Blinker, 0, 1)

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone differs from original")
	}
	c.Set(3, 0, true)
	if c.Equal(g) || g.Get(3, 0) {
		t.Fatal("clone shares cell storage with original")
	}

	other := mustGrid(t, 3, 4)
	if g.Equal(other) || g.Equal(nil) {
		t.Fatal("grids with different dimensions compare equal")
	}
}

func TestGetGridHash(t *testing.T) {
	a := mustGrid(t, 6, 6)
	b := mustGrid(t, 6, 6)
	if a.GetGridHash() != b.GetGridHash() {
		t.Fatal("equal grids hash differently")
	}
	b.Set(2, 3, true)
	if a.GetGridHash() == b.GetGridHash() {
		t.Fatal("different grids hash the same")
	}
}

func TestActiveBounds(t *testing.T) {
	g := mustGrid(t, 10, 10)
	if b := g.ActiveBounds(); b.Valid || b.Size() != 0 {
		t.Fatalf("empty grid bounds = %+v", b)
	}

	g.Stamp(Glider, 2, 3)
	b := g.ActiveBounds()
	want := Bounds{MinX: 2, MaxX: 4, MinY: 3, MaxY: 5, Valid: true}
	if b != want {
		t.Fatalf("bounds = %+v, want %+v", b, want)
	}
	if b.Size() != 9 {
		t.Fatalf("size = %d, want 9", b.Size())
	}
}
