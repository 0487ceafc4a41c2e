package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/nontypeable/hse-game/prefabs"
)

func playerSpec() *prefabs.PlayerSpec {
	return &prefabs.PlayerSpec{
		Speed:  100,
		Width:  20,
		Height: 20,
		StartX: 100,
		StartY: 100,
	}
}

func TestPlayerMovesWithInput(t *testing.T) {
	cases := []struct {
		name         string
		moveX, moveY float64
		wantDX       float64
		wantDY       float64
	}{
		{"right", 1, 0, 100, 0},
		{"up", 0, -1, 0, -100},
		{"idle", 0, 0, 0, 0},
		// diagonal movement is normalized, not faster
		{"diagonal", 1, 1, 100 / math.Sqrt2, 100 / math.Sqrt2},
	}

	area := cp.BB{L: 0, B: 0, R: 1000, T: 1000}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			input := NewInput()
			e := NewPlayer(playerSpec(), input, area)
			start := e.Position()

			input.MoveX, input.MoveY = c.moveX, c.moveY
			for i := 0; i < 60; i++ {
				e.Update(1.0 / 60.0)
			}

			p := e.Position()
			if math.Abs(p.X-start.X-c.wantDX) > 1e-6 || math.Abs(p.Y-start.Y-c.wantDY) > 1e-6 {
				t.Fatalf("after 1s moved (%v,%v), want (%v,%v)",
					p.X-start.X, p.Y-start.Y, c.wantDX, c.wantDY)
			}
		})
	}
}

func TestPlayerClampsToArea(t *testing.T) {
	area := cp.BB{L: 0, B: 0, R: 200, T: 200}
	input := NewInput()
	e := NewPlayer(playerSpec(), input, area)

	input.MoveX = 1
	for i := 0; i < 600; i++ {
		e.Update(1.0 / 60.0)
	}

	// position is the center; half the player size stays inside
	if p := e.Position(); p.X != 190 {
		t.Fatalf("player escaped the area, x=%v", p.X)
	}
	if bb := e.GlobalBounds(); bb.R > 200+1e-9 {
		t.Fatalf("player bounds outside the area: %+v", bb)
	}
}
