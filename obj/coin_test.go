package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/nontypeable/hse-game/prefabs"
)

func coinSpec() *prefabs.CoinSpec {
	return &prefabs.CoinSpec{
		Size:         14,
		BobAmplitude: 4,
		BobFrequency: 2,
	}
}

func TestCoinBobsAroundBase(t *testing.T) {
	base := cp.Vector{X: 100, Y: 200}
	e := NewCoin(coinSpec(), base)

	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := 0; i < 600; i++ {
		e.Update(1.0 / 60.0)
		p := e.Position()
		if p.X != base.X {
			t.Fatalf("coin drifted horizontally: %v", p.X)
		}
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	if minY < base.Y-4-1e-9 || maxY > base.Y+4+1e-9 {
		t.Fatalf("bob exceeded amplitude: [%v, %v]", minY, maxY)
	}
	if maxY-minY < 4 {
		t.Fatalf("coin barely moved over 10 simulated seconds: [%v, %v]", minY, maxY)
	}
}

func TestCoinBoundsCenterOnPosition(t *testing.T) {
	base := cp.Vector{X: 50, Y: 50}
	e := NewCoin(coinSpec(), base)

	bb := e.GlobalBounds()
	c := bb.Center()
	if math.Abs(c.X-base.X) > 1e-9 || math.Abs(c.Y-base.Y) > 1e-9 {
		t.Fatalf("origin should center bounds on position, center %+v", c)
	}
	if math.Abs((bb.R-bb.L)-14) > 1e-9 {
		t.Fatalf("bounds width %v, want 14", bb.R-bb.L)
	}
}
