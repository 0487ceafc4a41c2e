package obj

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/nontypeable/hse-game/prefabs"
)

func ghostSpec() *prefabs.GhostSpec {
	return &prefabs.GhostSpec{
		Width:  24,
		Height: 24,
		Speed:  120,
		StartX: 0,
		StartY: 0,
		Script: "ghost.tengo",
	}
}

func dist(a, b cp.Vector) float64 {
	return a.Sub(b).Length()
}

func TestGhostChasesTarget(t *testing.T) {
	target := NewCoin(coinSpec(), cp.Vector{X: 300, Y: 300})
	ghost, err := NewGhost(ghostSpec(), target)
	if err != nil {
		t.Fatalf("NewGhost: %v", err)
	}

	before := dist(ghost.Position(), target.Position())
	for i := 0; i < 120; i++ {
		ghost.Update(1.0 / 60.0)
	}
	after := dist(ghost.Position(), target.Position())

	if after >= before {
		t.Fatalf("ghost did not close in: %v -> %v", before, after)
	}
	// 2 simulated seconds at speed 120 should cover most of the gap
	if before-after < 100 {
		t.Fatalf("ghost moved too slowly: closed %v", before-after)
	}
}

func TestNewGhostRejectsMissingScript(t *testing.T) {
	spec := ghostSpec()
	spec.Script = "does_not_exist.tengo"

	if _, err := NewGhost(spec, nil); err == nil {
		t.Fatalf("expected error for missing script")
	}
}
