package obj

import (
	"fmt"
	"image/color"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/nontypeable/hse-game/entity"
	"github.com/nontypeable/hse-game/prefabs"
)

// Ghost chases a target entity. Its movement is scripted: a tengo script
// receives the ghost and target positions each frame and writes the new
// position back, so chase behavior can be tweaked without recompiling.
type Ghost struct {
	self   *entity.Entity
	target *entity.Entity

	size  cp.Vector
	clr   color.Color
	speed float64

	compiled *tengo.Compiled

	img *ebiten.Image
}

func NewGhost(spec *prefabs.GhostSpec, target *entity.Entity) (*entity.Entity, error) {
	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		return nil, fmt.Errorf("ghost: load script %s: %w", spec.Script, err)
	}
	compiled, err := compileGhostScript(src, spec.Speed)
	if err != nil {
		return nil, fmt.Errorf("ghost: compile %s: %w", spec.Script, err)
	}

	clr := color.Color(colornames.Mediumpurple)
	if spec.Color != nil && spec.Color.Color != nil {
		clr = spec.Color.Color
	}

	g := &Ghost{
		target:   target,
		size:     cp.Vector{X: spec.Width, Y: spec.Height},
		clr:      clr,
		speed:    spec.Speed,
		compiled: compiled,
	}

	e := entity.New(g)
	g.self = e
	e.SetOrigin(cp.Vector{X: spec.Width / 2, Y: spec.Height / 2})
	e.SetPosition(cp.Vector{X: spec.StartX, Y: spec.StartY})
	return e, nil
}

func compileGhostScript(src []byte, speed float64) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	_ = script.Add("dt", 0.0)
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)
	_ = script.Add("px", 0.0)
	_ = script.Add("py", 0.0)
	_ = script.Add("speed", speed)
	_ = script.Add("t", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))
	return script.Compile()
}

func (g *Ghost) Update(dt float64) {
	if g.compiled == nil || g.target == nil {
		return
	}

	pos := g.self.Position()
	tpos := g.target.Position()

	if err := g.setScriptVars(dt, pos, tpos); err != nil {
		log.Printf("ghost: set script vars: %v", err)
		return
	}
	if err := g.compiled.Run(); err != nil {
		log.Printf("ghost: script run: %v", err)
		g.compiled = nil // don't spam every frame
		return
	}

	g.self.SetPosition(cp.Vector{
		X: g.compiled.Get("x").Float(),
		Y: g.compiled.Get("y").Float(),
	})
}

func (g *Ghost) setScriptVars(dt float64, pos, tpos cp.Vector) error {
	if err := g.compiled.Set("dt", dt); err != nil {
		return err
	}
	if err := g.compiled.Set("x", pos.X); err != nil {
		return err
	}
	if err := g.compiled.Set("y", pos.Y); err != nil {
		return err
	}
	if err := g.compiled.Set("px", tpos.X); err != nil {
		return err
	}
	return g.compiled.Set("py", tpos.Y)
}

func (g *Ghost) LocalBounds() cp.BB {
	return cp.BB{L: 0, B: 0, R: g.size.X, T: g.size.Y}
}

func (g *Ghost) Draw(dst *ebiten.Image, state entity.DrawState) {
	if g.img == nil {
		g.img = ebiten.NewImage(int(g.size.X), int(g.size.Y))
		g.img.Fill(g.clr)
	}
	dst.DrawImage(g.img, state.ImageOptions())
}
