package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/nontypeable/hse-game/common"
	"github.com/nontypeable/hse-game/entity"
	"github.com/nontypeable/hse-game/prefabs"
)

// Player is the keyboard-driven entity. Movement is clamped to the playing
// area; rendering is a flat colored square.
type Player struct {
	self  *entity.Entity
	input *Input

	speed float64
	size  cp.Vector
	clr   color.Color
	area  cp.BB

	img *ebiten.Image
}

// NewPlayer builds the player entity from its spec. area is the world-space
// box the player may move in.
func NewPlayer(spec *prefabs.PlayerSpec, input *Input, area cp.BB) *entity.Entity {
	clr := color.Color(colornames.Steelblue)
	if spec.Color != nil && spec.Color.Color != nil {
		clr = spec.Color.Color
	}

	p := &Player{
		input: input,
		speed: spec.Speed,
		size:  cp.Vector{X: spec.Width, Y: spec.Height},
		clr:   clr,
		area:  area,
	}

	e := entity.New(p)
	p.self = e
	e.SetOrigin(cp.Vector{X: spec.Width / 2, Y: spec.Height / 2})
	e.SetPosition(cp.Vector{X: spec.StartX, Y: spec.StartY})
	return e
}

func (p *Player) Update(dt float64) {
	if p.input == nil {
		return
	}

	dir := cp.Vector{X: p.input.MoveX, Y: p.input.MoveY}
	if dir.X != 0 || dir.Y != 0 {
		p.self.Move(dir.Normalize().Mult(p.speed * dt))
	}

	pos := p.self.Position()
	pos.X = common.Clamp(pos.X, p.area.L+p.size.X/2, p.area.R-p.size.X/2)
	pos.Y = common.Clamp(pos.Y, p.area.B+p.size.Y/2, p.area.T-p.size.Y/2)
	p.self.SetPosition(pos)
}

func (p *Player) LocalBounds() cp.BB {
	return cp.BB{L: 0, B: 0, R: p.size.X, T: p.size.Y}
}

func (p *Player) Draw(dst *ebiten.Image, state entity.DrawState) {
	if p.img == nil {
		p.img = ebiten.NewImage(int(p.size.X), int(p.size.Y))
		p.img.Fill(p.clr)
	}
	dst.DrawImage(p.img, state.ImageOptions())
}
