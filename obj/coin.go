package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/nontypeable/hse-game/entity"
	"github.com/nontypeable/hse-game/prefabs"
)

// Coin bobs in place until the player's bounds overlap it; collection is the
// game's job (it marks the coin for removal), the coin only animates itself.
type Coin struct {
	self *entity.Entity

	base      cp.Vector
	size      float64
	clr       color.Color
	amplitude float64
	frequency float64
	phase     float64
	t         float64

	img *ebiten.Image
}

func NewCoin(spec *prefabs.CoinSpec, at cp.Vector) *entity.Entity {
	clr := color.Color(colornames.Gold)
	if spec.Color != nil && spec.Color.Color != nil {
		clr = spec.Color.Color
	}

	c := &Coin{
		base:      at,
		size:      spec.Size,
		clr:       clr,
		amplitude: spec.BobAmplitude,
		frequency: spec.BobFrequency,
		// desynchronize coins placed on the same row
		phase: float64(int(at.X)%7) * 0.3,
	}

	e := entity.New(c)
	c.self = e
	e.SetOrigin(cp.Vector{X: spec.Size / 2, Y: spec.Size / 2})
	e.SetPosition(at)
	return e
}

func (c *Coin) Update(dt float64) {
	c.t += dt
	offset := math.Sin(c.t*c.frequency+c.phase) * c.amplitude
	c.self.SetPosition(cp.Vector{X: c.base.X, Y: c.base.Y + offset})
}

func (c *Coin) LocalBounds() cp.BB {
	return cp.BB{L: 0, B: 0, R: c.size, T: c.size}
}

func (c *Coin) Draw(dst *ebiten.Image, state entity.DrawState) {
	if c.img == nil {
		c.img = ebiten.NewImage(int(c.size), int(c.size))
		c.img.Fill(c.clr)
	}
	dst.DrawImage(c.img, state.ImageOptions())
}
