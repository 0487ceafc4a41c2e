package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// Transform holds the spatial state of an entity: position, rotation, scale
// and origin. The composed matrix is rebuilt on every query so bounds and
// draw calls always see the latest mutation.
type Transform struct {
	position cp.Vector
	origin   cp.Vector
	scale    cp.Vector
	rotation float64 // radians
}

func NewTransform() Transform {
	return Transform{scale: cp.Vector{X: 1, Y: 1}}
}

func (t *Transform) Position() cp.Vector {
	return t.position
}

func (t *Transform) SetPosition(p cp.Vector) {
	t.position = p
}

// Move shifts the position by delta.
func (t *Transform) Move(delta cp.Vector) {
	t.position = t.position.Add(delta)
}

// Origin is the local point the entity scales and rotates around, and the
// point placed at Position when drawing.
func (t *Transform) Origin() cp.Vector {
	return t.origin
}

func (t *Transform) SetOrigin(o cp.Vector) {
	t.origin = o
}

func (t *Transform) Scale() cp.Vector {
	return t.scale
}

func (t *Transform) SetScale(s cp.Vector) {
	t.scale = s
}

func (t *Transform) Rotation() float64 {
	return t.rotation
}

func (t *Transform) SetRotation(radians float64) {
	t.rotation = radians
}

// Rotate adds delta radians to the current rotation.
func (t *Transform) Rotate(delta float64) {
	t.rotation += delta
}

// GeoM returns the composed matrix: translate(-origin), scale, rotate,
// translate(position), in that order.
func (t *Transform) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-t.origin.X, -t.origin.Y)
	g.Scale(t.scale.X, t.scale.Y)
	g.Rotate(t.rotation)
	g.Translate(t.position.X, t.position.Y)
	return g
}

// Apply maps bb through the composed matrix and returns the minimal
// axis-aligned box containing the four transformed corners.
func (t *Transform) Apply(bb cp.BB) cp.BB {
	g := t.GeoM()

	x0, y0 := g.Apply(bb.L, bb.B)
	x1, y1 := g.Apply(bb.R, bb.B)
	x2, y2 := g.Apply(bb.L, bb.T)
	x3, y3 := g.Apply(bb.R, bb.T)

	return cp.BB{
		L: min(min(x0, x1), min(x2, x3)),
		B: min(min(y0, y1), min(y2, y3)),
		R: max(max(x0, x1), max(x2, x3)),
		T: max(max(y0, y1), max(y2, y3)),
	}
}
