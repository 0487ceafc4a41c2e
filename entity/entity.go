// Package entity is the base abstraction for renderable, updatable game
// objects. An Entity pairs a Transform and three lifecycle flags with a
// Behavior supplied by the concrete variant; the Entity itself owns the
// draw gate, so dead or hidden entities never reach rendering code.
//
// Rectangles use cp.BB in screen coordinates (L/B is the top-left corner,
// R/T the bottom-right). Overlap and containment follow cp's inclusive
// convention: touching edges intersect and boundary points are contained.
package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// Behavior is what a concrete entity variant supplies: per-frame state
// advancement, its bounding box in local (untransformed) coordinates, and
// drawing of its own geometry.
//
// Draw receives a state whose GeoM already includes the entity transform;
// implementations must not re-apply it.
type Behavior interface {
	Update(dt float64)
	LocalBounds() cp.BB
	Draw(dst *ebiten.Image, state DrawState)
}

// Entity wraps a Behavior with a transform and lifecycle flags. All entities
// go through Entity.Draw; there is no way for a variant to bypass the
// visibility/liveness gate or the transform composition.
//
// Entities are not safe for concurrent use. Update and Draw are plain
// synchronous calls made once per frame by whoever owns the entity.
type Entity struct {
	Transform

	behavior Behavior

	alive   bool
	active  bool
	visible bool
}

// New wraps behavior in an Entity with an identity transform and all three
// lifecycle flags set.
func New(behavior Behavior) *Entity {
	return &Entity{
		Transform: NewTransform(),
		behavior:  behavior,
		alive:     true,
		active:    true,
		visible:   true,
	}
}

// Behavior returns the wrapped variant.
func (e *Entity) Behavior() Behavior {
	return e.behavior
}

// Update forwards dt (seconds) to the behavior. It performs no flag checks;
// the owner decides whether to call it based on Active.
func (e *Entity) Update(dt float64) {
	e.behavior.Update(dt)
}

// LocalBounds returns the behavior's bounding box in local coordinates.
func (e *Entity) LocalBounds() cp.BB {
	return e.behavior.LocalBounds()
}

// GlobalBounds maps the current local bounds through the current transform.
// The result is never cached.
func (e *Entity) GlobalBounds() cp.BB {
	return e.Transform.Apply(e.behavior.LocalBounds())
}

// Alive reports whether the entity is still logically present. Once false
// the entity draws nothing and should be dropped by its owner on the next
// sweep; deallocation is the owner's job, not the entity's.
func (e *Entity) Alive() bool {
	return e.alive
}

// MarkForRemoval clears the alive flag. There is no way to set it back.
func (e *Entity) MarkForRemoval() {
	e.alive = false
}

// Active reports whether the owner should keep calling Update. Advisory
// only; Update itself does not check it.
func (e *Entity) Active() bool {
	return e.active
}

func (e *Entity) SetActive(active bool) {
	e.active = active
}

// Visible reports whether Draw delegates to the behavior.
func (e *Entity) Visible() bool {
	return e.visible
}

func (e *Entity) SetVisible(visible bool) {
	e.visible = visible
}

// Intersects reports whether the global bounds of both entities overlap.
func (e *Entity) Intersects(other *Entity) bool {
	return e.GlobalBounds().Intersects(other.GlobalBounds())
}

// Contains reports whether point (in world coordinates) lies inside the
// global bounds.
func (e *Entity) Contains(point cp.Vector) bool {
	return e.GlobalBounds().ContainsVect(point)
}

// Draw is the single entry point for rendering. It no-ops when the entity
// is hidden or marked for removal; otherwise it composes the entity
// transform into state.GeoM (entity transform first, then the inherited
// state transform, so nested draws stack correctly) and delegates to the
// behavior.
func (e *Entity) Draw(dst *ebiten.Image, state DrawState) {
	if !e.visible || !e.alive {
		return
	}
	g := e.Transform.GeoM()
	g.Concat(state.GeoM)
	state.GeoM = g
	e.behavior.Draw(dst, state)
}
