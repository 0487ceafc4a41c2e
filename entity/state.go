package entity

import "github.com/hajimehoshi/ebiten/v2"

// DrawState is the render state handed down a draw call chain. The entity
// core only composes GeoM; every other field passes through untouched so
// callers can tint or filter a whole subtree of draws.
type DrawState struct {
	GeoM       ebiten.GeoM
	ColorScale ebiten.ColorScale
	Filter     ebiten.Filter
}

// ImageOptions converts the state into draw options for ebiten.Image.DrawImage.
func (s DrawState) ImageOptions() *ebiten.DrawImageOptions {
	return &ebiten.DrawImageOptions{
		GeoM:       s.GeoM,
		ColorScale: s.ColorScale,
		Filter:     s.Filter,
	}
}
