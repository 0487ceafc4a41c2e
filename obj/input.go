package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the polled keyboard state for the current frame.
type Input struct {
	// MoveX/MoveY are -1, 0 or +1 per axis.
	MoveX float64
	MoveY float64
	// PauseJustPressed is true on the frame Escape was pressed.
	PauseJustPressed bool
	// DebugJustPressed is true on the frame F3 was pressed.
	DebugJustPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard. Call once per frame before entity updates.
func (i *Input) Update() {
	i.MoveX, i.MoveY = 0, 0

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		i.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		i.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		i.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		i.MoveY++
	}

	i.PauseJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.DebugJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
}
