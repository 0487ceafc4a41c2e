package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/nontypeable/hse-game/entity"
	"github.com/nontypeable/hse-game/obj"
	"github.com/nontypeable/hse-game/prefabs"
)

const ghostStunFrames = 90

// Game owns the entities and drives the frame loop: it gates Update on the
// active flag, resolves overlaps through the entities' global bounds, sweeps
// dead entities, and hands every draw through the entity draw gate.
type Game struct {
	spec       *prefabs.GameSpec
	background color.Color

	debug  bool
	paused bool
	score  int

	input    *obj.Input
	player   *entity.Entity
	ghost    *entity.Entity
	coins    []*entity.Entity
	entities []*entity.Entity

	spawn cp.Vector
	stun  int

	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(debug bool) (*Game, error) {
	g := &Game{
		debug: debug,
		input: obj.NewInput(),
	}
	if err := g.loadScene(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if w, err := prefabs.NewWatcher("prefabs"); err == nil {
		g.watcher = w
	} else {
		log.Printf("prefabs: watcher disabled: %v", err)
	}
	return g, nil
}

// loadScene (re)builds every entity from the yaml specs. The score survives
// a reload; the entities do not.
func (g *Game) loadScene() error {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return err
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	coinSpec, err := prefabs.LoadCoinSpec()
	if err != nil {
		return err
	}
	ghostSpec, err := prefabs.LoadGhostSpec()
	if err != nil {
		return err
	}

	g.spec = spec
	g.background = color.Color(color.NRGBA{R: 0x1d, G: 0x23, B: 0x30, A: 0xff})
	if spec.Background != nil && spec.Background.Color != nil {
		g.background = spec.Background.Color
	}

	area := cp.BB{L: 0, B: 0, R: float64(spec.Width), T: float64(spec.Height)}
	g.entities = g.entities[:0]
	g.coins = g.coins[:0]
	g.stun = 0

	g.player = obj.NewPlayer(playerSpec, g.input, area)
	g.spawn = g.player.Position()
	g.entities = append(g.entities, g.player)

	for _, at := range spec.Coins {
		c := obj.NewCoin(coinSpec, cp.Vector{X: at.X, Y: at.Y})
		g.coins = append(g.coins, c)
		g.entities = append(g.entities, c)
	}

	ghost, err := obj.NewGhost(ghostSpec, g.player)
	if err != nil {
		return err
	}
	g.ghost = ghost
	g.entities = append(g.entities, ghost)

	return nil
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.PauseJustPressed {
		g.paused = !g.paused
	}
	if g.input.DebugJustPressed {
		g.debug = !g.debug
	}

	g.drainWatcher()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	dt := 1.0 / float64(ebiten.TPS())
	for _, e := range g.entities {
		if e.Active() {
			e.Update(dt)
		}
	}

	g.resolveOverlaps()
	g.sweep()
	return nil
}

func (g *Game) resolveOverlaps() {
	for _, c := range g.coins {
		if c.Alive() && g.player.Intersects(c) {
			c.MarkForRemoval()
			g.score++
		}
	}

	if g.ghost == nil {
		return
	}
	if g.stun > 0 {
		g.stun--
		g.ghost.SetVisible(g.stun/10%2 == 0)
		if g.stun == 0 {
			g.ghost.SetActive(true)
			g.ghost.SetVisible(true)
		}
		return
	}
	if g.ghost.Intersects(g.player) {
		if g.score > 0 {
			g.score--
		}
		g.player.SetPosition(g.spawn)
		// stun the ghost so the catch isn't immediately repeated; it keeps
		// rendering (blinking) but stops receiving updates
		g.ghost.SetActive(false)
		g.stun = ghostStunFrames
	}
}

// sweep drops entities marked for removal. Removal timing is owned here, not
// by the entities themselves.
func (g *Game) sweep() {
	alive := g.entities[:0]
	for _, e := range g.entities {
		if e.Alive() {
			alive = append(alive, e)
		}
	}
	g.entities = alive

	coins := g.coins[:0]
	for _, c := range g.coins {
		if c.Alive() {
			coins = append(coins, c)
		}
	}
	g.coins = coins

	if len(g.coins) == 0 {
		g.respawnCoins()
	}
}

func (g *Game) respawnCoins() {
	coinSpec, err := prefabs.LoadCoinSpec()
	if err != nil {
		log.Printf("coin respawn failed: %v", err)
		return
	}
	for _, at := range g.spec.Coins {
		c := obj.NewCoin(coinSpec, cp.Vector{X: at.X, Y: at.Y})
		g.coins = append(g.coins, c)
		g.entities = append(g.entities, c)
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: %s changed, reloading scene", name)
			if err := g.loadScene(); err != nil {
				log.Printf("prefabs: reload failed, keeping current scene: %v", err)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: watch error: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	zoom := g.spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	var state entity.DrawState
	if zoom != 1 {
		state.GeoM.Scale(zoom, zoom)
	}

	for _, e := range g.entities {
		e.Draw(screen, state)
	}

	if g.debug {
		for _, e := range g.entities {
			if e.Alive() && e.Visible() {
				drawBounds(screen, e, zoom)
			}
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("score: %d  fps: %.0f", g.score, ebiten.ActualFPS()))

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func drawBounds(screen *ebiten.Image, e *entity.Entity, zoom float64) {
	bb := e.GlobalBounds()
	vector.StrokeRect(screen,
		float32(bb.L*zoom), float32(bb.B*zoom),
		float32((bb.R-bb.L)*zoom), float32((bb.T-bb.B)*zoom),
		1, color.RGBA{R: 255, A: 255}, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Width, g.spec.Height
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}
