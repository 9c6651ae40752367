// Package render draws the shop with ebiten and feeds window input to the
// input adapter.
package render

import (
	"errors"
	"image"

	"github.com/beka-birhanu/coffee-shop/input"
	"github.com/beka-birhanu/coffee-shop/service"
	"github.com/beka-birhanu/coffee-shop/service/i"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ErrMissingDependency = errors.New("renderer needs a store, a loop, an input adapter and both images")

// Game adapts the store and loop to ebiten's Update/Draw cycle. ebiten's
// update tick plays the role of the animation frame: each call feeds the loop
// one frame at the clock's current time.
type Game struct {
	store  i.GameStore
	loop   i.GameLoop
	input  *input.Adapter
	clock  service.Clock
	logger general_i.Logger

	tiles *ebiten.Image
	font  *ebiten.Image

	interp float64
	halted bool
}

// Config holds the renderer dependencies.
type Config struct {
	Store  i.GameStore
	Loop   i.GameLoop
	Input  *input.Adapter
	Clock  service.Clock
	Tiles  image.Image
	Font   image.Image
	Logger general_i.Logger
}

// NewGame uploads the images and returns a game ready for ebiten.RunGame.
func NewGame(c *Config) (*Game, error) {
	if c.Store == nil || c.Loop == nil || c.Input == nil || c.Tiles == nil || c.Font == nil {
		return nil, ErrMissingDependency
	}
	clock := c.Clock
	if clock == nil {
		clock = service.SystemClock{}
	}
	return &Game{
		store:  c.Store,
		loop:   c.Loop,
		input:  c.Input,
		clock:  clock,
		logger: c.Logger,
		tiles:  ebiten.NewImageFromImage(c.Tiles),
		font:   ebiten.NewImageFromImage(c.Font),
	}, nil
}

// SetInterpolation records where the current frame falls between updates.
// It is the loop's draw callback.
func (g *Game) SetInterpolation(interp float64) {
	g.interp = interp
}

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyArrowUp,
	ebiten.KeyArrowDown:  input.KeyArrowDown,
	ebiten.KeyArrowLeft:  input.KeyArrowLeft,
	ebiten.KeyArrowRight: input.KeyArrowRight,
	ebiten.KeyComma:      input.KeyComma,
	ebiten.KeyEscape:     input.KeyEscape,
}

// Update polls the keyboard and advances the loop by one frame.
func (g *Game) Update() error {
	meta := ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyAlt)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for key, k := range keyMap {
		if inpututil.IsKeyJustPressed(key) {
			g.input.Handle(input.KeyEvent{Key: k, Down: true, Meta: meta, Shift: shift})
		}
		if inpututil.IsKeyJustReleased(key) {
			g.input.Handle(input.KeyEvent{Key: k, Down: false, Meta: meta, Shift: shift})
		}
	}

	g.loop.Frame(g.clock.Now())
	if g.loop.Stopped() && !g.halted {
		g.halted = true
		if g.logger != nil {
			g.logger.Info("loop halted; close the window to exit")
		}
	}
	return nil
}

// Draw paints the current state. It never modifies the state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.render(screen, g.store.GetState())
}

// Layout keeps the logical screen size from the state.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.store.GetState()
	return s.Screen.Width, s.Screen.Height
}
