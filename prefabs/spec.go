package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// GameSpec configures the window and the scene layout.
type GameSpec struct {
	Title      string      `yaml:"title"`
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Zoom       float64     `yaml:"zoom"`
	Background *ColorSpec  `yaml:"background"`
	Coins      []PointSpec `yaml:"coins"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlayerSpec struct {
	Speed  float64    `yaml:"speed"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *ColorSpec `yaml:"color"`
	StartX float64    `yaml:"start_x"`
	StartY float64    `yaml:"start_y"`
}

type CoinSpec struct {
	Size         float64    `yaml:"size"`
	Color        *ColorSpec `yaml:"color"`
	BobAmplitude float64    `yaml:"bob_amplitude"`
	BobFrequency float64    `yaml:"bob_frequency"`
}

// GhostSpec configures the scripted chaser; Script names a tengo file under
// prefabs/scripts.
type GhostSpec struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *ColorSpec `yaml:"color"`
	Speed  float64    `yaml:"speed"`
	StartX float64    `yaml:"start_x"`
	StartY float64    `yaml:"start_y"`
	Script string     `yaml:"script"`
}

func loadSpec[T any](filename string) (*T, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return &spec, nil
}

func LoadGameSpec() (*GameSpec, error) {
	return loadSpec[GameSpec]("game.yaml")
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	return loadSpec[PlayerSpec]("player.yaml")
}

func LoadCoinSpec() (*CoinSpec, error) {
	return loadSpec[CoinSpec]("coin.yaml")
}

func LoadGhostSpec() (*GhostSpec, error) {
	return loadSpec[GhostSpec]("ghost.yaml")
}

// ColorSpec accepts either an SVG 1.1 color name ("gold") or a hex literal
// ("#rrggbb" / "#rrggbbaa").
type ColorSpec struct {
	color.Color
}

func (c *ColorSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	name := strings.ToLower(strings.TrimSpace(value.Value))
	if clr, ok := colornames.Map[name]; ok {
		c.Color = clr
		return nil
	}

	s := strings.TrimPrefix(name, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("unknown color %q", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}
	a := uint8(255)
	if len(s) == 8 {
		if a, err = parse(6); err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
