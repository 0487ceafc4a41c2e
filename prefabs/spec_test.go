package prefabs

import (
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestColorSpec(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		want    color.Color
		wantErr bool
	}{
		{"svg_name", `color: gold`, color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}, false},
		{"hex6", `color: "#102030"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{"hex8", `color: "#10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"mixed_case_name", `color: SteelBlue`, color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}, false},
		{"unknown_name", `color: notacolor`, nil, true},
		{"short_hex", `color: "#123"`, nil, true},
		{"not_scalar", "color:\n  - 1", nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var dst struct {
				Color *ColorSpec `yaml:"color"`
			}
			err := yaml.Unmarshal([]byte(c.yaml), &dst)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, parsed %v", dst.Color)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if dst.Color == nil || dst.Color.Color != c.want {
				t.Fatalf("got %v, want %v", dst.Color, c.want)
			}
		})
	}
}

func TestEmbeddedSpecsParse(t *testing.T) {
	game, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	if game.Width <= 0 || game.Height <= 0 {
		t.Fatalf("game spec missing window size: %+v", game)
	}
	if len(game.Coins) == 0 {
		t.Fatalf("game spec should place at least one coin")
	}

	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if player.Speed <= 0 || player.Width <= 0 || player.Height <= 0 {
		t.Fatalf("player spec incomplete: %+v", player)
	}

	coin, err := LoadCoinSpec()
	if err != nil {
		t.Fatalf("LoadCoinSpec: %v", err)
	}
	if coin.Size <= 0 {
		t.Fatalf("coin spec incomplete: %+v", coin)
	}

	ghost, err := LoadGhostSpec()
	if err != nil {
		t.Fatalf("LoadGhostSpec: %v", err)
	}
	if ghost.Script == "" {
		t.Fatalf("ghost spec must name a script")
	}
	if _, err := LoadScript(ghost.Script); err != nil {
		t.Fatalf("ghost script %q not loadable: %v", ghost.Script, err)
	}
}

func TestLoadScriptPathForms(t *testing.T) {
	for _, name := range []string{"ghost.tengo", "scripts/ghost.tengo", "prefabs/scripts/ghost.tengo"} {
		if _, err := LoadScript(name); err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
	}
}
