// Package ui renders the debug control panel: mode buttons, pause, the
// scale slider, and live effect counts.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/scamp/sim"
)

var (
	panelBackground = rl.Color{R: 20, G: 22, B: 28, A: 220}
	labelColor      = rl.Color{R: 170, G: 175, B: 190, A: 255}
)

// State is what the panel displays.
type State struct {
	Mode     sim.BehaviorMode
	Paused   bool
	Scale    float32
	MinScale float32
	MaxScale float32

	Particles   int
	Projectiles int
	Messages    int
	Tick        int32
}

// Actions is what the user requested this frame. Nil pointers mean no
// change.
type Actions struct {
	SetMode     *sim.BehaviorMode
	TogglePause bool
	SetScale    *float32
}

// Panel is the toggleable control panel.
type Panel struct {
	x, y    float32
	width   float32
	visible bool
}

// NewPanel creates a panel at the given position.
func NewPanel(x, y, width float32) *Panel {
	return &Panel{x: x, y: y, width: width}
}

// Toggle switches panel visibility.
func (p *Panel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *Panel) IsVisible() bool {
	return p.visible
}

// Draw renders the panel and returns any requested actions.
func (p *Panel) Draw(state State) Actions {
	var actions Actions
	if !p.visible {
		return actions
	}

	const lineHeight = 28
	const padding = 10

	height := float32(lineHeight*9 + padding*2)
	rl.DrawRectangle(int32(p.x), int32(p.y), int32(p.width), int32(height), panelBackground)

	x := p.x + padding
	y := p.y + padding
	w := p.width - padding*2

	rl.DrawText("Controls", int32(x), int32(y), 16, rl.White)
	y += lineHeight

	// Mode buttons, one per row, current mode highlighted
	for _, mode := range []sim.BehaviorMode{sim.ModeIdle, sim.ModeChase, sim.ModeAttack} {
		label := mode.String()
		if mode == state.Mode {
			label = "> " + label
		}
		if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: lineHeight - 4}, label) {
			m := mode
			actions.SetMode = &m
		}
		y += lineHeight
	}

	pauseLabel := "Pause"
	if state.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: lineHeight - 4}, pauseLabel) {
		actions.TogglePause = true
	}
	y += lineHeight

	rl.DrawText("Scale", int32(x), int32(y), 14, labelColor)
	y += 18
	newScale := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: w - 50, Height: 20},
		fmt.Sprintf("%.1f", state.MinScale), fmt.Sprintf("%.1f", state.MaxScale),
		state.Scale, state.MinScale, state.MaxScale,
	)
	rl.DrawText(fmt.Sprintf("%.1f", state.Scale), int32(x+w-40), int32(y+2), 16, rl.White)
	if newScale != state.Scale {
		s := newScale
		actions.SetScale = &s
	}
	y += lineHeight

	rl.DrawText(fmt.Sprintf("particles %d  shots %d  msgs %d",
		state.Particles, state.Projectiles, state.Messages), int32(x), int32(y), 14, labelColor)
	y += 20
	rl.DrawText(fmt.Sprintf("tick %d", state.Tick), int32(x), int32(y), 14, labelColor)

	return actions
}
