package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/breakout3d/internal/core"
)

// keyBindings maps each action to the keys that hold it.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionRelease: {ebiten.KeySpace},
	core.ActionCamera1: {ebiten.KeyDigit1},
	core.ActionCamera2: {ebiten.KeyDigit2},
	core.ActionCamera3: {ebiten.KeyDigit3},
	core.ActionCamera4: {ebiten.KeyDigit4},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
