package game

import (
	"github.com/golangdaddy/roadrush/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	leftKeys   = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys  = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	fasterKeys = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	slowerKeys = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
)

// readKeyboard samples the ebiten keyboard. Arrows and WASD both work.
func readKeyboard() input.Intents {
	return intentsFrom(ebiten.IsKeyPressed)
}

func intentsFrom(pressed func(ebiten.Key) bool) input.Intents {
	held := func(keys []ebiten.Key) bool {
		for _, k := range keys {
			if pressed(k) {
				return true
			}
		}
		return false
	}
	return input.Intents{
		Left:   held(leftKeys),
		Right:  held(rightKeys),
		Faster: held(fasterKeys),
		Slower: held(slowerKeys),
	}
}
