package game

import (
	"testing"

	"github.com/golangdaddy/roadrush/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestIntentsFrom(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want input.Intents
	}{
		{"nothing", nil, input.Intents{}},
		{"arrows", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowUp}, input.Intents{Left: true, Faster: true}},
		{"wasd", []ebiten.Key{ebiten.KeyD, ebiten.KeyS}, input.Intents{Right: true, Slower: true}},
		{"unmapped", []ebiten.Key{ebiten.KeyQ}, input.Intents{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pressed := func(k ebiten.Key) bool {
				for _, want := range tt.keys {
					if k == want {
						return true
					}
				}
				return false
			}
			assert.Equal(t, tt.want, intentsFrom(pressed))
		})
	}
}
