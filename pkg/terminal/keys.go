package terminal

import (
	"github.com/charmbracelet/harmonica"
	"github.com/golangdaddy/roadrush/pkg/input"
)

// holdThreshold is how charged an axis must be to count as held.
const holdThreshold = 0.3

// Keys turns terminal key presses into held intents. Terminals report
// presses and auto repeat but rarely releases, so every press charges an
// axis and a spring pulls it back to rest. The axis stays held through the
// pause before auto repeat starts.
type Keys struct {
	steer, steerVel       float64
	throttle, throttleVel float64
	spring                harmonica.Spring
}

// NewKeys creates a new Keys updated fps times a second.
func NewKeys(fps int) *Keys {
	return &Keys{spring: harmonica.NewSpring(harmonica.FPS(fps), 3.0, 1.0)}
}

// Press charges the axis for a key named the way ultraviolet names keys.
// It reports whether the key drives the car.
func (k *Keys) Press(key string) bool {
	switch key {
	case "left", "a":
		k.steer, k.steerVel = -1, 0
	case "right", "d":
		k.steer, k.steerVel = 1, 0
	case "up", "w":
		k.throttle, k.throttleVel = 1, 0
	case "down", "s":
		k.throttle, k.throttleVel = -1, 0
	default:
		return false
	}
	return true
}

// Release drops the axis of key at once, for terminals that report it.
func (k *Keys) Release(key string) {
	switch key {
	case "left", "a", "right", "d":
		k.steer, k.steerVel = 0, 0
	case "up", "w", "down", "s":
		k.throttle, k.throttleVel = 0, 0
	}
}

// Update lets both axes decay for one tick.
func (k *Keys) Update() {
	k.steer, k.steerVel = k.spring.Update(k.steer, k.steerVel, 0)
	k.throttle, k.throttleVel = k.spring.Update(k.throttle, k.throttleVel, 0)
}

// Intents reads the held axes.
func (k *Keys) Intents() input.Intents {
	return input.Intents{
		Left:   k.steer < -holdThreshold,
		Right:  k.steer > holdThreshold,
		Faster: k.throttle > holdThreshold,
		Slower: k.throttle < -holdThreshold,
	}
}
