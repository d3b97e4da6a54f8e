// Package input turns key state into driving intents.
package input

// Intents is the sampled control state for one tick.
type Intents struct {
	Left   bool
	Right  bool
	Faster bool
	Slower bool
}

// Steer is -1 for left, 1 for right and 0 for neither. Left wins when both
// are held.
func (in Intents) Steer() float64 {
	switch {
	case in.Left:
		return -1
	case in.Right:
		return 1
	}
	return 0
}
