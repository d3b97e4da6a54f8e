package vehicle

// Body is anything with a lateral footprint on the road that traffic has to
// steer around: AI cars and the player.
type Body interface {
	// Lateral is the offset across the road, -1..1 is on the tarmac.
	Lateral() float64
	// Width is the footprint in road units.
	Width() float64
	// Velocity is the forward speed in world units per second.
	Velocity() float64
}
