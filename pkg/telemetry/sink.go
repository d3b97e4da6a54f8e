// Package telemetry carries lap and speed readings out of the simulation.
// The simulation only ever writes to a Sink, it never reads anything back.
package telemetry

// Sink receives race readings. Implementations must be cheap, CurrentLap
// and Speed are called every tick.
type Sink interface {
	// CurrentLap is the running time of the lap in progress.
	CurrentLap(seconds float64)
	// LapCompleted is called once per finished lap.
	LapCompleted(seconds float64)
	// BestLap is called when a new best lap is set and once at startup when
	// a stored best exists.
	BestLap(seconds float64)
	// Speed is the player speed in world units per second.
	Speed(speed float64)
}

// Nop discards everything.
type Nop struct{}

func (Nop) CurrentLap(float64)   {}
func (Nop) LapCompleted(float64) {}
func (Nop) BestLap(float64)      {}
func (Nop) Speed(float64)        {}

// Multi fans readings out to several sinks in order.
type Multi []Sink

func (m Multi) CurrentLap(s float64) {
	for _, sink := range m {
		sink.CurrentLap(s)
	}
}

func (m Multi) LapCompleted(s float64) {
	for _, sink := range m {
		sink.LapCompleted(s)
	}
}

func (m Multi) BestLap(s float64) {
	for _, sink := range m {
		sink.BestLap(s)
	}
}

func (m Multi) Speed(v float64) {
	for _, sink := range m {
		sink.Speed(v)
	}
}

// Recorder keeps the latest readings. Useful for headless runs.
type Recorder struct {
	Current float64
	Last    float64
	Best    float64
	Laps    int
	// Velocity is the last speed reading.
	Velocity float64
}

func (r *Recorder) CurrentLap(s float64) { r.Current = s }
func (r *Recorder) LapCompleted(s float64) {
	r.Last = s
	r.Laps++
}
func (r *Recorder) BestLap(s float64) { r.Best = s }
func (r *Recorder) Speed(v float64)   { r.Velocity = v }
