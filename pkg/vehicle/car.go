package vehicle

import "github.com/golangdaddy/roadrush/pkg/sprite"

// Car is one AI driven vehicle. Speed never changes after seeding.
type Car struct {
	ID      int
	Z       float64 // world position along the track
	Offset  float64
	Speed   float64
	Kind    sprite.Kind
	Percent float64 // fractional position inside the current segment
}

// NewCar creates a new car.
func NewCar(id int, kind sprite.Kind, z, offset, speed float64) *Car {
	return &Car{
		ID:     id,
		Z:      z,
		Offset: offset,
		Speed:  speed,
		Kind:   kind,
	}
}

func (car *Car) Lateral() float64 {
	return car.Offset
}

func (car *Car) Width() float64 {
	return car.Kind.Width()
}

func (car *Car) Velocity() float64 {
	return car.Speed
}

