package road

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/golangdaddy/roadrush/pkg/mathutil"
	"github.com/golangdaddy/roadrush/pkg/sprite"
	"github.com/golangdaddy/roadrush/pkg/vehicle"
)

// Options controls BuildDefault.
type Options struct {
	SegmentLength float64
	RumbleLength  int
	PlayerZ       float64
	TotalCars     int
	MaxSpeed      float64
}

// BuildDefault builds the standard circuit, decorates it and seeds traffic.
// All randomness comes from rng so equal seeds give equal tracks.
func BuildDefault(opts Options, rng *rand.Rand) (*Track, []*vehicle.Car, error) {
	b := NewBuilder(opts.SegmentLength, opts.RumbleLength)
	DefaultLayout(b)
	Decorate(b, rng)
	track, err := b.Build(opts.PlayerZ)
	if err != nil {
		return nil, nil, fmt.Errorf("build default track: %w", err)
	}
	cars := SeedCars(track, opts.TotalCars, opts.MaxSpeed, rng)
	return track, cars, nil
}

// DefaultLayout appends the standard circuit to b.
func DefaultLayout(b *Builder) {
	b.Straight(LengthShort).
		LowRollingHills(LengthShort, HillLow).
		SCurves().
		Curve(LengthMedium, CurveMedium, HillLow).
		Bumps().
		LowRollingHills(LengthMedium, HillMedium).
		Curve(LengthLong*2, CurveMedium, HillMedium).
		Straight(LengthMedium).
		Hill(LengthMedium, HillHigh).
		SCurves().
		Curve(LengthLong, -CurveMedium, HillNone).
		Hill(LengthLong, HillHigh).
		Curve(LengthLong, CurveMedium, -HillLow).
		Bumps().
		Hill(LengthLong, -HillMedium).
		Straight(LengthMedium).
		SCurves().
		DownhillToEnd(200)
}

// Decorate scatters billboards, trees and plants along the road built so
// far.
func Decorate(b *Builder, rng *rand.Rand) {
	// a billboard every 20 segments past the start line
	for i, k := range []sprite.Kind{
		sprite.Billboard07, sprite.Billboard06, sprite.Billboard08,
		sprite.Billboard09, sprite.Billboard01, sprite.Billboard02,
		sprite.Billboard03, sprite.Billboard04, sprite.Billboard05,
	} {
		b.AddProp(20*(i+1), k, -1)
	}

	b.AddProp(240, sprite.Billboard07, -1.2)
	b.AddProp(240, sprite.Billboard06, 1.2)
	b.AddProp(b.Len()-25, sprite.Billboard07, -1.2)
	b.AddProp(b.Len()-25, sprite.Billboard06, 1.2)

	// palm avenue
	for n := 10; n < 200; n += 4 + n/100 {
		b.AddProp(n, sprite.PalmTree, 0.5+rng.Float64()*0.5)
		b.AddProp(n, sprite.PalmTree, 1+rng.Float64()*2)
	}

	// colonnade on the right, forest on the left
	for n := 250; n < 1000; n += 5 {
		b.AddProp(n, sprite.Column, 1.1)
		b.AddProp(n+mathutil.RandomInt(rng, 0, 5), sprite.Tree1, -1-rng.Float64()*2)
		b.AddProp(n+mathutil.RandomInt(rng, 0, 5), sprite.Tree2, -1-rng.Float64()*2)
	}

	for n := 200; n < b.Len(); n += 3 {
		offset := mathutil.RandomSign(rng) * (2 + rng.Float64()*5)
		b.AddProp(n, mathutil.RandomChoice(rng, sprite.Plants), offset)
	}

	// clusters of plants facing a billboard on the other side
	for n := 1000; n < b.Len()-50; n += 100 {
		side := mathutil.RandomSign(rng)
		b.AddProp(n+mathutil.RandomInt(rng, 0, 50), mathutil.RandomChoice(rng, sprite.Billboards), -side)
		for i := 0; i < 20; i++ {
			kind := mathutil.RandomChoice(rng, sprite.Plants)
			b.AddProp(n+mathutil.RandomInt(rng, 0, 50), kind, side*(1.5+rng.Float64()))
		}
	}
}

// SeedCars places total cars at random segments with random lanes and
// speeds and registers them with the track.
func SeedCars(t *Track, total int, maxSpeed float64, rng *rand.Rand) []*vehicle.Car {
	cars := make([]*vehicle.Car, 0, total)
	for n := 0; n < total; n++ {
		offset := rng.Float64() * mathutil.RandomChoice(rng, []float64{-0.8, 0.8})
		z := math.Floor(rng.Float64()*float64(t.Len())) * t.SegmentLength()
		kind := mathutil.RandomChoice(rng, sprite.Cars)
		spread := maxSpeed / 2
		if kind.IsWide() {
			spread = maxSpeed / 4
		}
		speed := maxSpeed/4 + rng.Float64()*spread
		car := vehicle.NewCar(n, kind, z, offset, speed)
		t.AddCar(car)
		cars = append(cars, car)
	}
	return cars
}
