package road

import (
	"fmt"
	"math"

	"github.com/golangdaddy/roadrush/pkg/vehicle"
	"github.com/samber/lo"
)

// Track is the closed ring of segments. Segment i covers
// [i*SegmentLength, (i+1)*SegmentLength) along Z.
type Track struct {
	segments      []*Segment
	segmentLength float64
	rumbleLength  int
}

func (t *Track) Len() int {
	return len(t.segments)
}

// Segment returns the segment at index i, wrapping around the ring.
func (t *Track) Segment(i int) *Segment {
	n := len(t.segments)
	return t.segments[((i%n)+n)%n]
}

// Segments exposes the ring for read only iteration.
func (t *Track) Segments() []*Segment {
	return t.segments
}

func (t *Track) SegmentLength() float64 {
	return t.segmentLength
}

func (t *Track) RumbleLength() int {
	return t.rumbleLength
}

// Length is the total length of the ring in world units.
func (t *Track) Length() float64 {
	return float64(len(t.segments)) * t.segmentLength
}

// FindSegment returns the segment containing z. Any z is accepted, values
// outside the ring wrap. The track must not be empty.
func (t *Track) FindSegment(z float64) *Segment {
	n := len(t.segments)
	if n == 0 {
		panic("road: FindSegment on empty track")
	}
	i := int64(math.Floor(z / t.segmentLength))
	idx := int(((i % int64(n)) + int64(n)) % int64(n))
	return t.segments[idx]
}

// AddCar puts car into the segment under its Z.
func (t *Track) AddCar(car *vehicle.Car) {
	seg := t.FindSegment(car.Z)
	seg.Cars = append(seg.Cars, car)
}

// MoveCar transfers car from one segment to another. It panics if car is
// not a member of from, since the membership sets would no longer describe
// the world.
func (t *Track) MoveCar(car *vehicle.Car, from, to *Segment) {
	if from == to {
		return
	}
	i := lo.IndexOf(from.Cars, car)
	if i < 0 {
		panic(fmt.Sprintf("road: car %d is not in segment %d", car.ID, from.Index))
	}
	from.Cars = append(from.Cars[:i], from.Cars[i+1:]...)
	to.Cars = append(to.Cars, car)
}

// CheckMembership verifies every car is in exactly one segment and that
// segment is the one under the car.
func (t *Track) CheckMembership(cars []*vehicle.Car) error {
	seen := make(map[*vehicle.Car]int, len(cars))
	for _, seg := range t.segments {
		for _, car := range seg.Cars {
			seen[car]++
			if want := t.FindSegment(car.Z); want != seg {
				return fmt.Errorf("%w: car %d in segment %d, expected %d", ErrMembership, car.ID, seg.Index, want.Index)
			}
		}
	}
	for _, car := range cars {
		if c := seen[car]; c != 1 {
			return fmt.Errorf("%w: car %d is in %d segments", ErrMembership, car.ID, c)
		}
	}
	total := lo.SumBy(t.segments, func(s *Segment) int { return len(s.Cars) })
	if total != len(cars) {
		return fmt.Errorf("%w: %d memberships for %d cars", ErrMembership, total, len(cars))
	}
	return nil
}
