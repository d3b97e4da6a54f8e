// Package sprite enumerates every image on the sprite and background sheets.
package sprite

import "image"

// Kind identifies one sprite on the sprite sheet.
type Kind int

const (
	None Kind = iota
	PalmTree
	Billboard08
	Tree1
	DeadTree1
	Billboard09
	Boulder3
	Column
	Billboard01
	Billboard06
	Billboard05
	Billboard07
	Boulder2
	Tree2
	Billboard04
	DeadTree2
	Boulder1
	Bush1
	Cactus
	Bush2
	Billboard03
	Billboard02
	Stump
	Semi
	Truck
	Car03
	Car02
	Car04
	Car01
	PlayerUphillLeft
	PlayerUphillStraight
	PlayerUphillRight
	PlayerLeft
	PlayerStraight
	PlayerRight

	numKinds
)

type info struct {
	name  string
	rect  image.Rectangle
	class Class
}

// Class groups kinds by how they behave in the world.
type Class int

const (
	ClassNone Class = iota
	ClassPlant
	ClassBillboard
	ClassColumn
	ClassCar
	ClassPlayer
)

func r(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

var table = [numKinds]info{
	None:                 {"none", image.Rectangle{}, ClassNone},
	PalmTree:             {"palm_tree", r(5, 5, 215, 540), ClassPlant},
	Billboard08:          {"billboard08", r(230, 5, 385, 265), ClassBillboard},
	Tree1:                {"tree1", r(625, 5, 360, 360), ClassPlant},
	DeadTree1:            {"dead_tree1", r(5, 555, 135, 332), ClassPlant},
	Billboard09:          {"billboard09", r(150, 555, 328, 282), ClassBillboard},
	Boulder3:             {"boulder3", r(230, 280, 320, 220), ClassPlant},
	Column:               {"column", r(995, 5, 200, 315), ClassColumn},
	Billboard01:          {"billboard01", r(625, 375, 300, 170), ClassBillboard},
	Billboard06:          {"billboard06", r(488, 555, 298, 190), ClassBillboard},
	Billboard05:          {"billboard05", r(5, 897, 298, 190), ClassBillboard},
	Billboard07:          {"billboard07", r(313, 897, 298, 190), ClassBillboard},
	Boulder2:             {"boulder2", r(621, 897, 298, 140), ClassPlant},
	Tree2:                {"tree2", r(1205, 5, 282, 295), ClassPlant},
	Billboard04:          {"billboard04", r(1205, 310, 268, 170), ClassBillboard},
	DeadTree2:            {"dead_tree2", r(1205, 490, 150, 260), ClassPlant},
	Boulder1:             {"boulder1", r(1205, 760, 168, 248), ClassPlant},
	Bush1:                {"bush1", r(5, 1097, 240, 155), ClassPlant},
	Cactus:               {"cactus", r(929, 897, 235, 118), ClassPlant},
	Bush2:                {"bush2", r(255, 1097, 232, 152), ClassPlant},
	Billboard03:          {"billboard03", r(5, 1262, 230, 220), ClassBillboard},
	Billboard02:          {"billboard02", r(245, 1262, 215, 220), ClassBillboard},
	Stump:                {"stump", r(995, 330, 195, 140), ClassPlant},
	Semi:                 {"semi", r(1365, 490, 122, 144), ClassCar},
	Truck:                {"truck", r(1365, 644, 100, 78), ClassCar},
	Car03:                {"car03", r(1383, 760, 88, 55), ClassCar},
	Car02:                {"car02", r(1383, 825, 80, 59), ClassCar},
	Car04:                {"car04", r(1383, 894, 80, 57), ClassCar},
	Car01:                {"car01", r(1205, 1018, 80, 56), ClassCar},
	PlayerUphillLeft:     {"player_uphill_left", r(1383, 961, 80, 45), ClassPlayer},
	PlayerUphillStraight: {"player_uphill_straight", r(1295, 1018, 80, 45), ClassPlayer},
	PlayerUphillRight:    {"player_uphill_right", r(1385, 1018, 80, 45), ClassPlayer},
	PlayerLeft:           {"player_left", r(995, 480, 80, 41), ClassPlayer},
	PlayerStraight:       {"player_straight", r(1085, 480, 80, 41), ClassPlayer},
	PlayerRight:          {"player_right", r(995, 531, 80, 41), ClassPlayer},
}

// Scale converts sprite sheet pixels to road widths: the player car is 0.3
// of the road half width.
var Scale = 0.3 / float64(PlayerStraight.Rect().Dx())

var (
	Billboards = []Kind{Billboard01, Billboard02, Billboard03, Billboard04, Billboard05, Billboard06, Billboard07, Billboard08, Billboard09}
	Plants     = []Kind{Tree1, Tree2, DeadTree1, DeadTree2, PalmTree, Bush1, Bush2, Cactus, Stump, Boulder1, Boulder2, Boulder3}
	Cars       = []Kind{Car01, Car02, Car03, Car04, Semi, Truck}
)

// Kinds returns every kind that has an image on the sprite sheet.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := Kind(1); k < numKinds; k++ {
		if !table[k].rect.Empty() {
			out = append(out, k)
		}
	}
	return out
}

func (k Kind) valid() bool {
	return k >= 0 && k < numKinds
}

// Rect is the source rectangle on the sprite sheet.
func (k Kind) Rect() image.Rectangle {
	if !k.valid() {
		return image.Rectangle{}
	}
	return table[k].rect
}

// W is the sheet width in pixels.
func (k Kind) W() float64 { return float64(k.Rect().Dx()) }

// H is the sheet height in pixels.
func (k Kind) H() float64 { return float64(k.Rect().Dy()) }

// Width is the sprite width in road units.
func (k Kind) Width() float64 { return k.W() * Scale }

func (k Kind) Class() Class {
	if !k.valid() {
		return ClassNone
	}
	return table[k].class
}

func (k Kind) String() string {
	if !k.valid() {
		return "unknown"
	}
	return table[k].name
}

// IsWide reports whether the vehicle is a big rig, which drives slower.
func (k Kind) IsWide() bool {
	return k == Semi
}

// HitFraction is how much of the sprite width counts when the player runs
// into it.
func (k Kind) HitFraction() float64 {
	switch k.Class() {
	case ClassColumn, ClassBillboard:
		return 0.8
	}
	return 0.5
}

// Player picks the player sprite for the steering direction (-1, 0, 1) and
// whether the road ahead climbs.
func Player(steer float64, uphill bool) Kind {
	switch {
	case steer < 0 && uphill:
		return PlayerUphillLeft
	case steer < 0:
		return PlayerLeft
	case steer > 0 && uphill:
		return PlayerUphillRight
	case steer > 0:
		return PlayerRight
	case uphill:
		return PlayerUphillStraight
	}
	return PlayerStraight
}

// Layer is one parallax background layer.
type Layer int

const (
	Sky Layer = iota
	Hills
	Trees
)

// Layers is the back to front draw order.
var Layers = []Layer{Sky, Hills, Trees}

// Rect is the source rectangle on the background sheet.
func (l Layer) Rect() image.Rectangle {
	switch l {
	case Hills:
		return r(5, 5, 1280, 480)
	case Sky:
		return r(5, 495, 1280, 480)
	case Trees:
		return r(5, 985, 1280, 480)
	}
	return image.Rectangle{}
}

// Speed is how fast the layer scrolls relative to the road curve.
func (l Layer) Speed() float64 {
	switch l {
	case Sky:
		return 0.001
	case Hills:
		return 0.002
	case Trees:
		return 0.003
	}
	return 0
}

func (l Layer) String() string {
	switch l {
	case Sky:
		return "sky"
	case Hills:
		return "hills"
	case Trees:
		return "trees"
	}
	return "unknown"
}
