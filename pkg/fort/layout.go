package fort

import (
	"github.com/natenatters/manchester-gis/pkg/descriptor"
	"github.com/natenatters/manchester-gis/pkg/geo"
)

// gateHalfWidth is half the clear opening left in each wall for a gate.
const gateHalfWidth = 8.0

// Interior layouts are authored in a 160x130 m reference fort and
// scaled to the actual footprint.
const (
	referenceLength = 160.0
	referenceWidth  = 130.0
)

// wallSegments frames the fort with eight wall pieces leaving four gate
// gaps. Ruined or partial forts get just two fragments of the north
// wall.
func wallSegments(hL, hW, wt float64, ruined bool) [][]geo.Offset {
	gw := gateHalfWidth

	if ruined {
		return [][]geo.Offset{
			{geo.Off(-hL, hW-wt), geo.Off(-gw-5, hW-wt), geo.Off(-gw-5, hW), geo.Off(-hL, hW)},
			{geo.Off(gw+5, hW-wt), geo.Off(hL*0.3, hW-wt), geo.Off(hL*0.3, hW), geo.Off(gw+5, hW)},
		}
	}

	return [][]geo.Offset{
		// South wall, two segments around the gate.
		{geo.Off(-hL, -hW), geo.Off(-gw, -hW), geo.Off(-gw, -hW+wt), geo.Off(-hL, -hW+wt)},
		{geo.Off(gw, -hW), geo.Off(hL, -hW), geo.Off(hL, -hW+wt), geo.Off(gw, -hW+wt)},
		// North wall.
		{geo.Off(-hL, hW-wt), geo.Off(-gw, hW-wt), geo.Off(-gw, hW), geo.Off(-hL, hW)},
		{geo.Off(gw, hW-wt), geo.Off(hL, hW-wt), geo.Off(hL, hW), geo.Off(gw, hW)},
		// West wall.
		{geo.Off(-hL, -hW), geo.Off(-hL+wt, -hW), geo.Off(-hL+wt, -gw), geo.Off(-hL, -gw)},
		{geo.Off(-hL, gw), geo.Off(-hL+wt, gw), geo.Off(-hL+wt, hW), geo.Off(-hL, hW)},
		// East wall.
		{geo.Off(hL-wt, -hW), geo.Off(hL, -hW), geo.Off(hL, -gw), geo.Off(hL-wt, -gw)},
		{geo.Off(hL-wt, gw), geo.Off(hL, gw), geo.Off(hL, hW), geo.Off(hL-wt, hW)},
	}
}

func squareAt(cx, cy, half float64) []geo.Offset {
	return []geo.Offset{
		geo.Off(cx-half, cy-half),
		geo.Off(cx+half, cy-half),
		geo.Off(cx+half, cy+half),
		geo.Off(cx-half, cy+half),
	}
}

// cornerTowers places a 5 m tower on each corner of the circuit.
func cornerTowers(hL, hW float64) [][]geo.Offset {
	const size = 5.0
	towers := make([][]geo.Offset, 0, 4)
	for _, c := range []geo.Offset{
		geo.Off(-hL, -hW), geo.Off(hL, -hW), geo.Off(hL, hW), geo.Off(-hL, hW),
	} {
		towers = append(towers, squareAt(c.X, c.Y, size/2))
	}
	return towers
}

// gateTowers flanks each of the four gates with a pair of 4 m towers.
func gateTowers(hL, hW, wt float64) [][]geo.Offset {
	const size = 4.0
	s := size / 2
	gw := gateHalfWidth

	positions := []geo.Offset{
		geo.Off(-gw-s, -hW+wt/2), geo.Off(gw+s, -hW+wt/2), // south gate
		geo.Off(-gw-s, hW-wt/2), geo.Off(gw+s, hW-wt/2), // north gate
		geo.Off(-hL+wt/2, -gw-s), geo.Off(-hL+wt/2, gw+s), // west gate
		geo.Off(hL-wt/2, -gw-s), geo.Off(hL-wt/2, gw+s), // east gate
	}

	towers := make([][]geo.Offset, 0, len(positions))
	for _, p := range positions {
		towers = append(towers, squareAt(p.X, p.Y, s))
	}
	return towers
}

// ditchRings builds the concentric outer/inner rectangles of the
// defensive ditch, leaving a 5 m berm between wall and ditch.
func ditchRings(hL, hW, ditchWidth float64) (outer, inner []geo.Offset) {
	const margin = 5.0
	outer = []geo.Offset{
		geo.Off(-hL-ditchWidth-margin, -hW-ditchWidth-margin),
		geo.Off(hL+ditchWidth+margin, -hW-ditchWidth-margin),
		geo.Off(hL+ditchWidth+margin, hW+ditchWidth+margin),
		geo.Off(-hL-ditchWidth-margin, hW+ditchWidth+margin),
	}
	inner = []geo.Offset{
		geo.Off(-hL-margin, -hW-margin),
		geo.Off(hL+margin, -hW-margin),
		geo.Off(hL+margin, hW+margin),
		geo.Off(-hL-margin, hW+margin),
	}
	return outer, inner
}

// placedBuilding is an interior building scaled into the fort's frame.
type placedBuilding struct {
	name   string
	kind   string
	ring   []geo.Offset
	height float64
}

func layoutScale(length, width float64) float64 {
	return min(length/referenceLength, width/referenceWidth)
}

// placeBuildings scales an interior layout from the reference frame to
// the fort's footprint.
func placeBuildings(buildings []descriptor.FortBuilding, length, width float64) []placedBuilding {
	scale := layoutScale(length, width)

	placed := make([]placedBuilding, 0, len(buildings))
	for _, b := range buildings {
		bx, by := b.X*scale, b.Y*scale
		bw, bh := b.W*scale/2, b.H*scale/2

		kind := b.Kind
		if kind == "" {
			kind = "building"
		}

		placed = append(placed, placedBuilding{
			name: b.Name,
			kind: kind,
			ring: []geo.Offset{
				geo.Off(bx-bw, by-bh), geo.Off(bx+bw, by-bh),
				geo.Off(bx+bw, by+bh), geo.Off(bx-bw, by+bh),
			},
			height: b.Height * scale,
		})
	}

	return placed
}

// road is one of the three principal fort axes.
type road struct {
	name string
	ring []geo.Offset
}

// roads lays the via principalis, via praetoria, and via decumana.
// Stone forts get the wider 7 m metalled roads.
func roads(hL, hW, wt, length, width float64, isStone bool) []road {
	scale := layoutScale(length, width)
	roadW := 6.0
	if isStone {
		roadW = 7.0
	}
	hw := roadW * scale / 2

	return []road{
		{
			name: "Via Principalis",
			ring: []geo.Offset{
				geo.Off(-hL+wt+2, -hw), geo.Off(hL-wt-2, -hw),
				geo.Off(hL-wt-2, hw), geo.Off(-hL+wt+2, hw),
			},
		},
		{
			name: "Via Praetoria",
			ring: []geo.Offset{
				geo.Off(-hw, -hW+wt+2), geo.Off(hw, -hW+wt+2),
				geo.Off(hw, -5), geo.Off(-hw, -5),
			},
		},
		{
			name: "Via Decumana",
			ring: []geo.Offset{
				geo.Off(-hw, 20), geo.Off(hw, 20),
				geo.Off(hw, hW-wt-2), geo.Off(-hw, hW-wt-2),
			},
		},
	}
}

// defaultBuildings is the standard playing-card fort interior:
// headquarters and commander's house on the central axis, paired
// granaries, and four barracks blocks. Stone forts build slightly
// taller.
func defaultBuildings(isStone bool) []descriptor.FortBuilding {
	h := 0.0
	if isStone {
		h = 1.0
	}
	return []descriptor.FortBuilding{
		{Name: "Principia (HQ)", Kind: "hq", X: 0, Y: 5, W: 35, H: 30, Height: 6 + h},
		{Name: "Praetorium", Kind: "commander", X: 0, Y: -25, W: 25, H: 20, Height: 5 + h},
		{Name: "Horreum", Kind: "granary", X: -32, Y: -25, W: 15, H: 28, Height: 4 + h},
		{Name: "Horreum", Kind: "granary", X: 32, Y: -25, W: 15, H: 28, Height: 4 + h},
		{Name: "Barracks", Kind: "barracks", X: -40, Y: 28, W: 12, H: 42, Height: 3.5 + h*0.5},
		{Name: "Barracks", Kind: "barracks", X: -25, Y: 28, W: 12, H: 42, Height: 3.5 + h*0.5},
		{Name: "Barracks", Kind: "barracks", X: 25, Y: 28, W: 12, H: 42, Height: 3.5 + h*0.5},
		{Name: "Barracks", Kind: "barracks", X: 40, Y: 28, W: 12, H: 42, Height: 3.5 + h*0.5},
	}
}
