package shapes

import (
	"github.com/natenatters/manchester-gis/pkg/descriptor"
	"github.com/natenatters/manchester-gis/pkg/geo"
	"github.com/natenatters/manchester-gis/pkg/scene"
)

// Church generates a medieval parish church: nave, west tower, north
// and south aisles, and an east chancel. The aisle and chancel height
// factors (0.7x and 0.9x nave height) and the 0.3x-nave chancel length
// are hand-tuned proportions kept for output fidelity.
func Church(s descriptor.Structure) []scene.Base {
	naveLength := param(s.Params.NaveLength, 40)
	naveWidth := param(s.Params.NaveWidth, 12)
	naveHeight := param(s.Params.NaveHeight, 15)
	towerSize := param(s.Params.TowerSize, 10)
	towerHeight := param(s.Params.TowerHeight, 30)
	aisleWidth := param(s.Params.AisleWidth, 5)

	hL, hW := naveLength/2, naveWidth/2
	ts := towerSize / 2

	nave := rect(-hL, -hW, hL, hW)
	tower := rect(-hL-towerSize, -ts, -hL, ts)
	northAisle := rect(-hL, hW, hL*0.7, hW+aisleWidth)
	southAisle := rect(-hL, -hW-aisleWidth, hL*0.7, -hW)

	chancelLength := naveLength * 0.3
	chancel := rect(hL, -hW*0.8, hL+chancelLength, hW*0.8)

	return []scene.Base{
		{
			ID:             s.ID + "_nave",
			Name:           s.Name + " - Nave",
			Kind:           scene.KindPolygon,
			Coords:         geo.OffsetsToCoordinates(s.Center, nave, s.Rotation),
			ExtrudedHeight: naveHeight,
			Material:       "wall",
		},
		{
			ID:             s.ID + "_tower",
			Name:           s.Name + " - Tower",
			Kind:           scene.KindPolygon,
			Coords:         geo.OffsetsToCoordinates(s.Center, tower, s.Rotation),
			ExtrudedHeight: towerHeight,
			Material:       "tower",
		},
		{
			ID:             s.ID + "_north_aisle",
			Name:           s.Name + " - North Aisle",
			Kind:           scene.KindPolygon,
			Coords:         geo.OffsetsToCoordinates(s.Center, northAisle, s.Rotation),
			ExtrudedHeight: naveHeight * 0.7,
			Material:       "wall",
		},
		{
			ID:             s.ID + "_south_aisle",
			Name:           s.Name + " - South Aisle",
			Kind:           scene.KindPolygon,
			Coords:         geo.OffsetsToCoordinates(s.Center, southAisle, s.Rotation),
			ExtrudedHeight: naveHeight * 0.7,
			Material:       "wall",
		},
		{
			ID:             s.ID + "_chancel",
			Name:           s.Name + " - Chancel",
			Kind:           scene.KindPolygon,
			Coords:         geo.OffsetsToCoordinates(s.Center, chancel, s.Rotation),
			ExtrudedHeight: naveHeight * 0.9,
			Material:       "wall",
		},
	}
}

// Chapel generates a small chapel body with a squat west tower sized at
// 0.4x the body width.
func Chapel(s descriptor.Structure) []scene.Base {
	length := param(s.Params.Length, 15)
	width := param(s.Params.Width, 8)
	height := param(s.Params.Height, 7)
	towerHeight := param(s.Params.TowerHeight, 10)

	hL, hW := length/2, width/2
	body := rect(-hL, -hW, hL, hW)

	tw := width * 0.4
	tower := rect(-hL-tw, -tw/2, -hL, tw/2)

	return []scene.Base{
		{
			ID:             s.ID + "_body",
			Name:           s.Name + " - Body",
			Kind:           scene.KindPolygon,
			Coords:         geo.OffsetsToCoordinates(s.Center, body, s.Rotation),
			ExtrudedHeight: height,
			Material:       "wall",
		},
		{
			ID:             s.ID + "_tower",
			Name:           s.Name + " - Tower",
			Kind:           scene.KindPolygon,
			Coords:         geo.OffsetsToCoordinates(s.Center, tower, s.Rotation),
			ExtrudedHeight: towerHeight,
			Material:       "wall",
		},
	}
}
