package shapes

import (
	"github.com/natenatters/manchester-gis/pkg/descriptor"
	"github.com/natenatters/manchester-gis/pkg/geo"
	"github.com/natenatters/manchester-gis/pkg/scene"
)

// NeoclassicalChurch generates a Georgian-style church: rectangular
// body, two shallow side wings at 0.8x body height, and an entrance
// tower rising from the roof line at the west end.
func NeoclassicalChurch(s descriptor.Structure) []scene.Base {
	naveLength := param(s.Params.NaveLength, 30)
	naveWidth := param(s.Params.NaveWidth, 15)
	naveHeight := param(s.Params.NaveHeight, 12)
	towerSize := param(s.Params.TowerSize, 8)
	towerHeight := param(s.Params.TowerHeight, 25)
	wingDepth := param(s.Params.WingDepth, 4)
	wingWidth := param(s.Params.WingWidth, 6)

	hL, hW := naveLength/2, naveWidth/2
	wingHW := wingWidth / 2
	ts := towerSize / 2

	body := rect(-hL, -hW, hL, hW)
	northWing := rect(-wingHW, hW, wingHW, hW+wingDepth)
	southWing := rect(-wingHW, -hW-wingDepth, wingHW, -hW)
	tower := rect(-hL, -ts, -hL+towerSize, ts)

	return []scene.Base{
		{
			ID:             s.ID + "_body",
			Name:           s.Name + " - Body",
			Kind:           scene.KindPolygon,
			Coords:         geo.OffsetsToCoordinates(s.Center, body, s.Rotation),
			ExtrudedHeight: naveHeight,
			Material:       "wall",
		},
		{
			ID:             s.ID + "_wing_north",
			Name:           s.Name + " - North Wing",
			Kind:           scene.KindPolygon,
			Coords:         geo.OffsetsToCoordinates(s.Center, northWing, s.Rotation),
			ExtrudedHeight: naveHeight * 0.8,
			Material:       "wall",
		},
		{
			ID:             s.ID + "_wing_south",
			Name:           s.Name + " - South Wing",
			Kind:           scene.KindPolygon,
			Coords:         geo.OffsetsToCoordinates(s.Center, southWing, s.Rotation),
			ExtrudedHeight: naveHeight * 0.8,
			Material:       "wall",
		},
		{
			ID:             s.ID + "_tower",
			Name:           s.Name + " - Tower",
			Kind:           scene.KindPolygon,
			Coords:         geo.OffsetsToCoordinates(s.Center, tower, s.Rotation),
			Height:         naveHeight,
			ExtrudedHeight: towerHeight,
			Material:       "tower",
		},
	}
}
