package shapes

import (
	"github.com/natenatters/manchester-gis/pkg/descriptor"
	"github.com/natenatters/manchester-gis/pkg/geo"
	"github.com/natenatters/manchester-gis/pkg/scene"
)

// House generates a single rectangular extruded volume. It is also the
// fallback for unrecognized archetype tags.
func House(s descriptor.Structure) []scene.Base {
	length := param(s.Params.Length, 10)
	width := param(s.Params.Width, 6)
	height := param(s.Params.Height, 4)

	hL, hW := length/2, width/2
	walls := rect(-hL, -hW, hL, hW)

	return []scene.Base{{
		ID:             s.ID + "_walls",
		Name:           s.Name,
		Kind:           scene.KindPolygon,
		Coords:         geo.OffsetsToCoordinates(s.Center, walls, s.Rotation),
		Height:         0,
		ExtrudedHeight: height,
		Material:       "wall",
	}}
}
