package shapes

import (
	"fmt"

	"github.com/natenatters/manchester-gis/pkg/descriptor"
	"github.com/natenatters/manchester-gis/pkg/geo"
	"github.com/natenatters/manchester-gis/pkg/scene"
)

// Courtyard generates four wings around an open court with a raised
// gatehouse breaking the south wing. The gatehouse opening is a fixed
// 6 m regardless of footprint size.
func Courtyard(s descriptor.Structure) []scene.Base {
	outerLength := param(s.Params.Length, 40)
	outerWidth := param(s.Params.Width, 35)
	wingDepth := param(s.Params.WingDepth, 8)
	height := param(s.Params.Height, 10)

	hL, hW := outerLength/2, outerWidth/2
	wd := wingDepth

	wings := []struct {
		name string
		ring []geo.Offset
	}{
		{"north", rect(-hL, hW-wd, hL, hW)},
		{"south", rect(-hL, -hW, hL, -hW+wd)},
		{"east", rect(hL-wd, -hW+wd, hL, hW-wd)},
		{"west", rect(-hL, -hW+wd, -hL+wd, hW-wd)},
	}

	var entities []scene.Base
	for _, w := range wings {
		entities = append(entities, scene.Base{
			ID:             fmt.Sprintf("%s_%s_wing", s.ID, w.name),
			Name:           fmt.Sprintf("%s - %s Wing", s.Name, title(w.name)),
			Kind:           scene.KindPolygon,
			Coords:         geo.OffsetsToCoordinates(s.Center, w.ring, s.Rotation),
			ExtrudedHeight: height,
			Material:       "wall",
		})
	}

	gate := rect(-3, -hW, 3, -hW+wd)
	entities = append(entities, scene.Base{
		ID:             s.ID + "_gatehouse",
		Name:           s.Name + " - Gatehouse",
		Kind:           scene.KindPolygon,
		Coords:         geo.OffsetsToCoordinates(s.Center, gate, s.Rotation),
		Height:         height,
		ExtrudedHeight: height + 5,
		Material:       "wall",
	})

	return entities
}
