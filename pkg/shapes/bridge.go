package shapes

import (
	"fmt"

	"github.com/natenatters/manchester-gis/pkg/descriptor"
	"github.com/natenatters/manchester-gis/pkg/geo"
	"github.com/natenatters/manchester-gis/pkg/scene"
)

// Bridge generates a stone bridge: a deck, numArches+1 piers reaching
// below grade, and two parapets. Pier width divides the span so each
// arch opening is twice a pier's width.
func Bridge(s descriptor.Structure) []scene.Base {
	span := param(s.Params.Span, 50)
	width := param(s.Params.Width, 6)
	height := param(s.Params.Height, 8)
	numArches := paramInt(s.Params.NumArches, 5)

	hS, hW := span/2, width/2

	entities := []scene.Base{{
		ID:             s.ID + "_deck",
		Name:           s.Name + " - Deck",
		Kind:           scene.KindPolygon,
		Coords:         geo.OffsetsToCoordinates(s.Center, rect(-hS, -hW, hS, hW), s.Rotation),
		Height:         height - 1,
		ExtrudedHeight: height,
		Material:       "stone",
	}}

	pierWidth := span / float64(numArches*2+1)
	for i := 0; i <= numArches; i++ {
		px := -hS + pierWidth*float64(i*2)
		pier := rect(px, -hW-1, px+pierWidth, hW+1)
		entities = append(entities, scene.Base{
			ID:             fmt.Sprintf("%s_pier_%d", s.ID, i),
			Name:           fmt.Sprintf("%s - Pier %d", s.Name, i+1),
			Kind:           scene.KindPolygon,
			Coords:         geo.OffsetsToCoordinates(s.Center, pier, s.Rotation),
			Height:         -2,
			ExtrudedHeight: height - 1,
			Material:       "stone",
		})
	}

	for _, side := range []struct {
		name string
		yOff float64
	}{
		{"north", hW},
		{"south", -hW - 0.5},
	} {
		parapet := rect(-hS, side.yOff, hS, side.yOff+0.5)
		entities = append(entities, scene.Base{
			ID:             fmt.Sprintf("%s_parapet_%s", s.ID, side.name),
			Name:           fmt.Sprintf("%s - %s Parapet", s.Name, title(side.name)),
			Kind:           scene.KindPolygon,
			Coords:         geo.OffsetsToCoordinates(s.Center, parapet, s.Rotation),
			Height:         height,
			ExtrudedHeight: height + 1.2,
			Material:       "stone",
		})
	}

	return entities
}
