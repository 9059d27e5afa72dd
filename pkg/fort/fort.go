// Package fort generates explicit geometry for Roman fort
// reconstructions: ditch, gated wall circuit, towers, interior
// buildings, and roads. Forts are generated once per definition and
// carry their own existence interval; they do not go through period
// expansion.
package fort

import (
	"fmt"

	"github.com/natenatters/manchester-gis/pkg/descriptor"
	"github.com/natenatters/manchester-gis/pkg/geo"
	"github.com/natenatters/manchester-gis/pkg/scene"
)

// Generate produces all entities for a single fort. Footprint fields
// missing from the descriptor are derived from the named reference
// corner set when one is given; explicit fields always win.
func Generate(f descriptor.Fort, refPoints map[string]descriptor.ReferencePoint) scene.Fort {
	fp := resolveFootprint(f, refPoints)

	center := fp.Center
	rotation := fp.Rotation
	hL, hW := fp.Length/2, fp.Width/2
	wt := f.WallThickness

	isStone := f.Material == "stone"
	isRuins := f.Material == "ruins"
	suppressInterior := isRuins || f.PartialWalls

	var entities []scene.Base

	// Ditch, omitted entirely at zero depth.
	if f.DitchDepth > 0 {
		outer, inner := ditchRings(hL, hW, f.DitchWidth)
		entities = append(entities, scene.Base{
			ID:             f.ID + "_ditch",
			Kind:           scene.KindPolygonWithHole,
			Outer:          geo.OffsetsToCoordinates(center, outer, rotation),
			Inner:          geo.OffsetsToCoordinates(center, inner, rotation),
			Height:         -f.DitchDepth,
			ExtrudedHeight: 0,
			Material:       "ditch",
		})
	}

	for i, seg := range wallSegments(hL, hW, wt, suppressInterior) {
		entities = append(entities, scene.Base{
			ID:             fmt.Sprintf("%s_wall_%d", f.ID, i),
			Kind:           scene.KindPolygon,
			Coords:         geo.OffsetsToCoordinates(center, seg, rotation),
			ExtrudedHeight: f.WallHeight,
			Material:       "wall",
		})
	}

	if !suppressInterior {
		for i, tower := range cornerTowers(hL, hW) {
			entities = append(entities, scene.Base{
				ID:             fmt.Sprintf("%s_tower_%d", f.ID, i),
				Kind:           scene.KindPolygon,
				Coords:         geo.OffsetsToCoordinates(center, tower, rotation),
				ExtrudedHeight: f.TowerHeight,
				Material:       "tower",
			})
		}

		for i, tower := range gateTowers(hL, hW, wt) {
			entities = append(entities, scene.Base{
				ID:             fmt.Sprintf("%s_gatetower_%d", f.ID, i),
				Kind:           scene.KindPolygon,
				Coords:         geo.OffsetsToCoordinates(center, tower, rotation),
				ExtrudedHeight: f.TowerHeight - 1,
				Material:       "tower",
			})
		}

		layout := f.Buildings
		if len(layout) == 0 {
			layout = defaultBuildings(isStone)
		}
		for i, b := range placeBuildings(layout, fp.Length, fp.Width) {
			entities = append(entities, scene.Base{
				ID:             fmt.Sprintf("%s_building_%d", f.ID, i),
				Name:           b.name,
				Kind:           scene.KindPolygon,
				Coords:         geo.OffsetsToCoordinates(center, b.ring, rotation),
				Height:         0.1,
				ExtrudedHeight: b.height,
				Material:       b.kind,
			})
		}

		for i, r := range roads(hL, hW, wt, fp.Length, fp.Width, isStone) {
			entities = append(entities, scene.Base{
				ID:             fmt.Sprintf("%s_road_%d", f.ID, i),
				Name:           r.name,
				Kind:           scene.KindPolygon,
				Coords:         geo.OffsetsToCoordinates(center, r.ring, rotation),
				Height:         0.05,
				ExtrudedHeight: 0.1,
				Material:       "road",
			})
		}
	}

	labelPos := center
	entities = append(entities, scene.Base{
		ID:        f.ID + "_label",
		Kind:      scene.KindLabel,
		Position:  &labelPos,
		Text:      f.Name,
		StartYear: f.StartYear,
		EndYear:   f.EndYear,
	})

	return scene.Fort{
		ID:        f.ID,
		Name:      f.Name,
		StartYear: f.StartYear,
		EndYear:   f.EndYear,
		Material:  f.Material,
		Entities:  entities,
	}
}

// GenerateAll generates every fort in a loaded fort project, in input
// order.
func GenerateAll(fp *descriptor.FortProject) []scene.Fort {
	forts := make([]scene.Fort, 0, len(fp.Forts))
	for _, f := range fp.Forts {
		forts = append(forts, Generate(f, fp.ReferencePoints))
	}
	return forts
}

func resolveFootprint(f descriptor.Fort, refPoints map[string]descriptor.ReferencePoint) Footprint {
	var fp Footprint
	derived := false

	if f.CenterFrom != "" {
		if rp, ok := refPoints[f.CenterFrom]; ok {
			fp = CalculateFromCorners(rp.Corners)
			derived = true
		}
	}

	if f.Center != nil {
		fp.Center = *f.Center
	}
	if f.Length != nil {
		fp.Length = *f.Length
	}
	if f.Width != nil {
		fp.Width = *f.Width
	}
	if f.Rotation != nil {
		fp.Rotation = *f.Rotation
	} else if !derived {
		fp.Rotation = 0
	}

	return fp
}
