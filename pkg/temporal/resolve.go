// Package temporal expands structures into positioned, time-bounded
// entity copies, one per historical map period the structure overlaps.
package temporal

import (
	"github.com/natenatters/manchester-gis/pkg/descriptor"
	"github.com/natenatters/manchester-gis/pkg/geo"
)

// Placement is the resolved target position for one (structure, period)
// pair: where the structure sits on that period's map.
type Placement struct {
	Center   geo.LonLat
	Rotation float64
	Scale    float64
}

// Resolve determines the placement for a structure in a given period.
//
// Precedence: an override for the exact period id first. Geo-correct
// periods then fall back to a full override keyed "modern", since
// periods without a dedicated historical map reuse the geo-accurate
// survey position. Everything else gets the structure's raw default
// placement at scale 1.
func Resolve(s descriptor.Structure, period descriptor.Period) Placement {
	if ov, ok := s.Overrides[period.ID]; ok {
		return applyOverride(s, ov)
	}

	if period.GeoCorrect {
		if ov, ok := s.Overrides["modern"]; ok && !ov.Delta {
			return applyOverride(s, ov)
		}
	}

	return Placement{Center: s.Center, Rotation: s.Rotation, Scale: 1}
}

func applyOverride(s descriptor.Structure, ov descriptor.Override) Placement {
	if ov.Delta {
		p := Placement{
			Center:   geo.LonLat{Lon: s.Center.Lon + ov.DX, Lat: s.Center.Lat + ov.DY},
			Rotation: s.Rotation,
			Scale:    1,
		}
		if ov.Rotation != nil {
			p.Rotation += *ov.Rotation
		}
		if ov.Scale != nil {
			p.Scale = *ov.Scale
		}
		return p
	}

	p := Placement{Center: s.Center, Rotation: s.Rotation, Scale: 1}
	if ov.Center != nil {
		p.Center = *ov.Center
	}
	if ov.Rotation != nil {
		p.Rotation = *ov.Rotation
	}
	if ov.Scale != nil {
		p.Scale = *ov.Scale
	}
	return p
}
