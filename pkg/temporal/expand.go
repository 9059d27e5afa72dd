package temporal

import (
	"math"

	"github.com/natenatters/manchester-gis/pkg/descriptor"
	"github.com/natenatters/manchester-gis/pkg/geo"
	"github.com/natenatters/manchester-gis/pkg/scene"
)

// Expand produces one positioned copy of every base entity per period
// the structure overlaps. Base entities are generated once by the
// caller and reused across periods; each output entity is a fresh
// value. A structure overlapping no configured period yields nothing:
// that is "not visible", not an error.
func Expand(s descriptor.Structure, base []scene.Base, periods descriptor.PeriodTable) []scene.Positioned {
	var out []scene.Positioned

	for _, period := range periods {
		start := max(s.Start, period.Start)
		stop := min(s.End, period.Stop)
		if start > stop {
			continue
		}

		placement := Resolve(s, period)

		for _, b := range base {
			e := scene.Positioned{
				Base:      b,
				Structure: s.ID,
				Period:    period.ID,
				Availability: scene.Availability{
					Start: start,
					Stop:  stop,
				},
			}
			e.ID = b.ID + "__" + period.ID
			e.Coords = transformRing(b.Coords, s.Center, s.Rotation, placement)
			e.Outer = transformRing(b.Outer, s.Center, s.Rotation, placement)
			e.Inner = transformRing(b.Inner, s.Center, s.Rotation, placement)
			if b.Position != nil {
				p := transformPoint(*b.Position, s.Center, s.Rotation, placement)
				e.Position = &p
			}
			out = append(out, e)
		}
	}

	return out
}

// transformRing maps every ring point from the structure's reference
// placement into the period placement. The point count never changes:
// this is a pointwise affine map, not a resampling.
//
// When the rotation delta is 0 and scale is 1 the transform degenerates
// to a pure translation. That path is part of the contract, not an
// optimization: it keeps axis-aligned footprints free of accumulated
// floating-point rotation error.
func transformRing(ring geo.Ring, originalCenter geo.LonLat, originalRotation float64, target Placement) geo.Ring {
	if ring == nil {
		return nil
	}

	deltaRotation := target.Rotation - originalRotation
	dLon := target.Center.Lon - originalCenter.Lon
	dLat := target.Center.Lat - originalCenter.Lat

	out := make(geo.Ring, len(ring))

	if deltaRotation == 0 && target.Scale == 1 {
		for i, c := range ring {
			out[i] = geo.LonLat{Lon: c.Lon + dLon, Lat: c.Lat + dLat}
		}
		return out
	}

	rad := deltaRotation * math.Pi / 180
	cosR, sinR := math.Cos(rad), math.Sin(rad)

	for i, c := range ring {
		relLon := (c.Lon - originalCenter.Lon) * target.Scale
		relLat := (c.Lat - originalCenter.Lat) * target.Scale

		rotLon := relLon*cosR - relLat*sinR
		rotLat := relLon*sinR + relLat*cosR

		out[i] = geo.LonLat{
			Lon: target.Center.Lon + rotLon,
			Lat: target.Center.Lat + rotLat,
		}
	}

	return out
}

func transformPoint(p geo.LonLat, originalCenter geo.LonLat, originalRotation float64, target Placement) geo.LonLat {
	return transformRing(geo.Ring{p}, originalCenter, originalRotation, target)[0]
}
