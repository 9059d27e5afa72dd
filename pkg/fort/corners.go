package fort

import (
	"math"

	"github.com/natenatters/manchester-gis/pkg/geo"
)

// Footprint is a fort's resolved placement and plan dimensions.
type Footprint struct {
	Center   geo.LonLat
	Rotation float64 // degrees, bearing of the SW->SE edge
	Length   float64 // meters along SW->SE
	Width    float64 // meters along SE->NE
}

// CalculateFromCorners derives a footprint from four surveyed corner
// points keyed SW/SE/NE/NW. The center is the arithmetic mean, the
// rotation is the bearing of the SW->SE edge, and the dimensions are
// the meter lengths of the SW->SE and SE->NE edges under the same
// equirectangular approximation the rest of the pipeline uses.
func CalculateFromCorners(corners map[string]geo.LonLat) Footprint {
	sw, se, ne, nw := corners["SW"], corners["SE"], corners["NE"], corners["NW"]

	center := geo.LonLat{
		Lon: (sw.Lon + se.Lon + ne.Lon + nw.Lon) / 4,
		Lat: (sw.Lat + se.Lat + ne.Lat + nw.Lat) / 4,
	}

	dx := geo.LonDegreesToMeters(se.Lon-sw.Lon, center.Lat)
	dy := geo.LatDegreesToMeters(se.Lat - sw.Lat)
	rotation := math.Atan2(dy, dx) * 180 / math.Pi
	length := math.Hypot(dx, dy)

	dx2 := geo.LonDegreesToMeters(ne.Lon-se.Lon, center.Lat)
	dy2 := geo.LatDegreesToMeters(ne.Lat - se.Lat)
	width := math.Hypot(dx2, dy2)

	return Footprint{Center: center, Rotation: rotation, Length: length, Width: width}
}
