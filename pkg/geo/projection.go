package geo

import "math"

// metersPerDegree is the equirectangular scale factor. The flat-earth
// approximation is only valid because structures span at most a few
// hundred meters.
const metersPerDegree = 111000.0

// MetersToLatDegrees converts a north-south distance in meters to
// latitude degrees.
func MetersToLatDegrees(m float64) float64 {
	return m / metersPerDegree
}

// MetersToLonDegrees converts an east-west distance in meters to
// longitude degrees at the given latitude.
func MetersToLonDegrees(m, atLatDegrees float64) float64 {
	return m / (metersPerDegree * math.Cos(atLatDegrees*math.Pi/180))
}

// LatDegreesToMeters is the inverse of MetersToLatDegrees.
func LatDegreesToMeters(deg float64) float64 {
	return deg * metersPerDegree
}

// LonDegreesToMeters is the inverse of MetersToLonDegrees.
func LonDegreesToMeters(deg, atLatDegrees float64) float64 {
	return deg * metersPerDegree * math.Cos(atLatDegrees*math.Pi/180)
}

// RotatePoint rotates (x, y) counterclockwise about the origin by
// angleDegrees.
func RotatePoint(x, y, angleDegrees float64) (float64, float64) {
	rad := angleDegrees * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return x*c - y*s, x*s + y*c
}

// Rotate returns the offset rotated counterclockwise by angleDegrees.
func (o Offset) Rotate(angleDegrees float64) Offset {
	x, y := RotatePoint(o.X, o.Y, angleDegrees)
	return Offset{X: x, Y: y}
}

// OffsetsToCoordinates places meter offsets around a geographic center:
// each offset is rotated by rotationDegrees, converted to degree deltas
// using the center's latitude for the longitude scale, and added to the
// center. This is the only place meter parameters become coordinates.
func OffsetsToCoordinates(center LonLat, offsets []Offset, rotationDegrees float64) Ring {
	ring := make(Ring, len(offsets))
	for i, o := range offsets {
		r := o.Rotate(rotationDegrees)
		ring[i] = LonLat{
			Lon: center.Lon + MetersToLonDegrees(r.X, center.Lat),
			Lat: center.Lat + MetersToLatDegrees(r.Y),
		}
	}
	return ring
}

// CoordinatesToOffsets is the inverse of OffsetsToCoordinates; it is
// used when deriving fort footprints from surveyed corner points.
func CoordinatesToOffsets(center LonLat, ring Ring, rotationDegrees float64) []Offset {
	offsets := make([]Offset, len(ring))
	for i, c := range ring {
		x := LonDegreesToMeters(c.Lon-center.Lon, center.Lat)
		y := LatDegreesToMeters(c.Lat - center.Lat)
		offsets[i] = Off(x, y).Rotate(-rotationDegrees)
	}
	return offsets
}
