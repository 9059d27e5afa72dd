package geo

import (
	"encoding/json"
	"fmt"
	"math"
)

// LonLat is a geographic coordinate in decimal degrees.
// It marshals as a two-element [lon, lat] array to match the
// descriptor and entity file formats.
type LonLat struct {
	Lon float64
	Lat float64
}

// Ring is an ordered list of polygon boundary vertices.
type Ring []LonLat

// Offset is a point in a structure-local tangent frame, in meters.
// X is east, Y is north.
type Offset struct {
	X float64
	Y float64
}

// Off is a shorthand constructor for Offset.
func Off(x, y float64) Offset {
	return Offset{X: x, Y: y}
}

// Add returns o + q.
func (o Offset) Add(q Offset) Offset {
	return Offset{o.X + q.X, o.Y + q.Y}
}

// Sub returns o - q.
func (o Offset) Sub(q Offset) Offset {
	return Offset{o.X - q.X, o.Y - q.Y}
}

// Scale returns o * s.
func (o Offset) Scale(s float64) Offset {
	return Offset{o.X * s, o.Y * s}
}

// Length returns the Euclidean length of the vector.
func (o Offset) Length() float64 {
	return math.Hypot(o.X, o.Y)
}

func (c LonLat) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lon, c.Lat})
}

func (c *LonLat) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coordinate must be a [lon, lat] pair: %w", err)
	}
	c.Lon, c.Lat = pair[0], pair[1]
	return nil
}

// UnmarshalYAML accepts the same [lon, lat] sequence form used in JSON.
func (c *LonLat) UnmarshalYAML(unmarshal func(any) error) error {
	var pair [2]float64
	if err := unmarshal(&pair); err != nil {
		return fmt.Errorf("coordinate must be a [lon, lat] pair: %w", err)
	}
	c.Lon, c.Lat = pair[0], pair[1]
	return nil
}

func (c LonLat) MarshalYAML() (any, error) {
	return [2]float64{c.Lon, c.Lat}, nil
}
