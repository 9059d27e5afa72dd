package scene

import "github.com/natenatters/manchester-gis/pkg/geo"

// Kind identifies the geometry primitive carried by an entity.
type Kind string

const (
	KindPolygon         Kind = "polygon"
	KindPolygonWithHole Kind = "polygon_with_hole"
	KindLabel           Kind = "label"
)

// Availability is the inclusive year range during which a positioned
// entity is present.
type Availability struct {
	Start int `json:"start" yaml:"start"`
	Stop  int `json:"stop" yaml:"stop"`
}

// Base is a geometry primitive in a structure's reference placement,
// prior to any period-specific transform.
//
// Polygon entities carry Coords; polygon-with-hole entities carry Outer
// and Inner; label entities carry Position and Text. Heights are meters
// and may be negative for sub-grade elements (ditches, bridge piers).
type Base struct {
	ID             string      `json:"id" yaml:"id"`
	Name           string      `json:"name,omitempty" yaml:"name,omitempty"`
	Kind           Kind        `json:"type" yaml:"type"`
	Coords         geo.Ring    `json:"coords,omitempty" yaml:"coords,omitempty"`
	Outer          geo.Ring    `json:"outer,omitempty" yaml:"outer,omitempty"`
	Inner          geo.Ring    `json:"inner,omitempty" yaml:"inner,omitempty"`
	Position       *geo.LonLat `json:"position,omitempty" yaml:"position,omitempty"`
	Text           string      `json:"text,omitempty" yaml:"text,omitempty"`
	Height         float64     `json:"height" yaml:"height"`
	ExtrudedHeight float64     `json:"extrudedHeight" yaml:"extrudedHeight"`
	Material       string      `json:"material,omitempty" yaml:"material,omitempty"`
	StartYear      int         `json:"startYear,omitempty" yaml:"startYear,omitempty"`
	EndYear        int         `json:"endYear,omitempty" yaml:"endYear,omitempty"`
}

// Positioned is a Base after period expansion: rings transformed into
// the period's placement and an availability interval attached.
type Positioned struct {
	Base
	Structure    string       `json:"structure"`
	Period       string       `json:"period"`
	Availability Availability `json:"availability"`
}

// Fort is the generated output for a single fort definition. Forts are
// not period-expanded; the whole group carries one existence interval.
type Fort struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartYear int    `json:"startYear"`
	EndYear   int    `json:"endYear"`
	Material  string `json:"material"`
	Entities  []Base `json:"entities"`
}
