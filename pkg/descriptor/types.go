package descriptor

import (
	"github.com/natenatters/manchester-gis/pkg/geo"
	"github.com/natenatters/manchester-gis/pkg/scene"
)

// Structure is the canonical form of a structure descriptor. Loading
// normalizes the two existence-interval encodings (startYear/endYear
// pair vs ISO interval string) and the two override encodings (delta vs
// full) so that the transform pipeline never branches on wire format.
type Structure struct {
	ID       string
	Name     string
	Kind     string // archetype tag; generators fall back to "house" when unrecognized
	Center   geo.LonLat
	Rotation float64

	// Existence interval, inclusive years.
	Start int
	End   int

	Params    Params
	Overrides map[string]Override

	// Entities is only set for Kind == "custom": pre-built base
	// entities supplied verbatim, bypassing generation.
	Entities []scene.Base
}

// Params holds archetype-specific dimensions in meters. Nil fields take
// per-archetype defaults at generation time.
type Params struct {
	Length      *float64 `yaml:"length" json:"length,omitempty"`
	Width       *float64 `yaml:"width" json:"width,omitempty"`
	Height      *float64 `yaml:"height" json:"height,omitempty"`
	NaveLength  *float64 `yaml:"naveLength" json:"naveLength,omitempty"`
	NaveWidth   *float64 `yaml:"naveWidth" json:"naveWidth,omitempty"`
	NaveHeight  *float64 `yaml:"naveHeight" json:"naveHeight,omitempty"`
	TowerSize   *float64 `yaml:"towerSize" json:"towerSize,omitempty"`
	TowerHeight *float64 `yaml:"towerHeight" json:"towerHeight,omitempty"`
	AisleWidth  *float64 `yaml:"aisleWidth" json:"aisleWidth,omitempty"`
	WingDepth   *float64 `yaml:"wingDepth" json:"wingDepth,omitempty"`
	WingWidth   *float64 `yaml:"wingWidth" json:"wingWidth,omitempty"`
	Span        *float64 `yaml:"span" json:"span,omitempty"`
	NumArches   *int     `yaml:"numArches" json:"numArches,omitempty"`
}

// Override is the canonical per-period position override. Delta marks
// the compact encoding: DX/DY are degree offsets added to the default
// center and Rotation is added to the default rotation. In the full
// encoding Center/Rotation are absolute, with nil fields falling back
// to the structure's base values. Scale defaults to 1 in both forms.
type Override struct {
	Delta    bool
	DX, DY   float64
	Center   *geo.LonLat
	Rotation *float64
	Scale    *float64
}

// Period is a named historical map window with its own georeferencing
// convention. GeoCorrect periods have no dedicated historical map, so
// structures without an explicit override fall back to their "modern"
// surveyed position.
type Period struct {
	ID         string `yaml:"id" json:"id"`
	Start      int    `yaml:"start" json:"start"`
	Stop       int    `yaml:"stop" json:"stop"`
	GeoCorrect bool   `yaml:"geoCorrect" json:"geoCorrect"`
}

// PeriodTable is an ordered period list; list order determines output
// entity ordering per structure.
type PeriodTable []Period

// ByID returns the period with the given id, or nil.
func (pt PeriodTable) ByID(id string) *Period {
	for i := range pt {
		if pt[i].ID == id {
			return &pt[i]
		}
	}
	return nil
}

// DefaultPeriods is the built-in map period table, used when a project
// defines none. It mirrors the imagery layers of the viewer config.
func DefaultPeriods() PeriodTable {
	return PeriodTable{
		{ID: "roman", Start: 0, Stop: 410, GeoCorrect: true},
		{ID: "medieval", Start: 411, Stop: 1649, GeoCorrect: true},
		{ID: "berry_1650", Start: 1650, Stop: 1749},
		{ID: "berry_1750", Start: 1750, Stop: 1844},
		{ID: "os_1845", Start: 1845, Stop: 1889, GeoCorrect: true},
		{ID: "os_1950s", Start: 1890, Stop: 1949, GeoCorrect: true},
		{ID: "modern", Start: 1950, Stop: 2100, GeoCorrect: true},
	}
}

// Fort describes a Roman fort reconstruction. Footprint fields may be
// left nil and derived from a named reference-point corner set.
type Fort struct {
	ID            string         `yaml:"id" json:"id"`
	Name          string         `yaml:"name" json:"name"`
	Center        *geo.LonLat    `yaml:"center" json:"center,omitempty"`
	CenterFrom    string         `yaml:"centerFrom" json:"centerFrom,omitempty"`
	Length        *float64       `yaml:"length" json:"length,omitempty"`
	Width         *float64       `yaml:"width" json:"width,omitempty"`
	Rotation      *float64       `yaml:"rotation" json:"rotation,omitempty"`
	WallThickness float64        `yaml:"wallThickness" json:"wallThickness"`
	WallHeight    float64        `yaml:"wallHeight" json:"wallHeight"`
	TowerHeight   float64        `yaml:"towerHeight" json:"towerHeight"`
	DitchWidth    float64        `yaml:"ditchWidth" json:"ditchWidth"`
	DitchDepth    float64        `yaml:"ditchDepth" json:"ditchDepth"`
	Material      string         `yaml:"material" json:"material"` // stone, timber, ruins
	PartialWalls  bool           `yaml:"partialWalls" json:"partialWalls,omitempty"`
	StartYear     int            `yaml:"startYear" json:"startYear"`
	EndYear       int            `yaml:"endYear" json:"endYear"`
	Buildings     []FortBuilding `yaml:"buildings" json:"buildings,omitempty"`
}

// FortBuilding is one interior building in a fort layout, positioned in
// the 160x130 m reference frame and scaled to the fort's footprint.
type FortBuilding struct {
	Name   string  `yaml:"name" json:"name"`
	Kind   string  `yaml:"type" json:"type"`
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	W      float64 `yaml:"w" json:"w"`
	H      float64 `yaml:"h" json:"h"`
	Height float64 `yaml:"height" json:"height"`
}

// ReferencePoint is a set of surveyed fort corners keyed SW/SE/NE/NW.
type ReferencePoint struct {
	Corners map[string]geo.LonLat `yaml:"corners" json:"corners"`
}

// Project is a fully loaded and normalized project: the read-only input
// to the generation pipeline.
type Project struct {
	Description string
	Periods     PeriodTable
	Materials   map[string]string
	Structures  []Structure
}

// FortProject is a loaded fort-reconstruction input file.
type FortProject struct {
	Description     string                    `yaml:"description" json:"description"`
	Materials       map[string]string         `yaml:"materials" json:"materials"`
	ReferencePoints map[string]ReferencePoint `yaml:"referencePoints" json:"referencePoints"`
	Forts           []Fort                    `yaml:"forts" json:"forts"`
}
