// Package shapes turns parametric structure descriptors into footprint
// entities at the structure's reference placement. Each generator is a
// pure function; unknown archetype tags fall back to the house
// generator so partial historical data degrades instead of aborting a
// batch run.
package shapes

import (
	"sort"
	"strings"

	"github.com/natenatters/manchester-gis/pkg/descriptor"
	"github.com/natenatters/manchester-gis/pkg/geo"
	"github.com/natenatters/manchester-gis/pkg/scene"
)

// Generator produces base entities for one structure.
type Generator func(descriptor.Structure) []scene.Base

var generators = map[string]Generator{
	"house":               House,
	"church":              Church,
	"neoclassical_church": NeoclassicalChurch,
	"chapel":              Chapel,
	"bridge":              Bridge,
	"courtyard":           Courtyard,
}

// Generate dispatches on the structure's archetype tag. Structures
// tagged "custom" bypass generation and supply their entities verbatim.
func Generate(s descriptor.Structure) []scene.Base {
	if s.Kind == "custom" {
		return s.Entities
	}
	g, ok := generators[s.Kind]
	if !ok {
		g = House
	}
	return g(s)
}

// Known reports whether a generator exists for the archetype tag.
func Known(kind string) bool {
	_, ok := generators[kind]
	return ok
}

// Kinds lists the recognized archetype tags in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(generators))
	for k := range generators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// param returns *p, or def when the descriptor omitted the field.
func param(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

func paramInt(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

// title upper-cases the first letter of a compass side for entity names.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// rect builds an axis-aligned rectangle ring in the local meter frame,
// corners ordered counterclockwise from (x0, y0).
func rect(x0, y0, x1, y1 float64) []geo.Offset {
	return []geo.Offset{
		geo.Off(x0, y0),
		geo.Off(x1, y0),
		geo.Off(x1, y1),
		geo.Off(x0, y1),
	}
}
