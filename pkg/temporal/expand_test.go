package temporal

import (
	"math"
	"testing"

	"github.com/natenatters/manchester-gis/pkg/descriptor"
	"github.com/natenatters/manchester-gis/pkg/geo"
	"github.com/natenatters/manchester-gis/pkg/scene"
	"github.com/natenatters/manchester-gis/pkg/shapes"
)

func squareBase(id string, center geo.LonLat) []scene.Base {
	offsets := []geo.Offset{geo.Off(-5, -3), geo.Off(5, -3), geo.Off(5, 3), geo.Off(-5, 3)}
	return []scene.Base{{
		ID:             id + "_walls",
		Kind:           scene.KindPolygon,
		Coords:         geo.OffsetsToCoordinates(center, offsets, 0),
		ExtrudedHeight: 4,
		Material:       "wall",
	}}
}

// The concrete scenario from the acceptance checklist: a house existing
// 1600-1700 against medieval [411,1649] and berry_1650 [1650,1749]
// yields exactly two positioned walls with clamped availabilities, both
// at the same place.
func TestExpandHouseAcrossTwoPeriods(t *testing.T) {
	s := descriptor.Structure{
		ID:     "old_house",
		Kind:   "house",
		Center: geo.LonLat{Lon: -2.25, Lat: 53.48},
		Start:  1600,
		End:    1700,
		Params: descriptor.Params{},
	}
	periods := descriptor.PeriodTable{
		{ID: "medieval", Start: 411, Stop: 1649},
		{ID: "berry_1650", Start: 1650, Stop: 1749},
	}

	base := shapes.Generate(s)
	out := Expand(s, base, periods)

	if len(out) != 2 {
		t.Fatalf("expected 2 positioned entities, got %d", len(out))
	}

	first, second := out[0], out[1]
	if first.ID != "old_house_walls__medieval" || second.ID != "old_house_walls__berry_1650" {
		t.Errorf("unexpected ids: %s, %s", first.ID, second.ID)
	}
	if first.Availability != (scene.Availability{Start: 1600, Stop: 1649}) {
		t.Errorf("first availability: %+v", first.Availability)
	}
	if second.Availability != (scene.Availability{Start: 1650, Stop: 1700}) {
		t.Errorf("second availability: %+v", second.Availability)
	}

	// No overrides: identity placement, rings must match exactly.
	for idx := range first.Coords {
		if first.Coords[idx] != second.Coords[idx] || first.Coords[idx] != base[0].Coords[idx] {
			t.Errorf("point %d moved without an override", idx)
		}
	}
}

func TestExpandSkipsNonOverlappingPeriods(t *testing.T) {
	s := descriptor.Structure{ID: "s", Center: geo.LonLat{Lon: 0, Lat: 50}, Start: 1600, End: 1700}
	periods := descriptor.PeriodTable{
		{ID: "roman", Start: 0, Stop: 410},
		{ID: "modern", Start: 1950, Stop: 2100},
	}
	out := Expand(s, squareBase("s", s.Center), periods)
	if len(out) != 0 {
		t.Fatalf("expected no output for non-overlapping periods, got %d", len(out))
	}
}

func TestExpandPureTranslationFastPath(t *testing.T) {
	center := geo.LonLat{Lon: -2.25, Lat: 53.48}
	s := descriptor.Structure{
		ID: "s", Center: center, Start: 0, End: 2100,
		Overrides: map[string]descriptor.Override{
			"berry_1650": {Delta: true, DX: 0.01, DY: 0.02},
		},
	}
	base := squareBase("s", center)
	out := Expand(s, base, descriptor.PeriodTable{{ID: "berry_1650", Start: 1650, Stop: 1749}})

	if len(out) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(out))
	}
	// Zero rotation delta and unit scale: every point moves by exactly
	// the same vector.
	for i, c := range out[0].Coords {
		if c.Lon != base[0].Coords[i].Lon+0.01 || c.Lat != base[0].Coords[i].Lat+0.02 {
			t.Errorf("point %d: expected pure translation, got %+v", i, c)
		}
	}
}

// The fast path must agree with the general path evaluated at the
// identity, up to floating-point tolerance.
func TestFastPathMatchesGeneralPathAtIdentity(t *testing.T) {
	center := geo.LonLat{Lon: -2.25, Lat: 53.48}
	ring := geo.OffsetsToCoordinates(center, []geo.Offset{geo.Off(-5, -3), geo.Off(5, 3)}, 0)
	target := Placement{Center: geo.LonLat{Lon: -2.24, Lat: 53.49}, Rotation: 0, Scale: 1}

	fast := transformRing(ring, center, 0, target)

	// Force the general path with an epsilon rotation, then compare.
	near := target
	near.Rotation = 1e-12
	general := transformRing(ring, center, 0, near)

	for i := range ring {
		if math.Abs(fast[i].Lon-general[i].Lon) > 1e-9 || math.Abs(fast[i].Lat-general[i].Lat) > 1e-9 {
			t.Errorf("point %d: fast %+v vs general %+v", i, fast[i], general[i])
		}
	}
}

func TestExpandRotateScaleTransform(t *testing.T) {
	center := geo.LonLat{Lon: 0, Lat: 0}
	ring := geo.Ring{{Lon: 0.001, Lat: 0}}
	target := Placement{Center: geo.LonLat{Lon: 0.01, Lat: 0.01}, Rotation: 90, Scale: 2}

	out := transformRing(ring, center, 0, target)

	// (0.001, 0) relative, scaled to (0.002, 0), rotated 90 CCW to
	// (0, 0.002), translated to target.
	if math.Abs(out[0].Lon-0.01) > 1e-12 || math.Abs(out[0].Lat-0.012) > 1e-12 {
		t.Errorf("expected (0.01, 0.012), got %+v", out[0])
	}
}

func TestExpandTransformsHoleRingsAndLabels(t *testing.T) {
	center := geo.LonLat{Lon: -2.25, Lat: 53.48}
	pos := center
	base := []scene.Base{{
		ID:    "s_ditch",
		Kind:  scene.KindPolygonWithHole,
		Outer: geo.Ring{{Lon: -2.251, Lat: 53.479}, {Lon: -2.249, Lat: 53.479}, {Lon: -2.249, Lat: 53.481}},
		Inner: geo.Ring{{Lon: -2.2505, Lat: 53.4795}, {Lon: -2.2495, Lat: 53.4795}, {Lon: -2.2495, Lat: 53.4805}},
	}, {
		ID:       "s_label",
		Kind:     scene.KindLabel,
		Position: &pos,
		Text:     "Site",
	}}

	s := descriptor.Structure{
		ID: "s", Center: center, Start: 0, End: 2100,
		Overrides: map[string]descriptor.Override{
			"p": {Delta: true, DX: 0.001},
		},
	}
	out := Expand(s, base, descriptor.PeriodTable{{ID: "p", Start: 0, Stop: 2100}})

	if len(out) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(out))
	}
	ditch := out[0]
	if len(ditch.Outer) != 3 || len(ditch.Inner) != 3 {
		t.Fatalf("ring point counts must be preserved")
	}
	if math.Abs(ditch.Outer[0].Lon-(-2.250)) > 1e-12 {
		t.Errorf("outer ring not translated: %+v", ditch.Outer[0])
	}
	label := out[1]
	if label.Position == nil || math.Abs(label.Position.Lon-(-2.249)) > 1e-12 {
		t.Errorf("label position not translated: %+v", label.Position)
	}
}

func TestExpandDoesNotMutateBaseEntities(t *testing.T) {
	center := geo.LonLat{Lon: -2.25, Lat: 53.48}
	base := squareBase("s", center)
	original := make(geo.Ring, len(base[0].Coords))
	copy(original, base[0].Coords)

	s := descriptor.Structure{
		ID: "s", Center: center, Start: 0, End: 2100,
		Overrides: map[string]descriptor.Override{
			"p": {Delta: true, DX: 0.5, DY: 0.5, Rotation: f(45), Scale: f(2)},
		},
	}
	Expand(s, base, descriptor.PeriodTable{{ID: "p", Start: 0, Stop: 2100}})

	for i := range original {
		if base[0].Coords[i] != original[i] {
			t.Fatalf("base entity ring mutated at point %d", i)
		}
	}
}
