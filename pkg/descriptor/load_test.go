package descriptor

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadNormalizesYearPair(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structures.yaml")
	writeFile(t, path, `
structures:
  - id: old_house
    name: Old House
    type: house
    center: [-2.25, 53.48]
    startYear: 1600
    endYear: 1700
`)
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	s := p.Structures[0]
	if s.Start != 1600 || s.End != 1700 {
		t.Errorf("expected [1600,1700], got [%d,%d]", s.Start, s.End)
	}
	if s.Center.Lon != -2.25 || s.Center.Lat != 53.48 {
		t.Errorf("center not parsed from pair form: %+v", s.Center)
	}
}

func TestLoadNormalizesISOInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structures.yaml")
	writeFile(t, path, `
structures:
  - id: a
    center: [0, 50]
    existence: "1600/1700"
  - id: b
    center: [0, 50]
    existence: "1600-01-01/1700-12-31"
  - id: c
    center: [0, 50]
`)
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{0, 1} {
		if p.Structures[i].Start != 1600 || p.Structures[i].End != 1700 {
			t.Errorf("structure %d: expected [1600,1700], got [%d,%d]",
				i, p.Structures[i].Start, p.Structures[i].End)
		}
	}
	// No interval at all: default range.
	if p.Structures[2].Start != 0 || p.Structures[2].End != 2100 {
		t.Errorf("expected default [0,2100], got [%d,%d]", p.Structures[2].Start, p.Structures[2].End)
	}
}

func TestLoadRejectsMalformedInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structures.yaml")
	writeFile(t, path, `
structures:
  - id: bad
    center: [0, 50]
    existence: "sixteen hundred"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed existence interval")
	}
}

func TestOverrideNormalization(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structures.yaml")
	writeFile(t, path, `
structures:
  - id: s
    center: [-2.25, 53.48]
    rotation: 10
    maps:
      berry_1650:
        dx: 0.001
        dy: -0.002
        rotation: 5
      berry_1750:
        center: [-2.26, 53.49]
        scale: 1.2
      os_1845:
        dx: 0.003
        center: [-9.99, 9.99]
`)
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	ov := p.Structures[0].Overrides

	delta := ov["berry_1650"]
	if !delta.Delta || delta.DX != 0.001 || delta.DY != -0.002 {
		t.Errorf("delta form not normalized: %+v", delta)
	}
	if delta.Rotation == nil || *delta.Rotation != 5 {
		t.Errorf("delta rotation lost: %+v", delta.Rotation)
	}

	full := ov["berry_1750"]
	if full.Delta || full.Center == nil || full.Center.Lon != -2.26 {
		t.Errorf("full form not normalized: %+v", full)
	}
	if full.Scale == nil || *full.Scale != 1.2 {
		t.Errorf("full scale lost")
	}
	if full.Rotation != nil {
		t.Errorf("absent rotation should stay nil")
	}

	// A record carrying both encodings resolves to the delta form.
	mixed := ov["os_1845"]
	if !mixed.Delta || mixed.DX != 0.003 || mixed.Center != nil {
		t.Errorf("delta should win over full in a mixed record: %+v", mixed)
	}
}

func TestPeriodsListForm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structures.yaml")
	writeFile(t, path, `
periods:
  - id: medieval
    start: 411
    stop: 1649
    geoCorrect: true
  - id: berry_1650
    start: 1650
    stop: 1749
structures: []
`)
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Periods) != 2 || p.Periods[0].ID != "medieval" || p.Periods[1].ID != "berry_1650" {
		t.Fatalf("unexpected periods: %+v", p.Periods)
	}
	if !p.Periods[0].GeoCorrect || p.Periods[1].GeoCorrect {
		t.Error("geoCorrect flags wrong")
	}
}

func TestPeriodsMappingFormPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structures.yaml")
	writeFile(t, path, `
periods:
  roman: {start: 0, stop: 410}
  medieval: {start: 411, stop: 1649}
  berry_1650: {start: 1650, stop: 1749}
geoCorrectPeriods: [roman, medieval]
structures: []
`)
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"roman", "medieval", "berry_1650"}
	if len(p.Periods) != len(want) {
		t.Fatalf("expected %d periods, got %d", len(want), len(p.Periods))
	}
	for i, id := range want {
		if p.Periods[i].ID != id {
			t.Errorf("period %d: expected %s, got %s", i, id, p.Periods[i].ID)
		}
	}
	if !p.Periods[0].GeoCorrect || !p.Periods[1].GeoCorrect || p.Periods[2].GeoCorrect {
		t.Error("geoCorrectPeriods list not applied")
	}
}

func TestDefaultPeriodsWhenAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structures.yaml")
	writeFile(t, path, "structures: []\n")
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Periods) != 7 || p.Periods[0].ID != "roman" || p.Periods[6].ID != "modern" {
		t.Fatalf("expected default period table, got %+v", p.Periods)
	}
	if !p.Periods[0].GeoCorrect || p.Periods[2].GeoCorrect {
		t.Error("default geoCorrect flags wrong")
	}
}

func TestCustomStructureCarriesEntities(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structures.yaml")
	writeFile(t, path, `
structures:
  - id: hall
    type: custom
    center: [-2.25, 53.48]
    entities:
      - id: hall_main
        type: polygon
        coords: [[-2.2501, 53.4799], [-2.2499, 53.4799], [-2.2499, 53.4801]]
        height: 0
        extrudedHeight: 9
        material: wall
`)
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	s := p.Structures[0]
	if s.Kind != "custom" || len(s.Entities) != 1 {
		t.Fatalf("custom entities not loaded: %+v", s)
	}
	if len(s.Entities[0].Coords) != 3 || s.Entities[0].ExtrudedHeight != 9 {
		t.Errorf("custom entity geometry mangled: %+v", s.Entities[0])
	}
}

func TestLoadProjectMergesStructureFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "structures.yaml"), `
structures:
  - id: main
    center: [0, 50]
`)
	writeFile(t, filepath.Join(dir, "structures", "extra.json"),
		`{"id": "extra", "type": "chapel", "center": [-2.25, 53.48], "startYear": 1400}`)
	writeFile(t, filepath.Join(dir, "structures", "broken.yaml"), "{{{not yaml")

	p, err := LoadProject(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Structures) != 2 {
		t.Fatalf("expected 2 structures (broken one skipped), got %d", len(p.Structures))
	}
	extra := p.Structures[1]
	if extra.ID != "extra" || extra.Kind != "chapel" || extra.Start != 1400 || extra.End != 2100 {
		t.Errorf("JSON structure file not normalized: %+v", extra)
	}
}

func TestLoadForts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forts.yaml")
	writeFile(t, path, `
referencePoints:
  mamucium_survey:
    corners:
      SW: [-2.2547, 53.4744]
      SE: [-2.2523, 53.4744]
      NE: [-2.2523, 53.4757]
      NW: [-2.2547, 53.4757]
forts:
  - id: mamucium
    name: Mamucium
    centerFrom: mamucium_survey
    wallThickness: 2
    wallHeight: 5
    towerHeight: 7
    ditchWidth: 4
    ditchDepth: 2
    material: stone
    startYear: 79
    endYear: 410
`)
	fp, err := LoadForts(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(fp.Forts) != 1 || fp.Forts[0].CenterFrom != "mamucium_survey" {
		t.Fatalf("unexpected forts: %+v", fp.Forts)
	}
	rp, ok := fp.ReferencePoints["mamucium_survey"]
	if !ok || len(rp.Corners) != 4 {
		t.Fatalf("reference points not loaded: %+v", fp.ReferencePoints)
	}
	if rp.Corners["SW"].Lat != 53.4744 {
		t.Errorf("corner coordinate mangled: %+v", rp.Corners["SW"])
	}
}
