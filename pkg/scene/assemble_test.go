package scene

import "testing"

func TestAssembleGroupsByAllAxes(t *testing.T) {
	entities := []Positioned{
		{
			Base:      Base{ID: "st_mary_nave__medieval", Kind: KindPolygon, Material: "wall"},
			Structure: "st_mary",
			Period:    "medieval",
		},
		{
			Base:      Base{ID: "st_mary_tower__medieval", Kind: KindPolygon, Material: "tower"},
			Structure: "st_mary",
			Period:    "medieval",
		},
		{
			Base:      Base{ID: "st_mary_nave__berry_1650", Kind: KindPolygon, Material: "wall"},
			Structure: "st_mary",
			Period:    "berry_1650",
		},
	}

	doc := Assemble("test", nil, entities)

	if len(doc.Entities) != 3 {
		t.Fatalf("expected 3 entities, got %d", len(doc.Entities))
	}
	if got := doc.Groups.Structures["st_mary"]; len(got) != 3 {
		t.Errorf("expected 3 ids for st_mary, got %v", got)
	}
	if got := doc.Groups.Periods["medieval"]; len(got) != 2 {
		t.Errorf("expected 2 ids for medieval, got %v", got)
	}
	if got := doc.Groups.Materials["tower"]; len(got) != 1 || got[0] != "st_mary_tower__medieval" {
		t.Errorf("unexpected tower group: %v", got)
	}
}

func TestAssemblePreservesEntityOrder(t *testing.T) {
	entities := []Positioned{
		{Base: Base{ID: "a"}, Structure: "s", Period: "p1"},
		{Base: Base{ID: "b"}, Structure: "s", Period: "p1"},
		{Base: Base{ID: "c"}, Structure: "s", Period: "p2"},
	}
	doc := Assemble("test", nil, entities)
	for i, want := range []string{"a", "b", "c"} {
		if doc.Entities[i].ID != want {
			t.Errorf("entity %d: expected %s, got %s", i, want, doc.Entities[i].ID)
		}
	}
}

func TestAssembleEmptyInput(t *testing.T) {
	doc := Assemble("test", nil, nil)
	if doc.Entities == nil || len(doc.Entities) != 0 {
		t.Errorf("expected empty non-nil entity list")
	}
	if doc.Metadata.GeneratedAt == "" {
		t.Error("expected generated_at to be set")
	}
}

func TestAssembleFortsCarriesMaterials(t *testing.T) {
	mats := map[string]string{"wall": "#8a8a8a"}
	doc := AssembleForts("forts", mats, []Fort{{ID: "mamucium", Name: "Mamucium"}})
	if len(doc.Forts) != 1 || doc.Forts[0].ID != "mamucium" {
		t.Fatalf("unexpected forts: %+v", doc.Forts)
	}
	if doc.Materials["wall"] != "#8a8a8a" {
		t.Error("materials not carried through")
	}
}
