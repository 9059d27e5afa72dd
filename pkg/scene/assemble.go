package scene

import "time"

// Document is the flattened structure-entity output consumed by the
// downstream serializer and the preview server.
type Document struct {
	Metadata  Metadata          `json:"metadata"`
	Materials map[string]string `json:"materials,omitempty"`
	Entities  []Positioned      `json:"entities"`
	Groups    Groups            `json:"groups"`
}

// FortDocument is the generated-fort output.
type FortDocument struct {
	Metadata  Metadata          `json:"metadata"`
	Materials map[string]string `json:"materials,omitempty"`
	Forts     []Fort            `json:"forts"`
}

// Metadata holds document-level information.
type Metadata struct {
	Description string `json:"description"`
	GeneratedAt string `json:"generated_at"`
}

// Groups organizes entity IDs by structure, period, and material for
// fast filtering on the viewer side.
type Groups struct {
	Structures map[string][]string `json:"structures"`
	Periods    map[string][]string `json:"periods"`
	Materials  map[string][]string `json:"materials"`
}

// Assemble builds the output document from expanded entities,
// preserving their order and indexing them into groups.
func Assemble(description string, materials map[string]string, entities []Positioned) *Document {
	doc := &Document{
		Metadata: Metadata{
			Description: description,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Materials: materials,
		Entities:  entities,
		Groups: Groups{
			Structures: make(map[string][]string),
			Periods:    make(map[string][]string),
			Materials:  make(map[string][]string),
		},
	}
	if doc.Entities == nil {
		doc.Entities = []Positioned{}
	}

	for _, e := range doc.Entities {
		if e.Structure != "" {
			doc.Groups.Structures[e.Structure] = append(doc.Groups.Structures[e.Structure], e.ID)
		}
		if e.Period != "" {
			doc.Groups.Periods[e.Period] = append(doc.Groups.Periods[e.Period], e.ID)
		}
		if e.Material != "" {
			doc.Groups.Materials[e.Material] = append(doc.Groups.Materials[e.Material], e.ID)
		}
	}

	return doc
}

// AssembleForts builds the fort output document.
func AssembleForts(description string, materials map[string]string, forts []Fort) *FortDocument {
	if forts == nil {
		forts = []Fort{}
	}
	return &FortDocument{
		Metadata: Metadata{
			Description: description,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Materials: materials,
		Forts:     forts,
	}
}
