package descriptor

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/natenatters/manchester-gis/pkg/geo"
	"github.com/natenatters/manchester-gis/pkg/scene"
)

// Default existence interval for structures with no dates.
const (
	defaultStartYear = 0
	defaultEndYear   = 2100
)

// structureSpec is the wire form of a structure descriptor, supporting
// both interval encodings and both override encodings. It is normalized
// into Structure at the loading boundary.
type structureSpec struct {
	ID        string                  `yaml:"id" json:"id"`
	Name      string                  `yaml:"name" json:"name"`
	Kind      string                  `yaml:"type" json:"type"`
	Center    geo.LonLat              `yaml:"center" json:"center"`
	Rotation  float64                 `yaml:"rotation" json:"rotation"`
	StartYear *int                    `yaml:"startYear" json:"startYear"`
	EndYear   *int                    `yaml:"endYear" json:"endYear"`
	Existence string                  `yaml:"existence" json:"existence"`
	Params    `yaml:",inline"`
	Maps      map[string]overrideSpec `yaml:"maps" json:"maps"`
	Entities  []scene.Base            `yaml:"entities" json:"entities"`
}

// overrideSpec carries both override encodings; presence of dx or dy
// marks the delta form.
type overrideSpec struct {
	DX       *float64    `yaml:"dx" json:"dx"`
	DY       *float64    `yaml:"dy" json:"dy"`
	Center   *geo.LonLat `yaml:"center" json:"center"`
	Rotation *float64    `yaml:"rotation" json:"rotation"`
	Scale    *float64    `yaml:"scale" json:"scale"`
}

type projectSpec struct {
	Description       string            `yaml:"description"`
	Periods           yaml.Node         `yaml:"periods"`
	GeoCorrectPeriods []string          `yaml:"geoCorrectPeriods"`
	Materials         map[string]string `yaml:"materials"`
	Structures        []structureSpec   `yaml:"structures"`
}

// Load reads and normalizes a structures file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading structures file: %w", err)
	}

	var ps projectSpec
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return nil, fmt.Errorf("parsing structures YAML: %w", err)
	}

	periods, err := decodePeriods(&ps.Periods, ps.GeoCorrectPeriods)
	if err != nil {
		return nil, fmt.Errorf("parsing periods: %w", err)
	}
	if len(periods) == 0 {
		periods = DefaultPeriods()
	}

	project := &Project{
		Description: ps.Description,
		Periods:     periods,
		Materials:   ps.Materials,
	}

	for i, ws := range ps.Structures {
		s, err := normalizeStructure(ws)
		if err != nil {
			return nil, fmt.Errorf("structures[%d] (%s): %w", i, ws.ID, err)
		}
		project.Structures = append(project.Structures, s)
	}

	return project, nil
}

// LoadProject loads a project directory: structures.yaml plus any
// per-structure files under structures/. Unreadable per-structure files
// are skipped with a warning so one malformed record cannot abort a
// batch run.
func LoadProject(projectDir string) (*Project, error) {
	project, err := Load(filepath.Join(projectDir, "structures.yaml"))
	if err != nil {
		return nil, err
	}

	extraDir := filepath.Join(projectDir, "structures")
	entries, err := os.ReadDir(extraDir)
	if err != nil {
		if os.IsNotExist(err) {
			return project, nil
		}
		return nil, fmt.Errorf("reading structures dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(extraDir, name)
		s, err := loadStructureFile(path)
		if err != nil {
			slog.Warn("skipping structure file", "file", name, "error", err)
			continue
		}
		project.Structures = append(project.Structures, s)
	}

	return project, nil
}

// LoadForts reads a fort-reconstruction file.
func LoadForts(path string) (*FortProject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading forts file: %w", err)
	}

	var fp FortProject
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &fp)
	} else {
		err = yaml.Unmarshal(data, &fp)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing forts file: %w", err)
	}
	return &fp, nil
}

func loadStructureFile(path string) (Structure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Structure{}, err
	}

	var ws structureSpec
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &ws)
	} else {
		err = yaml.Unmarshal(data, &ws)
	}
	if err != nil {
		return Structure{}, err
	}
	return normalizeStructure(ws)
}

func normalizeStructure(ws structureSpec) (Structure, error) {
	start, end, err := normalizeInterval(ws.StartYear, ws.EndYear, ws.Existence)
	if err != nil {
		return Structure{}, err
	}

	s := Structure{
		ID:       ws.ID,
		Name:     ws.Name,
		Kind:     ws.Kind,
		Center:   ws.Center,
		Rotation: ws.Rotation,
		Start:    start,
		End:      end,
		Params:   ws.Params,
		Entities: ws.Entities,
	}

	if len(ws.Maps) > 0 {
		s.Overrides = make(map[string]Override, len(ws.Maps))
		for periodID, o := range ws.Maps {
			s.Overrides[periodID] = normalizeOverride(o)
		}
	}

	return s, nil
}

// normalizeOverride collapses the two wire encodings into the canonical
// form. Presence of dx or dy selects the delta encoding; any full-form
// center in the same record is ignored (delta wins).
func normalizeOverride(o overrideSpec) Override {
	if o.DX != nil || o.DY != nil {
		ov := Override{Delta: true, Rotation: o.Rotation, Scale: o.Scale}
		if o.DX != nil {
			ov.DX = *o.DX
		}
		if o.DY != nil {
			ov.DY = *o.DY
		}
		return ov
	}
	return Override{Center: o.Center, Rotation: o.Rotation, Scale: o.Scale}
}

// normalizeInterval resolves the two existence-interval encodings to an
// inclusive year range. An explicit year pair takes precedence over the
// ISO interval string.
func normalizeInterval(startYear, endYear *int, existence string) (int, int, error) {
	start, end := defaultStartYear, defaultEndYear

	if existence != "" {
		s, e, err := parseYearInterval(existence)
		if err != nil {
			return 0, 0, err
		}
		start, end = s, e
	}
	if startYear != nil {
		start = *startYear
	}
	if endYear != nil {
		end = *endYear
	}

	return start, end, nil
}

// parseYearInterval parses "start/end" where each side is a year or a
// full ISO-8601 date; only the year component is kept.
func parseYearInterval(s string) (int, int, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("existence interval %q must have the form start/end", s)
	}
	start, err := parseISOYear(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := parseISOYear(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseISOYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	body := strings.TrimPrefix(s, "-")
	if i := strings.IndexByte(body, '-'); i >= 0 {
		body = body[:i]
	}
	year, err := strconv.Atoi(body)
	if err != nil {
		return 0, fmt.Errorf("invalid year in existence interval: %q", s)
	}
	if neg {
		year = -year
	}
	return year, nil
}

// decodePeriods accepts both the ordered-list form and the legacy
// mapping form (mapping order is preserved as document order). The
// geoCorrect set may be given per entry or as a separate id list.
func decodePeriods(node *yaml.Node, geoCorrectIDs []string) (PeriodTable, error) {
	var table PeriodTable

	switch node.Kind {
	case 0: // absent
	case yaml.SequenceNode:
		if err := node.Decode(&table); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		// Mapping form: id -> {start, stop}; yaml.Node content
		// preserves document order as key/value pairs.
		for i := 0; i+1 < len(node.Content); i += 2 {
			var p Period
			if err := node.Content[i].Decode(&p.ID); err != nil {
				return nil, err
			}
			if err := node.Content[i+1].Decode(&p); err != nil {
				return nil, err
			}
			table = append(table, p)
		}
	default:
		return nil, fmt.Errorf("periods must be a list or a mapping")
	}

	for _, id := range geoCorrectIDs {
		if p := table.ByID(id); p != nil {
			p.GeoCorrect = true
		}
	}

	return table, nil
}
