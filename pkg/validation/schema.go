package validation

import (
	"fmt"
	"sort"

	"github.com/natenatters/manchester-gis/pkg/descriptor"
	"github.com/natenatters/manchester-gis/pkg/geo"
	"github.com/natenatters/manchester-gis/pkg/shapes"
)

// ValidateProject runs every check against a loaded structure project.
func ValidateProject(p *descriptor.Project) *Report {
	report := NewReport()
	validatePeriods(p.Periods, report)

	seen := map[string]string{}
	for i, s := range p.Structures {
		path := fmt.Sprintf("structures[%d]", i)
		validateStructure(s, path, p.Periods, report)

		if prev, dup := seen[s.ID]; dup && s.ID != "" {
			report.AddError(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("duplicate structure id %q", s.ID),
				Path:     path + ".id",
				Expected: "unique id across the project, first used at " + prev,
			})
		} else {
			seen[s.ID] = path
		}
	}
	return report
}

func validateStructure(s descriptor.Structure, path string, periods descriptor.PeriodTable, report *Report) {
	if s.ID == "" {
		report.AddError(Result{
			Level:   LevelSchema,
			Message: "structure has no id",
			Path:    path + ".id",
		})
	}

	if s.Kind != "" && s.Kind != "custom" && !shapes.Known(s.Kind) {
		report.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown structure type %q, will be rendered as a house", s.Kind),
			Path:        path + ".type",
			ActualValue: s.Kind,
			Suggestions: shapes.Kinds(),
		})
	}
	if s.Kind == "custom" && len(s.Entities) == 0 {
		report.AddError(Result{
			Level:   LevelSchema,
			Message: "custom structure supplies no entities",
			Path:    path + ".entities",
		})
	}

	validateLonLat(s.Center, path+".center", report)

	if s.Start > s.End {
		report.AddError(Result{
			Level:       LevelTemporal,
			Message:     "existence interval is inverted",
			Path:        path,
			ActualValue: fmt.Sprintf("%d..%d", s.Start, s.End),
			Expected:    "startYear <= endYear",
		})
	}

	validateParams(s.Params, path, report)

	ids := make([]string, 0, len(s.Overrides))
	for id := range s.Overrides {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		ov := s.Overrides[id]
		opath := fmt.Sprintf("%s.maps.%s", path, id)
		if periods.ByID(id) == nil {
			report.AddWarning(Result{
				Level:       LevelTemporal,
				Message:     fmt.Sprintf("override targets unknown period %q and will never apply", id),
				Path:        opath,
				Suggestions: periodIDs(periods),
			})
		}
		if ov.Scale != nil && *ov.Scale <= 0 {
			report.AddError(Result{
				Level:       LevelSchema,
				Message:     "override scale must be positive",
				Path:        opath + ".scale",
				ActualValue: *ov.Scale,
			})
		}
		if !ov.Delta && ov.Center != nil {
			validateLonLat(*ov.Center, opath+".center", report)
		}
	}
}

func validateParams(p descriptor.Params, path string, report *Report) {
	dims := []struct {
		name string
		v    *float64
	}{
		{"length", p.Length}, {"width", p.Width}, {"height", p.Height},
		{"naveLength", p.NaveLength}, {"naveWidth", p.NaveWidth}, {"naveHeight", p.NaveHeight},
		{"towerSize", p.TowerSize}, {"towerHeight", p.TowerHeight},
		{"aisleWidth", p.AisleWidth}, {"wingDepth", p.WingDepth}, {"wingWidth", p.WingWidth},
		{"span", p.Span},
	}
	for _, d := range dims {
		if d.v != nil && *d.v <= 0 {
			report.AddError(Result{
				Level:       LevelSchema,
				Message:     d.name + " must be positive",
				Path:        path + "." + d.name,
				ActualValue: *d.v,
			})
		}
	}
	if p.NumArches != nil && *p.NumArches < 1 {
		report.AddError(Result{
			Level:       LevelSchema,
			Message:     "numArches must be at least 1",
			Path:        path + ".numArches",
			ActualValue: *p.NumArches,
		})
	}
}

func validatePeriods(periods descriptor.PeriodTable, report *Report) {
	seen := map[string]bool{}
	for i, p := range periods {
		path := fmt.Sprintf("periods[%d]", i)
		if seen[p.ID] {
			report.AddError(Result{
				Level:   LevelTemporal,
				Message: fmt.Sprintf("duplicate period id %q", p.ID),
				Path:    path + ".id",
			})
		}
		seen[p.ID] = true

		if p.Start > p.Stop {
			report.AddError(Result{
				Level:       LevelTemporal,
				Message:     "period window is inverted",
				Path:        path,
				ActualValue: fmt.Sprintf("%d..%d", p.Start, p.Stop),
				Expected:    "start <= stop",
			})
		}

		if i > 0 {
			prev := periods[i-1]
			switch {
			case p.Start <= prev.Stop:
				report.AddWarning(Result{
					Level:       LevelTemporal,
					Message:     fmt.Sprintf("period %q overlaps %q, structures alive in both years appear twice", p.ID, prev.ID),
					Path:        path,
					ActualValue: fmt.Sprintf("%d <= %d", p.Start, prev.Stop),
				})
			case p.Start > prev.Stop+1:
				report.AddInfo(Result{
					Level:   LevelTemporal,
					Message: fmt.Sprintf("gap of %d years between %q and %q", p.Start-prev.Stop-1, prev.ID, p.ID),
					Path:    path,
				})
			}
		}
	}
}

// ValidateForts runs every check against a loaded fort project.
func ValidateForts(fp *descriptor.FortProject) *Report {
	report := NewReport()

	names := make([]string, 0, len(fp.ReferencePoints))
	for name := range fp.ReferencePoints {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rp := fp.ReferencePoints[name]
		path := "referencePoints." + name
		for _, corner := range []string{"SW", "SE", "NE", "NW"} {
			ll, ok := rp.Corners[corner]
			if !ok {
				report.AddError(Result{
					Level:   LevelSchema,
					Message: fmt.Sprintf("reference point is missing corner %s", corner),
					Path:    path + ".corners",
				})
				continue
			}
			validateLonLat(ll, path+".corners."+corner, report)
		}
	}

	seen := map[string]bool{}
	for i, f := range fp.Forts {
		path := fmt.Sprintf("forts[%d]", i)
		if f.ID == "" {
			report.AddError(Result{Level: LevelSchema, Message: "fort has no id", Path: path + ".id"})
		}
		if seen[f.ID] && f.ID != "" {
			report.AddError(Result{
				Level:   LevelSchema,
				Message: fmt.Sprintf("duplicate fort id %q", f.ID),
				Path:    path + ".id",
			})
		}
		seen[f.ID] = true

		if f.Center == nil && f.CenterFrom == "" {
			report.AddError(Result{
				Level:    LevelSpatial,
				Message:  "fort has neither a center nor a centerFrom reference",
				Path:     path,
				Expected: "center: [lon, lat] or centerFrom: <reference point name>",
			})
		}
		if f.CenterFrom != "" {
			if _, ok := fp.ReferencePoints[f.CenterFrom]; !ok {
				report.AddError(Result{
					Level:       LevelSpatial,
					Message:     fmt.Sprintf("centerFrom names unknown reference point %q", f.CenterFrom),
					Path:        path + ".centerFrom",
					Suggestions: names,
				})
			}
		}
		if f.Center != nil {
			validateLonLat(*f.Center, path+".center", report)
		}
		if (f.Center != nil || f.CenterFrom == "") && (f.Length == nil || f.Width == nil) {
			report.AddError(Result{
				Level:    LevelSchema,
				Message:  "fort dimensions must be given when no reference corners supply them",
				Path:     path,
				Expected: "length and width in meters",
			})
		}

		if f.WallThickness <= 0 {
			report.AddError(Result{
				Level:       LevelSchema,
				Message:     "wallThickness must be positive",
				Path:        path + ".wallThickness",
				ActualValue: f.WallThickness,
			})
		}
		if f.WallHeight <= 0 {
			report.AddWarning(Result{
				Level:       LevelSchema,
				Message:     "wallHeight is not positive, walls will be flat",
				Path:        path + ".wallHeight",
				ActualValue: f.WallHeight,
			})
		}
		if f.DitchDepth > 0 && f.DitchWidth <= 0 {
			report.AddWarning(Result{
				Level:   LevelSchema,
				Message: "ditchDepth is set but ditchWidth is not, ditch will have no footprint",
				Path:    path + ".ditchWidth",
			})
		}
		if f.StartYear > f.EndYear {
			report.AddError(Result{
				Level:       LevelTemporal,
				Message:     "existence interval is inverted",
				Path:        path,
				ActualValue: fmt.Sprintf("%d..%d", f.StartYear, f.EndYear),
				Expected:    "startYear <= endYear",
			})
		}
		switch f.Material {
		case "", "stone", "timber", "ruins":
		default:
			report.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("unknown fort material %q", f.Material),
				Path:        path + ".material",
				Suggestions: []string{"stone", "timber", "ruins"},
			})
		}
	}
	return report
}

func validateLonLat(ll geo.LonLat, path string, report *Report) {
	if ll.Lon < -180 || ll.Lon > 180 {
		report.AddError(Result{
			Level:       LevelSpatial,
			Message:     "longitude out of range",
			Path:        path,
			ActualValue: ll.Lon,
			Expected:    "-180 to 180",
		})
	}
	if ll.Lat < -90 || ll.Lat > 90 {
		report.AddError(Result{
			Level:       LevelSpatial,
			Message:     "latitude out of range",
			Path:        path,
			ActualValue: ll.Lat,
			Expected:    "-90 to 90",
		})
	}
}

func periodIDs(periods descriptor.PeriodTable) []string {
	ids := make([]string, len(periods))
	for i, p := range periods {
		ids[i] = p.ID
	}
	return ids
}
