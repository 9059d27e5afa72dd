package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/natenatters/manchester-gis/pkg/descriptor"
	"github.com/natenatters/manchester-gis/pkg/fort"
	"github.com/natenatters/manchester-gis/pkg/scene"
	"github.com/natenatters/manchester-gis/pkg/shapes"
	"github.com/natenatters/manchester-gis/pkg/temporal"
	"github.com/natenatters/manchester-gis/pkg/validation"
)

// loadAndValidate loads a project from a file or directory and runs
// schema validation.
func loadAndValidate(projectPath string) (*descriptor.Project, *validation.Report, error) {
	project, err := loadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading project: %w", err)
	}
	report := validation.ValidateProject(project)
	return project, report, nil
}

func loadProject(projectPath string) (*descriptor.Project, error) {
	info, err := os.Stat(projectPath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return descriptor.LoadProject(projectPath)
	}
	return descriptor.Load(projectPath)
}

func runValidate(projectPath string, forts bool) error {
	var report *validation.Report

	if forts {
		fp, err := descriptor.LoadForts(projectPath)
		if err != nil {
			return fmt.Errorf("loading forts: %w", err)
		}
		report = validation.ValidateForts(fp)
	} else {
		var err error
		_, report, err = loadAndValidate(projectPath)
		if err != nil {
			return err
		}
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runGenerate(projectPath string) error {
	project, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("project has validation errors")
	}

	var entities []scene.Positioned
	for _, s := range project.Structures {
		base := shapes.Generate(s)
		entities = append(entities, temporal.Expand(s, base, project.Periods)...)
	}

	doc := scene.Assemble(project.Description, project.Materials, entities)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func runForts(path string) error {
	fp, err := descriptor.LoadForts(path)
	if err != nil {
		return fmt.Errorf("loading forts: %w", err)
	}

	report := validation.ValidateForts(fp)
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("fort definitions have validation errors")
	}

	doc := scene.AssembleForts(fp.Description, fp.Materials, fort.GenerateAll(fp))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
