package seed

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the YAML layout accepted by the seeder. Several files can be
// merged into one document before loading.
type Document struct {
	SenateDivisions []DivisionData   `yaml:"senate_divisions"`
	Departments     []DepartmentData `yaml:"departments"`
	Faculty         []FacultyData    `yaml:"faculty"`
	Committees      []CommitteeData  `yaml:"committees"`
}

type DivisionData struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type DepartmentData struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type FacultyData struct {
	Email          string `yaml:"email"`
	FullName       string `yaml:"full_name"`
	JobTitle       string `yaml:"job_title,omitempty"`
	Phone          string `yaml:"phone,omitempty"`
	SenateDivision string `yaml:"senate_division"`
	Department     string `yaml:"department,omitempty"`
}

// CommitteeData describes a committee, its per-division minimums keyed by
// senate division code, and the members to propose once it exists.
type CommitteeData struct {
	Name             string         `yaml:"name"`
	Description      string         `yaml:"description,omitempty"`
	TotalSlots       int            `yaml:"total_slots"`
	SlotRequirements map[string]int `yaml:"slot_requirements,omitempty"`
	Members          []MemberData   `yaml:"members,omitempty"`
}

type MemberData struct {
	Email     string `yaml:"email"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

// Parse decodes a single YAML document
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed document: %w", err)
	}
	return &doc, nil
}

// LoadFile reads a seed document from path
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadDir walks dir and merges every .yaml/.yml file, in lexical order
func LoadDir(dir string) (*Document, error) {
	merged := &Document{}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		doc, err := LoadFile(path)
		if err != nil {
			return err
		}
		merged.Merge(doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}

// Merge appends other's entries to d
func (d *Document) Merge(other *Document) {
	d.SenateDivisions = append(d.SenateDivisions, other.SenateDivisions...)
	d.Departments = append(d.Departments, other.Departments...)
	d.Faculty = append(d.Faculty, other.Faculty...)
	d.Committees = append(d.Committees, other.Committees...)
}
