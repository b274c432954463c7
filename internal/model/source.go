// Package model defines the data structures shared by the template scan pipeline.
package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// Slash returns the path with forward slashes and without a leading "./".
func (p Path) Slash() string {
	return strings.TrimPrefix(filepath.ToSlash(string(p)), "./")
}

// Template represents a template file discovered under a scan root.
type Template struct {
	Path      Path // path as walked, root joined
	ShortPath Path // path relative to its scan root
}

// TemplateScan holds everything the extraction rules found in one template.
type TemplateScan struct {
	Template Template
	Findings map[FindingKind][]Finding
}

// Subjects returns the subjects of all findings of the given kind, in match order.
func (s TemplateScan) Subjects(kind FindingKind) []string {
	findings := s.Findings[kind]

	subjects := make([]string, 0, len(findings))
	for _, f := range findings {
		subjects = append(subjects, f.Subject)
	}

	return subjects
}

// ScanWarning is a scan-level problem that is not a convention violation,
// e.g. a template that could not be read.
type ScanWarning struct {
	Path    Path   `yaml:"path"`
	Message string `yaml:"message"`
}

func (w ScanWarning) String() string {
	if w.Path == "" {
		return w.Message
	}

	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}
