package domain

import (
	"fmt"
	"sort"

	"github.com/pmezard/go-difflib/difflib"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

// BaselineDiff returns a unified diff of the failing unit names of two
// reports, sorted by name. An empty string means both runs fail the same units.
func BaselineDiff(baseline, current m.Report) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        lines(baseline.FailingNames()),
		B:        lines(current.FailingNames()),
		FromFile: label("baseline", baseline),
		ToFile:   label("current", current),
		Context:  1,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff reports: %w", err)
	}

	return text, nil
}

func label(name string, report m.Report) string {
	if report.RunID == "" {
		return name
	}

	return fmt.Sprintf("%s (%s)", name, report.RunID)
}

func lines(names []string) []string {
	result := make([]string, 0, len(names))
	for _, name := range names {
		result = append(result, name+"\n")
	}

	sort.Strings(result)

	return result
}
