// Package rules holds the declarative extraction rules of every check.
//
// A rule is data: a pattern, the capture group holding the subject and the
// kind of finding it produces. Patterns run on the raw template text with a
// backtracking engine because several of them need lookahead, which RE2
// does not offer.
package rules

import (
	"log/slog"
	"time"

	"github.com/dlclark/regexp2"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

// matchTimeout bounds a single pattern evaluation on pathological input.
const matchTimeout = 2 * time.Second

// Rule is a named pattern plus the capture group holding the finding subject.
type Rule struct {
	Name    string
	Kind    m.FindingKind
	Pattern *regexp2.Regexp
	Group   int
	// Unique collapses repeated subjects within one template.
	Unique bool
}

// New compiles a rule. It panics on an invalid pattern, like regexp.MustCompile.
func New(name string, kind m.FindingKind, expr string, group int, unique bool) Rule {
	pattern := regexp2.MustCompile(expr, regexp2.None)
	pattern.MatchTimeout = matchTimeout

	return Rule{
		Name:    name,
		Kind:    kind,
		Pattern: pattern,
		Group:   group,
		Unique:  unique,
	}
}

// FindAll returns one finding per non-overlapping match in content, left to
// right. Matches in which the capture group did not participate are dropped.
func (r Rule) FindAll(content string, template m.Path) []m.Finding {
	findings := make([]m.Finding, 0)

	var seen map[string]struct{}
	if r.Unique {
		seen = map[string]struct{}{}
	}

	match, err := r.Pattern.FindStringMatch(content)
	for match != nil && err == nil {
		if subject, ok := captured(match, r.Group); ok {
			if _, dup := seen[subject]; !dup {
				if seen != nil {
					seen[subject] = struct{}{}
				}

				findings = append(findings, m.Finding{
					Kind:     r.Kind,
					Subject:  subject,
					Template: template,
					Raw:      match.String(),
				})
			}
		}

		match, err = r.Pattern.FindNextMatch(match)
	}

	if err != nil {
		slog.Warn("rule evaluation stopped early", "rule", r.Name, "template", template, "error", err)
	}

	return findings
}

func captured(match *regexp2.Match, index int) (string, bool) {
	group := match.GroupByNumber(index)
	if group == nil || len(group.Captures) == 0 {
		return "", false
	}

	return group.String(), true
}
