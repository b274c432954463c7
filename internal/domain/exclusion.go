package domain

import (
	"fmt"
	"log/slog"
	"strings"

	m "tplvet.dev/pkg/tplvet/internal/model"
)

// Configuration keys read by LoadExclusions.
const (
	UnwantedFieldsKey = "form_fields.unwanted_fields"
	UnwantedAssetsKey = "static_assets.unwanted_assets"
	ExcludePathsKey   = "paths.exclude"
)

// DefaultExcludedPaths are the directory substrings skipped when nothing is configured.
var DefaultExcludedPaths = []string{"/node_modules", "/coverage"}

// Settings is the key/value source exclusions are loaded from. *viper.Viper
// satisfies it.
type Settings interface {
	IsSet(key string) bool
	Get(key string) any
}

// ExclusionSet is a read-only set of subjects exempt from a check.
type ExclusionSet struct {
	items map[string]struct{}
}

// NewExclusionSet builds a set from items, ignoring blanks.
func NewExclusionSet(items ...string) ExclusionSet {
	set := ExclusionSet{items: make(map[string]struct{}, len(items))}

	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		set.items[item] = struct{}{}
	}

	return set
}

// Contains reports exact membership.
func (s ExclusionSet) Contains(subject string) bool {
	_, ok := s.items[subject]
	return ok
}

// Len returns the number of entries.
func (s ExclusionSet) Len() int {
	return len(s.items)
}

// Exclusions is the exclusion registry of one run.
type Exclusions struct {
	Fields ExclusionSet
	Assets ExclusionSet
	Paths  []string
}

// LoadExclusions reads the exclusion lists from settings. A missing key is
// not an error: the corresponding set is empty (paths fall back to
// DefaultExcludedPaths).
func LoadExclusions(settings Settings) Exclusions {
	paths := lookupList(settings, ExcludePathsKey)
	if paths == nil {
		paths = append([]string(nil), DefaultExcludedPaths...)
	}

	return Exclusions{
		Fields: NewExclusionSet(lookupList(settings, UnwantedFieldsKey)...),
		Assets: NewExclusionSet(lookupList(settings, UnwantedAssetsKey)...),
		Paths:  paths,
	}
}

func lookupList(settings Settings, key string) []string {
	if settings == nil || !settings.IsSet(key) {
		slog.Debug("configuration key not set, using default", "key", key)
		return nil
	}

	return ParseList(settings.Get(key))
}

// ParseList accepts a comma separated string or a list and returns the
// trimmed, non-empty entries.
func ParseList(value any) []string {
	var raw []string

	switch v := value.(type) {
	case nil:
		return nil
	case string:
		raw = strings.Split(v, ",")
	case []string:
		raw = v
	case []any:
		for _, item := range v {
			raw = append(raw, fmt.Sprint(item))
		}
	default:
		raw = strings.Split(fmt.Sprint(v), ",")
	}

	result := make([]string, 0, len(raw))
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}

	return result
}

// FilterFindings returns the findings whose subject is not excluded. The
// input slice is left untouched.
func FilterFindings(findings []m.Finding, exclusions ExclusionSet) []m.Finding {
	kept := make([]m.Finding, 0, len(findings))

	for _, f := range findings {
		if exclusions.Contains(f.Subject) {
			slog.Debug("excluded finding", "kind", f.Kind, "subject", f.Subject, "template", f.Template)
			continue
		}

		kept = append(kept, f)
	}

	return kept
}

// ApplyExclusions filters a template scan: field and form references against
// the field set, static assets against the asset set. Other kinds pass through.
func ApplyExclusions(scan m.TemplateScan, exclusions Exclusions) m.TemplateScan {
	filtered := m.TemplateScan{
		Template: scan.Template,
		Findings: make(map[m.FindingKind][]m.Finding, len(scan.Findings)),
	}

	for kind, findings := range scan.Findings {
		switch kind {
		case m.KindFieldReference, m.KindFormReference:
			filtered.Findings[kind] = FilterFindings(findings, exclusions.Fields)
		case m.KindStaticAsset:
			filtered.Findings[kind] = FilterFindings(findings, exclusions.Assets)
		default:
			filtered.Findings[kind] = append([]m.Finding(nil), findings...)
		}
	}

	return filtered
}
