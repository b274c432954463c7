package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"tplvet.dev/pkg/tplvet/internal/adapter"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

// Unit name suffixes, one per group.
const (
	suffixFieldErrors    = "errors"
	suffixNonFieldErrors = "non_field_errors"
	suffixResourceLinks  = "has_no_hardcoded_urls"
	suffixStaticAssets   = "is_reachable"
)

var errNoResolver = errors.New("no static asset resolver configured")

// unitBuilder turns the findings of one template into the units of a group.
type unitBuilder func(scan m.TemplateScan, resolver adapter.AssetResolver) []m.TestUnit

var unitBuilders = map[m.Group]unitBuilder{
	m.GroupFieldErrors:    buildFieldErrorUnits,
	m.GroupNonFieldErrors: buildNonFieldErrorUnits,
	m.GroupResourceLinks:  buildResourceLinkUnits,
	m.GroupStaticAssets:   buildStaticAssetUnits,
}

// Synthesize builds the registry for the given groups from filtered scans.
// Scans are processed in template path order and findings in subject order,
// so names and collision renames do not depend on scan scheduling.
func Synthesize(scans []m.TemplateScan, groups []m.Group, resolver adapter.AssetResolver) *Registry {
	sorted := append([]m.TemplateScan(nil), scans...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Template.Path < sorted[j].Template.Path })

	builder := NewRegistryBuilder()

	for _, group := range selectedGroups(groups) {
		build := unitBuilders[group]

		for _, scan := range sorted {
			for _, unit := range build(scan, resolver) {
				builder.Add(unit)
			}
		}
	}

	registry := builder.Build()
	slog.Debug("synthesized units", "units", registry.Len(), "collisions", len(registry.Collisions()))

	return registry
}

// selectedGroups returns groups in reporting order; an empty selection means all.
func selectedGroups(groups []m.Group) []m.Group {
	if len(groups) == 0 {
		return m.AllGroups()
	}

	wanted := make(map[m.Group]struct{}, len(groups))
	for _, g := range groups {
		wanted[g] = struct{}{}
	}

	selected := make([]m.Group, 0, len(wanted))
	for _, g := range m.AllGroups() {
		if _, ok := wanted[g]; ok {
			selected = append(selected, g)
		}
	}

	return selected
}

func buildFieldErrorUnits(scan m.TemplateScan, _ adapter.AssetResolver) []m.TestUnit {
	bindings := scan.Subjects(m.KindErrorBinding)
	units := make([]m.TestUnit, 0)

	for _, finding := range sortedFindings(scan.Findings[m.KindFieldReference]) {
		units = append(units, newBindingUnit(m.GroupFieldErrors, finding, bindings, ".errors", suffixFieldErrors))
	}

	return units
}

func buildNonFieldErrorUnits(scan m.TemplateScan, _ adapter.AssetResolver) []m.TestUnit {
	bindings := scan.Subjects(m.KindNonFieldErrorBinding)
	units := make([]m.TestUnit, 0)

	for _, finding := range sortedFindings(scan.Findings[m.KindFormReference]) {
		units = append(units, newBindingUnit(m.GroupNonFieldErrors, finding, bindings, ".non_field_errors", suffixNonFieldErrors))
	}

	return units
}

func buildResourceLinkUnits(scan m.TemplateScan, _ adapter.AssetResolver) []m.TestUnit {
	return []m.TestUnit{newResourceUnit(scan.Template.Path, scan.Subjects(m.KindResourceReference))}
}

func buildStaticAssetUnits(scan m.TemplateScan, resolver adapter.AssetResolver) []m.TestUnit {
	units := make([]m.TestUnit, 0)

	for _, finding := range sortedFindings(scan.Findings[m.KindStaticAsset]) {
		units = append(units, newAssetUnit(finding, resolver))
	}

	return units
}

// newBindingUnit asserts that subject+bindingSuffix is among the bindings of
// the finding's template. bindings is copied.
func newBindingUnit(group m.Group, finding m.Finding, bindings []string, bindingSuffix, nameSuffix string) m.TestUnit {
	subject := finding.Subject
	template := finding.Template
	want := subject + bindingSuffix
	available := append([]string(nil), bindings...)

	return m.TestUnit{
		Name:     unitName(subject, template, nameSuffix),
		Group:    group,
		Kind:     finding.Kind,
		Template: template,
		Subject:  subject,
		Doc:      fmt.Sprintf("%s in %s renders %s", subject, template.Slash(), want),
		Check: func(context.Context) error {
			for _, binding := range available {
				if binding == want {
					return nil
				}
			}

			return &ViolationError{
				Message:  fmt.Sprintf("%s does not render %s", template.Slash(), want),
				Subjects: []string{subject},
			}
		},
	}
}

// newResourceUnit asserts that a template has no hardcoded or relative
// links. refs is copied and becomes the failure payload.
func newResourceUnit(template m.Path, refs []string) m.TestUnit {
	found := append([]string(nil), refs...)

	return m.TestUnit{
		Name:     unitName("", template, suffixResourceLinks),
		Group:    m.GroupResourceLinks,
		Kind:     m.KindResourceReference,
		Template: template,
		Doc:      fmt.Sprintf("%s links resources through template tags or absolute URLs", template.Slash()),
		Check: func(context.Context) error {
			if len(found) == 0 {
				return nil
			}

			return &ViolationError{
				Message:  fmt.Sprintf("%s has hardcoded or relative links", template.Slash()),
				Subjects: append([]string(nil), found...),
			}
		},
	}
}

// newAssetUnit asserts that resolver locates the asset of finding.
func newAssetUnit(finding m.Finding, resolver adapter.AssetResolver) m.TestUnit {
	identifier := finding.Subject
	template := finding.Template

	return m.TestUnit{
		Name:     unitName(identifier, template, suffixStaticAssets),
		Group:    m.GroupStaticAssets,
		Kind:     finding.Kind,
		Template: template,
		Subject:  identifier,
		Doc:      fmt.Sprintf("static asset %s used in %s exists", identifier, template.Slash()),
		Check: func(ctx context.Context) error {
			if resolver == nil {
				return errNoResolver
			}

			if _, ok := resolver.Find(ctx, identifier); !ok {
				return &ViolationError{
					Message:  fmt.Sprintf("static asset referenced in %s not found", template.Slash()),
					Subjects: []string{identifier},
				}
			}

			return nil
		},
	}
}

func sortedFindings(findings []m.Finding) []m.Finding {
	sorted := append([]m.Finding(nil), findings...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Subject < sorted[j].Subject })

	return sorted
}

// unitName builds "test_<subject>_<template>_<suffix>", or
// "test_<template>_<suffix>" when subject is empty.
func unitName(subject string, template m.Path, suffix string) string {
	parts := []string{"test"}
	if subject != "" {
		parts = append(parts, sanitize(subject))
	}

	parts = append(parts, sanitize(template.Slash()), suffix)

	return strings.Join(parts, "_")
}

// sanitize maps every rune outside [A-Za-z0-9_] to '_'.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
