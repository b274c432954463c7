package rules

import m "tplvet.dev/pkg/tplvet/internal/model"

var groupRules = map[m.Group][]Rule{
	m.GroupFieldErrors:    {FieldReference, ErrorBinding},
	m.GroupNonFieldErrors: {FormReference, NonFieldErrorBinding},
	m.GroupResourceLinks:  {ResourceReference},
	m.GroupStaticAssets:   {StaticAsset},
}

// ForGroup returns the rules a check needs.
func ForGroup(group m.Group) []Rule {
	return append([]Rule(nil), groupRules[group]...)
}

// ForGroups returns the rules needed by all given groups, without duplicates,
// in group order.
func ForGroups(groups ...m.Group) []Rule {
	seen := map[string]struct{}{}
	result := make([]Rule, 0)

	for _, group := range groups {
		for _, rule := range groupRules[group] {
			if _, ok := seen[rule.Name]; ok {
				continue
			}

			seen[rule.Name] = struct{}{}
			result = append(result, rule)
		}
	}

	return result
}

// Extract evaluates every rule against the full template text and returns
// the findings keyed by kind. Every rule gets an entry, possibly empty.
func Extract(content string, template m.Path, ruleSet []Rule) map[m.FindingKind][]m.Finding {
	findings := make(map[m.FindingKind][]m.Finding, len(ruleSet))

	for _, rule := range ruleSet {
		findings[rule.Kind] = append(findings[rule.Kind], rule.FindAll(content, template)...)
	}

	return findings
}
