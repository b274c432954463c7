package model

import (
	"context"
	"fmt"
)

// Group names a violation class. Each group collects the test units of one check.
type Group string

const (
	// GroupFieldErrors checks that every rendered form field has an error binding.
	GroupFieldErrors Group = "field_errors"
	// GroupNonFieldErrors checks that every form in use renders its non-field errors.
	GroupNonFieldErrors Group = "non_field_errors"
	// GroupResourceLinks checks that templates carry no hardcoded or relative links.
	GroupResourceLinks Group = "resource_links"
	// GroupStaticAssets checks that every referenced static asset exists.
	GroupStaticAssets Group = "static_assets"
)

// AllGroups returns every group in reporting order.
func AllGroups() []Group {
	return []Group{GroupFieldErrors, GroupNonFieldErrors, GroupResourceLinks, GroupStaticAssets}
}

// ParseGroup validates a group name.
func ParseGroup(name string) (Group, error) {
	for _, g := range AllGroups() {
		if string(g) == name {
			return g, nil
		}
	}

	return "", fmt.Errorf("unknown check %q", name)
}

// Check is the assertion of a test unit. A nil error means the unit passed.
type Check func(ctx context.Context) error

// TestUnit is an independently named, independently executable check.
type TestUnit struct {
	Name     string
	Group    Group
	Kind     FindingKind
	Template Path
	Subject  string
	Doc      string
	Check    Check
}

// NamingCollision records a unit that had to be renamed because another unit
// already used its name.
type NamingCollision struct {
	Name     string `yaml:"name"`
	Renamed  string `yaml:"renamed"`
	Group    Group  `yaml:"group"`
	Template Path   `yaml:"template"`
	Subject  string `yaml:"subject,omitempty"`
}

func (c NamingCollision) String() string {
	return fmt.Sprintf("unit name %s already taken, %s (%s) registered as %s", c.Name, c.Template, c.Group, c.Renamed)
}
