package domain

import (
	"fmt"
	"log/slog"

	m "tplvet.dev/pkg/tplvet/internal/model"
)

// RegistryBuilder collects the units of one run. It is not safe for
// concurrent use; synthesis runs on a single goroutine.
type RegistryBuilder struct {
	groups     map[m.Group][]m.TestUnit
	names      map[string]struct{}
	collisions []m.NamingCollision
}

// NewRegistryBuilder returns an empty builder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{
		groups: map[m.Group][]m.TestUnit{},
		names:  map[string]struct{}{},
	}
}

// Add registers a unit and returns it as stored. A unit whose name is
// already taken is kept under the first free "<name>_N" (N >= 2) and the
// rename is recorded as a naming collision.
func (b *RegistryBuilder) Add(unit m.TestUnit) m.TestUnit {
	if _, taken := b.names[unit.Name]; taken {
		renamed := b.freeName(unit.Name)

		collision := m.NamingCollision{
			Name:     unit.Name,
			Renamed:  renamed,
			Group:    unit.Group,
			Template: unit.Template,
			Subject:  unit.Subject,
		}
		slog.Warn("unit name collision", "name", collision.Name, "renamed", collision.Renamed, "template", collision.Template)

		b.collisions = append(b.collisions, collision)
		unit.Name = renamed
	}

	b.names[unit.Name] = struct{}{}
	b.groups[unit.Group] = append(b.groups[unit.Group], unit)

	return unit
}

func (b *RegistryBuilder) freeName(name string) string {
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d", name, n)
		if _, taken := b.names[candidate]; !taken {
			return candidate
		}
	}
}

// Build freezes the collected units. The builder must not be used afterwards.
func (b *RegistryBuilder) Build() *Registry {
	registry := &Registry{groups: map[m.Group][]m.TestUnit{}}

	for _, group := range m.AllGroups() {
		units, ok := b.groups[group]
		if !ok {
			continue
		}

		registry.order = append(registry.order, group)
		registry.groups[group] = append([]m.TestUnit(nil), units...)
	}

	registry.collisions = append([]m.NamingCollision(nil), b.collisions...)

	return registry
}

// Registry is the immutable collection of test units of one run, grouped by
// violation class. Groups come in reporting order, units in insertion order.
type Registry struct {
	order      []m.Group
	groups     map[m.Group][]m.TestUnit
	collisions []m.NamingCollision
}

// Groups returns the groups that hold at least one unit.
func (r *Registry) Groups() []m.Group {
	return append([]m.Group(nil), r.order...)
}

// Units returns the units of a group.
func (r *Registry) Units(group m.Group) []m.TestUnit {
	return append([]m.TestUnit(nil), r.groups[group]...)
}

// All returns every unit, group by group.
func (r *Registry) All() []m.TestUnit {
	all := make([]m.TestUnit, 0, r.Len())
	for _, group := range r.order {
		all = append(all, r.groups[group]...)
	}

	return all
}

// Len returns the number of units.
func (r *Registry) Len() int {
	n := 0
	for _, units := range r.groups {
		n += len(units)
	}

	return n
}

// Collisions returns the naming collisions resolved while building.
func (r *Registry) Collisions() []m.NamingCollision {
	return append([]m.NamingCollision(nil), r.collisions...)
}
