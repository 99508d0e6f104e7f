package domain

import "fmt"

// Side is one end of a connector: the route segment used to address it and
// the id field it filters on, e.g. {Route: "skill", Field: "skillId"}.
type Side struct {
	Route string
	Field string
}

// Collection describes one downstream collection exposed by the gateway.
type Collection struct {
	// Name is both the downstream collection and the public route segment.
	Name string
	// New returns an empty template for the collection.
	New func() Entity
	// Updatable collections accept PUT /{id}.
	Updatable bool
	// Sides is set for connectors only.
	Sides []Side
}

// IsConnector reports whether c joins two other collections.
func (c Collection) IsConnector() bool {
	return len(c.Sides) > 0
}

// Side looks up a connector side by its route segment.
func (c Collection) Side(route string) (Side, bool) {
	for _, s := range c.Sides {
		if s.Route == route {
			return s, true
		}
	}
	return Side{}, false
}

// Catalog is the ordered set of collections the gateway serves.
type Catalog []Collection

// Lookup finds a collection by name.
func (cat Catalog) Lookup(name string) (Collection, error) {
	for _, c := range cat {
		if c.Name == name {
			return c, nil
		}
	}
	return Collection{}, fmt.Errorf("%w: %s", ErrUnknownCollection, name)
}

// DefaultCatalog returns every collection the gateway forwards.
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: "customer", New: func() Entity { return &Customer{} }, Updatable: true},
		{Name: "skill", New: func() Entity { return &Skill{} }, Updatable: true},
		{Name: "skillGroup", New: func() Entity { return &SkillGroup{} }},
		{Name: "user", New: func() Entity { return &User{} }, Updatable: true},
		{Name: "office", New: func() Entity { return &Office{} }},
		{Name: "assignment", New: func() Entity { return &Assignment{} }},
		{Name: "role", New: func() Entity { return &Role{} }},
		{Name: "attribute", New: func() Entity { return &Attribute{} }},
		{Name: "file", New: func() Entity { return &File{} }},
		{
			Name:      "userToSkillConnector",
			New:       func() Entity { return &UserToSkillConnector{} },
			Updatable: true,
			Sides:     []Side{{Route: "user", Field: "userId"}, {Route: "skill", Field: "skillId"}},
		},
		{
			Name:  "skillToSkillGroupConnector",
			New:   func() Entity { return &SkillToSkillGroupConnector{} },
			Sides: []Side{{Route: "skill", Field: "skillId"}, {Route: "skillGroup", Field: "skillGroupId"}},
		},
		{
			Name:  "roleToAttributeConnector",
			New:   func() Entity { return &RoleToAttributeConnector{} },
			Sides: []Side{{Route: "role", Field: "roleId"}, {Route: "attribute", Field: "attributeId"}},
		},
		{
			Name:  "userToOfficeConnector",
			New:   func() Entity { return &UserToOfficeConnector{} },
			Sides: []Side{{Route: "user", Field: "userId"}, {Route: "office", Field: "officeId"}},
		},
		{
			Name:  "userToAssignmentConnector",
			New:   func() Entity { return &UserToAssignmentConnector{} },
			Sides: []Side{{Route: "user", Field: "userId"}, {Route: "assignment", Field: "assignmentId"}},
		},
		{
			Name:  "access",
			New:   func() Entity { return &Access{} },
			Sides: []Side{{Route: "role", Field: "role_id"}, {Route: "attribute", Field: "attribute_id"}},
		},
	}
}

// Check verifies that every collection is complete and uniquely named.
func (cat Catalog) Check() error {
	seen := make(map[string]bool, len(cat))
	for _, c := range cat {
		if c.Name == "" || c.New == nil {
			return fmt.Errorf("collection %q is incomplete", c.Name)
		}
		if seen[c.Name] {
			return fmt.Errorf("collection %q registered twice", c.Name)
		}
		seen[c.Name] = true
		for _, s := range c.Sides {
			if s.Route == "" || s.Field == "" {
				return fmt.Errorf("collection %q has an incomplete side", c.Name)
			}
		}
	}
	return nil
}
