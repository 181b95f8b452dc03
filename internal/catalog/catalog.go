package catalog

import "fmt"

// Catalog is the immutable, ordered set of explorable projects.
type Catalog struct {
	items     []Project
	byID      map[string]int
	primary   []string
	secondary []string
}

// New builds a Catalog from projects in display order.
// It returns an error if the projects fail structural validation.
func New(projects []Project) (*Catalog, error) {
	if err := validateProjects(projects); err != nil {
		return nil, err
	}

	c := &Catalog{
		items: make([]Project, len(projects)),
		byID:  make(map[string]int, len(projects)),
	}
	copy(c.items, projects)

	for i, p := range c.items {
		c.byID[p.ID()] = i
		switch p.Tier {
		case TierPrimary:
			c.primary = append(c.primary, p.ID())
		case TierSecondary:
			c.secondary = append(c.secondary, p.ID())
		}
	}
	return c, nil
}

// MustNew is like New but panics on invalid input. Intended for tests and fixtures.
func MustNew(projects []Project) *Catalog {
	c, err := New(projects)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns all projects in display order.
func (c *Catalog) Items() []Project {
	out := make([]Project, len(c.items))
	copy(out, c.items)
	return out
}

// ByTier returns the projects of a tier in display order.
func (c *Catalog) ByTier(t Tier) []Project {
	var out []Project
	for _, p := range c.items {
		if p.Tier == t {
			out = append(out, p)
		}
	}
	return out
}

// PrimaryIDs returns the ids of the flagship tier.
func (c *Catalog) PrimaryIDs() []string {
	return append([]string(nil), c.primary...)
}

// SecondaryIDs returns the ids of the supporting tier.
func (c *Catalog) SecondaryIDs() []string {
	return append([]string(nil), c.secondary...)
}

// Lookup returns the project with the given id.
func (c *Catalog) Lookup(id string) (Project, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Project{}, false
	}
	return c.items[i], true
}

// TierOf returns the tier of id, or false if id is not in the catalog.
func (c *Catalog) TierOf(id string) (Tier, bool) {
	p, ok := c.Lookup(id)
	if !ok {
		return "", false
	}
	return p.Tier, true
}

// Index returns the display position of id, or -1.
func (c *Catalog) Index(id string) int {
	i, ok := c.byID[id]
	if !ok {
		return -1
	}
	return i
}
