package catalog

import (
	"fmt"
	"strings"
)

// validateProjects performs the structural checks the schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validateProjects(projects []Project) error {
	var errs []string

	if len(projects) == 0 {
		errs = append(errs, "catalog has no projects")
	}

	seen := make(map[string]bool, len(projects))
	primaries := 0
	for i, p := range projects {
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Sprintf("project %d has an empty title", i))
			continue
		}
		if seen[p.Title] {
			errs = append(errs, fmt.Sprintf("duplicate project title: %q", p.Title))
		}
		seen[p.Title] = true

		if !p.Tier.Valid() {
			errs = append(errs, fmt.Sprintf("project %q has unknown tier %q", p.Title, p.Tier))
		}
		if p.Tier == TierPrimary {
			primaries++
		}
	}

	// An empty flagship tier would unlock the supporting tier before anything is explored.
	if len(projects) > 0 && primaries == 0 {
		errs = append(errs, "no primary projects found (at least one project must be flagship)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
