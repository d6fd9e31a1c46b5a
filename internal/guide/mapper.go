package guide

import "strings"

// Mapper translates free-text guide category titles into the controlled
// vocabulary used by the calendar's item labels.
type Mapper struct {
	mappings []Mapping
}

// NewMapper creates a Mapper over the given ordered mapping table.
func NewMapper(mappings []Mapping) *Mapper {
	return &Mapper{mappings: mappings}
}

// Map returns the calendar label for the first mapping key contained in
// title, checked in declared order. An unmapped title is returned unchanged
// so the record stays usable for display even without a calendar match.
func (m *Mapper) Map(title string) string {
	for _, mapping := range m.mappings {
		if strings.Contains(title, mapping.Key) {
			return mapping.Label
		}
	}
	return title
}
