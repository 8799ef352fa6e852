// Package identity resolves opaque player ids to display names. The draft
// engine never depends on any platform's identity shape; embedders plug in
// whatever directory they have.
package identity

// Resolver maps an opaque player id to a human-facing display name.
type Resolver interface {
	DisplayName(id string) string
}

// Static resolves from a fixed table, falling back to the raw id.
type Static map[string]string

func (s Static) DisplayName(id string) string {
	if name, ok := s[id]; ok {
		return name
	}
	return id
}
