package content

// SlugMap translates between external page slugs (URL-facing) and
// internal storage page ids. Pairs are registered explicitly; unmapped
// identifiers translate to themselves in both directions, so the
// mapping is involution-consistent: External(Internal(s)) == s for any
// registered or unregistered slug.
type SlugMap struct {
	toInternal map[string]string
	toExternal map[string]string
}

// NewSlugMap creates an empty slug mapping.
func NewSlugMap() *SlugMap {
	return &SlugMap{
		toInternal: make(map[string]string),
		toExternal: make(map[string]string),
	}
}

// DefaultSlugMap returns the mapping used by the site:
// external "about" <-> internal "about_page".
func DefaultSlugMap() *SlugMap {
	m := NewSlugMap()
	m.Register("about", "about_page")
	return m
}

// Register adds an external <-> internal pair.
func (m *SlugMap) Register(external, internal string) {
	m.toInternal[external] = internal
	m.toExternal[internal] = external
}

// Internal maps an external slug to its storage page id.
func (m *SlugMap) Internal(external string) string {
	if id, ok := m.toInternal[external]; ok {
		return id
	}
	return external
}

// External maps a storage page id to its URL-facing slug.
func (m *SlugMap) External(internal string) string {
	if slug, ok := m.toExternal[internal]; ok {
		return slug
	}
	return internal
}
