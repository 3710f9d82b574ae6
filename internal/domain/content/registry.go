package content

// SectionPolicy describes how a registered section is populated.
type SectionPolicy struct {
	// SourceTable is the only backing table the section is allowed to
	// read from. A schema declaring a different sourceTable for this
	// section id is not populated.
	SourceTable string
}

// SectionRegistry is the explicit allow-list of populatable sections.
// Only single-record sections registered here are populated; everything
// else passes through with its schema untouched. Adding a new populatable
// section is a registration, not a new conditional branch.
type SectionRegistry struct {
	policies map[string]SectionPolicy
}

// NewSectionRegistry creates an empty registry.
func NewSectionRegistry() *SectionRegistry {
	return &SectionRegistry{policies: make(map[string]SectionPolicy)}
}

// DefaultSectionRegistry returns the registry with the sections the
// site currently populates.
func DefaultSectionRegistry() *SectionRegistry {
	r := NewSectionRegistry()
	r.Register("about_main", SectionPolicy{SourceTable: "about_page_main"})
	return r
}

// Register adds a populatable section id with its policy.
func (r *SectionRegistry) Register(sectionID string, policy SectionPolicy) {
	r.policies[sectionID] = policy
}

// Lookup returns the policy for a section id.
func (r *SectionRegistry) Lookup(sectionID string) (SectionPolicy, bool) {
	p, ok := r.policies[sectionID]
	return p, ok
}

// IDs returns the registered section ids.
func (r *SectionRegistry) IDs() []string {
	ids := make([]string, 0, len(r.policies))
	for id := range r.policies {
		ids = append(ids, id)
	}
	return ids
}
