// Package content implements the schema-driven admin content editor:
// page schemas are stored as JSON documents, populated with live values
// from per-section backing tables, with indirect references resolved
// against the shared snippet store.
package content

import (
	"encoding/json"
)

// FieldType is the closed enumeration of admin field kinds.
// Unrecognized values are carried through unmodified so that schemas
// authored for a newer editor do not break older servers.
type FieldType string

const (
	FieldText            FieldType = "text"
	FieldSnippet         FieldType = "snippet"
	FieldSnippetMarkdown FieldType = "snippet_markdown"
)

// IsSnippet reports whether the field's raw column value is an indirect
// reference into the snippet store.
func (t FieldType) IsSnippet() bool {
	return t == FieldSnippet || t == FieldSnippetMarkdown
}

// Known reports whether the type is part of the recognized enumeration.
func (t FieldType) Known() bool {
	switch t {
	case FieldText, FieldSnippet, FieldSnippetMarkdown:
		return true
	}
	return false
}

// FieldSchema describes one editable field of a section.
type FieldSchema struct {
	// Name is the column/key in the section's backing record.
	Name  string    `json:"name"`
	Label string    `json:"label,omitempty"`
	Type  FieldType `json:"type"`
}

// SectionSchema describes one section of a page's admin layout.
// Section ids are unique within a page.
type SectionSchema struct {
	ID          string        `json:"id"`
	Title       string        `json:"title,omitempty"`
	SourceTable string        `json:"sourceTable,omitempty"`
	IsList      bool          `json:"isList,omitempty"`
	Fields      []FieldSchema `json:"fields"`
}

// SchemaDefinition is the page's admin layout document: an ordered
// sequence of sections plus any schema-level properties the document
// carries that this server does not interpret. Unknown properties are
// preserved verbatim through a populate round trip.
type SchemaDefinition struct {
	Sections []SectionSchema
	Extra    map[string]json.RawMessage
}

// UnmarshalJSON splits the document into sections and uninterpreted
// schema-level properties.
func (s *SchemaDefinition) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if secs, ok := raw["sections"]; ok {
		if err := json.Unmarshal(secs, &s.Sections); err != nil {
			return err
		}
		delete(raw, "sections")
	}
	if len(raw) > 0 {
		s.Extra = raw
	}
	return nil
}

// MarshalJSON reassembles the document, sections plus preserved extras.
func (s SchemaDefinition) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Extra)+1)
	for k, v := range s.Extra {
		out[k] = v
	}
	sections := s.Sections
	if sections == nil {
		sections = []SectionSchema{}
	}
	out["sections"] = sections
	return json.Marshal(out)
}

// PopulatedField is a FieldSchema annotated with its resolved value.
// Fields of pass-through sections are never annotated and serialize
// exactly as their input schema.
type PopulatedField struct {
	FieldSchema

	// Populated marks whether value annotations apply.
	Populated bool

	// Value is the resolved value: snippet markdown for snippet types,
	// the raw column value otherwise. Nil when the backing record is
	// absent or the column is null.
	Value any

	// SnippetKey is the human-readable key of the resolved snippet,
	// nil for non-snippet fields and unresolvable references.
	SnippetKey *string

	// OriginalSnippetID mirrors the raw stored column value for
	// diagnostics.
	OriginalSnippetID any

	// ValueHTML is the sanitized rendering of snippet_markdown values.
	ValueHTML string
}

// MarshalJSON emits the plain field schema for pass-through fields and
// adds the value annotations for populated ones.
func (f PopulatedField) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"name": f.Name,
		"type": f.Type,
	}
	if f.Label != "" {
		out["label"] = f.Label
	}
	if f.Populated {
		out["value"] = f.Value
		out["snippetKey"] = f.SnippetKey
		out["originalSnippetId"] = f.OriginalSnippetID
		if f.ValueHTML != "" {
			out["valueHtml"] = f.ValueHTML
		}
	}
	return json.Marshal(out)
}

// PopulatedSection is a SectionSchema whose fields may carry resolved
// values. Sections outside the populatable registry pass through with
// their schema untouched.
type PopulatedSection struct {
	ID          string           `json:"id"`
	Title       string           `json:"title,omitempty"`
	SourceTable string           `json:"sourceTable,omitempty"`
	IsList      bool             `json:"isList,omitempty"`
	Fields      []PopulatedField `json:"fields"`
}

// PassThrough wraps a section schema without value annotations.
func PassThrough(sec SectionSchema) PopulatedSection {
	fields := make([]PopulatedField, len(sec.Fields))
	for i, f := range sec.Fields {
		fields[i] = PopulatedField{FieldSchema: f}
	}
	return PopulatedSection{
		ID:          sec.ID,
		Title:       sec.Title,
		SourceTable: sec.SourceTable,
		IsList:      sec.IsList,
		Fields:      fields,
	}
}

// PopulatedSchema is the annotated document returned to callers:
// populated sections in declared order plus the preserved schema-level
// extras. It is request-scoped and never persisted.
type PopulatedSchema struct {
	Sections []PopulatedSection
	Extra    map[string]json.RawMessage
}

// MarshalJSON mirrors SchemaDefinition.MarshalJSON with populated sections.
func (s PopulatedSchema) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Extra)+1)
	for k, v := range s.Extra {
		out[k] = v
	}
	sections := s.Sections
	if sections == nil {
		sections = []PopulatedSection{}
	}
	out["sections"] = sections
	return json.Marshal(out)
}

// PageContent is the assembled result for one page.
type PageContent struct {
	PageIdentifier string          `json:"pageIdentifier"`
	PageAdminTitle string          `json:"pageAdminTitle"`
	Schema         PopulatedSchema `json:"schema"`
}
