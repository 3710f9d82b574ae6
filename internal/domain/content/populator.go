package content

import (
	"context"
	"errors"

	"skyfolio/internal/core/apperror"
	"skyfolio/pkg/logger"
)

// ErrUnsupportedSectionKind is reported when a registered section
// declares isList: collection sections have no population path and are
// passed through rather than guessed at.
var ErrUnsupportedSectionKind = errors.New("unsupported section kind: list sections are not populatable")

// Populator fills section schemas with live values from their backing
// records. Only sections in the registry are populated; all failures
// below the page level are logged and recovered with partial data so
// that one section's backing table never fails a whole page.
type Populator struct {
	registry *SectionRegistry
	sections SectionStore
	resolver *SnippetResolver
	renderer *MarkdownRenderer
}

// NewPopulator creates a populator. renderer may be nil to disable
// HTML rendering of snippet_markdown values.
func NewPopulator(registry *SectionRegistry, sections SectionStore, resolver *SnippetResolver, renderer *MarkdownRenderer) *Populator {
	return &Populator{
		registry: registry,
		sections: sections,
		resolver: resolver,
		renderer: renderer,
	}
}

// PopulateSections populates each section in declared order, preserving
// order in the output. A single snippet memo spans the whole call so
// repeated references fetch once per request.
func (p *Populator) PopulateSections(ctx context.Context, ownerID string, sections []SectionSchema) []PopulatedSection {
	out := make([]PopulatedSection, 0, len(sections))
	memo := make(map[string]ResolvedSnippet)
	for _, sec := range sections {
		out = append(out, p.populateSection(ctx, ownerID, sec, memo))
	}
	return out
}

func (p *Populator) populateSection(ctx context.Context, ownerID string, sec SectionSchema, memo map[string]ResolvedSnippet) PopulatedSection {
	policy, registered := p.registry.Lookup(sec.ID)
	if !registered || sec.SourceTable == "" {
		return PassThrough(sec)
	}

	if sec.IsList {
		logger.Warn(ctx, "section not populated",
			"section_id", sec.ID,
			"error", ErrUnsupportedSectionKind,
		)
		return PassThrough(sec)
	}

	if sec.SourceTable != policy.SourceTable {
		logger.Warn(ctx, "section source table does not match registered policy",
			"section_id", sec.ID,
			"source_table", sec.SourceTable,
			"registered_table", policy.SourceTable,
		)
		return PassThrough(sec)
	}

	record, err := p.sections.GetSectionRecord(ctx, policy.SourceTable, ownerID)
	if err != nil {
		if apperror.IsNotFound(err) {
			// No backing row yet is a valid empty state: populate with
			// null values.
			record = nil
		} else {
			logger.Error(ctx, "section record fetch failed, continuing with empty values",
				"section_id", sec.ID,
				"source_table", policy.SourceTable,
				"error", err,
			)
			record = nil
		}
	}

	populated := PopulatedSection{
		ID:          sec.ID,
		Title:       sec.Title,
		SourceTable: sec.SourceTable,
		IsList:      sec.IsList,
		Fields:      make([]PopulatedField, 0, len(sec.Fields)),
	}

	for _, f := range sec.Fields {
		populated.Fields = append(populated.Fields, p.populateField(ctx, ownerID, f, record, memo))
	}

	return populated
}

func (p *Populator) populateField(ctx context.Context, ownerID string, f FieldSchema, record map[string]any, memo map[string]ResolvedSnippet) PopulatedField {
	var raw any
	if record != nil {
		raw = record[f.Name]
	}

	pf := PopulatedField{
		FieldSchema:       f,
		Populated:         true,
		Value:             raw,
		OriginalSnippetID: raw,
	}

	if !f.Type.IsSnippet() || raw == nil {
		return pf
	}

	ref, ok := raw.(string)
	if !ok {
		logger.Warn(ctx, "snippet reference column is not a string",
			"field", f.Name,
			"value", raw,
		)
		return pf
	}

	resolved, ok := memo[ref]
	if !ok {
		resolved = p.resolver.Resolve(ctx, ownerID, ref)
		memo[ref] = resolved
	}

	pf.Value = resolved.ValueMarkdown
	pf.SnippetKey = resolved.SnippetKey
	if f.Type == FieldSnippetMarkdown && p.renderer != nil {
		pf.ValueHTML = p.renderer.Render(resolved.ValueMarkdown)
	}
	return pf
}
