package content

import (
	"context"
	"encoding/json"
)

// PageMetadata is the stored admin description of a page. Authored
// out-of-band; this subsystem only reads it.
type PageMetadata struct {
	OwnerID    string
	PageID     string
	AdminTitle string
	// AdminSchema is the raw schema document, nil when the page has no
	// admin schema defined.
	AdminSchema json.RawMessage
}

// Snippet is a shared piece of markdown content referenced indirectly
// by section record columns.
type Snippet struct {
	ID            string
	SnippetKey    string
	ValueMarkdown string
}

// PageStore reads page metadata scoped to an owner.
// Absent rows are reported as apperror.CodeNotFound.
type PageStore interface {
	GetPage(ctx context.Context, ownerID, pageID string) (*PageMetadata, error)
	// ListPagesWithSchema returns the owner's pages that have an admin
	// schema defined, ordered by page id.
	ListPagesWithSchema(ctx context.Context, ownerID string) ([]PageMetadata, error)
}

// SectionStore reads the single backing record of a section.
// At most one row exists per (table, owner); absence is reported as
// apperror.CodeNotFound and is a valid empty state for callers.
type SectionStore interface {
	GetSectionRecord(ctx context.Context, table, ownerID string) (map[string]any, error)
}

// SnippetStore reads shared content snippets scoped to an owner.
type SnippetStore interface {
	GetSnippet(ctx context.Context, ownerID, snippetID string) (*Snippet, error)
}
