package content

import (
	"context"

	"github.com/google/uuid"

	"skyfolio/pkg/logger"
)

// ResolvedSnippet is the outcome of a snippet lookup. A reference that
// does not resolve yields an empty value and a nil key; callers treat
// that as a normal degraded case, never a failure.
type ResolvedSnippet struct {
	ValueMarkdown string
	SnippetKey    *string
}

// SnippetResolver resolves indirect snippet references to their shared
// markdown value and key.
type SnippetResolver struct {
	store SnippetStore
}

// NewSnippetResolver creates a resolver over the given store.
func NewSnippetResolver(store SnippetStore) *SnippetResolver {
	return &SnippetResolver{store: store}
}

// Resolve fetches the snippet referenced by snippetID within the owner's
// scope. Malformed references, missing rows and store errors all degrade
// to the empty outcome with a warning log.
func (r *SnippetResolver) Resolve(ctx context.Context, ownerID, snippetID string) ResolvedSnippet {
	if snippetID == "" {
		return ResolvedSnippet{}
	}

	if _, err := uuid.Parse(snippetID); err != nil {
		logger.Warn(ctx, "malformed snippet reference",
			"snippet_id", snippetID,
			"error", err,
		)
		return ResolvedSnippet{}
	}

	snip, err := r.store.GetSnippet(ctx, ownerID, snippetID)
	if err != nil {
		logger.Warn(ctx, "snippet not resolved",
			"snippet_id", snippetID,
			"error", err,
		)
		return ResolvedSnippet{}
	}

	key := snip.SnippetKey
	return ResolvedSnippet{
		ValueMarkdown: snip.ValueMarkdown,
		SnippetKey:    &key,
	}
}
