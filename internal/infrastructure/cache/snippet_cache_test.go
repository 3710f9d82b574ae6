package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyfolio/internal/core/apperror"
	"skyfolio/internal/domain/content"
)

type countingStore struct {
	snippets map[string]*content.Snippet
	calls    int
}

func (s *countingStore) GetSnippet(_ context.Context, ownerID, snippetID string) (*content.Snippet, error) {
	s.calls++
	if sn, ok := s.snippets[ownerID+"/"+snippetID]; ok {
		return sn, nil
	}
	return nil, apperror.NewNotFound("snippet", snippetID)
}

func TestSnippetCache_ReadThrough(t *testing.T) {
	store := &countingStore{snippets: map[string]*content.Snippet{
		"owner-1/snip-1": {ID: "snip-1", SnippetKey: "about.intro", ValueMarkdown: "# Hi"},
	}}
	c := NewSnippetCache(nil, store)

	first, err := c.GetSnippet(context.Background(), "owner-1", "snip-1")
	require.NoError(t, err)
	assert.Equal(t, "about.intro", first.SnippetKey)

	second, err := c.GetSnippet(context.Background(), "owner-1", "snip-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.calls, "second read should come from cache")
}

func TestSnippetCache_MissesAreNotCached(t *testing.T) {
	store := &countingStore{snippets: map[string]*content.Snippet{}}
	c := NewSnippetCache(nil, store)

	_, err := c.GetSnippet(context.Background(), "owner-1", "missing")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	_, err = c.GetSnippet(context.Background(), "owner-1", "missing")
	require.Error(t, err)
	assert.Equal(t, 2, store.calls)
	assert.Zero(t, c.Len())
}

func TestSnippetCache_InvalidateOwner(t *testing.T) {
	store := &countingStore{snippets: map[string]*content.Snippet{
		"owner-1/snip-1": {ID: "snip-1", ValueMarkdown: "one"},
		"owner-2/snip-2": {ID: "snip-2", ValueMarkdown: "two"},
	}}
	c := NewSnippetCache(nil, store)

	_, err := c.GetSnippet(context.Background(), "owner-1", "snip-1")
	require.NoError(t, err)
	_, err = c.GetSnippet(context.Background(), "owner-2", "snip-2")
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	c.Invalidate("owner-1")
	assert.Equal(t, 1, c.Len())

	// Other owner's entry survives targeted invalidation.
	_, err = c.GetSnippet(context.Background(), "owner-2", "snip-2")
	require.NoError(t, err)
	assert.Equal(t, 2, store.calls)
}

func TestSnippetCache_InvalidateAll(t *testing.T) {
	store := &countingStore{snippets: map[string]*content.Snippet{
		"owner-1/snip-1": {ID: "snip-1", ValueMarkdown: "one"},
	}}
	c := NewSnippetCache(nil, store)

	_, err := c.GetSnippet(context.Background(), "owner-1", "snip-1")
	require.NoError(t, err)

	c.Invalidate("  ")
	assert.Zero(t, c.Len())
}
