package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"skyfolio/internal/core/apperror"
	"skyfolio/internal/domain/content"
)

const snippetsTable = "content_snippets"

// SnippetRepo implements content.SnippetStore over the content_snippets
// table.
type SnippetRepo struct {
	pool *Pool
}

// NewSnippetRepo creates a snippet repository.
func NewSnippetRepo(pool *Pool) *SnippetRepo {
	return &SnippetRepo{pool: pool}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *SnippetRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

type snippetRow struct {
	ID            string `db:"id"`
	SnippetKey    string `db:"snippet_key"`
	ValueMarkdown string `db:"value_md"`
}

// GetSnippet retrieves one snippet by id, scoped to the owner.
func (r *SnippetRepo) GetSnippet(ctx context.Context, ownerID, snippetID string) (*content.Snippet, error) {
	q := r.Builder().
		Select("id", "snippet_key", "value_md").
		From(snippetsTable).
		Where(squirrel.Eq{"id": snippetID}).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row snippetRow
	if err := pgxscan.Get(ctx, r.pool, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("snippet", snippetID)
		}
		return nil, fmt.Errorf("get snippet %s: %w", snippetID, err)
	}

	return &content.Snippet{
		ID:            row.ID,
		SnippetKey:    row.SnippetKey,
		ValueMarkdown: row.ValueMarkdown,
	}, nil
}
