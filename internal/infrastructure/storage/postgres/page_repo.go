package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"skyfolio/internal/core/apperror"
	"skyfolio/internal/domain/content"
)

const pagesTable = "site_pages"

// PageRepo implements content.PageStore over the site_pages table.
type PageRepo struct {
	pool *Pool
}

// NewPageRepo creates a page metadata repository.
func NewPageRepo(pool *Pool) *PageRepo {
	return &PageRepo{pool: pool}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *PageRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

type pageRow struct {
	OwnerID     string  `db:"owner_id"`
	PageID      string  `db:"page_id"`
	AdminTitle  *string `db:"admin_title"`
	AdminSchema []byte  `db:"admin_schema"`
}

func (row pageRow) toMetadata() content.PageMetadata {
	meta := content.PageMetadata{
		OwnerID:     row.OwnerID,
		PageID:      row.PageID,
		AdminSchema: row.AdminSchema,
	}
	if row.AdminTitle != nil {
		meta.AdminTitle = *row.AdminTitle
	}
	return meta
}

// GetPage retrieves one page's metadata scoped to the owner.
func (r *PageRepo) GetPage(ctx context.Context, ownerID, pageID string) (*content.PageMetadata, error) {
	q := r.Builder().
		Select("owner_id", "page_id", "admin_title", "admin_schema").
		From(pagesTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.Eq{"page_id": pageID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row pageRow
	if err := pgxscan.Get(ctx, r.pool, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("page", pageID)
		}
		return nil, fmt.Errorf("get page %s: %w", pageID, err)
	}

	meta := row.toMetadata()
	return &meta, nil
}

// ListPagesWithSchema returns the owner's pages with a non-null admin
// schema, ordered by page id.
func (r *PageRepo) ListPagesWithSchema(ctx context.Context, ownerID string) ([]content.PageMetadata, error) {
	q := r.Builder().
		Select("owner_id", "page_id", "admin_title", "admin_schema").
		From(pagesTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where("admin_schema IS NOT NULL").
		OrderBy("page_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []pageRow
	if err := pgxscan.Select(ctx, r.pool, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	pages := make([]content.PageMetadata, 0, len(rows))
	for _, row := range rows {
		pages = append(pages, row.toMetadata())
	}
	return pages, nil
}
