package postgres

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"skyfolio/internal/core/apperror"
)

// identPattern limits section source tables to plain lowercase
// identifiers. Table names come from schema documents, never from
// request input, but they still pass through this gate before being
// interpolated into SQL.
var identPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// SectionRepo implements content.SectionStore: each section source
// table holds at most one row per owner, read as a generic column map.
type SectionRepo struct {
	pool *Pool
}

// NewSectionRepo creates a section record repository.
func NewSectionRepo(pool *Pool) *SectionRepo {
	return &SectionRepo{pool: pool}
}

// GetSectionRecord fetches the owner's single row from the given source
// table as a map keyed by column name.
func (r *SectionRepo) GetSectionRecord(ctx context.Context, table, ownerID string) (map[string]any, error) {
	if !identPattern.MatchString(table) {
		return nil, apperror.NewValidation(fmt.Sprintf("invalid source table name %q", table))
	}

	sql := fmt.Sprintf(
		"SELECT * FROM %s WHERE owner_id = $1 LIMIT 1",
		pgx.Identifier{table}.Sanitize(),
	)

	rows, err := r.pool.Query(ctx, sql, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("read %s: %w", table, err)
		}
		return nil, apperror.NewNotFound("section record", table)
	}

	values, err := rows.Values()
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", table, err)
	}

	record := make(map[string]any, len(values))
	for i, fd := range rows.FieldDescriptions() {
		record[fd.Name] = normalizeValue(values[i])
	}
	return record, nil
}

// normalizeValue converts driver-level representations into the plain
// values the domain layer works with (uuid columns come back as raw
// 16-byte arrays from pgx).
func normalizeValue(v any) any {
	switch val := v.(type) {
	case [16]byte:
		return uuid.UUID(val).String()
	default:
		return v
	}
}
