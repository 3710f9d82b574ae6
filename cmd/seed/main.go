// Package main provides a CLI tool for seeding the database with the
// development owner account, page schemas and content.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skyfolio/internal/config"
	"skyfolio/internal/infrastructure/storage/postgres"
	"skyfolio/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	cfg, err := config.Load(os.Getenv("SKYFOLIO_CONFIG"))
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.Database.DSN))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := createTables(ctx, pool); err != nil {
		log.Fatalw("failed to create tables", "error", err)
	}

	ownerID, err := seedOwner(ctx, pool, log)
	if err != nil {
		log.Fatalw("failed to seed owner", "error", err)
	}

	if err := seedContent(ctx, pool, log, ownerID); err != nil {
		log.Fatalw("failed to seed content", "error", err)
	}

	log.Info("seeding completed successfully")
}

func createTables(ctx context.Context, pool *postgres.Pool) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS site_users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			display_name TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS site_pages (
			owner_id UUID NOT NULL REFERENCES site_users(id),
			page_id TEXT NOT NULL,
			admin_title TEXT,
			admin_schema JSONB,
			PRIMARY KEY (owner_id, page_id)
		)`,
		`CREATE TABLE IF NOT EXISTS content_snippets (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES site_users(id),
			snippet_key TEXT NOT NULL,
			value_md TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS about_page_main (
			owner_id UUID PRIMARY KEY REFERENCES site_users(id),
			headline TEXT,
			intro_md UUID,
			bio_md UUID,
			years_flying TEXT,
			certifications TEXT
		)`,
		`CREATE OR REPLACE FUNCTION notify_content_snippets_changed() RETURNS trigger AS $$
		BEGIN
			PERFORM pg_notify('content_snippets_changed', COALESCE(NEW.owner_id, OLD.owner_id)::text);
			RETURN NULL;
		END;
		$$ LANGUAGE plpgsql`,
		`DROP TRIGGER IF EXISTS content_snippets_changed ON content_snippets`,
		`CREATE TRIGGER content_snippets_changed
			AFTER INSERT OR UPDATE OR DELETE ON content_snippets
			FOR EACH ROW EXECUTE FUNCTION notify_content_snippets_changed()`,
	}

	for _, stmt := range ddl {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("exec ddl: %w", err)
		}
	}
	return nil
}

func seedOwner(ctx context.Context, pool *postgres.Pool, log *logger.Logger) (string, error) {
	email := os.Getenv("OWNER_EMAIL")
	if email == "" {
		email = "owner@skyfolio.dev"
	}

	password := os.Getenv("OWNER_PASSWORD")
	if password == "" {
		password = "Owner123!"
	}

	var existingID string
	err := pool.QueryRow(ctx,
		"SELECT id FROM site_users WHERE email = $1", email,
	).Scan(&existingID)
	if err == nil {
		log.Infow("owner already exists", "email", email)
		return existingID, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	ownerID := uuid.New().String()
	_, err = pool.Exec(ctx,
		`INSERT INTO site_users (id, email, password_hash, display_name)
		 VALUES ($1, $2, $3, $4)`,
		ownerID, email, string(hash), "Site Owner",
	)
	if err != nil {
		return "", fmt.Errorf("insert owner: %w", err)
	}

	log.Infow("owner created", "email", email)
	return ownerID, nil
}

// aboutPageSchema is the admin layout document for the about page. The
// about_main section is the one populatable section; flight_log is a
// list section with no population path yet.
const aboutPageSchema = `{
	"version": 1,
	"sections": [
		{
			"id": "about_main",
			"title": "About",
			"sourceTable": "about_page_main",
			"fields": [
				{"name": "headline", "label": "Headline", "type": "text"},
				{"name": "intro_md", "label": "Introduction", "type": "snippet_markdown"},
				{"name": "bio_md", "label": "Biography", "type": "snippet_markdown"},
				{"name": "years_flying", "label": "Years flying", "type": "text"},
				{"name": "certifications", "label": "Certifications", "type": "text"}
			]
		},
		{
			"id": "flight_log",
			"title": "Flight log",
			"sourceTable": "flight_log_entries",
			"isList": true,
			"fields": [
				{"name": "aircraft", "label": "Aircraft", "type": "text"},
				{"name": "hours", "label": "Hours", "type": "text"}
			]
		}
	]
}`

func seedContent(ctx context.Context, pool *postgres.Pool, log *logger.Logger, ownerID string) error {
	introID := uuid.New().String()
	bioID := uuid.New().String()

	snippets := []struct {
		id, key, value string
	}{
		{introID, "about.intro", "I am a commercial pilot with **two decades** of experience across three continents."},
		{bioID, "about.bio", "## Background\n\nFrom bush flying in Alaska to long-haul operations, aviation has been my life."},
	}
	for _, s := range snippets {
		_, err := pool.Exec(ctx,
			`INSERT INTO content_snippets (id, owner_id, snippet_key, value_md)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (id) DO NOTHING`,
			s.id, ownerID, s.key, s.value,
		)
		if err != nil {
			return fmt.Errorf("insert snippet %s: %w", s.key, err)
		}
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO about_page_main (owner_id, headline, intro_md, bio_md, years_flying, certifications)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (owner_id) DO NOTHING`,
		ownerID, "Aviation, done right.", introID, bioID, "20+", "ATP, CFI, CFII",
	)
	if err != nil {
		return fmt.Errorf("insert about record: %w", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO site_pages (owner_id, page_id, admin_title, admin_schema)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (owner_id, page_id) DO UPDATE SET admin_title = EXCLUDED.admin_title, admin_schema = EXCLUDED.admin_schema`,
		ownerID, "about_page", "Edit About Page", aboutPageSchema,
	)
	if err != nil {
		return fmt.Errorf("insert page metadata: %w", err)
	}

	log.Infow("content seeded", "owner_id", ownerID)
	return nil
}
