package content

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"skyfolio/internal/core/apperror"
)

var tracer = otel.Tracer("skyfolio/content")

// Assembler loads a page's admin schema, populates its sections and
// returns the annotated document.
type Assembler struct {
	pages     PageStore
	populator *Populator
	slugs     *SlugMap
}

// NewAssembler creates an assembler.
func NewAssembler(pages PageStore, populator *Populator, slugs *SlugMap) *Assembler {
	return &Assembler{
		pages:     pages,
		populator: populator,
		slugs:     slugs,
	}
}

// Slugs exposes the identifier mapping so link-building callers (the
// dashboard) use the same convention in the inverse direction.
func (a *Assembler) Slugs() *SlugMap {
	return a.slugs
}

// AssemblePageContent resolves the external page identifier, loads the
// page metadata and returns the populated schema with its display title.
//
// Not-found outcomes are distinct: a missing metadata row carries the
// resolved internal identifier and the store error text, while a present
// row without a schema reports the schema as undefined.
func (a *Assembler) AssemblePageContent(ctx context.Context, ownerID, externalID string) (*PageContent, error) {
	internalID := a.slugs.Internal(externalID)

	ctx, span := tracer.Start(ctx, "content.AssemblePageContent")
	span.SetAttributes(
		attribute.String("page.external_id", externalID),
		attribute.String("page.internal_id", internalID),
	)
	defer span.End()

	meta, err := a.pages.GetPage(ctx, ownerID, internalID)
	if err != nil {
		return nil, apperror.NewNotFoundMessage(
			fmt.Sprintf("page metadata not found for %q: %v", internalID, err),
		).WithCause(err)
	}

	if len(meta.AdminSchema) == 0 || string(meta.AdminSchema) == "null" {
		return nil, apperror.NewNotFoundMessage(
			fmt.Sprintf("no admin schema defined for page %q", internalID),
		)
	}

	var schema SchemaDefinition
	if err := json.Unmarshal(meta.AdminSchema, &schema); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("decode admin schema for %q: %w", internalID, err))
	}

	title := meta.AdminTitle
	if title == "" {
		title = fmt.Sprintf("Edit: %s", internalID)
	}

	populated := a.populator.PopulateSections(ctx, ownerID, schema.Sections)
	if populated == nil {
		populated = []PopulatedSection{}
	}

	return &PageContent{
		PageIdentifier: externalID,
		PageAdminTitle: title,
		Schema: PopulatedSchema{
			Sections: populated,
			Extra:    schema.Extra,
		},
	}, nil
}

// PageLink is one dashboard entry: a page with an admin schema defined.
type PageLink struct {
	PageIdentifier string `json:"pageIdentifier"`
	AdminTitle     string `json:"adminTitle"`
	EditPath       string `json:"editPath"`
}

// ListEditablePages returns dashboard entries for the owner's pages
// that have admin schemas, with external slugs built through the same
// identifier mapping used for assembly.
func (a *Assembler) ListEditablePages(ctx context.Context, ownerID string) ([]PageLink, error) {
	pages, err := a.pages.ListPagesWithSchema(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	links := make([]PageLink, 0, len(pages))
	for _, p := range pages {
		slug := a.slugs.External(p.PageID)
		title := p.AdminTitle
		if title == "" {
			title = fmt.Sprintf("Edit: %s", p.PageID)
		}
		links = append(links, PageLink{
			PageIdentifier: slug,
			AdminTitle:     title,
			EditPath:       "/admin/edit/" + slug,
		})
	}
	return links, nil
}
