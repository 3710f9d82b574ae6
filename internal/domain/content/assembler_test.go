package content

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyfolio/internal/core/apperror"
)

type fakePageStore struct {
	pages   map[string]*PageMetadata
	listErr error
}

func (f *fakePageStore) GetPage(_ context.Context, _, pageID string) (*PageMetadata, error) {
	p, ok := f.pages[pageID]
	if !ok {
		return nil, apperror.NewNotFound("page", pageID)
	}
	return p, nil
}

func (f *fakePageStore) ListPagesWithSchema(_ context.Context, _ string) ([]PageMetadata, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []PageMetadata
	for _, p := range f.pages {
		if len(p.AdminSchema) > 0 {
			out = append(out, *p)
		}
	}
	return out, nil
}

func newTestAssembler(pages *fakePageStore) *Assembler {
	populator := newTestPopulator(&fakeSectionStore{}, &fakeSnippetStore{})
	return NewAssembler(pages, populator, DefaultSlugMap())
}

func TestAssembler_MissingMetadataIsNotFound(t *testing.T) {
	a := newTestAssembler(&fakePageStore{})

	_, err := a.AssemblePageContent(context.Background(), testOwner, "about")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPStatus)
	// Message names the resolved internal identifier, not the slug.
	assert.Contains(t, appErr.Message, `"about_page"`)
	assert.Contains(t, appErr.Message, "not found")
}

func TestAssembler_NullSchemaIsDistinctNotFound(t *testing.T) {
	a := newTestAssembler(&fakePageStore{pages: map[string]*PageMetadata{
		"about_page": {PageID: "about_page", AdminTitle: "About"},
	}})

	_, err := a.AssemblePageContent(context.Background(), testOwner, "about")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPStatus)
	assert.Contains(t, appErr.Message, "no admin schema defined")
	assert.Contains(t, appErr.Message, `"about_page"`)
}

func TestAssembler_MalformedSchemaIsInternal(t *testing.T) {
	a := newTestAssembler(&fakePageStore{pages: map[string]*PageMetadata{
		"about_page": {PageID: "about_page", AdminSchema: json.RawMessage(`{"sections": "nope"`)},
	}})

	_, err := a.AssemblePageContent(context.Background(), testOwner, "about")
	require.Error(t, err)
	assert.Equal(t, 500, apperror.GetHTTPStatus(err))
}

func TestAssembler_EmptySections(t *testing.T) {
	a := newTestAssembler(&fakePageStore{pages: map[string]*PageMetadata{
		"about_page": {
			PageID:      "about_page",
			AdminTitle:  "Edit About",
			AdminSchema: json.RawMessage(`{"sections": []}`),
		},
	}})

	got, err := a.AssemblePageContent(context.Background(), testOwner, "about")
	require.NoError(t, err)

	assert.Equal(t, "about", got.PageIdentifier)
	assert.Equal(t, "Edit About", got.PageAdminTitle)
	require.NotNil(t, got.Schema.Sections)
	assert.Empty(t, got.Schema.Sections)

	// Serialized schema keeps sections as an empty array, not null.
	data, err := json.Marshal(got.Schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections": []}`, string(data))
}

func TestAssembler_TitleFallback(t *testing.T) {
	a := newTestAssembler(&fakePageStore{pages: map[string]*PageMetadata{
		"about_page": {PageID: "about_page", AdminSchema: json.RawMessage(`{"sections": []}`)},
	}})

	got, err := a.AssemblePageContent(context.Background(), testOwner, "about")
	require.NoError(t, err)
	assert.Equal(t, "Edit: about_page", got.PageAdminTitle)
}

func TestAssembler_PreservesSectionOrderAndExtras(t *testing.T) {
	schema := `{
		"version": 2,
		"sections": [
			{"id": "z_last", "fields": []},
			{"id": "a_first", "fields": []}
		]
	}`
	a := newTestAssembler(&fakePageStore{pages: map[string]*PageMetadata{
		"about_page": {PageID: "about_page", AdminSchema: json.RawMessage(schema)},
	}})

	got, err := a.AssemblePageContent(context.Background(), testOwner, "about")
	require.NoError(t, err)

	require.Len(t, got.Schema.Sections, 2)
	assert.Equal(t, "z_last", got.Schema.Sections[0].ID)
	assert.Equal(t, "a_first", got.Schema.Sections[1].ID)
	assert.JSONEq(t, `2`, string(got.Schema.Extra["version"]))
}

func TestAssembler_ListEditablePages(t *testing.T) {
	a := newTestAssembler(&fakePageStore{pages: map[string]*PageMetadata{
		"about_page": {
			PageID:      "about_page",
			AdminTitle:  "Edit About",
			AdminSchema: json.RawMessage(`{"sections": []}`),
		},
	}})

	links, err := a.ListEditablePages(context.Background(), testOwner)
	require.NoError(t, err)

	require.Len(t, links, 1)
	// Link building uses the inverse slug mapping.
	assert.Equal(t, "about", links[0].PageIdentifier)
	assert.Equal(t, "/admin/edit/about", links[0].EditPath)
	assert.Equal(t, "Edit About", links[0].AdminTitle)
}
