package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldType_IsSnippet(t *testing.T) {
	tests := []struct {
		ft   FieldType
		want bool
	}{
		{FieldText, false},
		{FieldSnippet, true},
		{FieldSnippetMarkdown, true},
		{FieldType("image"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ft.IsSnippet(), "type %q", tt.ft)
	}
}

func TestSchemaDefinition_PreservesExtraProperties(t *testing.T) {
	doc := `{
		"version": 3,
		"theme": "dark",
		"sections": [
			{"id": "s1", "title": "One", "fields": [{"name": "headline", "type": "text"}]}
		]
	}`

	var schema SchemaDefinition
	require.NoError(t, json.Unmarshal([]byte(doc), &schema))

	require.Len(t, schema.Sections, 1)
	assert.Equal(t, "s1", schema.Sections[0].ID)
	assert.Equal(t, FieldText, schema.Sections[0].Fields[0].Type)

	require.Contains(t, schema.Extra, "version")
	require.Contains(t, schema.Extra, "theme")

	out, err := json.Marshal(schema)
	require.NoError(t, err)

	var round map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &round))
	assert.JSONEq(t, `3`, string(round["version"]))
	assert.JSONEq(t, `"dark"`, string(round["theme"]))
	assert.Contains(t, round, "sections")
}

func TestSchemaDefinition_MarshalEmptySections(t *testing.T) {
	var schema SchemaDefinition
	require.NoError(t, json.Unmarshal([]byte(`{"sections": []}`), &schema))

	out, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections": []}`, string(out))
}

func TestPopulatedField_MarshalJSON(t *testing.T) {
	t.Run("pass-through field has no value annotations", func(t *testing.T) {
		f := PopulatedField{FieldSchema: FieldSchema{Name: "headline", Label: "Headline", Type: FieldText}}

		out, err := json.Marshal(f)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(out, &m))
		assert.NotContains(t, m, "value")
		assert.NotContains(t, m, "snippetKey")
		assert.NotContains(t, m, "originalSnippetId")
		assert.Equal(t, "headline", m["name"])
	})

	t.Run("populated field carries annotations including nulls", func(t *testing.T) {
		f := PopulatedField{
			FieldSchema:       FieldSchema{Name: "intro_md", Type: FieldSnippetMarkdown},
			Populated:         true,
			Value:             "",
			SnippetKey:        nil,
			OriginalSnippetID: "dead-ref",
		}

		out, err := json.Marshal(f)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(out, &m))
		assert.Contains(t, m, "value")
		assert.Equal(t, "", m["value"])
		assert.Contains(t, m, "snippetKey")
		assert.Nil(t, m["snippetKey"])
		assert.Equal(t, "dead-ref", m["originalSnippetId"])
	})
}

func TestPassThrough(t *testing.T) {
	sec := SectionSchema{
		ID:          "gallery",
		Title:       "Gallery",
		SourceTable: "gallery_items",
		IsList:      true,
		Fields: []FieldSchema{
			{Name: "caption", Type: FieldText},
		},
	}

	got := PassThrough(sec)
	assert.Equal(t, sec.ID, got.ID)
	assert.Equal(t, sec.Title, got.Title)
	assert.Equal(t, sec.SourceTable, got.SourceTable)
	assert.Equal(t, sec.IsList, got.IsList)
	require.Len(t, got.Fields, 1)
	assert.False(t, got.Fields[0].Populated)
	assert.Equal(t, sec.Fields[0], got.Fields[0].FieldSchema)
}
