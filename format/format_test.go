package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datamill-io/s3-source/schema"
)

func TestFromString(t *testing.T) {
	t.Run("CaseInsensitive", func(t *testing.T) {
		for _, name := range []string{"csv", "CSV", "Csv"} {
			f, err := FromString(name)
			require.NoError(t, err)
			assert.Equal(t, CSV, f)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := FromString("orc")
		assert.ErrorContains(t, err, `unknown format "orc"`)
	})
}

func TestUsesHeader(t *testing.T) {
	assert.True(t, CSV.UsesHeader())
	assert.True(t, TSV.UsesHeader())
	assert.True(t, Delimited.UsesHeader())
	assert.False(t, Text.UsesHeader())
	assert.False(t, JSON.UsesHeader())
	assert.False(t, Blob.UsesHeader())
}

func TestSchema(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		s, err := Text.Schema("")
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, []schema.Field{
			{Name: "offset", Type: schema.TypeLong},
			{Name: "body", Type: schema.TypeString},
		}, s.Fields)
	})

	t.Run("TextWithPathField", func(t *testing.T) {
		s, err := Text.Schema("file")
		require.NoError(t, err)
		assert.Equal(t, []string{"offset", "body", "file"}, s.FieldNames())
		assert.Equal(t, schema.TypeString, s.Fields[2].Type)
	})

	t.Run("Blob", func(t *testing.T) {
		s, err := Blob.Schema("")
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, []schema.Field{{Name: "body", Type: schema.TypeBytes}}, s.Fields)
	})

	t.Run("PathFieldCollision", func(t *testing.T) {
		_, err := Text.Schema("body")
		assert.ErrorContains(t, err, "collides")
	})

	t.Run("DataDependentFormats", func(t *testing.T) {
		for _, f := range []Format{Avro, CSV, Delimited, JSON, Parquet, TSV} {
			s, err := f.Schema("file")
			require.NoError(t, err)
			assert.Nil(t, s, "format %s should not derive a schema", f)
		}
	})
}
