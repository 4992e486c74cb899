package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	records, err := Default()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, Record{
		ID:    "funny_dogs_video_id",
		Title: "Funny Dogs",
		Tags:  []string{"#dog", "#animal"},
	}, records[0])
	assert.Empty(t, records[4].Tags)
}

func TestParseText(t *testing.T) {
	records, err := ParseText(strings.NewReader("A | 1 | fun\n\nB | 2 | fun , good\nC | 3\n"))
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{ID: "1", Title: "A", Tags: []string{"fun"}},
		{ID: "2", Title: "B", Tags: []string{"fun", "good"}},
		{ID: "3", Title: "C"},
	}, records)
}

func TestParseTextMalformed(t *testing.T) {
	for _, input := range []string{"no separators", "A | | tag", "A | 1 | t | extra"} {
		_, err := ParseText(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrMalformedRecord, input)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- id: "1"
  title: A
  tags: [fun]
- id: "2"
  title: B
`), 0o644))

	records, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{ID: "1", Title: "A", Tags: []string{"fun"}},
		{ID: "2", Title: "B"},
	}, records)
}

func TestLoadYAMLMissingField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.yml")
	require.NoError(t, os.WriteFile(path, []byte("- title: A\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "videos.csv")
	require.NoError(t, os.WriteFile(path, []byte("A,1"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
