package assistant

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExportYAML(t *testing.T) {
	s := sampleSession(t)
	var b bytes.Buffer
	require.NoError(t, ExportYAML(&b, s))

	var doc Document
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &doc))
	if diff := cmp.Diff(NewDocument(s), &doc, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("ExportYAML() does not read back (-want +got):\n%s", diff)
	}
	assert.Contains(t, b.String(), "name: John")
}

func TestQuery(t *testing.T) {
	s := sampleSession(t)

	got, err := Query(s, "$.contacts[*].name")
	require.NoError(t, err)
	assert.Equal(t, []any{"Jane", "John"}, got)

	got, err = Query(s, "$.notes.nextId")
	require.NoError(t, err)
	assert.Equal(t, float64(5), got)

	got, err = Query(s, `$.notes.items[?(@.id > 1)].text`)
	require.NoError(t, err)
	assert.Equal(t, []any{"Read a book"}, got)

	_, err = Query(s, "$.[")
	assert.Error(t, err)
}
