package script

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
- insert: [40, 30, 55, 29, 28]
- remove: [29]
- clear: true
  insert: [1]
`

func TestParseOK(t *testing.T) {
	steps, err := Parse(strings.NewReader(sample))

	require.NoError(t, err)
	assert.Equal(t, []Step{
		{Insert: []int{40, 30, 55, 29, 28}},
		{Remove: []int{29}},
		{Clear: true, Insert: []int{1}},
	}, steps)
}

func TestParseEmptyDocument(t *testing.T) {
	steps, err := Parse(strings.NewReader(""))

	assert.NoError(t, err)
	assert.Empty(t, steps)
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("- insert: [1]\n  rotate: left\n"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode script")
}

func TestParseInvalidValue(t *testing.T) {
	_, err := Parse(strings.NewReader("- insert: [one]\n"))

	assert.Error(t, err)
}

func TestParseEmptyStep(t *testing.T) {
	_, err := Parse(strings.NewReader("- insert: [1]\n- clear: false\n"))

	assert.Equal(t, ErrEmptyStep{Index: 1}, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	steps, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, steps, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open script")
}

func TestEncodeIsReadByParse(t *testing.T) {
	steps := []Step{
		{Insert: []int{3, 2, 1}},
		{Clear: true},
		{Remove: []int{7}},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, steps))

	parsed, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, steps, parsed)
}

func TestNewTree(t *testing.T) {
	bst, err := NewTree(KindBST)
	require.NoError(t, err)
	assert.Contains(t, bst.String(), "SearchTree")

	avl, err := NewTree(KindAVL)
	require.NoError(t, err)
	assert.Contains(t, avl.String(), "AVLTree")

	_, err = NewTree("redblack")
	assert.Equal(t, ErrUnknownKind{Kind: "redblack"}, err)
	assert.EqualError(t, err, `unknown tree kind "redblack", expected one of bst or avl`)
}
