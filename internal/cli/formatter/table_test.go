package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"KIND", "ITEMS"}, [][]string{
		{"offences", "4"},
		{"court-locations", "12"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	col := strings.Index(lines[0], "ITEMS")
	assert.Equal(t, col, strings.Index(lines[2], "4"))
	assert.Equal(t, col, strings.Index(lines[3], "12"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderKeyValues(t *testing.T) {
	out := RenderKeyValues([]KeyValue{{"URN", "42AB0000001/25"}, {"Complexity", "Standard"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Index(lines[0], "42AB"), strings.Index(lines[1], "Standard"))
}

func TestRenderTree(t *testing.T) {
	out := RenderTree([]TreeItem{
		{Title: "Jane Doe", Detail: "2 charges"},
		{Title: "Theft from a shop", Level: 1},
		{Title: "Burglary", Level: 1, IsLast: true},
	})
	assert.Contains(t, out, "├─ Theft from a shop")
	assert.Contains(t, out, "└─ Burglary")
	assert.Contains(t, out, "[ 2 charges ]")
	assert.Empty(t, RenderTree(nil))
}
