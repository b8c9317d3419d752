package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, true, "ID", "NAME", "ENABLED")
	tbl.AddRow("1", "objectified", "true")
	tbl.AddRow("12", "sales")
	tbl.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID  NAME         ENABLED", lines[0])
	assert.Equal(t, "──  ───────────  ───────", lines[1])
	assert.Equal(t, "1   objectified  true", lines[2])
	assert.Equal(t, "12  sales        ", lines[3])
	assert.Equal(t, 2, tbl.Len())
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewTable(&buf, true, "ID").Render()
	assert.Contains(t, buf.String(), "(no rows)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "line one", truncate("line\none", 10))
	long := strings.Repeat("é", 60)
	got := truncate(long, MaxCellWidth)
	assert.Equal(t, MaxCellWidth, width(got))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestDetails(t *testing.T) {
	var buf bytes.Buffer
	d := NewDetails(&buf, true)
	d.Add("id", "3")
	d.Add("description", "People")
	d.Render()
	assert.Equal(t, "id:           3\ndescription:  People\n", buf.String())
}
