package views

import (
	"bytes"
	"testing"
	"time"

	"github.com/dirview/dirview/pkg/models"
	"github.com/dirview/dirview/pkg/pathreq"
	"github.com/dirview/dirview/pkg/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() models.Entries {
	return models.Entries{
		{Name: "sub", ParentPath: "docs", IsDirectory: true, ModifiedAt: time.Unix(150, 0).UTC(), Modified: 150},
		{Name: "a & b.txt", ParentPath: "docs", Size: 1500, ModifiedAt: time.Unix(100, 0).UTC(), Modified: 100},
	}
}

func TestRenderer_Index(t *testing.T) {
	t.Parallel()

	r, err := New()
	require.NoError(t, err)

	req, err := pathreq.New(pathreq.Query{Path: "docs"})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, IndexTemplate, NewListing(req, sorting.Name(sorting.Ascending), testEntries()), nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "Index of /docs")
	assert.Contains(t, out, `href="/?path=docs%2Fsub&amp;sorting=name.ascending"`)
	assert.Contains(t, out, "a &amp; b.txt")
	assert.Contains(t, out, "1.5 kB")
	assert.Contains(t, out, `/delete?file=a&#43;%26&#43;b.txt&amp;path=docs`)
	assert.Contains(t, out, "1970-01-01 00:01:40")
	// Parent link is present below the root.
	assert.Contains(t, out, `href="/?path=.&amp;sorting=name.ascending">../</a>`)
}

func TestRenderer_FileListFragment(t *testing.T) {
	t.Parallel()

	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, FileListTemplate, NewListing(pathreq.Root(), sorting.Default(), models.Entries{}), nil)
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "<!DOCTYPE html>")
	assert.NotContains(t, out, "../")
	assert.Contains(t, out, "This directory is empty.")
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	t.Parallel()

	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "missing.html", nil, nil)
	assert.Error(t, err)
}

func TestListing_Breadcrumbs(t *testing.T) {
	t.Parallel()

	req, err := pathreq.New(pathreq.Query{Path: "docs/reports/2024"})
	require.NoError(t, err)
	l := NewListing(req, sorting.Default(), nil)

	assert.Equal(t, []Breadcrumb{
		{Label: "/", Path: "."},
		{Label: "docs", Path: "docs"},
		{Label: "reports", Path: "docs/reports"},
		{Label: "2024", Path: "docs/reports/2024"},
	}, l.Breadcrumbs())
	assert.Equal(t, "docs/reports", l.ParentPath())
	assert.False(t, l.IsRoot())

	root := NewListing(pathreq.Root(), sorting.Default(), nil)
	assert.Equal(t, []Breadcrumb{{Label: "/", Path: "."}}, root.Breadcrumbs())
	assert.True(t, root.IsRoot())
}

func TestListing_SortURL(t *testing.T) {
	t.Parallel()

	req, err := pathreq.New(pathreq.Query{Path: "docs"})
	require.NoError(t, err)

	l := NewListing(req, sorting.Default(), nil)
	assert.Equal(t, "/?path=docs&sorting=size.ascending", l.SortURL("/", sorting.KeySize))
	assert.Equal(t, "/?path=docs", l.ListURL("/", "docs"))
	assert.Empty(t, l.SortIndicator(sorting.KeySize))

	l = NewListing(req, sorting.Size(sorting.Ascending), nil)
	assert.Equal(t, "/?path=docs&sorting=size.descending", l.SortURL("/", sorting.KeySize))
	assert.Equal(t, "▲", l.SortIndicator(sorting.KeySize))
}
