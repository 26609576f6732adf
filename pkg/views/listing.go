package views

import (
	"net/url"
	"path"
	"strings"

	"github.com/dirview/dirview/pkg/models"
	"github.com/dirview/dirview/pkg/pathreq"
	"github.com/dirview/dirview/pkg/sorting"
)

// Listing is the data passed to the index and file list templates.
type Listing struct {
	Lang    string
	Request *pathreq.Request
	Sorting sorting.Spec
	Entries models.Entries
}

// Breadcrumb is one segment of the current directory path.
type Breadcrumb struct {
	Label string
	Path  string
}

func NewListing(req *pathreq.Request, spec sorting.Spec, entries models.Entries) *Listing {
	return &Listing{
		Lang:    "en",
		Request: req,
		Sorting: spec,
		Entries: entries,
	}
}

// IsRoot reports whether the listing is of the browsing root.
func (l *Listing) IsRoot() bool {
	return l.Request.Directory == models.RootPath
}

// ParentPath returns the directory one level up, or the root itself.
func (l *Listing) ParentPath() string {
	return path.Dir(l.Request.Directory)
}

// Breadcrumbs splits the current directory into clickable segments, starting
// at the root.
func (l *Listing) Breadcrumbs() []Breadcrumb {
	crumbs := []Breadcrumb{{Label: "/", Path: models.RootPath}}
	if l.IsRoot() {
		return crumbs
	}

	current := ""
	for _, segment := range strings.Split(l.Request.Directory, "/") {
		current = path.Join(current, segment)
		crumbs = append(crumbs, Breadcrumb{Label: segment, Path: current})
	}
	return crumbs
}

// ListURL links to the listing of dir, keeping the current sort order unless
// it's the default.
func (l *Listing) ListURL(base, dir string) string {
	return listURL(base, dir, l.Sorting)
}

// SortURL links to the current directory sorted by key, flipping the
// direction when key is already active.
func (l *Listing) SortURL(base string, key sorting.Key) string {
	return listURL(base, l.Request.Directory, l.Sorting.Toggle(key))
}

// SortIndicator returns an arrow for the active sort column.
func (l *Listing) SortIndicator(key sorting.Key) string {
	if l.Sorting.Key != key {
		return ""
	}
	if l.Sorting.Direction == sorting.Descending {
		return "▼"
	}
	return "▲"
}

func listURL(base, dir string, spec sorting.Spec) string {
	q := url.Values{}
	q.Set("path", dir)
	if !spec.IsDefault() {
		q.Set("sorting", spec.String())
	}
	return base + "?" + q.Encode()
}

func fileURL(base string, e models.Entry) string {
	q := url.Values{}
	q.Set("path", e.ParentPath)
	q.Set("file", e.Name)
	return base + "?" + q.Encode()
}
