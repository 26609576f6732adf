// Package pathreq resolves the path/file query pair of a request into a
// location relative to the browsing root.
package pathreq

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/dirview/dirview/pkg/models"
	"github.com/gorilla/schema"
	"github.com/pkg/errors"
)

var (
	// ErrMalformedQuery is returned by the strict variant when the query
	// can't be decoded.
	ErrMalformedQuery = errors.New("malformed query")
	// ErrFileRequired is returned by the strict variant when no file is
	// given.
	ErrFileRequired = errors.New("file is required")
	// ErrOutsideRoot is returned when the path or file would resolve outside
	// of the browsing root.
	ErrOutsideRoot = errors.New("path is outside of the browsing root")
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("query")
	// Sort and other listing params share the query string.
	d.IgnoreUnknownKeys(true)
	return d
}

// Query is the raw shape of the path/file pair.
type Query struct {
	Path string `query:"path"`
	File string `query:"file"`
}

// Request is a resolved target. Directory and FullPath are slash-separated
// and relative to the browsing root, with "." standing for the root itself.
type Request struct {
	Directory string
	File      string
	FullPath  string
}

// HasFile reports whether the request targets a specific file.
func (r *Request) HasFile() bool {
	return r.File != ""
}

// Root returns the request pointing at the browsing root.
func Root() *Request {
	return &Request{
		Directory: models.RootPath,
		FullPath:  models.RootPath,
	}
}

// Parse resolves a listing request. A query that can't be decoded degrades to
// the root; only containment violations are reported.
func Parse(rawQuery string) (*Request, error) {
	q, err := decode(rawQuery)
	if err != nil {
		return Root(), nil
	}
	return New(q)
}

// ParseFile resolves a request that targets a single file, as used by delete
// and download. Unlike Parse, a malformed query or a missing file is an
// error.
func ParseFile(rawQuery string) (*Request, error) {
	q, err := decode(rawQuery)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedQuery, err.Error())
	}
	if q.File == "" {
		return nil, errors.WithStack(ErrFileRequired)
	}
	return New(q)
}

// New resolves an already decoded query. An absent path or a bare "/" means
// the browsing root. Leading slashes are treated as relative to the root, and
// anything that escapes the root through ".." is rejected.
func New(q Query) (*Request, error) {
	dir, err := clean(q.Path)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Directory: dir,
		FullPath:  dir,
	}
	if q.File == "" {
		return req, nil
	}

	file, err := clean(q.File)
	if err != nil {
		return nil, err
	}
	if file == models.RootPath {
		return nil, errors.Wrapf(ErrOutsideRoot, "file %q", q.File)
	}
	req.File = file
	req.FullPath = path.Join(dir, file)
	return req, nil
}

func decode(rawQuery string) (Query, error) {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return Query{}, errors.WithStack(err)
	}
	q := Query{}
	if err := decoder.Decode(&q, values); err != nil {
		return Query{}, errors.WithStack(err)
	}
	return q, nil
}

func clean(p string) (string, error) {
	p = filepath.ToSlash(p)
	trimmed := strings.TrimLeft(p, "/")
	if trimmed == "" {
		return models.RootPath, nil
	}
	cleaned := path.Clean(trimmed)
	if !filepath.IsLocal(filepath.FromSlash(cleaned)) {
		return "", errors.Wrapf(ErrOutsideRoot, "%q", p)
	}
	return cleaned, nil
}
