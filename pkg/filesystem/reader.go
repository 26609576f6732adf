package filesystem

import (
	"context"
	"io/fs"
	"path"
	"time"
	"unicode/utf8"

	"github.com/dirview/dirview/pkg/models"
	"github.com/pkg/errors"
)

var epoch = time.Unix(0, 0)

// ReadDirectory lists the immediate children of dir within fsys. Type and
// metadata are read per entry after the listing, and the first failure aborts
// the whole read: a listing is either complete or an error, never partial.
func ReadDirectory(ctx context.Context, fsys fs.FS, dir string) (models.Entries, error) {
	dir = path.Clean(dir)
	if !fs.ValidPath(dir) {
		return nil, &ReadError{Dir: dir, Err: fs.ErrInvalid}
	}

	dirEntries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, &ReadError{Dir: dir, Err: err}
	}

	entries := make(models.Entries, 0, len(dirEntries))
	for _, de := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		entry, err := newEntry(dir, de)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func newEntry(dir string, de fs.DirEntry) (models.Entry, error) {
	name := de.Name()
	if !utf8.ValidString(name) {
		return models.Entry{}, errors.Wrapf(ErrNameConversion, "%q", name)
	}

	info, err := de.Info()
	if err != nil {
		return models.Entry{}, errors.Wrapf(err, "failed to stat %s", path.Join(dir, name))
	}

	modTime := info.ModTime()
	if modTime.Before(epoch) {
		return models.Entry{}, errors.Wrapf(ErrTimestamp, "%s", path.Join(dir, name))
	}
	modified := uint64(modTime.Unix())

	size := info.Size()
	if size < 0 {
		size = 0
	}

	return models.Entry{
		Name:        name,
		Size:        uint64(size),
		Modified:    modified,
		ModifiedAt:  time.Unix(int64(modified), 0).UTC(),
		ParentPath:  dir,
		IsDirectory: de.IsDir(),
	}, nil
}
