package filesystem

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dirview/dirview/pkg/models"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
)

// Service gives access to everything below the browsing root. All access goes
// through an os.Root, so symlinks and ".." can't reach outside of it even if a
// caller skips path validation.
type Service struct {
	root *os.Root
	fsys fs.FS
}

func NewService(rootDir string) (*Service, error) {
	root, err := os.OpenRoot(rootDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open browsing root %s", rootDir)
	}

	return &Service{
		root: root,
		fsys: root.FS(),
	}, nil
}

// RootDir returns the browsing root as it was configured.
func (s *Service) RootDir() string {
	return s.root.Name()
}

func (s *Service) Close() error {
	return errors.WithStack(s.root.Close())
}

// ReadDirectory lists dir, a slash-separated path relative to the root.
func (s *Service) ReadDirectory(ctx context.Context, dir string) (models.Entries, error) {
	return ReadDirectory(ctx, s.fsys, dir)
}

// Delete removes the single file at name. Directories are never removed, not
// even empty ones.
func (s *Service) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)
	native := filepath.FromSlash(name)

	info, err := s.root.Lstat(native)
	if err != nil {
		return errors.WithStack(err)
	}
	if info.IsDir() {
		return errors.Wrapf(ErrIsDirectory, "%s", name)
	}

	if err := s.root.Remove(native); err != nil {
		return errors.WithStack(err)
	}

	log.Info("deleted file", logger.Data{"path": name})
	return nil
}

// Open opens the regular file at name for reading. The caller closes it.
func (s *Service) Open(_ context.Context, name string) (*os.File, fs.FileInfo, error) {
	f, err := s.root.Open(filepath.FromSlash(name))
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, errors.WithStack(err)
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, errors.Wrapf(ErrIsDirectory, "%s", name)
	}

	return f, info, nil
}
