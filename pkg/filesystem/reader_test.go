package filesystem

import (
	"context"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioFS() fstest.MapFS {
	return fstest.MapFS{
		"a.txt":         {Data: make([]byte, 100), ModTime: time.Unix(100, 0)},
		"b.txt":         {Data: make([]byte, 50), ModTime: time.Unix(200, 0)},
		"sub":           {Mode: fs.ModeDir | 0755, ModTime: time.Unix(300, 0)},
		"sub/inner.txt": {Data: []byte("inner"), ModTime: time.Unix(400, 0)},
		"sub/deeper":    {Mode: fs.ModeDir | 0755, ModTime: time.Unix(500, 0)},
	}
}

func TestReadDirectory_ImmediateChildrenOnly(t *testing.T) {
	t.Parallel()

	entries, err := ReadDirectory(context.Background(), scenarioFS(), ".")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.txt", "b.txt", "sub"}, entries.Names())
}

func TestReadDirectory_Metadata(t *testing.T) {
	t.Parallel()

	entries, err := ReadDirectory(context.Background(), scenarioFS(), ".")
	require.NoError(t, err)

	byName := map[string]int{}
	for i, e := range entries {
		byName[e.Name] = i
	}

	a := entries[byName["a.txt"]]
	assert.Equal(t, uint64(100), a.Size)
	assert.Equal(t, uint64(100), a.Modified)
	assert.Equal(t, time.Unix(100, 0).UTC(), a.ModifiedAt)
	assert.Equal(t, ".", a.ParentPath)
	assert.Equal(t, "a.txt", a.Path())
	assert.False(t, a.IsDirectory)

	sub := entries[byName["sub"]]
	assert.True(t, sub.IsDirectory)
	assert.Equal(t, uint64(300), sub.Modified)
}

func TestReadDirectory_Subdirectory(t *testing.T) {
	t.Parallel()

	entries, err := ReadDirectory(context.Background(), scenarioFS(), "sub/")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"inner.txt", "deeper"}, entries.Names())
	for _, e := range entries {
		assert.Equal(t, "sub", e.ParentPath)
	}
}

func TestReadDirectory_Empty(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"empty": {Mode: fs.ModeDir | 0755, ModTime: time.Unix(1, 0)},
	}

	entries, err := ReadDirectory(context.Background(), fsys, "empty")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestReadDirectory_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing directory", func(tt *testing.T) {
		_, err := ReadDirectory(context.Background(), scenarioFS(), "nope")
		require.Error(tt, err)
		assert.True(tt, errors.Is(err, ErrReadingDirectory))
		assert.True(tt, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("not a directory", func(tt *testing.T) {
		_, err := ReadDirectory(context.Background(), scenarioFS(), "a.txt")
		require.Error(tt, err)
		assert.True(tt, errors.Is(err, ErrReadingDirectory))
	})

	t.Run("escaping path", func(tt *testing.T) {
		_, err := ReadDirectory(context.Background(), scenarioFS(), "../etc")
		require.Error(tt, err)
		assert.True(tt, errors.Is(err, ErrReadingDirectory))
		assert.True(tt, errors.Is(err, fs.ErrInvalid))
	})

	t.Run("name that isn't utf-8", func(tt *testing.T) {
		fsys := fstest.MapFS{
			"ok.txt":      {ModTime: time.Unix(1, 0)},
			"bad\xff.txt": {ModTime: time.Unix(1, 0)},
		}
		entries, err := ReadDirectory(context.Background(), fsys, ".")
		require.Error(tt, err)
		assert.Nil(tt, entries)
		assert.True(tt, errors.Is(err, ErrNameConversion))
	})

	t.Run("modification time before the epoch", func(tt *testing.T) {
		fsys := fstest.MapFS{
			"old.txt": {ModTime: time.Unix(-10, 0)},
		}
		_, err := ReadDirectory(context.Background(), fsys, ".")
		require.Error(tt, err)
		assert.True(tt, errors.Is(err, ErrTimestamp))
		assert.False(tt, errors.Is(err, ErrReadingDirectory))
	})

	t.Run("entry removed between listing and stat", func(tt *testing.T) {
		fsys := vanishingFS{MapFS: scenarioFS(), vanish: "b.txt"}
		entries, err := ReadDirectory(context.Background(), fsys, ".")
		require.Error(tt, err)
		assert.Nil(tt, entries)
		assert.True(tt, errors.Is(err, fs.ErrNotExist))
		assert.False(tt, errors.Is(err, ErrReadingDirectory))
	})

	t.Run("cancelled context", func(tt *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := ReadDirectory(ctx, scenarioFS(), ".")
		require.Error(tt, err)
		assert.True(tt, errors.Is(err, context.Canceled))
	})
}

func TestReadDirectory_FreshSnapshots(t *testing.T) {
	t.Parallel()

	fsys := scenarioFS()
	first, err := ReadDirectory(context.Background(), fsys, ".")
	require.NoError(t, err)

	first[0].Name = "changed"

	second, err := ReadDirectory(context.Background(), fsys, ".")
	require.NoError(t, err)
	assert.NotContains(t, second.Names(), "changed")
}

// vanishingFS reports one entry in listings but fails to stat it, like a file
// deleted right after the directory was read.
type vanishingFS struct {
	fstest.MapFS
	vanish string
}

func (f vanishingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := f.MapFS.ReadDir(name)
	if err != nil {
		return nil, err
	}
	for i, e := range entries {
		if e.Name() == f.vanish {
			entries[i] = vanishedEntry{e}
		}
	}
	return entries, nil
}

type vanishedEntry struct {
	fs.DirEntry
}

func (vanishedEntry) Info() (fs.FileInfo, error) {
	return nil, fs.ErrNotExist
}
