package models

import (
	"path"
	"time"
)

// RootPath is the browsing root as it appears in relative paths.
const RootPath = "."

// Entry is a snapshot of one directory child taken when the directory was
// read. Two reads of the same directory produce independent entries.
type Entry struct {
	Name        string    `json:"name"`
	Size        uint64    `json:"size"`
	Modified    uint64    `json:"modified"`
	ModifiedAt  time.Time `json:"modified_at"`
	ParentPath  string    `json:"parent_path"`
	IsDirectory bool      `json:"is_directory"`
}

// Path returns the entry's slash-separated path relative to the browsing
// root.
func (e Entry) Path() string {
	return path.Join(e.ParentPath, e.Name)
}

// Entries is an ordered directory listing. It's built per request and never
// shared.
type Entries []Entry

// Names returns the entry names in order.
func (es Entries) Names() []string {
	names := make([]string, 0, len(es))
	for _, e := range es {
		names = append(names, e.Name)
	}
	return names
}
