package sorting

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dirview/dirview/pkg/models"
)

// Sorter orders listings. The zero value sorts every key the same way:
// ascending means smallest, oldest or lexically first.
type Sorter struct {
	// LegacyNumericOrder flips size and modified ordering so that "ascending"
	// puts the largest/newest entry first, which is how older versions of
	// the browser behaved.
	LegacyNumericOrder bool
}

// Sort orders entries with the zero Sorter.
func Sort(entries models.Entries, spec Spec) models.Entries {
	return Sorter{}.Sort(entries, spec)
}

// Sort returns a sorted copy of entries. The sort is stable and ties are not
// broken by a secondary key: entries with the same size or modification time
// keep their relative input order.
func (s Sorter) Sort(entries models.Entries, spec Spec) models.Entries {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, s.compareFunc(spec))
	return sorted
}

func (s Sorter) compareFunc(spec Spec) func(a, b models.Entry) int {
	switch spec.Key {
	case KeyName:
		return directed(spec.Direction, func(a, b models.Entry) int {
			return strings.Compare(a.Name, b.Name)
		})
	case KeySize:
		return directed(s.numericDirection(spec.Direction), func(a, b models.Entry) int {
			return cmp.Compare(a.Size, b.Size)
		})
	case KeyModified:
		return directed(s.numericDirection(spec.Direction), func(a, b models.Entry) int {
			return cmp.Compare(a.Modified, b.Modified)
		})
	default:
		return compareDefault
	}
}

func (s Sorter) numericDirection(d Direction) Direction {
	if !s.LegacyNumericOrder {
		return d
	}
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// compareDefault puts directories first and orders each group by name,
// byte-wise.
func compareDefault(a, b models.Entry) int {
	if a.IsDirectory != b.IsDirectory {
		if a.IsDirectory {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Name, b.Name)
}

func directed(d Direction, fn func(a, b models.Entry) int) func(a, b models.Entry) int {
	if d == Descending {
		return func(a, b models.Entry) int { return fn(b, a) }
	}
	return fn
}
