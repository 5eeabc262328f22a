// Package offsets describes where palette data lives inside the binary
// image.
//
// An offset specification is a declarative JSON document, one entry per
// group. Each group names a contiguous run of packed color entries: base
// address, entry count, bytes per entry, and the packed encoding. The loader
// validates every group before the table is handed to the patch pipeline, so
// the pipeline never sees a partially-formed group.
package offsets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ironsheep/z3pal/internal/colorspace"
)

// ErrConfig reports a malformed offset specification. Wrapped errors can be
// tested with errors.Is.
var ErrConfig = errors.New("offset config error")

// Group identifies one palette's location in the image. Read-only during
// patching.
type Group struct {
	// Name is the symbolic group identifier, unique within a table.
	Name string `json:"name"`

	// BaseAddress is the byte offset of the first entry.
	BaseAddress int `json:"baseAddress"`

	// EntryCount is the number of packed color entries (≥ 0).
	EntryCount int `json:"entryCount"`

	// BytesPerEntry is the encoding width; it must match the encoding.
	BytesPerEntry int `json:"bytesPerEntry"`

	// Encoding names the packed color layout.
	Encoding colorspace.Encoding `json:"encoding"`

	// SkipFirst marks slot 0 as the transparency slot: it is decoded and
	// written back untouched, and the generation mode never sees it.
	SkipFirst bool `json:"skipFirst"`
}

// ByteLen returns the total number of bytes the group covers.
func (g Group) ByteLen() int {
	return g.EntryCount * g.BytesPerEntry
}

// End returns the first byte offset past the group.
func (g Group) End() int {
	return g.BaseAddress + g.ByteLen()
}

// Validate checks the group's internal consistency.
func (g Group) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("group has no name: %w", ErrConfig)
	}
	if g.BaseAddress < 0 {
		return fmt.Errorf("group %q: negative base address %d: %w", g.Name, g.BaseAddress, ErrConfig)
	}
	if g.EntryCount < 0 {
		return fmt.Errorf("group %q: negative entry count %d: %w", g.Name, g.EntryCount, ErrConfig)
	}
	width, err := g.Encoding.ByteWidth()
	if err != nil {
		return fmt.Errorf("group %q: %w", g.Name, errors.Join(err, ErrConfig))
	}
	if g.BytesPerEntry != width {
		return fmt.Errorf("group %q: bytesPerEntry %d does not match encoding %q (width %d): %w",
			g.Name, g.BytesPerEntry, string(g.Encoding), width, ErrConfig)
	}
	return nil
}

// Table is a read-only mapping from group name to Group.
type Table struct {
	groups map[string]Group
}

// NewTable builds a table from validated groups. Duplicate names and
// invalid groups fail with ErrConfig.
func NewTable(groups []Group) (*Table, error) {
	m := make(map[string]Group, len(groups))
	for _, g := range groups {
		if err := g.Validate(); err != nil {
			return nil, err
		}
		if _, dup := m[g.Name]; dup {
			return nil, fmt.Errorf("duplicate group name %q: %w", g.Name, ErrConfig)
		}
		m[g.Name] = g
	}
	return &Table{groups: m}, nil
}

// Len returns the number of groups.
func (t *Table) Len() int {
	return len(t.groups)
}

// Group looks up a group by name.
func (t *Table) Group(name string) (Group, bool) {
	g, ok := t.groups[name]
	return g, ok
}

// Sorted returns the groups ordered by base address, ties broken by name.
// The patch pipeline iterates in this order so repeated runs with the same
// seed draw random values in the same sequence.
func (t *Table) Sorted() []Group {
	out := make([]Group, 0, len(t.groups))
	for _, g := range t.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BaseAddress != out[j].BaseAddress {
			return out[i].BaseAddress < out[j].BaseAddress
		}
		return out[i].Name < out[j].Name
	})
	return out
}
