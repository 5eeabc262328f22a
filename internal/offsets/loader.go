package offsets

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/ironsheep/z3pal/internal/colorspace"
)

// groupSpec mirrors Group with pointer fields so missing keys are
// distinguishable from zero values.
type groupSpec struct {
	Name          *string `json:"name"`
	BaseAddress   *int    `json:"baseAddress"`
	EntryCount    *int    `json:"entryCount"`
	BytesPerEntry *int    `json:"bytesPerEntry"`
	Encoding      *string `json:"encoding"`
	SkipFirst     bool    `json:"skipFirst"`
}

func (s groupSpec) toGroup() (Group, error) {
	missing := func(field string) (Group, error) {
		return Group{}, fmt.Errorf("group is missing required field %q: %w", field, ErrConfig)
	}
	switch {
	case s.Name == nil:
		return missing("name")
	case s.BaseAddress == nil:
		return missing("baseAddress")
	case s.EntryCount == nil:
		return missing("entryCount")
	case s.BytesPerEntry == nil:
		return missing("bytesPerEntry")
	case s.Encoding == nil:
		return missing("encoding")
	}
	return Group{
		Name:          *s.Name,
		BaseAddress:   *s.BaseAddress,
		EntryCount:    *s.EntryCount,
		BytesPerEntry: *s.BytesPerEntry,
		Encoding:      colorspace.Encoding(*s.Encoding),
		SkipFirst:     s.SkipFirst,
	}, nil
}

// Load reads an offset specification from a JSON file, a gzip-compressed
// JSON file (".gz" suffix), or a directory of such files, and returns the
// validated table.
//
// Any malformed group fails the whole load: the pipeline must never run
// against a partially-formed table.
func Load(path string) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat offset spec: %w", err)
	}

	var groups []Group
	if info.IsDir() {
		groups, err = loadDir(path)
	} else {
		groups, err = loadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return NewTable(groups)
}

// loadDir loads every *.json and *.json.gz file in dir, in name order so the
// resulting table does not depend on directory enumeration order.
func loadDir(dir string) ([]Group, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read offset spec directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".json.gz") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("no offset spec files in %s: %w", dir, ErrConfig)
	}

	var groups []Group
	for _, name := range names {
		g, err := loadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		groups = append(groups, g...)
	}
	return groups, nil
}

func loadFile(path string) ([]Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open offset spec: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip offset spec %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	var specs []groupSpec
	if err := json.NewDecoder(r).Decode(&specs); err != nil {
		return nil, fmt.Errorf("failed to parse offset spec %s: %s: %w", path, err, ErrConfig)
	}

	groups := make([]Group, 0, len(specs))
	for _, s := range specs {
		g, err := s.toGroup()
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", path, err)
		}
		groups = append(groups, g)
	}
	return groups, nil
}
