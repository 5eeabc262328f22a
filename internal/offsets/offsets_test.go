package offsets

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/ironsheep/z3pal/internal/colorspace"
)

func validGroup(name string, base int) Group {
	return Group{
		Name:          name,
		BaseAddress:   base,
		EntryCount:    15,
		BytesPerEntry: 2,
		Encoding:      colorspace.EncodingRGB555,
	}
}

func TestGroupValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Group)
		wantErr bool
	}{
		{"valid", func(g *Group) {}, false},
		{"zero entries", func(g *Group) { g.EntryCount = 0 }, false},
		{"empty name", func(g *Group) { g.Name = "" }, true},
		{"negative base", func(g *Group) { g.BaseAddress = -4 }, true},
		{"negative count", func(g *Group) { g.EntryCount = -1 }, true},
		{"width mismatch", func(g *Group) { g.BytesPerEntry = 3 }, true},
		{"unknown encoding", func(g *Group) { g.Encoding = "rgb888" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGroup("dungeon/0", 0x100)
			tt.mutate(&g)
			err := g.Validate()
			if tt.wantErr && !errors.Is(err, ErrConfig) {
				t.Errorf("Validate() = %v, want ErrConfig", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestGroupExtent(t *testing.T) {
	g := validGroup("hud/0", 0x200)
	if got := g.ByteLen(); got != 30 {
		t.Errorf("ByteLen() = %d, want 30", got)
	}
	if got := g.End(); got != 0x200+30 {
		t.Errorf("End() = %d, want %d", got, 0x200+30)
	}
}

func TestNewTable_RejectsDuplicates(t *testing.T) {
	_, err := NewTable([]Group{validGroup("a", 0), validGroup("a", 64)})
	if !errors.Is(err, ErrConfig) {
		t.Errorf("NewTable = %v, want ErrConfig", err)
	}
}

func TestTableSorted(t *testing.T) {
	table, err := NewTable([]Group{
		validGroup("charlie", 0x300),
		validGroup("bravo", 0x100),
		validGroup("alpha", 0x300),
		validGroup("delta", 0x080),
	})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	want := []string{"delta", "bravo", "alpha", "charlie"}
	got := table.Sorted()
	if len(got) != len(want) {
		t.Fatalf("Sorted() length = %d, want %d", len(got), len(want))
	}
	for i, g := range got {
		if g.Name != want[i] {
			t.Errorf("Sorted()[%d] = %q, want %q", i, g.Name, want[i])
		}
	}
}

const specJSON = `[
  {"name": "dungeon/0", "baseAddress": 256, "entryCount": 15,
   "bytesPerEntry": 2, "encoding": "rgb555"},
  {"name": "sprite/0", "baseAddress": 1024, "entryCount": 4,
   "bytesPerEntry": 5, "encoding": "oam16", "skipFirst": true}
]`

func writeSpec(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write spec file: %v", err)
	}
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeSpec(t, t.TempDir(), "spec.json", specJSON)

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	g, ok := table.Group("sprite/0")
	if !ok {
		t.Fatal("sprite/0 not found")
	}
	if !g.SkipFirst || g.Encoding != colorspace.EncodingOAM16 || g.BaseAddress != 1024 {
		t.Errorf("sprite/0 = %+v", g)
	}
}

func TestLoad_GzipFile(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(specJSON)); err != nil {
		t.Fatalf("gzip write failed: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close failed: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "spec.json.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write gzip spec: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "a.json", `[{"name": "a/0", "baseAddress": 0,
		"entryCount": 1, "bytesPerEntry": 2, "encoding": "rgb555"}]`)
	writeSpec(t, dir, "b.json", `[{"name": "b/0", "baseAddress": 16,
		"entryCount": 1, "bytesPerEntry": 2, "encoding": "rgb555"}]`)
	writeSpec(t, dir, "ignored.txt", "not json")

	table, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"missing field", `[{"name": "x", "baseAddress": 0, "entryCount": 1,
			"encoding": "rgb555"}]`},
		{"malformed json", `[{`},
		{"width mismatch", `[{"name": "x", "baseAddress": 0, "entryCount": 1,
			"bytesPerEntry": 4, "encoding": "rgb555"}]`},
		{"duplicate names", `[
			{"name": "x", "baseAddress": 0, "entryCount": 1, "bytesPerEntry": 2, "encoding": "rgb555"},
			{"name": "x", "baseAddress": 8, "entryCount": 1, "bytesPerEntry": 2, "encoding": "rgb555"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSpec(t, dir, "bad-"+tt.name+".json", tt.content)
			if _, err := Load(path); !errors.Is(err, ErrConfig) {
				t.Errorf("Load = %v, want ErrConfig", err)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "nope.json")); err == nil {
		t.Error("Load accepted a missing file")
	}
}
