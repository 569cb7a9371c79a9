package checkpoint

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	table := New([]string{"a", "b", "c"})
	table.Resolve("a", 10)
	table.MarkUnavailable("c")

	path := filepath.Join(t.TempDir(), "deps.csv")
	if err := Save(path, table); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "pkg_name,downloads\na,10\nb,\nc,NA\n"
	if string(data) != want {
		t.Errorf("file content:\n%q\nwant:\n%q", data, want)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := loaded.Records()
	orig := table.Records()
	if len(got) != len(orig) {
		t.Fatalf("expected %d records, got %d", len(orig), len(got))
	}
	for i := range got {
		if got[i] != orig[i] {
			t.Errorf("record %d: got %+v, want %+v", i, got[i], orig[i])
		}
	}
}

func TestSaveLoad_RewriteIsByteIdentical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deps.csv")

	table := New([]string{"x", "y"})
	table.Resolve("x", 1)
	table.Resolve("y", 2)
	if err := Save(path, table); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(path, loaded); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Errorf("rewrite changed file:\n%q\nvs\n%q", first, second)
	}
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"wrong header", "name,count\na,1\n"},
		{"one field", "pkg_name,downloads\nlonely\n"},
		{"three fields", "pkg_name,downloads\na,1,extra\n"},
		{"bad count", "pkg_name,downloads\na,many\n"},
		{"negative count", "pkg_name,downloads\na,-5\n"},
		{"duplicate name", "pkg_name,downloads\na,1\na,2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := read(strings.NewReader(tt.content))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
