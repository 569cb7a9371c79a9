package checkpoint

import (
	"testing"
)

func TestNew_PreservesOrderAndDedupes(t *testing.T) {
	table := New([]string{"pandas", "numpy", "pandas", "scipy"})

	if table.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", table.Len())
	}

	want := []string{"pandas", "numpy", "scipy"}
	for i, rec := range table.Records() {
		if rec.Name != want[i] {
			t.Errorf("record %d: expected %s, got %s", i, want[i], rec.Name)
		}
		if !rec.Downloads.IsUnresolved() {
			t.Errorf("record %s: expected unresolved", rec.Name)
		}
	}
}

func TestTable_Resolve(t *testing.T) {
	table := New([]string{"a", "b"})
	table.Resolve("a", 42)

	d, ok := table.Get("a")
	if !ok {
		t.Fatal("expected record for a")
	}
	if n, ok := d.Count(); !ok || n != 42 {
		t.Errorf("expected resolved count 42, got %d (resolved=%v)", n, ok)
	}

	// Names outside the table are ignored.
	table.Resolve("zzz", 1)
	if table.Len() != 2 {
		t.Errorf("expected Resolve of unknown name to be a no-op, len=%d", table.Len())
	}
}

func TestTable_MarkUnavailable(t *testing.T) {
	table := New([]string{"gone"})
	table.MarkUnavailable("gone")

	d, _ := table.Get("gone")
	if !d.IsUnavailable() {
		t.Error("expected unavailable")
	}
	if d.IsUnresolved() {
		t.Error("unavailable must not read as unresolved")
	}
}

func TestDownloads_String(t *testing.T) {
	tests := []struct {
		d    Downloads
		want string
	}{
		{Downloads{}, ""},
		{Unavailable(), "NA"},
		{Resolved(0), "0"},
		{Resolved(12345), "12345"},
	}

	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseDownloads(t *testing.T) {
	tests := []struct {
		cell    string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"NA", "NA", false},
		{"42", "42", false},
		{"0", "0", false},
		{"-1", "", true},
		{"abc", "", true},
		{"4.2", "", true},
	}

	for _, tt := range tests {
		d, err := parseDownloads(tt.cell)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseDownloads(%q): expected error", tt.cell)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDownloads(%q): %v", tt.cell, err)
			continue
		}
		if d.String() != tt.want {
			t.Errorf("parseDownloads(%q) = %q, want %q", tt.cell, d.String(), tt.want)
		}
	}
}
