package logogrid

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sourceNames(srcs []Source) []string {
	names := make([]string, len(srcs))
	for i, s := range srcs {
		names[i] = s.Name
	}
	return names
}

func TestScanSources(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.PNG", "a.png", "c.jpg", "d.jpeg", "notes.txt", ".hidden.png", "e.gif"} {
		writeFile(t, dir, name, []byte("x"))
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0755); err != nil {
		t.Fatal(err)
	}
	exts := []string{".png", ".jpg", ".jpeg"}

	t.Run("name order", func(t *testing.T) {
		srcs, err := ScanSources(dir, exts, OrderName, "und")
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"a.png", "b.PNG", "c.jpg", "d.jpeg"}
		if diff := cmp.Diff(want, sourceNames(srcs)); diff != "" {
			t.Errorf("names mismatch (-want +got):\n%s", diff)
		}
		if srcs[0].Path != filepath.Join(dir, "a.png") {
			t.Errorf("path = %s", srcs[0].Path)
		}
	})

	t.Run("discovery order", func(t *testing.T) {
		srcs, err := ScanSources(dir, exts, OrderDiscovery, "")
		if err != nil {
			t.Fatal(err)
		}
		got := sourceNames(srcs)
		sort.Strings(got)
		want := []string{"a.png", "b.PNG", "c.jpg", "d.jpeg"}
		sort.Strings(want)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("names mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("extensions without dot", func(t *testing.T) {
		srcs, err := ScanSources(dir, []string{"gif"}, OrderName, "und")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"e.gif"}, sourceNames(srcs)); diff != "" {
			t.Errorf("names mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		if _, err := ScanSources(dir, exts, "random", ""); err == nil {
			t.Error("expected error")
		}
	})
}

func TestScanSources_Collation(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Zeta.png", "alpha.png", "Émile.png", "beta.png"} {
		writeFile(t, dir, name, []byte("x"))
	}
	srcs, err := ScanSources(dir, []string{".png"}, OrderName, "en")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"alpha.png", "beta.png", "Émile.png", "Zeta.png"}
	if diff := cmp.Diff(want, sourceNames(srcs)); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestScanSources_MissingDir(t *testing.T) {
	if _, err := ScanSources(filepath.Join(t.TempDir(), "nope"), []string{".png"}, OrderName, ""); err == nil {
		t.Error("expected error for missing directory")
	}
}
