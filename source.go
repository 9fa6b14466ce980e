package logogrid

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Source is one candidate image file.
type Source struct {
	Name string // base name
	Path string
}

// ScanSources lists the regular files in dir whose extension matches one of
// exts, ignoring case. Subdirectories and dotfiles are skipped.
//
// With order OrderName the result is sorted by name using the collation
// rules of lang; with OrderDiscovery it keeps the order the directory
// returned.
func ScanSources(dir string, exts []string, order, lang string) ([]Source, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open source dir: %w", err)
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("read source dir %s: %w", dir, err)
	}

	var out []Source
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || isHidden(name) || !hasExtension(name, exts) {
			continue
		}
		if !e.Type().IsRegular() {
			info, err := os.Stat(filepath.Join(dir, name))
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		}
		out = append(out, Source{Name: name, Path: filepath.Join(dir, name)})
	}

	switch order {
	case OrderDiscovery:
	case OrderName, "":
		sortByName(out, lang)
	default:
		return nil, fmt.Errorf("unknown order %q", order)
	}
	return out, nil
}

func sortByName(srcs []Source, lang string) {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}
	c := collate.New(tag)
	sort.SliceStable(srcs, func(i, j int) bool {
		if d := c.CompareString(srcs[i].Name, srcs[j].Name); d != 0 {
			return d < 0
		}
		return srcs[i].Name < srcs[j].Name
	})
}

func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
