package main

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// Entry is the fully resolved, render-ready record for one directory
// entry. All fields are display strings except IsDir, which the sorter
// and the name color still need.
type Entry struct {
	Name        string
	Permissions string
	Owner       string
	Group       string
	Modified    string
	Icon        string
	IsDir       bool
}

// resolveEntries enumerates dir and resolves each entry into an Entry.
// Hidden names are filtered before the stat call so skipped entries cost
// nothing. Entries whose metadata cannot be read are silently dropped;
// only a failure to read the directory itself is an error.
func resolveEntries(dir string, cache *identityCache, cfg Config) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		name := d.Name()
		if !cfg.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		info, err := d.Info()
		if err != nil {
			continue // Skip entries we can't read
		}
		entries = append(entries, newEntry(name, info, cache, cfg))
	}
	return entries, nil
}

// newEntry builds the display record for one stat'ed entry.
func newEntry(name string, info fs.FileInfo, cache *identityCache, cfg Config) Entry {
	owner, group := "?", "?"
	if uid, gid, ok := ownerIDs(info); ok {
		owner = cache.UserName(uid)
		group = cache.GroupName(gid)
	}

	return Entry{
		Name:        name,
		Permissions: fmt.Sprintf("%03o", info.Mode().Perm()),
		Owner:       owner,
		Group:       group,
		Modified:    formatModTime(info.ModTime(), cfg.UseFuzzyTime),
		Icon:        fileIcon(name, info.IsDir()),
		IsDir:       info.IsDir(),
	}
}

// sortEntries orders entries for display: optionally directories before
// files, then case-insensitively by name. The sort is stable so entries
// whose names compare equal keep their enumeration order.
func sortEntries(entries []Entry, cfg Config) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if cfg.SortDirsFirst && a.IsDir != b.IsDir {
			return a.IsDir
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}
