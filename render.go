package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

var (
	permColor  = color.New(color.FgYellow)
	ownerColor = color.New(color.FgGreen)
	groupColor = color.New(color.FgCyan)
	modColor   = color.New(color.FgMagenta)
	dirColor   = color.New(color.FgBlue, color.Bold)
)

// renderListing produces the output lines for one directory snapshot: a
// header, a blank line, and one line per entry. An empty collection
// produces only the empty-directory message.
func renderListing(dir string, entries []Entry, cfg Config) []string {
	if len(entries) == 0 {
		return []string{"📭 Empty directory"}
	}

	lines := make([]string, 0, len(entries)+2)
	lines = append(lines, fmt.Sprintf("📂 %s (%d items)", dir, len(entries)), "")

	widths := columnWidths(entries, cfg)
	for _, e := range entries {
		lines = append(lines, renderEntry(e, cfg, widths))
	}
	return lines
}

// columnWidths computes the maximum display width of each column in
// cfg.ColumnOrder across all entries. Disabled and unknown columns stay
// at width zero. Only column mode needs widths at all.
func columnWidths(entries []Entry, cfg Config) map[string]int {
	widths := make(map[string]int, len(cfg.ColumnOrder))
	if !cfg.ColumnFormat {
		return widths
	}
	for _, col := range cfg.ColumnOrder {
		for _, e := range entries {
			v, ok := columnValue(e, col, cfg)
			if !ok {
				continue
			}
			if w := runewidth.StringWidth(v); w > widths[col] {
				widths[col] = w
			}
		}
	}
	return widths
}

// renderEntry emits one display line, honoring the configured column
// order. Cells are padded to the shared column width before coloring so
// the escape sequences don't throw off the alignment. The icon cell is
// special: never aligned or colored, always followed by two spaces.
func renderEntry(e Entry, cfg Config, widths map[string]int) string {
	cells := make([]string, 0, len(cfg.ColumnOrder))
	for _, col := range cfg.ColumnOrder {
		v, ok := columnValue(e, col, cfg)
		if !ok {
			continue
		}
		if col == "icon" {
			cells = append(cells, v+" ")
			continue
		}
		if cfg.ColumnFormat {
			v = runewidth.FillLeft(v, widths[col])
		}
		cells = append(cells, paintColumn(e, col, v))
	}
	return strings.Join(cells, " ")
}

// columnValue returns the cell text for one column of an entry. ok is
// false when the column is disabled by configuration or the identifier
// is not part of the column vocabulary; such columns contribute nothing
// to the line or to width computation.
func columnValue(e Entry, col string, cfg Config) (string, bool) {
	switch col {
	case "icon":
		if !cfg.ShowIcons {
			return "", false
		}
		return e.Icon, true
	case "permissions":
		if !cfg.ShowPermissions {
			return "", false
		}
		return e.Permissions, true
	case "owner":
		if !cfg.ShowOwner {
			return "", false
		}
		return e.Owner, true
	case "group":
		if !cfg.ShowGroup {
			return "", false
		}
		return e.Group, true
	case "modified":
		if !cfg.ShowModified {
			return "", false
		}
		return e.Modified, true
	case "name":
		return e.Name, true
	}
	return "", false // Unknown column identifiers are skipped here.
}

// paintColumn wraps a cell in its column color. Names are colored only
// for directories.
func paintColumn(e Entry, col, text string) string {
	switch col {
	case "permissions":
		return permColor.Sprint(text)
	case "owner":
		return ownerColor.Sprint(text)
	case "group":
		return groupColor.Sprint(text)
	case "modified":
		return modColor.Sprint(text)
	case "name":
		if e.IsDir {
			return dirColor.Sprint(text)
		}
	}
	return text
}
