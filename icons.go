package main

import "strings"

const (
	iconDir     = "📁"
	iconHidden  = "👻"
	iconDefault = "📄"
)

// iconTable maps a lower-cased filename extension to its glyph.
var iconTable = map[string]string{
	// Source code
	"rs": "🦀",
	"py": "🐍",
	"js": "⚡",
	"ts": "⚡",
	// Web / documents
	"html":     "🌐",
	"htm":      "🌐",
	"css":      "🎨",
	"json":     "📊",
	"md":       "📝",
	"markdown": "📝",
	"txt":      "📄",
	"pdf":      "📕",
	// Archives
	"zip": "📦",
	"tar": "📦",
	"gz":  "📦",
	"rar": "📦",
	// Media
	"jpg":  "🖼️",
	"jpeg": "🖼️",
	"png":  "🖼️",
	"gif":  "🖼️",
	"bmp":  "🖼️",
	"svg":  "🖼️",
	"mp3":  "🎵",
	"wav":  "🎵",
	"flac": "🎵",
	"ogg":  "🎵",
	"mp4":  "🎬",
	"mkv":  "🎬",
	"avi":  "🎬",
	"mov":  "🎬",
	// Executables / config
	"exe":  "⚙️",
	"bin":  "⚙️",
	"toml": "⚙️",
	"yaml": "⚙️",
	"yml":  "⚙️",
	"ini":  "⚙️",
	"conf": "⚙️",
}

// fileIcon picks the glyph for an entry. The lookup chain is total:
// directory, then extension table, then the hidden-name rule, then the
// generic default.
func fileIcon(name string, isDir bool) string {
	if isDir {
		return iconDir
	}
	// A leading dot starts the name, not an extension, so ".json" is a
	// hidden file rather than a JSON file.
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		if glyph, ok := iconTable[strings.ToLower(name[i+1:])]; ok {
			return glyph
		}
	}
	if strings.HasPrefix(name, ".") {
		return iconHidden
	}
	return iconDefault
}
