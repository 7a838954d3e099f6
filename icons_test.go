package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileIcon(t *testing.T) {
	tests := []struct {
		name  string
		isDir bool
		want  string
	}{
		// Directories always win, whatever the name looks like.
		{"src", true, "📁"},
		{"archive.zip", true, "📁"},
		{".hidden", true, "📁"},

		// Extension table, case-insensitive.
		{"main.rs", false, "🦀"},
		{"script.PY", false, "🐍"},
		{"app.js", false, "⚡"},
		{"app.ts", false, "⚡"},
		{"index.html", false, "🌐"},
		{"style.css", false, "🎨"},
		{"data.JSON", false, "📊"},
		{"README.md", false, "📝"},
		{"notes.txt", false, "📄"},
		{"paper.pdf", false, "📕"},
		{"backup.tar.gz", false, "📦"},
		{"photo.jpeg", false, "🖼️"},
		{"song.flac", false, "🎵"},
		{"movie.mkv", false, "🎬"},
		{"tool.exe", false, "⚙️"},
		{"config.yaml", false, "⚙️"},
		{"app.conf", false, "⚙️"},

		// Hidden-name rule applies only when no extension matched.
		{".bashrc", false, "👻"},
		{".gitignore", false, "👻"},
		{".json", false, "👻"}, // leading dot starts the name, not an extension
		{".config.toml", false, "⚙️"},

		// Generic fallback.
		{"README", false, "📄"},
		{"binary", false, "📄"},
		{"weird.xyz", false, "📄"},
		{"trailing.", false, "📄"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fileIcon(tt.name, tt.isDir), "name=%q isDir=%v", tt.name, tt.isDir)
	}
}
