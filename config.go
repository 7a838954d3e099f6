package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every user-tunable setting for one run. It is built once
// at startup and passed explicitly to the components that need it.
type Config struct {
	ShowIcons       bool
	ShowPermissions bool
	ShowOwner       bool
	ShowGroup       bool
	ShowModified    bool
	UseFuzzyTime    bool
	ColumnFormat    bool
	SortDirsFirst   bool
	ShowHidden      bool
	LongFormat      bool
	ColumnOrder     []string
}

// defaultConfig is what you get with no config file: everything visible
// except hidden entries, fuzzy ages, aligned columns, directories first.
func defaultConfig() Config {
	return Config{
		ShowIcons:       true,
		ShowPermissions: true,
		ShowOwner:       true,
		ShowGroup:       true,
		ShowModified:    true,
		UseFuzzyTime:    true,
		ColumnFormat:    true,
		SortDirsFirst:   true,
		ColumnOrder:     []string{"icon", "permissions", "owner", "group", "modified", "name"},
	}
}

// parseBool maps the accepted config spellings onto a bool. It is total:
// anything outside the recognized true spellings is false, including the
// recognized false spellings and arbitrary junk.
func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1", "on", "enabled":
		return true
	}
	return false
}

// parseColumnOrder splits a comma-separated column list. Identifiers are
// not validated here; unknown ones are skipped at render time instead.
func parseColumnOrder(value string) []string {
	var cols []string
	for _, col := range strings.Split(value, ",") {
		col = strings.TrimSpace(col)
		if col != "" {
			cols = append(cols, col)
		}
	}
	return cols
}

// findConfigFile returns the first existing config path, or "" when none
// exists. The --config flag short-circuits the search order.
func findConfigFile() string {
	var candidates []string
	if cfgFile != "" {
		candidates = append(candidates, cfgFile)
	} else {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			candidates = append(candidates, filepath.Join(xdg, "yal.conf"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates,
				filepath.Join(home, ".config", "yal.conf"),
				filepath.Join(home, ".yal.conf"))
		}
		candidates = append(candidates, "yal.conf")
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadConfig discovers and parses the config file. Any anomaly (missing
// file, unreadable file, malformed content) silently yields the defaults.
func loadConfig() Config {
	path := findConfigFile()
	if path == "" {
		return defaultConfig()
	}
	return loadConfigFrom(path)
}

// loadConfigFrom parses one key=value config file. The format is the
// dotenv dialect viper already speaks: '#' comments and blank lines are
// ignored. Unknown keys are ignored; booleans go through parseBool rather
// than viper's own cast so the accepted spellings match the documented
// ones exactly.
func loadConfigFrom(path string) Config {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return cfg // Malformed config file; fall back to defaults.
	}

	toggles := map[string]*bool{
		"show_icons":       &cfg.ShowIcons,
		"show_permissions": &cfg.ShowPermissions,
		"show_owner":       &cfg.ShowOwner,
		"show_group":       &cfg.ShowGroup,
		"show_modified":    &cfg.ShowModified,
		"use_fuzzy_time":   &cfg.UseFuzzyTime,
		"column_format":    &cfg.ColumnFormat,
		"sort_dirs_first":  &cfg.SortDirsFirst,
		"show_hidden":      &cfg.ShowHidden,
		"long_format":      &cfg.LongFormat,
	}
	for key, dst := range toggles {
		if v.IsSet(key) {
			*dst = parseBool(v.GetString(key))
		}
	}
	if v.IsSet("column_order") {
		cfg.ColumnOrder = parseColumnOrder(v.GetString("column_order"))
	}

	// long_format is a master switch over the metadata columns.
	if cfg.LongFormat {
		cfg.ShowPermissions = true
		cfg.ShowOwner = true
		cfg.ShowGroup = true
		cfg.ShowModified = true
	}

	return cfg
}
