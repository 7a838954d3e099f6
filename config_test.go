package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBool(t *testing.T) {
	trueSpellings := []string{"true", "TRUE", "True", "yes", "YES", "1", "on", "On", "enabled", "ENABLED", " true "}
	for _, s := range trueSpellings {
		assert.True(t, parseBool(s), "expected %q to parse as true", s)
	}

	falseSpellings := []string{"false", "FALSE", "no", "0", "off", "disabled", "", "banana", "2", "truee", "yess"}
	for _, s := range falseSpellings {
		assert.False(t, parseBool(s), "expected %q to parse as false", s)
	}
}

func TestParseColumnOrder(t *testing.T) {
	assert.Equal(t, []string{"name", "permissions"}, parseColumnOrder("name,permissions"))
	assert.Equal(t, []string{"name", "permissions"}, parseColumnOrder(" name , permissions "))
	assert.Nil(t, parseColumnOrder(""))

	// Unknown identifiers survive parsing; the renderer skips them.
	assert.Equal(t, []string{"name", "bogus"}, parseColumnOrder("name,bogus"))
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	assert.True(t, cfg.ShowIcons)
	assert.True(t, cfg.ColumnFormat)
	assert.True(t, cfg.SortDirsFirst)
	assert.True(t, cfg.UseFuzzyTime)
	assert.False(t, cfg.ShowHidden)
	assert.False(t, cfg.LongFormat)
	assert.Equal(t, []string{"icon", "permissions", "owner", "group", "modified", "name"}, cfg.ColumnOrder)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "yal.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFrom(t *testing.T) {
	path := writeConfig(t, `# yal test config

show_owner=no
show_group=off
use_fuzzy_time=yes
show_hidden=1
column_order=name,permissions
some_future_key=whatever
`)

	cfg := loadConfigFrom(path)
	assert.False(t, cfg.ShowOwner)
	assert.False(t, cfg.ShowGroup)
	assert.True(t, cfg.UseFuzzyTime)
	assert.True(t, cfg.ShowHidden)
	assert.Equal(t, []string{"name", "permissions"}, cfg.ColumnOrder)

	// Keys not mentioned keep their defaults.
	assert.True(t, cfg.ShowIcons)
	assert.True(t, cfg.ShowPermissions)
}

func TestLoadConfigFromInvalidBool(t *testing.T) {
	// Invalid boolean text is false, not an error.
	cfg := loadConfigFrom(writeConfig(t, "show_permissions=maybe\n"))
	assert.False(t, cfg.ShowPermissions)
}

func TestLoadConfigFromMissingFile(t *testing.T) {
	cfg := loadConfigFrom(filepath.Join(t.TempDir(), "nope.conf"))
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigLongFormat(t *testing.T) {
	// long_format force-enables the metadata columns.
	cfg := loadConfigFrom(writeConfig(t, "long_format=true\nshow_owner=false\nshow_modified=no\n"))
	assert.True(t, cfg.ShowPermissions)
	assert.True(t, cfg.ShowOwner)
	assert.True(t, cfg.ShowGroup)
	assert.True(t, cfg.ShowModified)
}

func TestFindConfigFileOrder(t *testing.T) {
	xdg := t.TempDir()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", home)

	// Nothing exists yet.
	assert.Equal(t, "", findConfigFile())

	// $HOME/.yal.conf is found once it exists.
	homeDotfile := filepath.Join(home, ".yal.conf")
	require.NoError(t, os.WriteFile(homeDotfile, nil, 0o644))
	assert.Equal(t, homeDotfile, findConfigFile())

	// $HOME/.config/yal.conf beats the dotfile.
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".config"), 0o755))
	homeConfig := filepath.Join(home, ".config", "yal.conf")
	require.NoError(t, os.WriteFile(homeConfig, nil, 0o644))
	assert.Equal(t, homeConfig, findConfigFile())

	// $XDG_CONFIG_HOME/yal.conf beats everything.
	xdgConfig := filepath.Join(xdg, "yal.conf")
	require.NoError(t, os.WriteFile(xdgConfig, nil, 0o644))
	assert.Equal(t, xdgConfig, findConfigFile())
}

func TestFindConfigFileExplicitFlag(t *testing.T) {
	explicit := writeConfig(t, "show_hidden=true\n")
	cfgFile = explicit
	defer func() { cfgFile = "" }()

	assert.Equal(t, explicit, findConfigFile())
}
