package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukapos-web/internal/common/logger"
)

func writeOverride(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadWithOverrides_MissingDir(t *testing.T) {
	regs := LoadWithOverrides("", logger.NewNoOpLogger())
	assert.Equal(t, len(Default().Locations.All()), len(regs.Locations.All()))

	regs = LoadWithOverrides("/nonexistent/path", logger.NewNoOpLogger())
	assert.Equal(t, len(Default().Locations.All()), len(regs.Locations.All()))
}

func TestLoadWithOverrides_ValidLocations(t *testing.T) {
	dir := t.TempDir()
	writeOverride(t, dir, "locations.json", `[
		{"slug": "watamu", "name": "Watamu", "county": "Kilifi",
		 "business_density": "medium", "mobile_money_usage": "high", "priority": 4}
	]`)

	regs := LoadWithOverrides(dir, logger.NewTestLogger(t))

	require.Len(t, regs.Locations.All(), 1, "override replaces the whole table")
	loc, ok := regs.Locations.Lookup("watamu")
	require.True(t, ok)
	assert.Equal(t, "Watamu", loc.Name)

	// other registries untouched
	assert.Equal(t, len(Default().Industries.All()), len(regs.Industries.All()))
}

func TestLoadWithOverrides_InvalidFileKeepsBuiltins(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: `{{{`},
		{name: "wrong shape", content: `{"slug": "x"}`},
		{name: "missing required field", content: `[{"slug": "watamu", "name": "Watamu"}]`},
		{name: "bad slug pattern", content: `[
			{"slug": "Watamu!", "name": "Watamu", "county": "Kilifi",
			 "business_density": "medium", "mobile_money_usage": "high", "priority": 4}
		]`},
		{name: "priority out of range", content: `[
			{"slug": "watamu", "name": "Watamu", "county": "Kilifi",
			 "business_density": "medium", "mobile_money_usage": "high", "priority": 11}
		]`},
		{name: "empty array", content: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeOverride(t, dir, "locations.json", tt.content)

			regs := LoadWithOverrides(dir, logger.NewNoOpLogger())
			assert.Equal(t, len(Default().Locations.All()), len(regs.Locations.All()),
				"invalid override must leave the built-in table in force")
		})
	}
}

func TestLoadWithOverrides_IntentsMustKeepDefault(t *testing.T) {
	dir := t.TempDir()
	writeOverride(t, dir, "intents.json", `[
		{"slug": "pricing", "action": "See Pricing",
		 "templates": {"h1": "POS Prices in {city}", "title": "Prices | {city}", "meta_description": "Prices in {city}."}}
	]`)

	regs := LoadWithOverrides(dir, logger.NewNoOpLogger())

	// the override drops the registration intent, so it is rejected wholesale
	assert.Equal(t, len(Default().Intents.All()), len(regs.Intents.All()))
	assert.Equal(t, DefaultIntentSlug, regs.Intents.Default().Slug)
}

func TestLoadWithOverrides_ValidIntents(t *testing.T) {
	dir := t.TempDir()
	writeOverride(t, dir, "intents.json", `[
		{"slug": "registration", "action": "Start Now",
		 "templates": {"h1": "Free POS in {city}", "title": "Free POS | {city}", "meta_description": "Free POS in {city}."}},
		{"slug": "pricing", "action": "See Pricing",
		 "templates": {"h1": "POS Prices in {city}", "title": "Prices | {city}", "meta_description": "Prices in {city}."}}
	]`)

	regs := LoadWithOverrides(dir, logger.NewTestLogger(t))

	require.Len(t, regs.Intents.All(), 2)
	assert.Equal(t, "Start Now", regs.Intents.Default().Action)
}
