package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Lookup Tests
// ==========================

func TestLocationRegistry_Lookup(t *testing.T) {
	regs := Default()

	tests := []struct {
		name     string
		slug     string
		found    bool
		wantName string
	}{
		{name: "known slug", slug: "nairobi", found: true, wantName: "Nairobi"},
		{name: "case insensitive", slug: "NAIROBI", found: true, wantName: "Nairobi"},
		{name: "surrounding whitespace", slug: "  mombasa ", found: true, wantName: "Mombasa"},
		{name: "unknown slug", slug: "lagos", found: false},
		{name: "empty slug", slug: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, ok := regs.Locations.Lookup(tt.slug)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.wantName, loc.Name)
			}
		})
	}
}

func TestIndustryRegistry_Lookup(t *testing.T) {
	regs := Default()

	ind, ok := regs.Industries.Lookup("restaurant")
	require.True(t, ok)
	assert.Equal(t, "restaurant", ind.Singular)
	assert.Equal(t, "restaurants", ind.Plural)
	assert.NotEmpty(t, ind.Solutions, "every industry carries solution pairs")

	_, ok = regs.Industries.Lookup("airline")
	assert.False(t, ok)
}

func TestIntentRegistry_Default(t *testing.T) {
	regs := Default()

	def := regs.Intents.Default()
	assert.Equal(t, DefaultIntentSlug, def.Slug)
	assert.NotEmpty(t, def.Templates.H1)
	assert.NotEmpty(t, def.Templates.Title)
	assert.NotEmpty(t, def.Templates.MetaDescription)
}

// ==========================
// Ordering Tests
// ==========================

func TestByMinPriority_Ordering(t *testing.T) {
	reg := NewLocationRegistry([]Location{
		{Slug: "ccc", Name: "Ccc", Priority: 5},
		{Slug: "aaa", Name: "Aaa", Priority: 5},
		{Slug: "top", Name: "Top", Priority: 9},
		{Slug: "low", Name: "Low", Priority: 1},
	})

	got := reg.ByMinPriority(0)
	require.Len(t, got, 4)
	assert.Equal(t, "top", got[0].Slug)
	// equal priorities break ties on slug, so output is stable run to run
	assert.Equal(t, "aaa", got[1].Slug)
	assert.Equal(t, "ccc", got[2].Slug)
	assert.Equal(t, "low", got[3].Slug)
}

func TestByMinPriority_Filters(t *testing.T) {
	regs := Default()

	for _, loc := range regs.Locations.ByMinPriority(8) {
		assert.GreaterOrEqual(t, loc.Priority, 8)
	}

	all := regs.Locations.ByMinPriority(0)
	assert.Equal(t, len(all), len(regs.Locations.All()))
}

// ==========================
// Display Name Tests
// ==========================

func TestTitleFromSlug(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"athi-river", "Athi River"},
		{"athi_river", "Athi River"},
		{"nairobi", "Nairobi"},
		{"hardware store", "Hardware Store"},
		{"NAIROBI", "Nairobi"},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleFromSlug(tt.slug))
		})
	}
}

func TestDisplayName_FallsBackToTitleCase(t *testing.T) {
	regs := Default()

	assert.Equal(t, "Nairobi", regs.Locations.DisplayName("nairobi"))
	assert.Equal(t, "Some Town", regs.Locations.DisplayName("some-town"))
}

// ==========================
// Built-in Table Sanity
// ==========================

func TestDefaultTables(t *testing.T) {
	regs := Default()

	assert.GreaterOrEqual(t, len(regs.Locations.All()), 10)
	assert.GreaterOrEqual(t, len(regs.Industries.All()), 5)
	assert.GreaterOrEqual(t, len(regs.Intents.All()), 3)

	for _, loc := range regs.Locations.All() {
		assert.NotEmpty(t, loc.Name, "location %s missing name", loc.Slug)
		assert.NotEmpty(t, loc.County, "location %s missing county", loc.Slug)
		assert.True(t, loc.Priority >= 1 && loc.Priority <= 10, "location %s priority out of range", loc.Slug)
	}

	for _, ind := range regs.Industries.All() {
		assert.NotEmpty(t, ind.Solutions, "industry %s has no solution pairs", ind.Slug)
		for _, s := range ind.Solutions {
			assert.NotEmpty(t, s.PainPoint)
			assert.NotEmpty(t, s.Feature)
		}
	}

	for _, in := range regs.Intents.All() {
		assert.Contains(t, in.Templates.H1, "{city}", "intent %s H1 must carry the city placeholder", in.Slug)
	}
}
