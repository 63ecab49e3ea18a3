package linking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukapos-web/internal/registry"
	"dukapos-web/internal/seo"
)

// ==========================
// Test Helper Functions
// ==========================

func testEngine() *Engine {
	return New(registry.Default(), "DukaPOS")
}

func identityFor(t *testing.T, kind seo.PageKind, citySlug, industrySlug, intentSlug, flat string) seo.Identity {
	t.Helper()
	regs := registry.Default()

	id := seo.Identity{Kind: kind, Flat: flat}
	if citySlug != "" {
		city, ok := regs.Locations.Lookup(citySlug)
		require.True(t, ok)
		id.City = &city
	}
	if industrySlug != "" {
		ind, ok := regs.Industries.Lookup(industrySlug)
		require.True(t, ok)
		id.Industry = &ind
	}
	if intentSlug != "" {
		in, ok := regs.Intents.Lookup(intentSlug)
		require.True(t, ok)
		id.Intent = &in
	}
	return id
}

func allLinks(set SiloSet) []Link {
	out := []Link{set.Parent}
	out = append(out, set.Siblings...)
	out = append(out, set.Children...)
	out = append(out, set.Branded)
	return out
}

// ==========================
// Bound Tests
// ==========================

func TestSiloLinks_Bounds(t *testing.T) {
	engine := testEngine()

	identities := []seo.Identity{
		{Kind: seo.KindHub},
		identityFor(t, seo.KindLocalHub, "nairobi", "", "", ""),
		identityFor(t, seo.KindLocalIntent, "mombasa", "", "etims", ""),
		identityFor(t, seo.KindIndustry, "", "restaurant", "", ""),
		identityFor(t, seo.KindLocalIndustry, "kisumu", "pharmacy", "", ""),
		{Kind: seo.KindUseCase, Flat: "etims"},
		{Kind: seo.KindComparison, Flat: "pricing"},
	}

	for _, id := range identities {
		set := engine.SiloLinks(id)
		assert.NotEmpty(t, set.Parent.URL, "%s must have a parent", id.CanonicalPath())
		assert.LessOrEqual(t, len(set.Siblings), 4, "%s sibling bound", id.CanonicalPath())
		assert.LessOrEqual(t, len(set.Children), 6, "%s children bound", id.CanonicalPath())
		assert.Equal(t, "/", set.Branded.URL)
		assert.Equal(t, "DukaPOS", set.Branded.Anchor)
	}
}

func TestSiloLinks_AtMostOneExactMatchAnchor(t *testing.T) {
	engine := testEngine()

	identities := []seo.Identity{
		{Kind: seo.KindHub},
		identityFor(t, seo.KindLocalHub, "nairobi", "", "", ""),
		identityFor(t, seo.KindLocalIntent, "eldoret", "", "pricing", ""),
		identityFor(t, seo.KindIndustry, "", "supermarket", "", ""),
		identityFor(t, seo.KindLocalIndustry, "thika", "salon", "", ""),
		{Kind: seo.KindUseCase, Flat: "free-pos"},
	}

	for _, id := range identities {
		set := engine.SiloLinks(id)
		exact := 0
		for _, l := range allLinks(set) {
			if l.ExactMatch {
				exact++
			}
		}
		assert.LessOrEqual(t, exact, 1, "%s carries more than one exact-match anchor", id.CanonicalPath())
	}
}

func TestSiblings_IndexZeroCarriesExactMatch(t *testing.T) {
	engine := testEngine()
	set := engine.SiloLinks(identityFor(t, seo.KindLocalHub, "mombasa", "", "", ""))

	require.NotEmpty(t, set.Siblings)
	assert.True(t, set.Siblings[0].ExactMatch)
	assert.Contains(t, set.Siblings[0].Anchor, "Free POS in ")
	for _, sib := range set.Siblings[1:] {
		assert.False(t, sib.ExactMatch)
	}
}

func TestSiblings_ExcludeSelf(t *testing.T) {
	engine := testEngine()
	set := engine.SiloLinks(identityFor(t, seo.KindLocalHub, "nairobi", "", "", ""))

	for _, sib := range set.Siblings {
		assert.NotEqual(t, "/pos/nairobi", sib.URL)
	}
}

func TestSiblings_IntentCarriesThrough(t *testing.T) {
	engine := testEngine()
	set := engine.SiloLinks(identityFor(t, seo.KindLocalIntent, "nairobi", "", "etims", ""))

	require.NotEmpty(t, set.Siblings)
	for _, sib := range set.Siblings {
		assert.Contains(t, sib.URL, "/etims", "intent siblings point at the same intent in other cities")
	}
}

// ==========================
// Small Registry Tests
// ==========================

func TestSiloLinks_SmallRegistryNoPadding(t *testing.T) {
	regs := &registry.Registries{
		Locations: registry.NewLocationRegistry([]registry.Location{
			{Slug: "nairobi", Name: "Nairobi", County: "Nairobi", Priority: 10},
			{Slug: "mombasa", Name: "Mombasa", County: "Mombasa", Priority: 9},
		}),
		Industries: registry.NewIndustryRegistry([]registry.Industry{
			{Slug: "kiosk", Singular: "kiosk", Plural: "kiosks", Priority: 5,
				Solutions: []registry.Solution{{PainPoint: "lost stock", Feature: "stock tracking"}}},
		}),
		Intents: registry.NewIntentRegistry([]registry.Intent{
			{Slug: "registration", Action: "Get Started Free"},
		}),
	}
	engine := New(regs, "DukaPOS")

	nairobi, ok := regs.Locations.Lookup("nairobi")
	require.True(t, ok)
	set := engine.SiloLinks(seo.Identity{Kind: seo.KindLocalHub, City: &nairobi})

	assert.Len(t, set.Siblings, 1, "one other city yields one sibling, never padded to four")
	assert.LessOrEqual(t, len(set.Children), 6)
	for _, l := range allLinks(set) {
		assert.NotEmpty(t, l.URL)
		assert.NotEmpty(t, l.Anchor)
	}
}

// ==========================
// Parent and Children Tests
// ==========================

func TestParent_OneLevelUp(t *testing.T) {
	engine := testEngine()

	tests := []struct {
		name string
		id   seo.Identity
		want string
	}{
		{name: "local intent to city hub", id: identityFor(t, seo.KindLocalIntent, "nakuru", "", "pricing", ""), want: "/pos/nakuru"},
		{name: "local industry to city hub", id: identityFor(t, seo.KindLocalIndustry, "nakuru", "butchery", "", ""), want: "/pos/nakuru"},
		{name: "city hub to national hub", id: identityFor(t, seo.KindLocalHub, "nakuru", "", "", ""), want: "/pos"},
		{name: "industry to national hub", id: identityFor(t, seo.KindIndustry, "", "boutique", "", ""), want: "/pos"},
		{name: "flat page to national hub", id: seo.Identity{Kind: seo.KindComparison, Flat: "pricing"}, want: "/pos"},
		{name: "hub to home", id: seo.Identity{Kind: seo.KindHub}, want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.SiloLinks(tt.id).Parent.URL)
		})
	}
}

func TestChildren_LocalHubMixesIntentsAndIndustries(t *testing.T) {
	engine := testEngine()
	set := engine.SiloLinks(identityFor(t, seo.KindLocalHub, "nairobi", "", "", ""))

	require.Len(t, set.Children, 6)

	intentCount := 0
	for _, c := range set.Children {
		if !assert.Contains(t, c.URL, "/pos/nairobi/") {
			continue
		}
		if c.URL == "/pos/nairobi/pricing" || c.URL == "/pos/nairobi/etims" || c.URL == "/pos/nairobi/registration" {
			intentCount++
		}
	}
	assert.LessOrEqual(t, intentCount, 2, "at most two intent children before industries fill the rest")
}

func TestChildren_IndustryFansOutToTopCities(t *testing.T) {
	engine := testEngine()
	set := engine.SiloLinks(identityFor(t, seo.KindIndustry, "", "restaurant", "", ""))

	require.Len(t, set.Children, 6)
	assert.Equal(t, "/pos/nairobi/for-restaurant", set.Children[0].URL,
		"highest-priority city comes first")
	for _, c := range set.Children {
		assert.Contains(t, c.URL, "/for-restaurant")
		assert.False(t, c.ExactMatch, "children never carry exact-match anchors")
	}
}

func TestSiloLinks_Deterministic(t *testing.T) {
	engine := testEngine()
	id := identityFor(t, seo.KindLocalIntent, "kisumu", "", "etims", "")

	first := engine.SiloLinks(id)
	second := engine.SiloLinks(id)
	assert.Equal(t, first, second)
}
