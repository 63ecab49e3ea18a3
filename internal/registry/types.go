// Package registry holds the static location, industry and intent tables that
// drive the programmatic page surface. Tables are immutable after startup;
// every operation is a pure read.
package registry

import (
	"sort"
	"strings"
)

// Tier buckets a location metric into a coarse band.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Location is one city or town the site targets.
type Location struct {
	Slug             string `json:"slug"`
	Name             string `json:"name"`
	County           string `json:"county"`
	Population       int    `json:"population,omitempty"`
	BusinessDensity  Tier   `json:"business_density"`
	MobileMoneyUsage Tier   `json:"mobile_money_usage"`
	Priority         int    `json:"priority"` // 1-10, drives link and sitemap ordering
}

// Solution pairs a pain point with the feature that answers it. Keeping the
// pair in one struct removes the index-bounds guards the old parallel lists
// needed.
type Solution struct {
	PainPoint string `json:"pain_point"`
	Feature   string `json:"feature"`
}

// Industry is one business type with its sales copy inputs.
type Industry struct {
	Slug      string     `json:"slug"`
	Singular  string     `json:"singular"`
	Plural    string     `json:"plural"`
	Solutions []Solution `json:"solutions"`
	Keywords  []string   `json:"keywords"`
	Priority  int        `json:"priority"`
}

// IntentTemplates are the page heading templates for one search intent.
// Each string may reference the {city} placeholder.
type IntentTemplates struct {
	H1              string `json:"h1"`
	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
}

// Intent is one search goal (registration, pricing, compliance).
type Intent struct {
	Slug      string          `json:"slug"`
	Action    string          `json:"action"`
	Triggers  []string        `json:"triggers"`
	Templates IntentTemplates `json:"templates"`
}

// DefaultIntentSlug is used when a route omits an explicit intent segment.
const DefaultIntentSlug = "registration"

// Registries bundles the three tables for injection into the engines.
type Registries struct {
	Locations  *LocationRegistry
	Industries *IndustryRegistry
	Intents    *IntentRegistry
}

// Default returns the built-in tables.
func Default() *Registries {
	return &Registries{
		Locations:  NewLocationRegistry(defaultLocations),
		Industries: NewIndustryRegistry(defaultIndustries),
		Intents:    NewIntentRegistry(defaultIntents),
	}
}

// ==========================
// Location Registry
// ==========================

type LocationRegistry struct {
	entries []Location
	bySlug  map[string]int
}

func NewLocationRegistry(entries []Location) *LocationRegistry {
	r := &LocationRegistry{
		entries: entries,
		bySlug:  make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		r.bySlug[strings.ToLower(e.Slug)] = i
	}
	return r
}

// Lookup finds a location by slug, case-insensitive. Never errors; the caller
// decides whether a miss is fatal (route validation) or cosmetic.
func (r *LocationRegistry) Lookup(slug string) (Location, bool) {
	i, ok := r.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return Location{}, false
	}
	return r.entries[i], true
}

// ByMinPriority returns entries with priority >= min, sorted descending by
// priority with slug as a deterministic tiebreak.
func (r *LocationRegistry) ByMinPriority(min int) []Location {
	out := make([]Location, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Priority >= min {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Slug < out[j].Slug
	})
	return out
}

// All returns every location in priority order.
func (r *LocationRegistry) All() []Location {
	return r.ByMinPriority(0)
}

// DisplayName returns the registry name for a known slug, and otherwise
// title-cases hyphen/underscore-delimited slugs. The fallback is cosmetic
// only and must never substitute for Lookup during validation.
func (r *LocationRegistry) DisplayName(slug string) string {
	if loc, ok := r.Lookup(slug); ok {
		return loc.Name
	}
	return TitleFromSlug(slug)
}

// TitleFromSlug turns "athi-river" or "athi_river" into "Athi River".
func TitleFromSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	parts := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// ==========================
// Industry Registry
// ==========================

type IndustryRegistry struct {
	entries []Industry
	bySlug  map[string]int
}

func NewIndustryRegistry(entries []Industry) *IndustryRegistry {
	r := &IndustryRegistry{
		entries: entries,
		bySlug:  make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		r.bySlug[strings.ToLower(e.Slug)] = i
	}
	return r
}

func (r *IndustryRegistry) Lookup(slug string) (Industry, bool) {
	i, ok := r.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return Industry{}, false
	}
	return r.entries[i], true
}

func (r *IndustryRegistry) ByMinPriority(min int) []Industry {
	out := make([]Industry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Priority >= min {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Slug < out[j].Slug
	})
	return out
}

func (r *IndustryRegistry) All() []Industry {
	return r.ByMinPriority(0)
}

// ==========================
// Intent Registry
// ==========================

type IntentRegistry struct {
	entries []Intent
	bySlug  map[string]int
}

func NewIntentRegistry(entries []Intent) *IntentRegistry {
	r := &IntentRegistry{
		entries: entries,
		bySlug:  make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		r.bySlug[strings.ToLower(e.Slug)] = i
	}
	return r
}

func (r *IntentRegistry) Lookup(slug string) (Intent, bool) {
	i, ok := r.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return Intent{}, false
	}
	return r.entries[i], true
}

// Default returns the registration intent, which always exists in the
// built-in table and is re-checked when overrides load.
func (r *IntentRegistry) Default() Intent {
	in, _ := r.Lookup(DefaultIntentSlug)
	return in
}

func (r *IntentRegistry) All() []Intent {
	out := make([]Intent, len(r.entries))
	copy(out, r.entries)
	return out
}
