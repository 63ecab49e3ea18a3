// Package resolver validates route parameters against the registries and
// decides render-or-redirect before any content generation runs. Decisions
// are pure functions of (params, registries), so every redirect rule is
// testable without an HTTP stack.
package resolver

import (
	"strings"

	"dukapos-web/internal/registry"
	"dukapos-web/internal/seo"
)

// Decision is the outcome of resolving one URL: either an identity to render
// or a redirect to the nearest valid ancestor path. Redirects never carry a
// partially built identity.
type Decision struct {
	Redirect string
	Identity seo.Identity
}

func (d Decision) IsRedirect() bool {
	return d.Redirect != ""
}

func render(id seo.Identity) Decision {
	return Decision{Identity: id}
}

func redirect(path string) Decision {
	return Decision{Redirect: path}
}

// Resolver validates slugs against the registries.
type Resolver struct {
	regs *registry.Registries
}

func New(regs *registry.Registries) *Resolver {
	return &Resolver{regs: regs}
}

// catalog slugs served flat under /pos. "free-pos" is a landing page, not an
// intent, which is why this set is distinct from the intent registry.
var catalogKinds = map[string]seo.PageKind{
	"pricing":  seo.KindComparison,
	"free-pos": seo.KindUseCase,
	"etims":    seo.KindUseCase,
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Hub resolves the /pos catalog root. It cannot fail.
func (r *Resolver) Hub() Decision {
	return render(seo.Identity{Kind: seo.KindHub})
}

// Segment resolves the ambiguous /pos/{segment} position: a "for-" prefix
// means a national industry page, a known catalog slug means a flat page,
// anything else is treated as a city.
func (r *Resolver) Segment(segment string) Decision {
	segment = normalize(segment)

	if business, ok := strings.CutPrefix(segment, "for-"); ok {
		return r.Industry(business)
	}
	if kind, ok := catalogKinds[segment]; ok {
		return render(seo.Identity{Kind: kind, Flat: segment})
	}
	return r.CityHub(segment)
}

// CityHub resolves /pos/{city}. Unknown cities redirect to /pos.
func (r *Resolver) CityHub(cityParam string) Decision {
	city, ok := r.regs.Locations.Lookup(normalize(cityParam))
	if !ok {
		return redirect("/pos")
	}
	return render(seo.Identity{Kind: seo.KindLocalHub, City: &city})
}

// CitySegment resolves /pos/{city}/{segment}: "for-" means a city-scoped
// industry page, otherwise the segment is an intent.
func (r *Resolver) CitySegment(cityParam, segment string) Decision {
	segment = normalize(segment)
	if business, ok := strings.CutPrefix(segment, "for-"); ok {
		return r.CityIndustry(cityParam, business)
	}
	return r.CityIntent(cityParam, segment)
}

// CityIntent resolves /pos/{city}/{intent}. An unknown city redirects to
// /pos; a valid city with an unknown intent redirects to /pos/{city} with
// the intent stripped, never all the way to /pos. An empty intent falls back
// to the default registration intent.
func (r *Resolver) CityIntent(cityParam, intentParam string) Decision {
	city, ok := r.regs.Locations.Lookup(normalize(cityParam))
	if !ok {
		return redirect("/pos")
	}

	intentSlug := normalize(intentParam)
	if intentSlug == "" {
		intentSlug = registry.DefaultIntentSlug
	}
	intent, ok := r.regs.Intents.Lookup(intentSlug)
	if !ok {
		return redirect("/pos/" + city.Slug)
	}

	return render(seo.Identity{Kind: seo.KindLocalIntent, City: &city, Intent: &intent})
}

// Industry resolves /pos/for-{business}. Unknown business types redirect
// to /pos.
func (r *Resolver) Industry(businessParam string) Decision {
	ind, ok := r.regs.Industries.Lookup(normalize(businessParam))
	if !ok {
		return redirect("/pos")
	}
	return render(seo.Identity{Kind: seo.KindIndustry, Industry: &ind})
}

// CityIndustry resolves /pos/{city}/for-{business}. The city is validated
// first; an unknown city redirects to /pos, a valid city with an unknown
// business redirects to /pos/{city}.
func (r *Resolver) CityIndustry(cityParam, businessParam string) Decision {
	city, ok := r.regs.Locations.Lookup(normalize(cityParam))
	if !ok {
		return redirect("/pos")
	}
	ind, ok := r.regs.Industries.Lookup(normalize(businessParam))
	if !ok {
		return redirect("/pos/" + city.Slug)
	}
	return render(seo.Identity{Kind: seo.KindLocalIndustry, City: &city, Industry: &ind})
}
