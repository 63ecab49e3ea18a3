// Package linking computes the bounded outbound link set for a page
// identity. The bounds (one parent, up to four siblings, up to six
// children, one branded link) keep generated pages inside the silo
// hierarchy without orphaning any URL.
package linking

import (
	"dukapos-web/internal/registry"
	"dukapos-web/internal/seo"
)

const (
	maxSiblings = 4
	maxChildren = 6
)

// Link is one outbound link with its anchor text. ExactMatch marks anchors
// that equal the target page's primary keyword phrase; across one page's
// whole set at most one link may carry it.
type Link struct {
	URL        string
	Anchor     string
	ExactMatch bool
}

// SiloSet is the complete outbound link set for one page.
type SiloSet struct {
	Parent   Link
	Siblings []Link
	Children []Link
	Branded  Link
}

// Engine computes silo link sets from the registries.
type Engine struct {
	regs  *registry.Registries
	brand string
}

func New(regs *registry.Registries, brand string) *Engine {
	return &Engine{regs: regs, brand: brand}
}

// SiloLinks returns the rule-compliant link set for an identity. Small
// registries simply yield shorter lists; they are never padded.
func (e *Engine) SiloLinks(id seo.Identity) SiloSet {
	return SiloSet{
		Parent:   e.parent(id),
		Siblings: e.siblings(id),
		Children: e.children(id),
		Branded:  Link{URL: "/", Anchor: e.brand},
	}
}

// parent is always exactly one link one level up the hierarchy.
func (e *Engine) parent(id seo.Identity) Link {
	switch id.Kind {
	case seo.KindLocalIntent:
		return Link{URL: "/pos/" + id.City.Slug, Anchor: "POS in " + id.City.Name}
	case seo.KindLocalIndustry:
		return Link{URL: "/pos/" + id.City.Slug, Anchor: "POS in " + id.City.Name}
	case seo.KindLocalHub, seo.KindIndustry, seo.KindUseCase, seo.KindComparison:
		return Link{URL: "/pos", Anchor: "POS Systems in Kenya"}
	default:
		return Link{URL: "/", Anchor: "Home"}
	}
}

// siblings selects up to four same-dimension entries excluding the current
// one, ordered by descending priority. Only the first sibling
// carries the exact-match anchor for its own target; everything
// after it uses the bare display name. This index-0 rule is what keeps
// exact-match anchors to at most one per page.
func (e *Engine) siblings(id seo.Identity) []Link {
	switch id.Kind {
	case seo.KindLocalHub, seo.KindLocalIntent:
		currentSlug := ""
		if id.City != nil {
			currentSlug = id.City.Slug
		}
		suffix := ""
		if id.Kind == seo.KindLocalIntent {
			suffix = "/" + id.Intent.Slug
		}
		out := make([]Link, 0, maxSiblings)
		for _, loc := range e.regs.Locations.ByMinPriority(0) {
			if loc.Slug == currentSlug {
				continue
			}
			if len(out) == maxSiblings {
				break
			}
			link := Link{URL: "/pos/" + loc.Slug + suffix, Anchor: loc.Name}
			if len(out) == 0 {
				link.Anchor = seo.ExactMatchCityAnchor(loc.Name)
				link.ExactMatch = true
			}
			out = append(out, link)
		}
		return out

	case seo.KindIndustry, seo.KindLocalIndustry:
		currentSlug := ""
		if id.Industry != nil {
			currentSlug = id.Industry.Slug
		}
		prefix := "/pos/for-"
		if id.Kind == seo.KindLocalIndustry {
			prefix = "/pos/" + id.City.Slug + "/for-"
		}
		out := make([]Link, 0, maxSiblings)
		for _, ind := range e.regs.Industries.ByMinPriority(0) {
			if ind.Slug == currentSlug {
				continue
			}
			if len(out) == maxSiblings {
				break
			}
			link := Link{URL: prefix + ind.Slug, Anchor: registry.TitleFromSlug(ind.Singular)}
			if len(out) == 0 {
				link.Anchor = seo.ExactMatchIndustryAnchor(ind.Singular)
				link.ExactMatch = true
			}
			out = append(out, link)
		}
		return out

	case seo.KindUseCase, seo.KindComparison:
		catalog := []struct {
			slug, anchor string
		}{
			{"pricing", "POS Prices"},
			{"free-pos", "Free POS"},
			{"etims", "ETIMS POS"},
		}
		out := make([]Link, 0, len(catalog))
		for _, c := range catalog {
			if c.slug == id.Flat {
				continue
			}
			out = append(out, Link{URL: "/pos/" + c.slug, Anchor: c.anchor})
		}
		return out

	default:
		return nil
	}
}

// children selects up to six narrower-scope links composed from two pools
// (intents first, then industries) concatenated and truncated. Children
// never carry exact-match anchors.
func (e *Engine) children(id seo.Identity) []Link {
	switch id.Kind {
	case seo.KindLocalHub, seo.KindLocalIntent:
		citySlug := id.City.Slug
		cityName := id.City.Name
		currentIntent := ""
		if id.Intent != nil {
			currentIntent = id.Intent.Slug
		}

		out := make([]Link, 0, maxChildren)
		intents := 0
		for _, in := range e.regs.Intents.All() {
			if in.Slug == currentIntent || intents == 2 {
				continue
			}
			out = append(out, Link{
				URL:    "/pos/" + citySlug + "/" + in.Slug,
				Anchor: in.Action + " in " + cityName,
			})
			intents++
		}
		for _, ind := range e.regs.Industries.ByMinPriority(0) {
			if len(out) == maxChildren {
				break
			}
			out = append(out, Link{
				URL:    "/pos/" + citySlug + "/for-" + ind.Slug,
				Anchor: registry.TitleFromSlug(ind.Plural) + " in " + cityName,
			})
		}
		return truncate(out, maxChildren)

	case seo.KindIndustry:
		out := make([]Link, 0, maxChildren)
		for _, loc := range e.regs.Locations.ByMinPriority(0) {
			if len(out) == maxChildren {
				break
			}
			out = append(out, Link{
				URL:    "/pos/" + loc.Slug + "/for-" + id.Industry.Slug,
				Anchor: registry.TitleFromSlug(id.Industry.Plural) + " in " + loc.Name,
			})
		}
		return out

	case seo.KindLocalIndustry:
		out := make([]Link, 0, maxChildren)
		for _, in := range e.regs.Intents.All() {
			out = append(out, Link{
				URL:    "/pos/" + id.City.Slug + "/" + in.Slug,
				Anchor: in.Action + " in " + id.City.Name,
			})
		}
		return truncate(out, maxChildren)

	case seo.KindUseCase, seo.KindComparison:
		intentSlug := flatIntent(id.Flat)
		out := make([]Link, 0, maxChildren)
		for _, loc := range e.regs.Locations.ByMinPriority(0) {
			if len(out) == maxChildren {
				break
			}
			out = append(out, Link{
				URL:    "/pos/" + loc.Slug + "/" + intentSlug,
				Anchor: loc.Name,
			})
		}
		return out

	case seo.KindHub:
		out := []Link{
			{URL: "/pos/pricing", Anchor: "POS Prices"},
			{URL: "/pos/etims", Anchor: "ETIMS POS"},
		}
		for _, loc := range e.regs.Locations.ByMinPriority(0) {
			if len(out) == maxChildren {
				break
			}
			out = append(out, Link{URL: "/pos/" + loc.Slug, Anchor: loc.Name})
		}
		return truncate(out, maxChildren)

	default:
		return nil
	}
}

// flatIntent maps a flat catalog slug to the intent its city children use.
func flatIntent(flat string) string {
	switch flat {
	case "pricing":
		return "pricing"
	case "etims":
		return "etims"
	default:
		return registry.DefaultIntentSlug
	}
}

func truncate(links []Link, n int) []Link {
	if len(links) > n {
		return links[:n]
	}
	return links
}
