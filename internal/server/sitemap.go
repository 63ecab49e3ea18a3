package server

import (
	"encoding/xml"
	"fmt"

	"dukapos-web/internal/registry"
)

// Sitemap entry priorities mirror the registry priorities so crawl budget
// concentrates on the highest-value cities and industries.
type sitemapURL struct {
	XMLName  xml.Name `xml:"url"`
	Loc      string   `xml:"loc"`
	Priority string   `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// BuildSitemap enumerates every canonical URL the resolver will render. The
// default registration intent is served at /pos/{city}, so city intent
// entries skip it rather than duplicating the city hub.
func BuildSitemap(regs *registry.Registries, baseURL string) ([]byte, error) {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	add := func(path string, priority float64) {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:      baseURL + path,
			Priority: fmt.Sprintf("%.1f", priority),
		})
	}

	add("/pos", 1.0)
	for _, flat := range []string{"pricing", "free-pos", "etims"} {
		add("/pos/"+flat, 0.9)
	}

	locations := regs.Locations.ByMinPriority(0)
	industries := regs.Industries.ByMinPriority(0)
	intents := regs.Intents.All()

	for _, loc := range locations {
		add("/pos/"+loc.Slug, registryPriority(loc.Priority, 0.9))
		for _, in := range intents {
			if in.Slug == registry.DefaultIntentSlug {
				continue
			}
			add("/pos/"+loc.Slug+"/"+in.Slug, registryPriority(loc.Priority, 0.7))
		}
	}

	for _, ind := range industries {
		add("/pos/for-"+ind.Slug, registryPriority(ind.Priority, 0.8))
	}

	for _, loc := range locations {
		for _, ind := range industries {
			add("/pos/"+loc.Slug+"/for-"+ind.Slug, registryPriority(min(loc.Priority, ind.Priority), 0.6))
		}
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// registryPriority maps a 1-10 registry priority into (0, ceiling].
func registryPriority(p int, ceiling float64) float64 {
	if p < 1 {
		p = 1
	}
	if p > 10 {
		p = 10
	}
	v := ceiling * float64(p) / 10
	if v < 0.1 {
		v = 0.1
	}
	return v
}
