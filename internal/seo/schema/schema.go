// Package schema maps generated page content into schema.org JSON-LD
// objects. Builders are pure and trusted to produce well-formed output;
// field names follow the schema.org vocabulary verbatim.
package schema

import (
	"dukapos-web/internal/seo/content"
)

// Object is one JSON-LD object ready for serialization into a
// <script type="application/ld+json"> block.
type Object map[string]interface{}

const context = "https://schema.org"

// BreadcrumbItem is one entry in a breadcrumb trail, broadest first.
type BreadcrumbItem struct {
	Name string
	URL  string
}

// FAQPage builds a FAQPage object. mainEntity carries one entry per FAQ, in
// order, using the same strings rendered on the visible page.
func FAQPage(faqs []content.FAQ) Object {
	entities := make([]Object, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, Object{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": Object{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	return Object{
		"@context":   context,
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// HowTo builds a HowTo object from the onboarding steps.
func HowTo(name, description string, steps []content.Step) Object {
	steplist := make([]Object, 0, len(steps))
	for i, s := range steps {
		steplist = append(steplist, Object{
			"@type":    "HowToStep",
			"position": i + 1,
			"name":     s.Title,
			"text":     s.Description,
		})
	}
	return Object{
		"@context":    context,
		"@type":       "HowTo",
		"name":        name,
		"description": description,
		"totalTime":   "PT4H",
		"step":        steplist,
	}
}

// Product builds a Product object with a zero-price offer.
func Product(name, description, url, brand string) Object {
	return Object{
		"@context":    context,
		"@type":       "Product",
		"name":        name,
		"description": description,
		"url":         url,
		"brand": Object{
			"@type": "Brand",
			"name":  brand,
		},
		"offers": Object{
			"@type":         "Offer",
			"price":         "0",
			"priceCurrency": "KES",
			"availability":  "https://schema.org/InStock",
		},
	}
}

// LocalBusiness builds a LocalBusiness object scoped to a served city.
func LocalBusiness(brand, url, phone, city, county string) Object {
	return Object{
		"@context":  context,
		"@type":     "LocalBusiness",
		"name":      brand,
		"url":       url,
		"telephone": phone,
		"areaServed": Object{
			"@type": "City",
			"name":  city,
		},
		"address": Object{
			"@type":           "PostalAddress",
			"addressLocality": city,
			"addressRegion":   county,
			"addressCountry":  "KE",
		},
	}
}

// Organization builds the site-wide Organization object.
func Organization(brand, url, phone string) Object {
	return Object{
		"@context":  context,
		"@type":     "Organization",
		"name":      brand,
		"url":       url,
		"telephone": phone,
		"contactPoint": Object{
			"@type":       "ContactPoint",
			"telephone":   phone,
			"contactType": "sales",
			"areaServed":  "KE",
		},
	}
}

// Breadcrumb builds a BreadcrumbList from trail items, broadest first.
func Breadcrumb(items []BreadcrumbItem) Object {
	elements := make([]Object, 0, len(items))
	for i, it := range items {
		elements = append(elements, Object{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.URL,
		})
	}
	return Object{
		"@context":        context,
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	}
}

// Article builds an Article object for hub pages. datePublished is supplied
// by the caller, never generated here, so output stays deterministic.
func Article(headline, description, url, brand, datePublished string) Object {
	return Object{
		"@context":      context,
		"@type":         "Article",
		"headline":      headline,
		"description":   description,
		"url":           url,
		"datePublished": datePublished,
		"author": Object{
			"@type": "Organization",
			"name":  brand,
		},
		"publisher": Object{
			"@type": "Organization",
			"name":  brand,
		},
	}
}
