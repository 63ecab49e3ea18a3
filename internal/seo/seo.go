// Package seo defines the shared page-identity model used by the content,
// schema, linking and resolver engines.
package seo

import (
	"fmt"

	"dukapos-web/internal/registry"
)

// PageKind is the closed set of programmatic page types. Every switch over it
// carries a default arm so an unknown kind degrades instead of misrendering.
type PageKind int

const (
	KindUnknown PageKind = iota
	KindHub               // /pos national catalog
	KindLocalHub          // /pos/{city}
	KindLocalIntent       // /pos/{city}/{intent}
	KindIndustry          // /pos/for-{business}
	KindLocalIndustry     // /pos/{city}/for-{business}
	KindUseCase           // flat process pages: /pos/etims, /pos/free-pos
	KindComparison        // /pos/pricing
)

func (k PageKind) String() string {
	switch k {
	case KindHub:
		return "hub"
	case KindLocalHub:
		return "local_hub"
	case KindLocalIntent:
		return "local_intent"
	case KindIndustry:
		return "industry"
	case KindLocalIndustry:
		return "local_industry"
	case KindUseCase:
		return "use_case"
	case KindComparison:
		return "comparison"
	default:
		return "unknown"
	}
}

// Identity is the composite key (kind, city?, industry?, intent?) a valid URL
// resolves to. It deterministically maps to canonical path, content, schemas
// and the silo link set. Nil fields mean the dimension is absent (national
// scope, no industry, intent-less hub).
type Identity struct {
	Kind     PageKind
	City     *registry.Location
	Industry *registry.Industry
	Intent   *registry.Intent
	Flat     string // catalog slug for KindUseCase/KindComparison ("etims", "free-pos", "pricing")
}

// CanonicalPath returns the canonical URL path for this identity.
func (id Identity) CanonicalPath() string {
	switch id.Kind {
	case KindHub:
		return "/pos"
	case KindLocalHub:
		return "/pos/" + id.City.Slug
	case KindLocalIntent:
		return "/pos/" + id.City.Slug + "/" + id.Intent.Slug
	case KindIndustry:
		return "/pos/for-" + id.Industry.Slug
	case KindLocalIndustry:
		return "/pos/" + id.City.Slug + "/for-" + id.Industry.Slug
	case KindUseCase, KindComparison:
		return "/pos/" + id.Flat
	default:
		return "/pos"
	}
}

// TargetKeyword is the primary search phrase the page targets. Across one
// page's outbound links, at most one anchor may equal this string.
func (id Identity) TargetKeyword() string {
	switch id.Kind {
	case KindLocalHub, KindLocalIntent:
		return ExactMatchCityAnchor(id.City.Name)
	case KindIndustry, KindLocalIndustry:
		return ExactMatchIndustryAnchor(id.Industry.Singular)
	case KindComparison:
		return "POS System Prices in Kenya"
	case KindUseCase:
		if id.Flat == "etims" {
			return "ETIMS-Compliant POS System"
		}
		return "Free POS System in Kenya"
	default:
		return "Free POS System in Kenya"
	}
}

// DisplayCity is the city name used in copy, defaulting to the national
// framing when the identity has no city.
func (id Identity) DisplayCity() string {
	if id.City != nil {
		return id.City.Name
	}
	return "Kenya"
}

// ExactMatchCityAnchor is the exact-match anchor form for city pages.
func ExactMatchCityAnchor(cityName string) string {
	return fmt.Sprintf("Free POS in %s", cityName)
}

// ExactMatchIndustryAnchor is the exact-match anchor form for industry pages.
func ExactMatchIndustryAnchor(industrySingular string) string {
	return fmt.Sprintf("%s POS System", registry.TitleFromSlug(industrySingular))
}
