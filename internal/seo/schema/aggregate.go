package schema

import (
	"dukapos-web/internal/seo"
	"dukapos-web/internal/seo/content"
)

// PageInput is everything the aggregator needs: already-generated content
// plus page metadata. No field is derived internally.
type PageInput struct {
	Identity      seo.Identity
	Title         string
	Description   string
	URL           string
	Brand         string
	Phone         string
	FAQs          []content.FAQ
	Steps         []content.Step
	Breadcrumbs   []BreadcrumbItem
	DatePublished string // hub pages only; injected, not generated
}

// ForPage selects which schema objects a page emits. Breadcrumb and FAQ
// objects appear whenever their inputs are supplied; exactly one primary
// schema is added per known page kind, and unknown kinds add no primary
// rather than erroring.
func ForPage(in PageInput) []Object {
	out := make([]Object, 0, 4)

	if len(in.Breadcrumbs) > 0 {
		out = append(out, Breadcrumb(in.Breadcrumbs))
	}
	if len(in.FAQs) > 0 {
		out = append(out, FAQPage(in.FAQs))
	}

	switch in.Identity.Kind {
	case seo.KindHub:
		out = append(out, Article(in.Title, in.Description, in.URL, in.Brand, in.DatePublished))
	case seo.KindLocalHub, seo.KindLocalIntent, seo.KindLocalIndustry:
		out = append(out, Product(in.Title, in.Description, in.URL, in.Brand))
		city := in.Identity.DisplayCity()
		county := ""
		if in.Identity.City != nil {
			county = in.Identity.City.County
		}
		out = append(out, LocalBusiness(in.Brand, in.URL, in.Phone, city, county))
	case seo.KindIndustry:
		out = append(out, Product(in.Title, in.Description, in.URL, in.Brand))
		out = append(out, LocalBusiness(in.Brand, in.URL, in.Phone, in.Identity.DisplayCity(), ""))
	case seo.KindUseCase:
		out = append(out, HowTo(in.Title, in.Description, in.Steps))
	case seo.KindComparison:
		out = append(out, Product(in.Title, in.Description, in.URL, in.Brand))
	default:
		// unknown page kind: breadcrumb/FAQ only
	}

	return out
}
