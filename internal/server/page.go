package server

import (
	"encoding/json"
	"fmt"
	"html/template"

	"dukapos-web/internal/registry"
	"dukapos-web/internal/seo"
	"dukapos-web/internal/seo/content"
	"dukapos-web/internal/seo/linking"
	"dukapos-web/internal/seo/schema"
)

// Meta is the head-of-page metadata for one identity.
type Meta struct {
	Title       string
	Description string
	H1          string
}

// Page is the fully assembled view model handed to the HTML shell. Assembly
// is deterministic: the same identity always yields the same page.
type Page struct {
	Meta         Meta
	CanonicalURL string
	DirectAnswer string
	Sections     []content.Section
	Steps        []content.Step
	Table        *content.ComparisonTable
	FAQs         []content.FAQ
	Links        linking.SiloSet
	SchemaBlocks []template.JS
}

// hubDatePublished is the fixed publication date for the hub Article schema.
// It is a constant, not a clock read, so hub output never drifts.
const hubDatePublished = "2025-01-15"

// PageBuilder assembles view models from the content, schema and linking
// engines.
type PageBuilder struct {
	regs    *registry.Registries
	gen     *content.Generator
	links   *linking.Engine
	baseURL string
	brand   string
	phone   string
}

func NewPageBuilder(regs *registry.Registries, gen *content.Generator, links *linking.Engine, baseURL string) *PageBuilder {
	offer := gen.Offer()
	return &PageBuilder{
		regs:    regs,
		gen:     gen,
		links:   links,
		baseURL: baseURL,
		brand:   offer.Brand,
		phone:   offer.ContactPhone,
	}
}

// Build assembles the complete page for an already-validated identity.
func (b *PageBuilder) Build(id seo.Identity) *Page {
	meta := b.meta(id)
	city := id.DisplayCity()
	url := b.baseURL + id.CanonicalPath()

	page := &Page{
		Meta:         meta,
		CanonicalURL: url,
		DirectAnswer: b.gen.DirectAnswer(id),
		FAQs:         b.gen.FAQs(id),
		Links:        b.links.SiloLinks(id),
	}

	switch id.Kind {
	case seo.KindIndustry, seo.KindLocalIndustry:
		page.Sections = []content.Section{
			b.gen.IndustrySolutionSection(city, *id.Industry),
			b.gen.ProblemSection(city),
		}
		page.Steps = b.gen.StepByStep(city)
	case seo.KindComparison:
		table := b.gen.Comparison()
		page.Table = &table
	case seo.KindHub:
		page.Sections = []content.Section{
			b.gen.ProblemSection(city),
			b.gen.SolutionSection(city),
		}
	default:
		page.Sections = []content.Section{
			b.gen.ProblemSection(city),
			b.gen.SolutionSection(city),
		}
		page.Steps = b.gen.StepByStep(city)
	}

	in := schema.PageInput{
		Identity:    id,
		Title:       meta.Title,
		Description: meta.Description,
		URL:         url,
		Brand:       b.brand,
		Phone:       b.phone,
		FAQs:        page.FAQs,
		Steps:       page.Steps,
		Breadcrumbs: b.breadcrumbs(id),
	}
	if id.Kind == seo.KindHub {
		in.DatePublished = hubDatePublished
	}
	page.SchemaBlocks = renderSchemas(schema.ForPage(in))

	return page
}

func (b *PageBuilder) meta(id seo.Identity) Meta {
	switch id.Kind {
	case seo.KindHub:
		return Meta{
			Title:       fmt.Sprintf("Free POS System in Kenya | %s", b.brand),
			Description: fmt.Sprintf("%s gives Kenyan businesses a free POS with M-Pesa integration, stock control and KRA ETIMS receipts. Same-day setup, free training.", b.brand),
			H1:          "Free POS System for Kenyan Businesses",
		}

	case seo.KindLocalHub:
		city := id.City.Name
		tmpl := b.regs.Intents.Default().Templates
		return Meta{
			Title:       content.ExpandCity(tmpl.Title, city),
			Description: content.ExpandCity(tmpl.MetaDescription, city),
			H1:          content.ExpandCity(tmpl.H1, city),
		}

	case seo.KindLocalIntent:
		city := id.City.Name
		tmpl := id.Intent.Templates
		return Meta{
			Title:       content.ExpandCity(tmpl.Title, city),
			Description: content.ExpandCity(tmpl.MetaDescription, city),
			H1:          content.ExpandCity(tmpl.H1, city),
		}

	case seo.KindIndustry:
		singular := registry.TitleFromSlug(id.Industry.Singular)
		plural := registry.TitleFromSlug(id.Industry.Plural)
		return Meta{
			Title:       fmt.Sprintf("%s POS System in Kenya | %s", singular, b.brand),
			Description: fmt.Sprintf("Free POS built for %s in Kenya: sales, stock, M-Pesa and KRA ETIMS receipts. Same-day setup and free training from %s.", plural, b.brand),
			H1:          fmt.Sprintf("POS System for %s in Kenya", plural),
		}

	case seo.KindLocalIndustry:
		city := id.City.Name
		singular := registry.TitleFromSlug(id.Industry.Singular)
		plural := registry.TitleFromSlug(id.Industry.Plural)
		return Meta{
			Title:       fmt.Sprintf("%s POS System in %s | %s", singular, city, b.brand),
			Description: fmt.Sprintf("Free POS for %s in %s: sales, stock, M-Pesa and KRA ETIMS receipts, delivered and set up the same day by %s.", plural, city, b.brand),
			H1:          fmt.Sprintf("POS System for %s in %s", plural, city),
		}

	case seo.KindComparison:
		return Meta{
			Title:       fmt.Sprintf("POS System Prices in Kenya | %s", b.brand),
			Description: fmt.Sprintf("Compare POS system prices in Kenya. See what paid POS software, cash registers and %s cost side by side, and why the software can be free.", b.brand),
			H1:          "POS System Prices in Kenya Compared",
		}

	case seo.KindUseCase:
		if id.Flat == "etims" {
			return Meta{
				Title:       fmt.Sprintf("ETIMS-Compliant POS System | %s", b.brand),
				Description: fmt.Sprintf("Get KRA ETIMS-compliant receipts automatically with %s. Free software, free ETIMS onboarding, same-day setup anywhere in Kenya.", b.brand),
				H1:          "KRA ETIMS-Compliant POS System",
			}
		}
		return Meta{
			Title:       fmt.Sprintf("Get a Free POS System | %s", b.brand),
			Description: fmt.Sprintf("How to get a free POS system in Kenya: one call to %s, same-day delivery, setup and staff training at no cost.", b.brand),
			H1:          "How to Get a Free POS System",
		}

	default:
		return Meta{
			Title:       fmt.Sprintf("Free POS System in Kenya | %s", b.brand),
			Description: fmt.Sprintf("%s is a free POS for Kenyan businesses.", b.brand),
			H1:          "Free POS System",
		}
	}
}

// breadcrumbs builds the trail broadest-first. The hub itself carries no
// trail.
func (b *PageBuilder) breadcrumbs(id seo.Identity) []schema.BreadcrumbItem {
	home := schema.BreadcrumbItem{Name: b.brand, URL: b.baseURL + "/"}
	hub := schema.BreadcrumbItem{Name: "POS Systems", URL: b.baseURL + "/pos"}

	switch id.Kind {
	case seo.KindHub:
		return nil
	case seo.KindLocalHub:
		return []schema.BreadcrumbItem{home, hub,
			{Name: id.City.Name, URL: b.baseURL + id.CanonicalPath()}}
	case seo.KindLocalIntent:
		return []schema.BreadcrumbItem{home, hub,
			{Name: id.City.Name, URL: b.baseURL + "/pos/" + id.City.Slug},
			{Name: id.Intent.Action, URL: b.baseURL + id.CanonicalPath()}}
	case seo.KindIndustry:
		return []schema.BreadcrumbItem{home, hub,
			{Name: registry.TitleFromSlug(id.Industry.Plural), URL: b.baseURL + id.CanonicalPath()}}
	case seo.KindLocalIndustry:
		return []schema.BreadcrumbItem{home, hub,
			{Name: id.City.Name, URL: b.baseURL + "/pos/" + id.City.Slug},
			{Name: registry.TitleFromSlug(id.Industry.Plural), URL: b.baseURL + id.CanonicalPath()}}
	case seo.KindUseCase, seo.KindComparison:
		return []schema.BreadcrumbItem{home, hub,
			{Name: registry.TitleFromSlug(id.Flat), URL: b.baseURL + id.CanonicalPath()}}
	default:
		return nil
	}
}

func renderSchemas(objects []schema.Object) []template.JS {
	out := make([]template.JS, 0, len(objects))
	for _, obj := range objects {
		data, err := json.Marshal(obj)
		if err != nil {
			continue
		}
		out = append(out, template.JS(data))
	}
	return out
}
