// Package content derives all page-body text for a page identity. Every
// generator is pure and deterministic: identical inputs yield byte-identical
// output, which keeps tens of thousands of generated URLs stable between
// renders.
package content

import (
	"fmt"

	"dukapos-web/internal/registry"
	"dukapos-web/internal/seo"
)

// Offer is the commercial framing injected into every generator. It comes
// from configuration so tests can substitute alternate offers.
type Offer struct {
	Brand        string
	Product      string
	PriceLine    string
	ContactPhone string
	WhatsApp     string
	SiteURL      string
}

// Generator produces page-body content for page identities.
type Generator struct {
	offer Offer
}

func NewGenerator(offer Offer) *Generator {
	return &Generator{offer: offer}
}

func (g *Generator) Offer() Offer {
	return g.offer
}

func (g *Generator) params(id seo.Identity) Params {
	p := Params{
		City:      id.DisplayCity(),
		Brand:     g.offer.Brand,
		Product:   g.offer.Product,
		PriceLine: g.offer.PriceLine,
		Phone:     g.offer.ContactPhone,
	}
	if id.Industry != nil {
		p.Industry = id.Industry.Singular
		p.IndustryPlural = id.Industry.Plural
	}
	return p
}

// DirectAnswer produces the single answer paragraph placed at the top of a
// page. Template selection is keyed by page kind and intent; anything
// unrecognised falls back to the registration template so the answer is
// never blank.
func (g *Generator) DirectAnswer(id seo.Identity) string {
	return Render(g.templateFor(id), g.params(id))
}

func (g *Generator) templateFor(id seo.Identity) Template {
	switch id.Kind {
	case seo.KindHub:
		return TemplateHubAnswer
	case seo.KindIndustry, seo.KindLocalIndustry:
		return TemplateIndustryAnswer
	case seo.KindComparison:
		return TemplateComparisonAnswer
	case seo.KindUseCase:
		if id.Flat == "etims" {
			return TemplateETIMSAnswer
		}
		return TemplateRegistrationAnswer
	case seo.KindLocalHub, seo.KindLocalIntent:
		if id.Intent != nil {
			switch id.Intent.Slug {
			case "pricing":
				return TemplatePricingAnswer
			case "etims":
				return TemplateETIMSAnswer
			}
		}
		return TemplateRegistrationAnswer
	default:
		return TemplateRegistrationAnswer
	}
}

// Point couples a short label with a longer explanation. The explanation
// always references the city so copy stays unique across city pages.
type Point struct {
	Label  string
	Detail string
}

// Section is a titled list of points.
type Section struct {
	Title  string
	Points []Point
}

// ProblemSection describes what goes wrong for businesses running on paper.
func (g *Generator) ProblemSection(city string) Section {
	return Section{
		Title: fmt.Sprintf("Why %s Businesses Lose Money Without a POS", city),
		Points: []Point{
			{
				Label:  "Untracked sales",
				Detail: fmt.Sprintf("Most shops in %s still record sales in an exercise book. Pages go missing, entries get skipped on busy days, and by month-end nobody can say what was actually sold in %s.", city, city),
			},
			{
				Label:  "Stock walks away",
				Detail: fmt.Sprintf("Without item-level records, shrinkage in a typical %s shop quietly eats 3-8%% of stock. You only notice when the shelf is empty and the money is not there.", city),
			},
			{
				Label:  "M-Pesa and cash never reconcile",
				Detail: fmt.Sprintf("Matching M-Pesa statements against the notebook takes %s owners hours every week, and the two rarely agree.", city),
			},
			{
				Label:  "KRA compliance pressure",
				Detail: fmt.Sprintf("ETIMS receipts are now expected from businesses in %s, and handwritten receipts do not qualify.", city),
			},
		},
	}
}

// SolutionSection mirrors the problem section with what the product does
// about each point.
func (g *Generator) SolutionSection(city string) Section {
	return Section{
		Title: fmt.Sprintf("How %s Fixes This for %s Businesses", g.offer.Brand, city),
		Points: []Point{
			{
				Label:  "Every sale recorded",
				Detail: fmt.Sprintf("Each sale in your %s shop is captured with item, price, payment method and time — no notebook, no gaps, visible from your phone.", city),
			},
			{
				Label:  "Live stock control",
				Detail: fmt.Sprintf("Stock counts down automatically with every sale, so a %s shelf never surprises you. Low-stock alerts arrive before you run out.", city),
			},
			{
				Label:  "M-Pesa built in",
				Detail: fmt.Sprintf("Till payments land in the same report as cash, so reconciling a day's trade in %s takes one glance instead of one evening.", city),
			},
			{
				Label:  "ETIMS receipts automatically",
				Detail: fmt.Sprintf("Every receipt issued in %s is KRA ETIMS-compliant, transmitted automatically at no extra cost.", city),
			},
		},
	}
}

// IndustrySolutionSection renders an industry's pain-point/feature pairs as a
// section. Pairs come as one list, so there is no positional mismatch to
// guard against.
func (g *Generator) IndustrySolutionSection(city string, ind registry.Industry) Section {
	points := make([]Point, 0, len(ind.Solutions))
	for _, s := range ind.Solutions {
		points = append(points, Point{
			Label:  s.Feature,
			Detail: fmt.Sprintf("For %s in %s, %s. %s answers this with %s.", ind.Plural, city, s.PainPoint, g.offer.Brand, s.Feature),
		})
	}
	return Section{
		Title:  fmt.Sprintf("Built for %s in %s", registry.TitleFromSlug(ind.Plural), city),
		Points: points,
	}
}

// Step is one entry in the fixed onboarding walkthrough.
type Step struct {
	Title       string
	Description string
	Duration    string
}

// StepByStep returns the fixed five-step onboarding guide. Step count and
// order never vary; only the city substitution does.
func (g *Generator) StepByStep(city string) []Step {
	return []Step{
		{
			Title:       "Call or WhatsApp us",
			Description: fmt.Sprintf("Reach us on %s and tell us about your business in %s — what you sell and roughly how many sales a day.", g.offer.ContactPhone, city),
			Duration:    "5 minutes",
		},
		{
			Title:       "Confirm your order",
			Description: fmt.Sprintf("We confirm the setup that fits your %s business. The software is free; you only decide on optional hardware.", city),
			Duration:    "Same call",
		},
		{
			Title:       "Delivery",
			Description: fmt.Sprintf("Our %s team delivers and connects everything at your premises.", city),
			Duration:    "Same day in " + city,
		},
		{
			Title:       "Setup and stock load",
			Description: fmt.Sprintf("We configure your products, prices and M-Pesa till, and load your opening stock before we leave your %s shop.", city),
			Duration:    "1-2 hours",
		},
		{
			Title:       "Staff training",
			Description: fmt.Sprintf("Your team in %s is trained on sales, receipts and end-of-day reports. Follow-up support is free.", city),
			Duration:    "1 hour",
		},
	}
}

// ComparisonRow is one feature row contrasting the product against the
// baseline alternatives.
type ComparisonRow struct {
	Feature string
	Cells   []string // aligned with ComparisonTable Headers[1:]
}

type ComparisonTable struct {
	Headers []string
	Rows    []ComparisonRow
}

// Comparison returns the static comparison table. It is deliberately not
// city or industry parameterised.
func (g *Generator) Comparison() ComparisonTable {
	return ComparisonTable{
		Headers: []string{"Feature", g.offer.Brand, "Paid POS software", "Cash register", "Exercise book"},
		Rows: []ComparisonRow{
			{Feature: "Software cost", Cells: []string{"Free", "KES 3,000-15,000/month", "KES 25,000+ once", "KES 100"}},
			{Feature: "M-Pesa integration", Cells: []string{"Built in", "Extra module", "None", "Manual"}},
			{Feature: "KRA ETIMS receipts", Cells: []string{"Automatic", "Varies", "No", "No"}},
			{Feature: "Stock control", Cells: []string{"Included", "Included", "No", "Manual"}},
			{Feature: "Reports on your phone", Cells: []string{"Yes", "Usually", "No", "No"}},
			{Feature: "Setup and training", Cells: []string{"Free, same day", "Chargeable", "Self-service", "None"}},
		},
	}
}
