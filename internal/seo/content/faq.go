package content

import (
	"fmt"

	"dukapos-web/internal/seo"
)

// FAQ is one question/answer pair. Questions are unique within a page's set;
// answers always reference the contextual city or industry by name so no two
// pages share identical answer text.
type FAQ struct {
	Question string
	Answer   string
}

// FAQs returns the FAQ set for a page identity: the branch-specific entries
// first, then the general base set. Every branch yields at least 6 entries
// and typically 8.
func (g *Generator) FAQs(id seo.Identity) []FAQ {
	city := id.DisplayCity()

	var branch []FAQ
	switch id.Kind {
	case seo.KindIndustry, seo.KindLocalIndustry:
		if id.Industry != nil {
			branch = g.industryFAQs(city, id.Industry.Singular, id.Industry.Plural)
		}
	case seo.KindComparison:
		branch = g.comparisonFAQs(city)
	case seo.KindUseCase:
		if id.Flat == "etims" {
			branch = g.etimsFAQs(city)
		} else {
			branch = g.registrationFAQs(city)
		}
	case seo.KindLocalHub, seo.KindLocalIntent:
		slug := ""
		if id.Intent != nil {
			slug = id.Intent.Slug
		}
		switch slug {
		case "etims":
			branch = g.etimsFAQs(city)
		case "pricing":
			branch = g.pricingFAQs(city)
		default:
			branch = g.registrationFAQs(city)
		}
	default:
		// hub and unknown kinds carry the base set only
	}

	return append(branch, g.baseFAQs(city)...)
}

func (g *Generator) baseFAQs(city string) []FAQ {
	return []FAQ{
		{
			Question: fmt.Sprintf("Is the POS system really free in %s?", city),
			Answer:   fmt.Sprintf("Yes. %s is %s for businesses in %s — no monthly subscription, no per-sale commission and no setup charge. You only pay if you choose optional hardware such as a receipt printer.", g.offer.Product, g.offer.PriceLine, city),
		},
		{
			Question: fmt.Sprintf("How fast can I get set up in %s?", city),
			Answer:   fmt.Sprintf("Most businesses in %s are selling on the system the same day they order. Delivery, installation, stock loading and staff training are all done in a single visit.", city),
		},
		{
			Question: "Does it work with M-Pesa?",
			Answer:   fmt.Sprintf("Yes. Your M-Pesa till is connected during setup, so till payments from customers in %s appear in the same daily report as your cash sales, already reconciled.", city),
		},
		{
			Question: "Do I need a reliable internet connection?",
			Answer:   fmt.Sprintf("No. The POS keeps selling when the connection drops — common enough in parts of %s — and syncs your records automatically once you are back online.", city),
		},
		{
			Question: "Can I monitor my business from my phone?",
			Answer:   fmt.Sprintf("Yes. Sales, stock levels and staff activity for your %s business are visible live from any phone, wherever you are.", city),
		},
		{
			Question: fmt.Sprintf("What support is available in %s?", city),
			Answer:   fmt.Sprintf("You get free training at setup and free ongoing support on phone and WhatsApp at %s. Our team covers %s with on-site visits when something cannot be fixed remotely.", g.offer.WhatsApp, city),
		},
	}
}

func (g *Generator) etimsFAQs(city string) []FAQ {
	return []FAQ{
		{
			Question: fmt.Sprintf("Is the POS ETIMS-compliant for businesses in %s?", city),
			Answer:   fmt.Sprintf("Yes. Every receipt issued through %s in %s is a valid KRA ETIMS electronic tax invoice, transmitted to KRA automatically. There is no separate ETIMS gadget to buy.", g.offer.Product, city),
		},
		{
			Question: "Do I need to register with KRA first?",
			Answer:   fmt.Sprintf("You need a KRA PIN, which most businesses in %s already have. We handle the ETIMS onboarding on the system for you during setup, including linking your PIN.", city),
		},
	}
}

func (g *Generator) pricingFAQs(city string) []FAQ {
	return []FAQ{
		{
			Question: fmt.Sprintf("What does a POS system cost in %s?", city),
			Answer:   fmt.Sprintf("With %s, the software costs nothing in %s. Optional hardware is the only spend: a thermal receipt printer from about KES 6,000 and a barcode scanner from about KES 3,500, both one-off.", g.offer.Brand, city),
		},
		{
			Question: "Are there hidden charges later?",
			Answer:   fmt.Sprintf("No. Businesses in %s pay no monthly fee, no transaction commission and no support charges. The price you see on day one — %s — is the price forever.", city, g.offer.PriceLine),
		},
	}
}

func (g *Generator) registrationFAQs(city string) []FAQ {
	return []FAQ{
		{
			Question: fmt.Sprintf("How do I register for the free POS in %s?", city),
			Answer:   fmt.Sprintf("Call or WhatsApp %s and our %s team takes it from there: we confirm your business details, deliver the same day and train your staff on the spot.", g.offer.ContactPhone, city),
		},
		{
			Question: "What do I need to sign up?",
			Answer:   fmt.Sprintf("Just your business name and location in %s, a phone number, and your M-Pesa till number if you have one. No paperwork and no deposit.", city),
		},
	}
}

func (g *Generator) comparisonFAQs(city string) []FAQ {
	return []FAQ{
		{
			Question: "How can the software be free when competitors charge monthly?",
			Answer:   fmt.Sprintf("%s earns from optional value-added services, not from your till. That is why shops in %s get the full POS — sales, stock, M-Pesa, ETIMS — at no charge while paid products bill monthly for the same features.", g.offer.Brand, city),
		},
		{
			Question: "What is the catch compared to a paid POS?",
			Answer:   fmt.Sprintf("There is none for a typical business in %s: the free plan is the full product. Paid alternatives mainly add enterprise extras such as multi-branch franchising controls that most shops never use.", city),
		},
	}
}

func (g *Generator) industryFAQs(city, singular, plural string) []FAQ {
	return []FAQ{
		{
			Question: fmt.Sprintf("Is the POS suitable for %s?", plural),
			Answer:   fmt.Sprintf("Yes. %s ships with a ready-made setup for %s, covering the sales flow, stock items and reports a %s actually uses — and it is %s.", g.offer.Product, plural, singular, g.offer.PriceLine),
		},
		{
			Question: fmt.Sprintf("Do other %s already use it?", plural),
			Answer:   fmt.Sprintf("Hundreds of %s across %s run on %s daily, from single-till shops to multi-branch operations. We can connect you with one near you before you decide.", plural, city, g.offer.Brand),
		},
	}
}
