package content

import (
	"fmt"
	"strings"
)

// Template is the closed set of direct-answer templates. Rendering goes
// through one exhaustive switch so a new page kind cannot silently fall
// through to the wrong copy.
type Template int

const (
	TemplateRegistrationAnswer Template = iota
	TemplatePricingAnswer
	TemplateETIMSAnswer
	TemplateIndustryAnswer
	TemplateHubAnswer
	TemplateComparisonAnswer
)

// Params carries every substitution variable a template may reference, so
// call sites are statically checked to supply them in one place.
type Params struct {
	City           string // display name; "Kenya" for national scope
	Industry       string // singular display form, empty when not industry-scoped
	IndustryPlural string
	Brand          string
	Product        string
	PriceLine      string
	Phone          string
}

// Render produces the direct-answer paragraph for a template. Unknown
// template values render the registration answer; the default-case policy
// guarantees the answer is never blank.
func Render(t Template, p Params) string {
	switch t {
	case TemplatePricingAnswer:
		return fmt.Sprintf(
			"A POS system in %s does not have to cost you anything: %s is %s, so businesses in %s pay nothing for the software itself. "+
				"You only pay if you want optional hardware like a receipt printer or barcode scanner, and there are no monthly fees, no commissions and no hidden charges.",
			p.City, p.Product, p.PriceLine, p.City)
	case TemplateETIMSAnswer:
		return fmt.Sprintf(
			"Yes — %s issues KRA ETIMS-compliant receipts out of the box, so businesses in %s meet the electronic tax invoice requirement from the very first sale. "+
				"Every receipt is transmitted to KRA automatically; there is no separate ETIMS device to buy and no extra charge for compliance in %s.",
			p.Product, p.City, p.City)
	case TemplateIndustryAnswer:
		return fmt.Sprintf(
			"%s is built for %s in %s: it handles the daily flow of a busy %s — sales, M-Pesa payments, stock and staff — and it is %s. "+
				"Most %s are up and running the same day they order, with free setup and training included.",
			p.Product, p.IndustryPlural, p.City, p.Industry, p.PriceLine, p.IndustryPlural)
	case TemplateHubAnswer:
		return fmt.Sprintf(
			"%s gives businesses across %s a complete point-of-sale system — sales, receipts, stock control, M-Pesa integration and KRA ETIMS compliance — as %s. "+
				"Pick your town or business type below to see exactly how it works for you.",
			p.Product, p.City, p.PriceLine)
	case TemplateComparisonAnswer:
		return fmt.Sprintf(
			"Compared with paid POS products sold in %s, %s covers the same day-to-day work — receipts, stock, reports and M-Pesa — while being %s. "+
				"The comparison below shows where the differences matter for a typical shop.",
			p.City, p.Product, p.PriceLine)
	case TemplateRegistrationAnswer:
		fallthrough
	default:
		return fmt.Sprintf(
			"Getting a free POS system in %s takes one phone call: order %s on %s and it is delivered, installed and your staff trained the same day, at no cost. "+
				"The software is %s — businesses in %s pay nothing monthly and nothing per sale.",
			p.City, p.Product, p.Phone, p.PriceLine, p.City)
	}
}

// ExpandCity substitutes the {city} placeholder in registry-supplied template
// strings (intent H1/title/meta-description).
func ExpandCity(template, city string) string {
	return strings.ReplaceAll(template, "{city}", city)
}
