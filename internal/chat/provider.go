package chat

import (
	"context"
	"fmt"
)

// Provider produces assistant replies. Implementations receive only the
// bounded history window, never the full conversation.
type Provider interface {
	Reply(ctx context.Context, message string, history []Turn) (string, error)
}

// Offer is the slice of site configuration the assistant needs to answer
// accurately about the product.
type Offer struct {
	Brand        string
	Product      string
	PriceLine    string
	ContactPhone string
	WhatsApp     string
}

// SystemPrompt builds the assistant persona from the offer. Pricing and
// contact details come from configuration so copy changes never require a
// prompt edit in two places.
func SystemPrompt(offer Offer) string {
	return fmt.Sprintf(`You are the %s assistant on the %s website, helping Kenyan business owners decide if %s fits their shop.

Facts you must stick to:
- %s is a point-of-sale system for Kenyan businesses: sales, inventory, M-Pesa payments, and KRA ETIMS compliance.
- Pricing: %s. Never invent other prices or plans.
- Setup is done by our team, including delivery and staff training.
- To sign up or talk to sales, customers call %s or WhatsApp %s.

Rules:
- Answer in plain, friendly English. Keep replies short, 2-4 sentences.
- If you do not know something, say so and point the customer to the sales line.
- Never discuss competitors' internal details or give legal or tax advice beyond what ETIMS compliance requires.`,
		offer.Brand, offer.Brand, offer.Product,
		offer.Brand,
		offer.PriceLine,
		offer.ContactPhone, offer.WhatsApp,
	)
}

// FallbackReply is shown when the upstream provider fails or times out. It
// keeps the contact path open instead of surfacing an error to the visitor.
func FallbackReply(offer Offer) string {
	return fmt.Sprintf(
		"Sorry, I'm having trouble answering right now. Please call us on %s or WhatsApp %s and our team will help you directly.",
		offer.ContactPhone, offer.WhatsApp,
	)
}
