package registry

// defaultIntents is the built-in search-intent table. The registration intent
// is the default when a route omits the intent segment; template strings keep
// the {city} placeholder for the content engine to substitute.
var defaultIntents = []Intent{
	{
		Slug:     "registration",
		Action:   "Get Started Free",
		Triggers: []string{"free pos", "pos registration", "get pos system", "pos sign up"},
		Templates: IntentTemplates{
			H1:              "Get a Free POS System in {city}",
			Title:           "Free POS System in {city} | Same-Day Setup",
			MetaDescription: "Get a free POS system in {city} with same-day delivery, M-Pesa integration and free training. No monthly fees.",
		},
	},
	{
		Slug:     "pricing",
		Action:   "See Pricing",
		Triggers: []string{"pos price", "pos cost kenya", "how much is a pos", "pos charges"},
		Templates: IntentTemplates{
			H1:              "POS System Prices in {city}",
			Title:           "POS System Prices in {city} | Transparent Rates",
			MetaDescription: "Compare POS system prices in {city}. The software is free; you only pay for optional hardware. See the full price breakdown.",
		},
	},
	{
		Slug:     "etims",
		Action:   "Get ETIMS Ready",
		Triggers: []string{"etims pos", "kra etims", "etims compliant pos", "etims receipts"},
		Templates: IntentTemplates{
			H1:              "ETIMS-Compliant POS in {city}",
			Title:           "ETIMS POS System in {city} | KRA-Ready Receipts",
			MetaDescription: "Issue KRA ETIMS-compliant receipts in {city} from day one. Free POS software with built-in ETIMS invoicing for every sale.",
		},
	},
}
