package registry

// defaultIndustries is the built-in business-type table. Each entry pairs a
// pain point with the feature answering it so generated solution copy never
// needs positional guards.
var defaultIndustries = []Industry{
	{
		Slug:     "restaurant",
		Singular: "restaurant",
		Plural:   "restaurants",
		Solutions: []Solution{
			{PainPoint: "orders scribbled on paper get lost between the floor and the kitchen", Feature: "digital order tickets that reach the kitchen screen instantly"},
			{PainPoint: "waiters pocket cash because sales are untracked", Feature: "per-waiter sales reports tied to every receipt"},
			{PainPoint: "stock-outs of popular dishes discovered mid-service", Feature: "live ingredient-level stock tracking with low-stock alerts"},
			{PainPoint: "end-of-day reconciliation takes hours", Feature: "one-tap daily sales summary with M-Pesa and cash split"},
		},
		Keywords: []string{"restaurant POS system", "hotel POS Kenya", "restaurant billing software"},
		Priority: 9,
	},
	{
		Slug:     "supermarket",
		Singular: "supermarket",
		Plural:   "supermarkets",
		Solutions: []Solution{
			{PainPoint: "long checkout queues drive shoppers away", Feature: "barcode scanning that keeps lanes moving"},
			{PainPoint: "shrinkage hides inside thousands of SKUs", Feature: "variance reports comparing counted against sold stock"},
			{PainPoint: "expiry dates slip past unnoticed", Feature: "expiry tracking with clearance reminders"},
		},
		Keywords: []string{"supermarket POS system", "retail POS Kenya", "barcode POS software"},
		Priority: 9,
	},
	{
		Slug:     "pharmacy",
		Singular: "pharmacy",
		Plural:   "pharmacies",
		Solutions: []Solution{
			{PainPoint: "dispensing without batch records risks PPB penalties", Feature: "batch and expiry capture on every sale"},
			{PainPoint: "fast-moving drugs run out without warning", Feature: "reorder-level alerts per product"},
			{PainPoint: "insurance and cash sales are reconciled by hand", Feature: "split-payment receipts with payer tagging"},
		},
		Keywords: []string{"pharmacy POS system", "chemist software Kenya", "pharmacy stock management"},
		Priority: 8,
	},
	{
		Slug:     "salon",
		Singular: "salon",
		Plural:   "salons",
		Solutions: []Solution{
			{PainPoint: "walk-ins leave when they cannot see who is free", Feature: "staff schedule board with service queue"},
			{PainPoint: "commissions cause end-of-month disputes", Feature: "automatic per-stylist commission tracking"},
			{PainPoint: "retail products expire on the shelf", Feature: "product stock levels beside service sales"},
		},
		Keywords: []string{"salon POS system", "salon management software Kenya", "spa POS"},
		Priority: 7,
	},
	{
		Slug:     "butchery",
		Singular: "butchery",
		Plural:   "butcheries",
		Solutions: []Solution{
			{PainPoint: "weighing and pricing by memory leaks margin", Feature: "scale-linked pricing by cut and weight"},
			{PainPoint: "daily meat intake versus sales never balances", Feature: "carcass-to-counter yield reports"},
		},
		Keywords: []string{"butchery POS system", "meat shop software Kenya"},
		Priority: 6,
	},
	{
		Slug:     "hardware",
		Singular: "hardware store",
		Plural:   "hardware stores",
		Solutions: []Solution{
			{PainPoint: "thousands of items priced from a worn notebook", Feature: "searchable price list with bulk import"},
			{PainPoint: "credit sales to fundis go untracked", Feature: "customer accounts with outstanding-balance statements"},
			{PainPoint: "cement and steel quantities drift between deliveries", Feature: "goods-received notes matched to supplier invoices"},
		},
		Keywords: []string{"hardware store POS", "hardware shop software Kenya"},
		Priority: 6,
	},
	{
		Slug:     "boutique",
		Singular: "boutique",
		Plural:   "boutiques",
		Solutions: []Solution{
			{PainPoint: "sizes and colours sell out unevenly with no record", Feature: "variant-level stock per size and colour"},
			{PainPoint: "seasonal stock ties up cash", Feature: "slow-mover reports that flag markdown candidates"},
		},
		Keywords: []string{"boutique POS system", "clothing shop software Kenya"},
		Priority: 5,
	},
	{
		Slug:     "barbershop",
		Singular: "barbershop",
		Plural:   "barbershops",
		Solutions: []Solution{
			{PainPoint: "cash handed to barbers disappears before closing", Feature: "per-chair takings recorded at the counter"},
			{PainPoint: "regulars have no reason to return", Feature: "loyalty visit counts with reward prompts"},
		},
		Keywords: []string{"barbershop POS", "kinyozi software Kenya"},
		Priority: 5,
	},
	{
		Slug:     "chemist",
		Singular: "chemist",
		Plural:   "chemists",
		Solutions: []Solution{
			{PainPoint: "counter sales happen faster than the book can record", Feature: "two-tap quick sale for over-the-counter items"},
			{PainPoint: "duplicate stock across shelves and store", Feature: "single stock ledger across display and backroom"},
		},
		Keywords: []string{"chemist POS Kenya", "duka la dawa software"},
		Priority: 4,
	},
	{
		Slug:     "electronics",
		Singular: "electronics shop",
		Plural:   "electronics shops",
		Solutions: []Solution{
			{PainPoint: "serial numbers and warranties live in a drawer of receipts", Feature: "serial-number capture tied to each sale"},
			{PainPoint: "high-value stock walks out unnoticed", Feature: "item-level audit trail from intake to sale"},
		},
		Keywords: []string{"electronics shop POS", "phone shop software Kenya"},
		Priority: 4,
	},
}
