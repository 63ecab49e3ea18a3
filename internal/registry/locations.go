package registry

// defaultLocations is the built-in city table. Priority follows rough market
// size: 9-10 for the big five, lower for satellite and coastal towns.
var defaultLocations = []Location{
	{Slug: "nairobi", Name: "Nairobi", County: "Nairobi", Population: 4397073, BusinessDensity: TierHigh, MobileMoneyUsage: TierHigh, Priority: 10},
	{Slug: "mombasa", Name: "Mombasa", County: "Mombasa", Population: 1208333, BusinessDensity: TierHigh, MobileMoneyUsage: TierHigh, Priority: 9},
	{Slug: "kisumu", Name: "Kisumu", County: "Kisumu", Population: 610082, BusinessDensity: TierHigh, MobileMoneyUsage: TierHigh, Priority: 9},
	{Slug: "nakuru", Name: "Nakuru", County: "Nakuru", Population: 570674, BusinessDensity: TierHigh, MobileMoneyUsage: TierHigh, Priority: 8},
	{Slug: "eldoret", Name: "Eldoret", County: "Uasin Gishu", Population: 475716, BusinessDensity: TierHigh, MobileMoneyUsage: TierHigh, Priority: 8},
	{Slug: "thika", Name: "Thika", County: "Kiambu", Population: 251407, BusinessDensity: TierMedium, MobileMoneyUsage: TierHigh, Priority: 7},
	{Slug: "ruiru", Name: "Ruiru", County: "Kiambu", Population: 490120, BusinessDensity: TierMedium, MobileMoneyUsage: TierHigh, Priority: 6},
	{Slug: "machakos", Name: "Machakos", County: "Machakos", Population: 150041, BusinessDensity: TierMedium, MobileMoneyUsage: TierHigh, Priority: 6},
	{Slug: "naivasha", Name: "Naivasha", County: "Nakuru", Population: 198444, BusinessDensity: TierMedium, MobileMoneyUsage: TierHigh, Priority: 6},
	{Slug: "kitale", Name: "Kitale", County: "Trans Nzoia", Population: 162174, BusinessDensity: TierMedium, MobileMoneyUsage: TierMedium, Priority: 5},
	{Slug: "nyeri", Name: "Nyeri", County: "Nyeri", Population: 125357, BusinessDensity: TierMedium, MobileMoneyUsage: TierHigh, Priority: 5},
	{Slug: "meru", Name: "Meru", County: "Meru", Population: 80191, BusinessDensity: TierMedium, MobileMoneyUsage: TierMedium, Priority: 5},
	{Slug: "kakamega", Name: "Kakamega", County: "Kakamega", Population: 107227, BusinessDensity: TierMedium, MobileMoneyUsage: TierMedium, Priority: 5},
	{Slug: "kisii", Name: "Kisii", County: "Kisii", Population: 112417, BusinessDensity: TierMedium, MobileMoneyUsage: TierMedium, Priority: 4},
	{Slug: "kericho", Name: "Kericho", County: "Kericho", Population: 51049, BusinessDensity: TierLow, MobileMoneyUsage: TierMedium, Priority: 4},
	{Slug: "embu", Name: "Embu", County: "Embu", Population: 64979, BusinessDensity: TierLow, MobileMoneyUsage: TierMedium, Priority: 4},
	{Slug: "malindi", Name: "Malindi", County: "Kilifi", Population: 119859, BusinessDensity: TierMedium, MobileMoneyUsage: TierMedium, Priority: 4},
	{Slug: "garissa", Name: "Garissa", County: "Garissa", Population: 163399, BusinessDensity: TierLow, MobileMoneyUsage: TierMedium, Priority: 3},
	{Slug: "kitengela", Name: "Kitengela", County: "Kajiado", Population: 154436, BusinessDensity: TierMedium, MobileMoneyUsage: TierHigh, Priority: 3},
	{Slug: "narok", Name: "Narok", County: "Narok", Population: 40000, BusinessDensity: TierLow, MobileMoneyUsage: TierMedium, Priority: 2},
}
