package ledger

// seedCatalog is the built-in list of common fixed costs and subscriptions.
var seedCatalog = []string{
	// Housing & utilities
	"Rent",
	"Mortgage",
	"Property Tax",
	"HOA Fees",
	"Home Insurance",
	"Electricity",
	"Water",
	"Gas",
	"Sewer",
	"Trash",
	"Internet",
	"Landline",

	// Phones
	"Mobile Phone",

	// Transport
	"Car Loan",
	"Car Insurance",
	"Fuel",
	"Parking",
	"Public Transit Pass",

	// Insurance & health
	"Health Insurance",
	"Dental Insurance",
	"Life Insurance",
	"Disability Insurance",
	"Pet Insurance",

	// Loans & credit
	"Student Loan",
	"Personal Loan",
	"Credit Card Payment",
	"Mortgage Payment",

	// Streaming, music & media
	"Netflix",
	"Amazon Prime",
	"Prime Video",
	"Disney+",
	"Disney+ Hotstar",
	"Hulu",
	"Hotstar",
	"HBO Max",
	"YouTube Premium",
	"Apple TV+",
	"SonyLIV",
	"Zee5",
	"JioSaavn",
	"Gaana",
	"Spotify",
	"Apple Music",
	"Audible",

	// Cloud & software
	"Google One",
	"iCloud",
	"Dropbox",
	"Adobe Creative Cloud",
	"Microsoft 365",
	"Domain Hosting",
	"Web Hosting",
	"Zoom Pro",
	"Notion (paid)",
	"Figma (paid)",

	// Memberships, savings & services
	"Gym Membership",
	"Childcare/Daycare",
	"School Tuition",
	"401k Contribution",
	"Brokerage Auto-Invest",
	"Cleaning Service",
	"Estimated Taxes",
	"Emergency Fund Transfer",
}

// SeedCatalog returns a copy of the built-in catalog in display order.
func SeedCatalog() []string {
	return append([]string(nil), seedCatalog...)
}
