package retail

import "strings"

// CuratedStore is a store known from enthusiast reports to receive
// allocations, with how it hands them out.
type CuratedStore struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone,omitempty"`
	AllocationType string `json:"allocation_type"`
	Notes          string `json:"notes"`
	Website        string `json:"website,omitempty"`
}

var allocationStores = map[string][]CuratedStore{
	"louisville_ky": {
		{
			Name:           "Westport Whiskey & Wine",
			Address:        "1115 Herr Ln, Louisville, KY 40222",
			Phone:          "(502) 618-4683",
			AllocationType: "raffle",
			Notes:          "Known for a fair raffle system. Follow on social media for raffle announcements; must be present to win.",
		},
		{
			Name:           "Old Town Liquors",
			Address:        "1529 Bardstown Rd, Louisville, KY 40205",
			Phone:          "(502) 451-8591",
			AllocationType: "points",
			Notes:          "Points earned through purchases. Known for getting BTAC, Weller and Blanton's.",
		},
		{
			Name:           "Julio's Liquors",
			Address:        "4327 Bishop Ln, Louisville, KY 40218",
			Phone:          "(502) 485-0200",
			AllocationType: "list",
			Notes:          "Sign up for the allocation list in-store. Long-time customers get priority.",
		},
	},
	"nashville_tn": {
		{
			Name:           "Frugal MacDoogal",
			Address:        "1950 Gallatin Pike N, Madison, TN 37115",
			Phone:          "(615) 868-0450",
			AllocationType: "first_come",
			Notes:          "First-come drops on delivery days, usually Thursday mornings. Known for BTAC drops.",
		},
		{
			Name:           "Corkdorks Wine Spirits Beer Midtown",
			Address:        "1610 Church Street, Nashville, TN 37203",
			Phone:          "(615) 327-3874",
			AllocationType: "raffle",
			Notes:          "Raffle system for allocated bottles. Sign up in-store; loyal customers prioritized.",
		},
		{
			Name:           "Red Dog Wine & Spirits",
			Address:        "2410 Elliston Pl, Nashville, TN 37203",
			Phone:          "(615) 327-9893",
			AllocationType: "list",
			Notes:          "Allocation list system. Build a relationship first. Known for store picks.",
		},
	},
	"dallas_tx": {
		{
			Name:           "Goody Goody Liquor",
			Address:        "Multiple DFW locations",
			Phone:          "(214) 350-6973",
			AllocationType: "lottery",
			Notes:          "Online lottery; winners notified by email. Fair and transparent process.",
			Website:        "goodygoody.com",
		},
		{
			Name:           "Spec's Wine, Spirits & Finer Foods",
			Address:        "Multiple DFW locations",
			AllocationType: "spend_based",
			Notes:          "Loyalty program required; higher spenders get first access.",
		},
		{
			Name:           "Times Ten Cellars",
			Address:        "6324 Prospect Ave, Dallas, TX 75214",
			Phone:          "(214) 824-9463",
			AllocationType: "list",
			Notes:          "Excellent bourbon selection and a fair allocation process.",
		},
	},
	"atlanta_ga": {
		{
			Name:           "Green's Beverages",
			Address:        "2625 Piedmont Rd NE, Atlanta, GA 30324",
			Phone:          "(404) 233-3845",
			AllocationType: "list",
			Notes:          "Sign up for the allocation list. Known for getting Weller, BTAC and Blanton's.",
		},
		{
			Name:           "Tower Beer Wine & Spirits",
			Address:        "2161 Piedmont Rd NE, Atlanta, GA 30324",
			Phone:          "(404) 233-5432",
			AllocationType: "raffle",
			Notes:          "Raffle system for allocated bottles; follow on social media for announcements.",
		},
		{
			Name:           "Hop City Beer & Wine",
			Address:        "1000 Marietta St NW, Atlanta, GA 30318",
			Phone:          "(404) 968-2537",
			AllocationType: "first_come",
			Notes:          "Drops announced on Instagram, first-come basis. Known for store picks.",
		},
	},
	"chicago_il": {
		{
			Name:           "Binny's Beverage Depot",
			Address:        "Multiple Chicago locations",
			AllocationType: "lottery",
			Notes:          "Online lottery for card members, winners drawn randomly.",
			Website:        "binnys.com",
		},
		{
			Name:           "Warehouse Liquors",
			Address:        "2900 N Ashland Ave, Chicago, IL 60657",
			Phone:          "(773) 278-6750",
			AllocationType: "list",
			Notes:          "Allocation list; build a relationship with the owner.",
		},
	},
	"denver_co": {
		{
			Name:           "Argonaut Wine & Liquor",
			Address:        "760 E Colfax Ave, Denver, CO 80203",
			Phone:          "(303) 831-7788",
			AllocationType: "list",
			Notes:          "Legendary bourbon selection with an allocation list for regulars.",
		},
		{
			Name:           "Daveco Liquors",
			Address:        "300 S Pearl St, Denver, CO 80209",
			Phone:          "(303) 777-3615",
			AllocationType: "points",
			Notes:          "Points earned through purchases. Known for BTAC and Pappy drops.",
		},
	},
}

// Nearby metros borrow the closest curated list as a proxy.
var cityAliases = map[string]string{
	"louisville": "louisville_ky",
	"lexington":  "louisville_ky",
	"nashville":  "nashville_tn",
	"memphis":    "nashville_tn",
	"dallas":     "dallas_tx",
	"fort worth": "dallas_tx",
	"dfw":        "dallas_tx",
	"houston":    "dallas_tx",
	"austin":     "dallas_tx",
	"atlanta":    "atlanta_ga",
	"chicago":    "chicago_il",
	"denver":     "denver_co",
}

// AllocationStoresFor returns the curated allocation stores for a location,
// or nil when no curated data covers it.
func AllocationStoresFor(location string) []CuratedStore {
	lower := strings.ToLower(strings.TrimSpace(location))
	for alias, key := range cityAliases {
		if strings.Contains(lower, alias) {
			return allocationStores[key]
		}
	}
	return nil
}

// Curated premium cigar retailers by city.
var cigarRetailers = map[string][]CuratedStore{
	"philadelphia": {
		{Name: "Holt's Cigar Company", Address: "1522 Walnut St, Philadelphia, PA 19102"},
		{Name: "Smoke", Address: "210 W Rittenhouse Square, Philadelphia, PA 19103"},
	},
	"new york": {
		{Name: "Davidoff of Geneva", Address: "535 Madison Ave, New York, NY 10022"},
		{Name: "Barclay Rex", Address: "7 Maiden Ln, New York, NY 10038"},
		{Name: "Nat Sherman", Address: "12 E 42nd St, New York, NY 10017"},
	},
	"chicago": {
		{Name: "Iwan Ries & Co", Address: "19 S Wabash Ave, Chicago, IL 60603"},
		{Name: "Up Down Cigar", Address: "1550 N Wells St, Chicago, IL 60610"},
	},
	"miami": {
		{Name: "El Titan de Bronze", Address: "1071 SW 8th St, Miami, FL 33130"},
		{Name: "Smoke Inn", Address: "8970 S Dixie Hwy, Miami, FL 33156"},
	},
	"los angeles": {
		{Name: "Maxamar", Address: "10918 Weyburn Ave, Los Angeles, CA 90024"},
		{Name: "Cigars Etc", Address: "12657 Ventura Blvd, Studio City, CA 91604"},
	},
}

// CigarRetailersFor returns curated cigar shops for a location, or nil.
func CigarRetailersFor(location string) []CuratedStore {
	lower := strings.ToLower(strings.TrimSpace(location))
	for city, stores := range cigarRetailers {
		if strings.Contains(lower, city) {
			return stores
		}
	}
	return nil
}
