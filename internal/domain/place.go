package domain

// RatingUnavailable marks a place whose upstream rating was missing.
// Ranking treats it as the lowest possible value.
const RatingUnavailable float64 = -1

// PlaceRecommendation is the canonical record for restaurants, attractions,
// and business venues. The synthetic fallback produces the same shape, so
// callers never see a different schema.
type PlaceRecommendation struct {
	// Name is the venue's display name
	Name string `json:"name"`

	// Address is the formatted street address
	Address string `json:"address"`

	// Phone is the formatted phone number, when known
	Phone string `json:"phone,omitempty"`

	// Website is the venue's own site, falling back to its map page
	Website string `json:"website,omitempty"`

	// Rating is the average user rating, or RatingUnavailable
	Rating float64 `json:"rating"`

	// RatingCount is the number of ratings behind Rating
	RatingCount int `json:"ratingCount"`

	// Hours is a short opening-hours summary
	Hours string `json:"hours,omitempty"`

	// Category describes the kind of place (e.g., "Museum", "Coworking Space")
	Category string `json:"category,omitempty"`

	// PriceText is a human price-level hint (e.g., "$$ (Moderate)")
	PriceText string `json:"priceText,omitempty"`

	// MapURL is the canonical map link for the place
	MapURL string `json:"mapUrl,omitempty"`

	// PlaceID is the upstream's unique place identifier, used for dedup
	PlaceID string `json:"placeId,omitempty"`

	// Provenance records whether this is real or synthetic data
	Provenance Provenance `json:"provenance"`
}

// RatingOrZero returns the rating with unavailable mapped to 0, for ranking.
func (p *PlaceRecommendation) RatingOrZero() float64 {
	if p.Rating < 0 {
		return 0
	}
	return p.Rating
}

// InfoSource is a source link behind a local-info summary.
type InfoSource struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// LocalInfo is a summarized answer to one destination research category
// (weather, culture, safety, transportation).
type LocalInfo struct {
	// Category is the research category label
	Category string `json:"category"`

	// Icon is a short glyph shown next to the category
	Icon string `json:"icon,omitempty"`

	// Summary combines the top result snippets
	Summary string `json:"summary"`

	// Sources are the pages the summary was drawn from
	Sources []InfoSource `json:"sources,omitempty"`
}

// Event is a live event happening around the travel dates.
type Event struct {
	// Name is the event title
	Name string `json:"name"`

	// Description is a truncated listing snippet
	Description string `json:"description"`

	// Date is the extracted event date, or "Date TBA"
	Date string `json:"date"`

	// Website is the listing or booking page
	Website string `json:"website"`

	// LinkType classifies Website (ticket booking, social media, info)
	LinkType string `json:"linkType"`

	// LinkText is the suggested call-to-action label
	LinkText string `json:"linkText"`

	// Category is the event search category
	Category string `json:"category"`

	// Icon is a short glyph for the category
	Icon string `json:"icon,omitempty"`
}
