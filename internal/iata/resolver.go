// Package iata resolves "City, Country" labels to 3-letter IATA airport
// codes using a curated lookup table, with a deterministic fallback for
// unlisted cities.
package iata

import (
	"fmt"
	"strings"
)

// cityToIATA covers the curated city list the planner's form offers.
var cityToIATA = map[string]string{
	"Mumbai, India":                  "BOM",
	"Delhi, India":                   "DEL",
	"Durban, South Africa":           "DUR",
	"Johannesburg, South Africa":     "JNB",
	"London, United Kingdom":         "LHR",
	"New York, Usa":                  "JFK",
	"Paris, France":                  "CDG",
	"Tokyo, Japan":                   "HND",
	"Cape Town, South Africa":        "CPT",
	"Port Elizabeth, South Africa":   "PLZ",
	"Bloemfontein, South Africa":     "BFN",
	"East London, South Africa":      "ELS",
	"George, South Africa":           "GRJ",
	"Kimberley, South Africa":        "KIM",
	"Upington, South Africa":         "UTN",
	"Pietermaritzburg, South Africa": "PZB",
	"Polokwane, South Africa":        "PTG",
	"Nelspruit, South Africa":        "MQP",
}

// airportDisplayNames gives friendly names for the airports the mock data
// and plan summaries reference.
var airportDisplayNames = map[string]string{
	"JNB": "Johannesburg (O.R. Tambo)",
	"CPT": "Cape Town International",
	"DUR": "Durban (King Shaka)",
	"JFK": "New York (JFK)",
	"LAX": "Los Angeles International",
	"LHR": "London Heathrow",
	"CDG": "Paris Charles de Gaulle",
	"NRT": "Tokyo Narita",
	"HND": "Tokyo Haneda",
	"SYD": "Sydney Kingsford Smith",
}

// Resolve maps a "City, Country" label to an IATA code. On a table miss it
// derives a pseudo-code from the first 3 letters of the city portion,
// space-stripped and uppercased. The function is total: it never errors.
// A label that already looks like a 3-letter code passes through uppercased.
func Resolve(cityCountry string) string {
	if code, ok := cityToIATA[cityCountry]; ok {
		return code
	}

	city := cityCountry
	if idx := strings.Index(cityCountry, ","); idx >= 0 {
		city = cityCountry[:idx]
	}
	city = strings.ReplaceAll(strings.TrimSpace(city), " ", "")
	if len(city) > 3 {
		city = city[:3]
	}
	return strings.ToUpper(city)
}

// AirportDisplayName returns a friendly display name for an airport code,
// falling back to "XXX Airport".
func AirportDisplayName(code string) string {
	if name, ok := airportDisplayNames[code]; ok {
		return name
	}
	return fmt.Sprintf("%s Airport", code)
}

// Cities returns the curated city labels, for form option lists.
func Cities() []string {
	out := make([]string, 0, len(cityToIATA))
	for city := range cityToIATA {
		out = append(out, city)
	}
	return out
}
