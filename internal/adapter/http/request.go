// Package http provides the HTTP handler layer for the travel plan API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
)

// SearchFlightsRequest is the request body for direct flight search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "DUR")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "JNB")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate"`

	// Passengers is the party size (1-10, defaults to 1)
	Passengers int `json:"passengers"`

	// DepartureWindow is the preferred outbound time of day (optional)
	DepartureWindow string `json:"departureWindow,omitempty"`

	// ReturnWindow is the preferred inbound time of day (optional)
	ReturnWindow string `json:"returnWindow,omitempty"`

	// Cheapest limits the response to the N cheapest offers (optional)
	Cheapest int `json:"cheapest,omitempty"`
}

// CreateSessionRequest is the request body for session signup.
type CreateSessionRequest struct {
	// Email is the signup email
	Email string `json:"email"`
}

// GeneratePlanRequest is the request body for plan generation.
type GeneratePlanRequest struct {
	// Source is the departure as a "City, Country" label or an IATA code
	Source string `json:"source"`

	// Destination is the destination as a "City, Country" label or an IATA code
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate"`

	// Travelers is the party size (1-10, defaults to 1)
	Travelers int `json:"travelers"`

	// Theme is the travel theme: business, couple, family, adventure, solo
	Theme string `json:"theme,omitempty"`

	// Budget is the budget tier: economy, standard, luxury
	Budget string `json:"budget,omitempty"`

	// Activities are free-text activity preferences
	Activities string `json:"activities,omitempty"`

	// CuisineType is an optional cuisine preference
	CuisineType string `json:"cuisineType,omitempty"`

	// DepartureWindow is the preferred outbound time of day (optional)
	DepartureWindow string `json:"departureWindow,omitempty"`

	// ReturnWindow is the preferred inbound time of day (optional)
	ReturnWindow string `json:"returnWindow,omitempty"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	emailPattern       = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// ToMap converts validation errors to a field->message map.
func (v *ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		m[e.Field] = e.Message
	}
	return m
}

func (v *ValidationErrors) add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

func (v *ValidationErrors) orNil() error {
	if len(v.Errors) == 0 {
		return nil
	}
	return v
}

// Validate checks the flight search request.
func (r *SearchFlightsRequest) Validate() error {
	v := &ValidationErrors{}

	validateAirportCode(v, "origin", strings.ToUpper(strings.TrimSpace(r.Origin)))
	validateAirportCode(v, "destination", strings.ToUpper(strings.TrimSpace(r.Destination)))
	validateDate(v, "departureDate", r.DepartureDate)
	validateDate(v, "returnDate", r.ReturnDate)
	validatePartySize(v, "passengers", r.Passengers)
	validateWindow(v, "departureWindow", r.DepartureWindow)
	validateWindow(v, "returnWindow", r.ReturnWindow)

	if r.Cheapest < 0 {
		v.add("cheapest", "cheapest must not be negative")
	}

	return v.orNil()
}

// Validate checks the session signup request.
func (r *CreateSessionRequest) Validate() error {
	v := &ValidationErrors{}
	if strings.TrimSpace(r.Email) == "" {
		v.add("email", "email is required")
	} else if !emailPattern.MatchString(r.Email) {
		v.add("email", "email is not a valid address")
	}
	return v.orNil()
}

// Validate checks the plan generation request.
func (r *GeneratePlanRequest) Validate() error {
	v := &ValidationErrors{}

	if strings.TrimSpace(r.Source) == "" {
		v.add("source", "source is required")
	}
	if strings.TrimSpace(r.Destination) == "" {
		v.add("destination", "destination is required")
	}
	validateDate(v, "departureDate", r.DepartureDate)
	validateDate(v, "returnDate", r.ReturnDate)
	validatePartySize(v, "travelers", r.Travelers)

	if r.Theme != "" && !domain.IsValidTheme(r.Theme) {
		v.add("theme", "theme must be one of: business, couple, family, adventure, solo")
	}
	if r.Budget != "" && !domain.IsValidBudget(r.Budget) {
		v.add("budget", "budget must be one of: economy, standard, luxury")
	}
	validateWindow(v, "departureWindow", r.DepartureWindow)
	validateWindow(v, "returnWindow", r.ReturnWindow)

	return v.orNil()
}

func validateAirportCode(v *ValidationErrors, field, code string) {
	if code == "" {
		v.add(field, fmt.Sprintf("%s is required", field))
		return
	}
	if !airportCodePattern.MatchString(code) {
		v.add(field, fmt.Sprintf("%s must be a 3-letter IATA code", field))
	}
}

func validateDate(v *ValidationErrors, field, date string) {
	if date == "" {
		v.add(field, fmt.Sprintf("%s is required", field))
		return
	}
	if !datePattern.MatchString(date) {
		v.add(field, fmt.Sprintf("%s must be in YYYY-MM-DD format", field))
	}
}

func validatePartySize(v *ValidationErrors, field string, n int) {
	if n < 0 {
		v.add(field, fmt.Sprintf("%s must not be negative", field))
	}
	if n > 10 {
		v.add(field, fmt.Sprintf("%s cannot exceed 10", field))
	}
}

func validateWindow(v *ValidationErrors, field, w string) {
	if w != "" && !domain.TimeWindow(w).IsValid() {
		v.add(field, fmt.Sprintf("%s must be one of: morning, afternoon, evening, late_night, any", field))
	}
}
