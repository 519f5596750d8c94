// Package domain contains the core business entities and rules for the travel
// plan aggregation service. These entities are provider-agnostic and form the
// foundation upon which all other components are built.
package domain

import (
	"fmt"
	"regexp"
	"time"
)

// TimeWindow expresses a preferred departure or return time-of-day band.
type TimeWindow string

// Supported time windows.
const (
	WindowMorning   TimeWindow = "morning"    // 06:00-12:00
	WindowAfternoon TimeWindow = "afternoon"  // 12:00-18:00
	WindowEvening   TimeWindow = "evening"    // 18:00-23:59
	WindowLateNight TimeWindow = "late_night" // 00:00-06:00
	WindowAny       TimeWindow = "any"
)

// IsValid checks if the time window is a known value.
func (w TimeWindow) IsValid() bool {
	switch w {
	case WindowMorning, WindowAfternoon, WindowEvening, WindowLateNight, WindowAny:
		return true
	default:
		return false
	}
}

// HourRange returns the window's bounds as "HH:MM" strings.
// ok is false for WindowAny, which imposes no filter.
func (w TimeWindow) HourRange() (from, to string, ok bool) {
	switch w {
	case WindowMorning:
		return "06:00", "12:00", true
	case WindowAfternoon:
		return "12:00", "18:00", true
	case WindowEvening:
		return "18:00", "23:59", true
	case WindowLateNight:
		return "00:00", "06:00", true
	default:
		return "", "", false
	}
}

// RouteRequest defines the parameters for a round-trip flight search.
type RouteRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "DUR")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "JNB")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate"`

	// Passengers is the size of the travelling party (1-10)
	Passengers int `json:"passengers"`

	// DepartureWindow is the preferred outbound time of day
	DepartureWindow TimeWindow `json:"departureWindow,omitempty"`

	// ReturnWindow is the preferred inbound time of day
	ReturnWindow TimeWindow `json:"returnWindow,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the route request is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (r *RouteRequest) Validate() error {
	if r.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(r.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, r.Origin)
	}

	if r.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(r.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, r.Destination)
	}

	if r.Origin == r.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	depart, err := parseDateField("departureDate", r.DepartureDate)
	if err != nil {
		return err
	}
	ret, err := parseDateField("returnDate", r.ReturnDate)
	if err != nil {
		return err
	}
	if ret.Before(depart) {
		return fmt.Errorf("%w: returnDate must not be before departureDate", ErrInvalidRequest)
	}

	if r.Passengers < 1 {
		return fmt.Errorf("%w: passengers must be at least 1", ErrInvalidRequest)
	}
	if r.Passengers > 10 {
		return fmt.Errorf("%w: passengers cannot exceed 10", ErrInvalidRequest)
	}

	if r.DepartureWindow != "" && !r.DepartureWindow.IsValid() {
		return fmt.Errorf("%w: departureWindow must be one of: morning, afternoon, evening, late_night, any; got %q", ErrInvalidRequest, r.DepartureWindow)
	}
	if r.ReturnWindow != "" && !r.ReturnWindow.IsValid() {
		return fmt.Errorf("%w: returnWindow must be one of: morning, afternoon, evening, late_night, any; got %q", ErrInvalidRequest, r.ReturnWindow)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (r *RouteRequest) SetDefaults() {
	if r.Passengers == 0 {
		r.Passengers = 1
	}
	if r.DepartureWindow == "" {
		r.DepartureWindow = WindowAny
	}
	if r.ReturnWindow == "" {
		r.ReturnWindow = WindowAny
	}
}

// TripDays returns the trip length in days, with a minimum of one day.
func (r *RouteRequest) TripDays() int {
	depart, err1 := time.Parse("2006-01-02", r.DepartureDate)
	ret, err2 := time.Parse("2006-01-02", r.ReturnDate)
	if err1 != nil || err2 != nil {
		return 1
	}
	days := int(ret.Sub(depart).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

func parseDateField(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
	}
	if !dateRegex.MatchString(value) {
		return time.Time{}, fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return t, nil
}
