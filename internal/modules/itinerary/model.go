// README: Trip request/response model and request validation.
package itinerary

import (
	"errors"
	"fmt"
	"strings"

	"journey/internal/types"
)

const (
	minCityLen  = 2
	maxCityLen  = 80
	maxTripDays = 30
)

// ErrBadRequest marks trip requests rejected before any external call.
var ErrBadRequest = errors.New("bad request")

// TripRequest is an immutable, per-request description of the trip to plan.
type TripRequest struct {
	City      string     `json:"city"`
	StartDate types.Date `json:"start_date"`
	EndDate   types.Date `json:"end_date"`
}

// Validate trims the city and enforces the request invariants: city length,
// date order, and the 30-day trip cap. Errors wrap ErrBadRequest.
func (r *TripRequest) Validate() error {
	r.City = strings.TrimSpace(r.City)
	if len(r.City) < minCityLen || len(r.City) > maxCityLen {
		return fmt.Errorf("%w: city must be %d-%d characters", ErrBadRequest, minCityLen, maxCityLen)
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", ErrBadRequest)
	}
	if r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("%w: end_date must be on or after start_date", ErrBadRequest)
	}
	if r.TotalDays() > maxTripDays {
		return fmt.Errorf("%w: trip length cannot exceed %d days", ErrBadRequest, maxTripDays)
	}
	return nil
}

// TotalDays is the inclusive day count of the trip.
func (r TripRequest) TotalDays() int {
	return r.StartDate.DaysUntil(r.EndDate) + 1
}

// DayPlan is one day of an itinerary.
type DayPlan struct {
	Day        int        `json:"day"`
	Date       types.Date `json:"date"`
	Summary    string     `json:"summary"`
	Activities []string   `json:"activities"`
}

// ItineraryResponse covers every date in [StartDate, EndDate] exactly once,
// in order, with day numbers contiguous from 1.
type ItineraryResponse struct {
	City      string     `json:"city"`
	StartDate types.Date `json:"start_date"`
	EndDate   types.Date `json:"end_date"`
	Days      []DayPlan  `json:"days"`
}

// validate checks a parsed model response against the schema invariants for
// the originating request. Any violation routes the caller to the fallback.
func (resp *ItineraryResponse) validate(req TripRequest) error {
	if strings.TrimSpace(resp.City) == "" {
		return errors.New("missing city")
	}
	if !resp.StartDate.Equal(req.StartDate) || !resp.EndDate.Equal(req.EndDate) {
		return errors.New("date range does not match the request")
	}
	if len(resp.Days) != req.TotalDays() {
		return fmt.Errorf("expected %d days, got %d", req.TotalDays(), len(resp.Days))
	}
	for i, d := range resp.Days {
		if d.Day != i+1 {
			return fmt.Errorf("day %d out of sequence (number %d)", i+1, d.Day)
		}
		if want := req.StartDate.AddDays(i); !d.Date.Equal(want) {
			return fmt.Errorf("day %d has date %s, want %s", i+1, d.Date, want)
		}
		if strings.TrimSpace(d.Summary) == "" {
			return fmt.Errorf("day %d has an empty summary", i+1)
		}
		if len(d.Activities) == 0 {
			return fmt.Errorf("day %d has no activities", i+1)
		}
	}
	return nil
}
