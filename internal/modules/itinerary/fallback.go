// README: Deterministic fallback itinerary builder (no AI involved).
package itinerary

import "fmt"

// BuildFallback constructs a generic day-by-day itinerary for a valid
// TripRequest. It is pure and total: given the same request it always
// produces the same response, and it never fails.
//
// Days alternate between the first three and the last three entries of a
// fixed four-suggestion pool, so consecutive days do not read identically.
func BuildFallback(req TripRequest) ItineraryResponse {
	total := req.TotalDays()
	days := make([]DayPlan, 0, total)
	for i := 0; i < total; i++ {
		pool := []string{
			fmt.Sprintf("Explore iconic landmarks in %s", req.City),
			"Sample local cuisine at a recommended spot",
			"Visit a museum, gallery, or cultural center",
			"Walk through scenic neighborhoods or parks",
		}
		activities := pool[:3]
		if i%2 == 1 {
			activities = pool[1:]
		}
		days = append(days, DayPlan{
			Day:        i + 1,
			Date:       req.StartDate.AddDays(i),
			Summary:    fmt.Sprintf("Discover highlights of %s", req.City),
			Activities: activities,
		})
	}
	return ItineraryResponse{
		City:      req.City,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Days:      days,
	}
}
