// README: Trip planning handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journey/internal/modules/itinerary"
)

type ItineraryHandler struct {
	svc *itinerary.Service
}

func NewItineraryHandler(svc *itinerary.Service) *ItineraryHandler {
	return &ItineraryHandler{svc: svc}
}

// PlanTrip handles POST /plan_trip. Validation failures are client errors;
// past validation the planner always answers with a usable itinerary.
func (h *ItineraryHandler) PlanTrip(c *gin.Context) {
	var req itinerary.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(c, http.StatusOK, h.svc.PlanTrip(c.Request.Context(), req))
}
