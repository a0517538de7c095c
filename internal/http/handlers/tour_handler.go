// README: Tour CRUD handlers.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"journey/internal/modules/tour"
)

type TourHandler struct {
	svc *tour.Service
}

func NewTourHandler(svc *tour.Service) *TourHandler {
	return &TourHandler{svc: svc}
}

type createTourReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Location    string  `json:"location"`
}

func (h *TourHandler) Create(c *gin.Context) {
	var req createTourReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	t, err := h.svc.Create(c.Request.Context(), tour.CreateCommand{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		writeTourError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, t)
}

func (h *TourHandler) List(c *gin.Context) {
	tours, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeTourError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, tours)
}

func (h *TourHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid tour id")
		return
	}
	t, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeTourError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, t)
}
