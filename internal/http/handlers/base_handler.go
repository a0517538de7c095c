// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"journey/internal/modules/chat"
	"journey/internal/modules/tour"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeChatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrRateLimited):
		writeError(c, http.StatusTooManyRequests, "API rate limit exceeded. Please try again later.")
	case errors.Is(err, chat.ErrUnavailable):
		writeError(c, http.StatusInternalServerError, "External API service temporarily unavailable. Please try again later.")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeTourError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tour.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, tour.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
