package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/bandwise/internal/scoring"
	"github.com/abhisek/bandwise/internal/session"
	"github.com/abhisek/bandwise/internal/skill"
)

// errBadRequest marks malformed request bodies and parameters.
var errBadRequest = errors.New("bad request")

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNoPendingQuestion),
		errors.Is(err, session.ErrNoPracticeSkill):
		return http.StatusConflict
	case errors.Is(err, errBadRequest),
		errors.Is(err, skill.ErrUnknownSkill),
		errors.Is(err, skill.ErrUnknownDifficulty),
		errors.Is(err, session.ErrUnknownLanguage),
		errors.Is(err, session.ErrEmptyUserID),
		errors.Is(err, scoring.ErrInvalidPlan):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "request_id", c.GetString("request_id"), "error", err)
		msg = "internal error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
