package handlers

import (
	"errors"
	"net/http"

	"eventhub-backend/store"

	"github.com/gin-gonic/gin"
)

type RsvpHandler struct {
	attendance *store.AttendanceStore
}

func NewRsvpHandler(attendance *store.AttendanceStore) *RsvpHandler {
	return &RsvpHandler{attendance: attendance}
}

// Join records the caller as attending. Idempotent: repeating the call
// leaves a single joined record.
func (h *RsvpHandler) Join(c *gin.Context) {
	userID, _, ok := actorFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	rsvp, err := h.attendance.Join(c.Request.Context(), userID, eventID)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			jsonError(c, http.StatusConflict, "event is full")
			return
		}
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rsvp)
}

// Cancel marks the caller's RSVP cancelled. Cancelling twice is a no-op
// success; cancelling without ever joining is a 404.
func (h *RsvpHandler) Cancel(c *gin.Context) {
	userID, _, ok := actorFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	rsvp, err := h.attendance.Cancel(c.Request.Context(), userID, eventID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, rsvp)
}
