package handlers

import (
	"net/http"
	"strconv"
	"time"

	"eventhub-backend/models"
	"eventhub-backend/store"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	catalog    *store.EventCatalog
	attendance *store.AttendanceStore
}

func NewEventHandler(catalog *store.EventCatalog, attendance *store.AttendanceStore) *EventHandler {
	return &EventHandler{catalog: catalog, attendance: attendance}
}

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Date        string `json:"date" binding:"required"` // RFC3339 or YYYY-MM-DD
	Time        string `json:"time" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Capacity    int    `json:"capacity"`
	Image       string `json:"image"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Category    *string `json:"category"`
	Capacity    *int    `json:"capacity"`
	Image       *string `json:"image"`
}

func (h *EventHandler) Create(c *gin.Context) {
	userID, _, ok := actorFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body CreateEventRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	date, err := parseDate(body.Date)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid date format (use RFC3339 or YYYY-MM-DD)")
		return
	}

	event, err := h.catalog.Create(c.Request.Context(), userID, models.Event{
		Title:       body.Title,
		Description: body.Description,
		Location:    body.Location,
		Date:        date,
		Time:        body.Time,
		Category:    body.Category,
		Capacity:    body.Capacity,
		Image:       body.Image,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// List is public. Query params: q, category, date_from, date_to,
// created_by, attendee_id, status.
func (h *EventHandler) List(c *gin.Context) {
	filter := store.EventFilter{
		TitleContains: c.Query("q"),
		Category:      c.Query("category"),
		Status:        c.Query("status"),
	}

	if v := c.Query("date_from"); v != "" {
		from, err := parseDate(v)
		if err != nil {
			jsonError(c, http.StatusBadRequest, "invalid date_from format")
			return
		}
		filter.DateFrom = from
	}
	if v := c.Query("date_to"); v != "" {
		to, err := parseDate(v)
		if err != nil {
			jsonError(c, http.StatusBadRequest, "invalid date_to format")
			return
		}
		// Inclusive upper bound: extend to end of day.
		filter.DateTo = to.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	}
	if v := c.Query("created_by"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			jsonError(c, http.StatusBadRequest, "invalid created_by")
			return
		}
		filter.OwnerID = uint(id)
	}
	if v := c.Query("attendee_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			jsonError(c, http.StatusBadRequest, "invalid attendee_id")
			return
		}
		filter.AttendeeID = uint(id)
	}

	events, err := h.catalog.List(c.Request.Context(), filter)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// Get returns the event with its current joined count.
func (h *EventHandler) Get(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	event, err := h.catalog.Get(c.Request.Context(), eventID)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	count, err := h.attendance.CountJoined(c.Request.Context(), eventID)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event, "rsvp_count": count})
}

func (h *EventHandler) Update(c *gin.Context) {
	userID, role, ok := actorFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var body UpdateEventRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	patch := store.EventPatch{
		Title:       body.Title,
		Description: body.Description,
		Location:    body.Location,
		Time:        body.Time,
		Category:    body.Category,
		Capacity:    body.Capacity,
		Image:       body.Image,
	}
	if body.Date != nil {
		date, err := parseDate(*body.Date)
		if err != nil {
			jsonError(c, http.StatusBadRequest, "invalid date format (use RFC3339 or YYYY-MM-DD)")
			return
		}
		patch.Date = &date
	}

	event, err := h.catalog.Update(c.Request.Context(), eventID, userID, role, patch)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	userID, role, ok := actorFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), eventID, userID, role); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

// Attendees lists the joined records for an event. Restricted to the event
// owner or an admin.
func (h *EventHandler) Attendees(c *gin.Context) {
	userID, role, ok := actorFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	event, err := h.catalog.Get(c.Request.Context(), eventID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	if !store.CanMutate(userID, role, event.CreatedBy) {
		jsonError(c, http.StatusForbidden, "only the owner can view attendees")
		return
	}

	rsvps, err := h.attendance.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, rsvps)
}
