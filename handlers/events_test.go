package handlers

import (
	"net/http"
	"testing"

	"eventhub-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetEvent(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "Alice", "alice@example.com", "secret123", models.RoleUser)

	eventID := env.createEvent(t, token, "Tech Night", 0)

	w := env.do(t, http.MethodGet, "/events/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Event     models.Event `json:"event"`
		RsvpCount int64        `json:"rsvp_count"`
	}
	decodeJSON(t, w, &got)
	assert.Equal(t, eventID, got.Event.ID)
	assert.Equal(t, "Tech Night", got.Event.Title)
	assert.Equal(t, models.EventApproved, got.Event.Status)
	assert.Zero(t, got.RsvpCount)
}

func TestCreateEventRejectsMissingFields(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "Alice", "alice@example.com", "secret123", models.RoleUser)

	w := env.do(t, http.MethodPost, "/api/events", token, map[string]string{
		"title": "No date",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/events", token, CreateEventRequest{
		Title:       "Bad date",
		Description: "d",
		Location:    "l",
		Date:        "next tuesday",
		Time:        "18:00",
		Category:    "misc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListEventsWithFilters(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "Alice", "alice@example.com", "secret123", models.RoleUser)

	env.createEvent(t, token, "Tech talks", 0)
	env.createEvent(t, token, "Garden party", 0)

	w := env.do(t, http.MethodGet, "/events?q=TECH", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var events []models.Event
	decodeJSON(t, w, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "Tech talks", events[0].Title)

	w = env.do(t, http.MethodGet, "/events?date_from=2026-10-01&date_to=2026-10-01", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &events)
	assert.Len(t, events, 2)

	w = env.do(t, http.MethodGet, "/events?date_from=bogus", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateEventAuthorization(t *testing.T) {
	env := newTestEnv(t)
	_, ownerToken := env.createUser(t, "Owner", "owner@example.com", "secret123", models.RoleUser)
	_, strangerToken := env.createUser(t, "Stranger", "stranger@example.com", "secret123", models.RoleUser)
	_, adminToken := env.createUser(t, "Admin", "admin@example.com", "secret123", models.RoleAdmin)

	env.createEvent(t, ownerToken, "Original", 0)
	path := "/api/events/1"

	w := env.do(t, http.MethodPut, path, ownerToken, map[string]string{"title": "Owner renamed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, http.MethodPut, path, strangerToken, map[string]string{"title": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPut, path, adminToken, map[string]string{"title": "Admin renamed"})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Event
	decodeJSON(t, w, &updated)
	assert.Equal(t, "Admin renamed", updated.Title)
}

func TestDeleteEventAuthorization(t *testing.T) {
	env := newTestEnv(t)
	_, ownerToken := env.createUser(t, "Owner", "owner@example.com", "secret123", models.RoleUser)
	_, strangerToken := env.createUser(t, "Stranger", "stranger@example.com", "secret123", models.RoleUser)

	env.createEvent(t, ownerToken, "Doomed", 0)

	w := env.do(t, http.MethodDelete, "/api/events/1", strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodDelete, "/api/events/1", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/events/1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAttendeesVisibleToOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	_, ownerToken := env.createUser(t, "Owner", "owner@example.com", "secret123", models.RoleUser)
	_, guestToken := env.createUser(t, "Guest", "guest@example.com", "secret123", models.RoleUser)

	env.createEvent(t, ownerToken, "Meetup", 0)

	w := env.do(t, http.MethodPost, "/api/events/1/rsvp", guestToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/events/1/attendees", guestToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/api/events/1/attendees", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rsvps []models.Rsvp
	decodeJSON(t, w, &rsvps)
	require.Len(t, rsvps, 1)
	assert.Equal(t, "Guest", rsvps[0].User.Name)
}
