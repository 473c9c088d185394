package handlers

import (
	"net/http"

	"eventhub-backend/models"
	"eventhub-backend/store"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the moderation panel: user blocking, event
// approval/rejection/removal and dashboard stats. Routes using it sit
// behind AdminMiddleware.
type AdminHandler struct {
	accounts *store.AccountDirectory
	catalog  *store.EventCatalog
}

func NewAdminHandler(accounts *store.AccountDirectory, catalog *store.EventCatalog) *AdminHandler {
	return &AdminHandler{accounts: accounts, catalog: catalog}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.accounts.ListAll(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ToggleBlockUser flips the account between active and blocked.
func (h *AdminHandler) ToggleBlockUser(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}

	user, err := h.accounts.FindByID(c.Request.Context(), userID)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	updated, err := h.accounts.SetBlocked(c.Request.Context(), userID, user.Status == models.StatusActive)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) ListEvents(c *gin.Context) {
	events, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *AdminHandler) ApproveEvent(c *gin.Context) {
	h.setEventStatus(c, models.EventApproved)
}

func (h *AdminHandler) RejectEvent(c *gin.Context) {
	h.setEventStatus(c, models.EventRejected)
}

func (h *AdminHandler) setEventStatus(c *gin.Context, status string) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	event, err := h.catalog.SetStatus(c.Request.Context(), eventID, status)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent removes any event regardless of owner. The catalog's policy
// gate passes because the actor is an admin.
func (h *AdminHandler) DeleteEvent(c *gin.Context) {
	userID, _, ok := actorFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), eventID, userID, models.RoleAdmin); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	totalUsers, err := h.accounts.Count(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}
	totalEvents, err := h.catalog.Count(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_users": totalUsers, "total_events": totalEvents})
}
