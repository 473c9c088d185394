package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"eventhub-backend/models"
	"eventhub-backend/store"

	"github.com/gin-gonic/gin"
)

func jsonError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"error": msg})
}

// actorFromContext expects AuthMiddleware to have set "user_id" and "role".
func actorFromContext(c *gin.Context) (uint, string, bool) {
	uid, exists := c.Get("user_id")
	if !exists {
		return 0, "", false
	}
	userID, ok := uid.(uint)
	if !ok {
		return 0, "", false
	}
	role, _ := c.Get("role")
	actorRole, ok := role.(string)
	if !ok || actorRole == "" {
		actorRole = models.RoleUser
	}
	return userID, actorRole, true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		jsonError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// writeStoreError maps the store failure taxonomy to HTTP status codes in
// one place.
func writeStoreError(c *gin.Context, err error) {
	var validation *store.ValidationError
	switch {
	case errors.As(err, &validation):
		jsonError(c, http.StatusBadRequest, validation.Msg)
	case errors.Is(err, store.ErrNotFound):
		jsonError(c, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrForbidden):
		jsonError(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, store.ErrConflict):
		jsonError(c, http.StatusConflict, "conflict")
	default:
		jsonError(c, http.StatusInternalServerError, "internal error")
	}
}

// parseDate accepts RFC3339 or YYYY-MM-DD.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
