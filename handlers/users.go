package handlers

import (
	"net/http"

	"eventhub-backend/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler serves profile reads and updates. Every operation is gated by
// the same owner-or-admin policy as event mutation.
type UserHandler struct {
	accounts *store.AccountDirectory
}

func NewUserHandler(accounts *store.AccountDirectory) *UserHandler {
	return &UserHandler{accounts: accounts}
}

type UpdateProfileRequest struct {
	Name   string `json:"name" binding:"required"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func (h *UserHandler) Get(c *gin.Context) {
	actorID, role, ok := actorFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	targetID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if !store.CanMutate(actorID, role, targetID) {
		jsonError(c, http.StatusForbidden, "forbidden")
		return
	}

	user, err := h.accounts.FindByID(c.Request.Context(), targetID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	actorID, role, ok := actorFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	targetID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if !store.CanMutate(actorID, role, targetID) {
		jsonError(c, http.StatusForbidden, "forbidden")
		return
	}

	var body UpdateProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	user, err := h.accounts.UpdateProfile(c.Request.Context(), targetID, body.Name, body.Bio, body.Avatar)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	actorID, role, ok := actorFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	targetID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if !store.CanMutate(actorID, role, targetID) {
		jsonError(c, http.StatusForbidden, "forbidden")
		return
	}

	var body ChangePasswordRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	user, err := h.accounts.FindByID(c.Request.Context(), targetID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.CurrentPassword)) != nil {
		jsonError(c, http.StatusBadRequest, "current password incorrect")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "could not hash password")
		return
	}
	if err := h.accounts.UpdatePasswordHash(c.Request.Context(), targetID, string(hash)); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
