package handlers

import (
	"errors"
	"net/http"
	"time"

	"eventhub-backend/models"
	"eventhub-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler serves signup and login. Token verification itself lives in
// middleware; this handler only issues tokens.
type AuthHandler struct {
	accounts  *store.AccountDirectory
	jwtSecret string
}

func NewAuthHandler(accounts *store.AccountDirectory, jwtSecret string) *AuthHandler {
	return &AuthHandler{accounts: accounts, jwtSecret: jwtSecret}
}

// GenerateToken signs a 24h HS256 token carrying the actor identity.
func GenerateToken(userID uint, role, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var body SignupRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "could not hash password")
		return
	}

	user, err := h.accounts.Create(c.Request.Context(), body.Name, body.Email, string(hash))
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			jsonError(c, http.StatusConflict, "email already registered")
			return
		}
		writeStoreError(c, err)
		return
	}

	token, err := GenerateToken(user.ID, user.Role, h.jwtSecret)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "could not generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	user, err := h.accounts.FindByEmail(c.Request.Context(), body.Email)
	if err != nil {
		jsonError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if user.Status == models.StatusBlocked {
		jsonError(c, http.StatusForbidden, "account blocked")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
		jsonError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := GenerateToken(user.ID, user.Role, h.jwtSecret)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "could not generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
