package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/locatotal/presence-backend-go/pkg/response"
)

// AuthHandler issues API tokens from the shared secret
type AuthHandler struct {
	secret string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{secret: secret}
}

type tokenRequest struct {
	Secret string `json:"secret" binding:"required"`
}

// IssueToken handles POST /api/v1/auth/token. A caller presenting the
// shared secret receives a signed bearer token for the mutating routes.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid token request", err)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.secret)) != 1 {
		response.Error(c, http.StatusUnauthorized, "Invalid secret", nil)
		return
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "api",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.secret))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to sign token", err)
		return
	}

	response.Success(c, gin.H{"token": token, "expiresAt": claims.ExpiresAt.Unix()})
}
