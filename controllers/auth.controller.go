// File: controllers/auth.controller.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"printhouse-backend/auth"
	"printhouse-backend/middleware"
	"printhouse-backend/models"
)

// Login handles the admin login flow. On success the session token is set
// as an HTTP-only cookie and also returned in the body for API clients.
func (ctrl *Controller) Login(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	user, err := auth.VerifyCredentials(ctx, ctrl.DB, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	sessionUser := models.SessionUser{
		ID:    user.ID.Hex(),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
	token, err := auth.CreateSessionToken(ctrl.Cfg.AuthSecret, sessionUser)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate token"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, int(auth.SessionDuration.Seconds()), "/", "", ctrl.Cfg.Env == "production", true)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": sessionUser, "token": token})
}

// Logout clears the session cookie.
func (ctrl *Controller) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", ctrl.Cfg.Env == "production", true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// Me returns the current session user.
func (ctrl *Controller) Me(c *gin.Context) {
	session := middleware.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": session.User, "expiresAt": session.ExpiresAt})
}
