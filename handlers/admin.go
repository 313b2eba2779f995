package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/black-sheep-marketing/blacksheep-calendar/config"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/booking"
	"github.com/black-sheep-marketing/blacksheep-calendar/utils"
)

// adminTokenTTL bounds how long an issued dashboard token stays valid.
const adminTokenTTL = 24 * time.Hour

// AdminHandler serves the internal dashboard endpoints.
type AdminHandler struct {
	Bookings booking.Service
}

func NewAdminHandler(bookings booking.Service) *AdminHandler {
	return &AdminHandler{Bookings: bookings}
}

// Login exchanges the shared admin secret for a JWT.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Secret string `json:"secret" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	configured := config.AppConfig.AdminAPISecret
	if configured == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin access is not configured"})
		return
	}
	if input.Secret != configured {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid admin secret"})
		return
	}

	token, err := utils.GenerateToken("admin", adminTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(adminTokenTTL.Seconds()),
	})
}

// ListBookings returns every booking, newest first.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Bookings.ListBookings(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(bookings),
		"bookings": bookings,
	})
}
