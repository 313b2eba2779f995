// File: blacksheep-calendar/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Public endpoints
	GetMonthAvailability gin.HandlerFunc
	CreateBooking        gin.HandlerFunc

	// Admin endpoints
	AdminLogin        gin.HandlerFunc
	AdminListBookings gin.HandlerFunc
}
