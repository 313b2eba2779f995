package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/availability"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/booking"
)

// BookingHandler serves the public booking endpoint.
type BookingHandler struct {
	Svc         booking.Service
	Cache       *redis.Client
	DefaultZone string
}

func NewBookingHandler(svc booking.Service, cache *redis.Client, defaultZone string) *BookingHandler {
	return &BookingHandler{Svc: svc, Cache: cache, DefaultZone: defaultZone}
}

// CreateBooking books a demo call.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := context.Background()
	booked, err := h.Svc.BookDemoCall(ctx, req)
	if err != nil {
		switch {
		case booking.IsTooSoon(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case booking.IsSlotTaken(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case availability.IsInvalidTimezone(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case availability.IsCalendarUnavailable(err):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "calendar is unreachable, please retry shortly"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to book the call"})
		}
		return
	}

	// Drop the cached month snapshots this booking touches. The calendar
	// event itself lands asynchronously, so the cache TTL covers the rest
	// of the gap.
	h.invalidateMonth(ctx, booked)

	c.JSON(http.StatusCreated, gin.H{"booking": booked})
}

func (h *BookingHandler) invalidateMonth(ctx context.Context, booked *models.Booking) {
	if h.Cache == nil || len(booked.Key.Date) < 7 {
		return
	}
	yearMonth := booked.Key.Date[:7]
	keys := []string{"availability:" + yearMonth + ":" + booked.Timezone}
	if h.DefaultZone != "" && h.DefaultZone != booked.Timezone {
		keys = append(keys, "availability:"+yearMonth+":"+h.DefaultZone)
	}
	h.Cache.Del(ctx, keys...)
}
