package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/availability"
	"github.com/black-sheep-marketing/blacksheep-calendar/utils"
)

// AvailabilityHandler serves the blocked-slot view backing the booking
// page's month grid.
type AvailabilityHandler struct {
	Svc         availability.Service
	Cache       *redis.Client
	DefaultZone string
	CacheTTL    time.Duration
}

func NewAvailabilityHandler(svc availability.Service, cache *redis.Client, defaultZone string, cacheTTL time.Duration) *AvailabilityHandler {
	return &AvailabilityHandler{
		Svc:         svc,
		Cache:       cache,
		DefaultZone: defaultZone,
		CacheTTL:    cacheTTL,
	}
}

type monthAvailabilityResponse struct {
	Year     int                  `json:"year"`
	Month    int                  `json:"month"`
	Timezone string               `json:"timezone"`
	Blocked  []models.TimeSlotKey `json:"blocked"`
}

func availabilityCacheKey(year, month int, zone string) string {
	return fmt.Sprintf("availability:%04d-%02d:%s", year, month, zone)
}

// GetMonthAvailability returns every blocked slot for the requested month,
// expressed in the requested timezone. Month is one-based.
func (h *AvailabilityHandler) GetMonthAvailability(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 || year > 9999 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a valid calendar year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 (January) and 12 (December)"})
		return
	}

	loc, err := availability.ResolveZone(c.Query("timezone"), h.DefaultZone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no usable timezone configured"})
		return
	}

	ctx := context.Background()
	cacheKey := availabilityCacheKey(year, month, loc.String())
	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	blocked, err := h.Svc.MonthlyBlockedSlots(ctx, year, time.Month(month), loc)
	if err != nil {
		if availability.IsCalendarUnavailable(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "calendar is unreachable, please retry shortly"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
		return
	}

	payload, err := json.Marshal(monthAvailabilityResponse{
		Year:     year,
		Month:    month,
		Timezone: loc.String(),
		Blocked:  blocked.Keys(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode availability"})
		return
	}

	if h.Cache != nil {
		if err := h.Cache.Set(ctx, cacheKey, payload, h.CacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("availability: failed to cache snapshot",
				zap.String("key", cacheKey), zap.Error(err))
		}
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
