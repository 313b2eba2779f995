// File: blacksheep-calendar/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"github.com/black-sheep-marketing/blacksheep-calendar/config"
	"github.com/black-sheep-marketing/blacksheep-calendar/cron"
	"github.com/black-sheep-marketing/blacksheep-calendar/database"
	bookingRepo "github.com/black-sheep-marketing/blacksheep-calendar/database/repository/booking"
	"github.com/black-sheep-marketing/blacksheep-calendar/handlers"
	"github.com/black-sheep-marketing/blacksheep-calendar/middleware"
	"github.com/black-sheep-marketing/blacksheep-calendar/models"
	"github.com/black-sheep-marketing/blacksheep-calendar/routes"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/availability"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/booking"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/calendar"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/crm"
	"github.com/black-sheep-marketing/blacksheep-calendar/services/notification"
	"github.com/black-sheep-marketing/blacksheep-calendar/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Google Calendar is the availability source of truth; nothing works
	// without it.
	calendarService, err := calendar.NewGoogleCalendarService(
		context.Background(),
		config.AppConfig.GoogleCredentialsFile,
		config.AppConfig.GoogleCalendarID,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize google calendar service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingStore := bookingRepo.NewMongoBookingRepo()

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Events: calendarService,
		Buffers: models.BufferConfig{
			Warmup:   time.Duration(config.AppConfig.WarmupMinutes) * time.Minute,
			Cooldown: time.Duration(config.AppConfig.CooldownMinutes) * time.Minute,
		},
		Hours: models.WorkingHours{
			Start: config.AppConfig.WorkDayStartHour,
			End:   config.AppConfig.WorkDayEndHour,
		},
	}

	taskClient := asynq.NewClient(utils.QueueRedisOpt())
	defer taskClient.Close()

	bookingService := &booking.DefaultBookingService{
		Store:        bookingStore,
		Availability: availabilityService,
		Checker: &booking.ConflictChecker{
			Store:        bookingStore,
			MinLeadHours: config.AppConfig.MinLeadHours,
		},
		Tasks:        taskClient,
		DefaultZone:  config.AppConfig.DefaultTimezone,
		ReminderLead: time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour,
	}

	notificationService := notification.NewDefaultNotificationService(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPFrom,
	)

	crmService := crm.NewDefaultCRMService(
		config.AppConfig.CRMBaseURL,
		config.AppConfig.CRMAPIKey,
		nil,
	)

	// handlers.
	cacheTTL := time.Duration(config.AppConfig.AvailabilityTTLSecs) * time.Second
	availabilityHandler := handlers.NewAvailabilityHandler(
		availabilityService,
		utils.GetCacheClient(),
		config.AppConfig.DefaultTimezone,
		cacheTTL,
	)
	bookingHandler := handlers.NewBookingHandler(
		bookingService,
		utils.GetCacheClient(),
		config.AppConfig.DefaultTimezone,
	)
	adminHandler := handlers.NewAdminHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetMonthAvailability: availabilityHandler.GetMonthAvailability,
		CreateBooking:        bookingHandler.CreateBooking,
		AdminLogin:           adminHandler.Login,
		AdminListBookings:    adminHandler.ListBookings,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Side-effect worker: calendar insert, confirmation email, CRM tag.
	cron.InitBookingWorker(bookingStore, calendarService, notificationService, crmService)

	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetQueueClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
