// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/handlers"
	"medibook/routes"
	"medibook/services/admin"
	"medibook/services/booking"
	"medibook/services/slotadmin"
	"medibook/upstream"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Upstream clinic API client.
	clinicAPI := upstream.NewClient()

	// services.
	bookingService := &booking.DefaultSessionService{
		Slots:        clinicAPI,
		Appointments: clinicAPI,
		Payments:     clinicAPI,
		Cache:        utils.GetSessionCacheClient(),
		Locks:        utils.GetCacheClient(),
		SessionTTL:   time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
	}
	slotAdminService := &slotadmin.DefaultService{
		API: clinicAPI,
	}
	adminService := &admin.DefaultAdminService{
		Policies: clinicAPI,
		Cache:    utils.GetSessionCacheClient(),
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, clinicAPI, clinicAPI, logger)
	adminHandler := handlers.NewAdminHandler(adminService, slotAdminService, clinicAPI, logger)

	routes.RegisterRoutes(router, bookingHandler, adminHandler, adminService)

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
