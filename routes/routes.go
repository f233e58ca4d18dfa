package routes

import (
	"net/http"
	"time"

	"medibook/handlers"
	"medibook/middleware"
	"medibook/services/admin"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Medibook"})
	})
}

// RegisterBookingRoutes sets up the public booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/doctors", bh.ListDoctors)
		bookingGroup.GET("/policies", bh.GetPolicies)
		bookingGroup.GET("/availability", bh.GetAvailability)
		bookingGroup.POST("/session", bh.StartSession)
		bookingGroup.GET("/session/:sessionID", bh.GetSession)
		bookingGroup.PUT("/session/:sessionID/selection", bh.UpdateSelection)
		bookingGroup.PUT("/session/:sessionID/time", bh.SelectTime)
		bookingGroup.POST("/session/:sessionID/confirm", bh.Confirm)
		bookingGroup.DELETE("/session/:sessionID", bh.Cancel)
		bookingGroup.POST("/payment/verify", bh.VerifyPayment)
	}
}

// RegisterAdminRoutes sets up endpoints for back-office operations.
func RegisterAdminRoutes(r *gin.Engine, ah *handlers.AdminHandler, adminSvc admin.AdminService) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", ah.Login)

		protected := adminGroup.Group("")
		protected.Use(middleware.AdminAuthMiddleware(adminSvc))
		protected.POST("/logout", ah.Logout)
		protected.GET("/slotbooking", ah.ListSlots)
		protected.POST("/slotbooking/create", ah.CreateSlot)
		protected.PUT("/slotbooking/update", ah.UpdateSlot)
		protected.DELETE("/slotbooking/delete", ah.DeleteSlot)
		protected.GET("/doctor", ah.ListDoctors)
		protected.GET("/patient", ah.ListPatients)
		protected.GET("/appointment", ah.ListAppointments)
		protected.GET("/payment", ah.ListPayments)
		protected.DELETE("/payment/delete", ah.DeletePayment)
		protected.GET("/policies", ah.GetPolicies)
		protected.PUT("/policies", ah.EditPolicies)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler, ah *handlers.AdminHandler, adminSvc admin.AdminService) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, bh)
	RegisterAdminRoutes(r, ah, adminSvc)
}
