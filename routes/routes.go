package routes

import (
	"net/http"
	"time"

	"innbook/handlers"
	"innbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoomRoutes registers room inventory and availability endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		// Public booking-site endpoints.
		api.GET("", hb.Rooms.ListRoomsHandler)
		api.GET("/available", hb.Rooms.GetAvailableRoomsHandler)
		api.POST("/check-availability", hb.Rooms.CheckAvailabilityHandler)
		api.GET("/:id", hb.Rooms.GetRoomByIDHandler)

		// Inventory management requires a staff account.
		staff := api.Group("")
		staff.Use(middleware.JWTAuthGuestMiddleware(hb.GuestRepo), middleware.AdminOnlyMiddleware(hb.GuestRepo))
		staff.POST("", hb.Rooms.CreateRoomHandler)
		staff.PUT("/:id", hb.Rooms.UpdateRoomHandler)
		staff.DELETE("/:id", hb.Rooms.DeleteRoomHandler)
		staff.POST("/:id/image", hb.Rooms.UploadRoomImageHandler)
	}
}

// RegisterReservationRoutes registers the booking endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.JWTAuthGuestMiddleware(hb.GuestRepo))
		api.POST("", hb.Reservations.CreateReservationHandler)
		api.GET("/mine", hb.Reservations.GetMyReservationsHandler)
		api.GET("/:id", hb.Reservations.GetReservationHandler)
		api.POST("/:id/checkout-intent", hb.Reservations.CreateCheckoutIntentHandler)
		api.PUT("/:id/confirm", hb.Reservations.ConfirmReservationHandler)
		api.PUT("/:id/cancel", hb.Reservations.CancelReservationHandler)

		staff := api.Group("")
		staff.Use(middleware.AdminOnlyMiddleware(hb.GuestRepo))
		staff.GET("", hb.Reservations.ListReservationsHandler)
		staff.PUT("/:id/check-in", hb.Reservations.CheckInHandler)
		staff.PUT("/:id/check-out", hb.Reservations.CheckOutHandler)
	}
}

// RegisterGuestRoutes registers account endpoints.
func RegisterGuestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/guests")
	{
		api.POST("/register", hb.Guests.RegisterGuestHandler)
		api.POST("/login", hb.Guests.AuthenticateGuestHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthGuestMiddleware(hb.GuestRepo))
		api.GET("/me", hb.Guests.GetCurrentGuestHandler)
		api.DELETE("/revoke", hb.Guests.RevokeGuestTokenHandler)

		staff := api.Group("")
		staff.Use(middleware.AdminOnlyMiddleware(hb.GuestRepo))
		staff.GET("", hb.Guests.ListGuestsHandler)
		staff.PUT("/:id", hb.Guests.UpdateGuestHandler)
		staff.DELETE("/:id", hb.Guests.DeleteGuestHandler)
	}
}

// RegisterServiceRoutes registers the add-on service catalog.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Services.ListServicesHandler)

		staff := api.Group("")
		staff.Use(middleware.JWTAuthGuestMiddleware(hb.GuestRepo), middleware.AdminOnlyMiddleware(hb.GuestRepo))
		staff.POST("", hb.Services.CreateServiceHandler)
		staff.PUT("/:id", hb.Services.UpdateServiceHandler)
		staff.DELETE("/:id", hb.Services.DeleteServiceHandler)
	}
}

// RegisterAdminRoutes registers staff console endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthGuestMiddleware(hb.GuestRepo), middleware.AdminOnlyMiddleware(hb.GuestRepo))
		api.GET("/dashboard", hb.Dashboard.GetStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Innbook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRoomRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterGuestRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
