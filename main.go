// File: innbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"innbook/config"
	"innbook/cron"
	"innbook/database"
	guestRepoPkg "innbook/database/repository/guest"
	reservationRepoPkg "innbook/database/repository/reservation"
	roomRepoPkg "innbook/database/repository/room"
	serviceRepoPkg "innbook/database/repository/service"
	"innbook/handlers"
	"innbook/middleware"
	"innbook/routes"
	"innbook/services/availability"
	"innbook/services/guest"
	"innbook/services/hotelservice"
	"innbook/services/payment"
	"innbook/services/reservation"
	"innbook/services/room"
	"innbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	guestRepo := guestRepoPkg.NewMongoGuestRepo()
	serviceRepo := serviceRepoPkg.NewMongoHotelServiceRepo()

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		RoomRepo:        roomRepo,
		ReservationRepo: reservationRepo,
	}
	reservationService := &reservation.DefaultReservationService{
		Repo:         reservationRepo,
		RoomRepo:     roomRepo,
		Availability: availabilityService,
		Holds:        reservation.NewAsynqHoldScheduler(),
	}
	roomService := &room.DefaultRoomService{Repo: roomRepo}
	guestService := &guest.DefaultGuestService{Repo: guestRepo}
	catalogService := &hotelservice.DefaultHotelServiceCatalog{Repo: serviceRepo}
	checkoutService := payment.NewStripeCheckoutService(logger)

	// Release PENDING holds that never reach checkout.
	cron.InitHoldWorker(reservationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GuestRepo:    guestRepo,
		Rooms:        handlers.NewRoomHandler(roomService, availabilityService, cloudinaryStorageService),
		Reservations: handlers.NewReservationHandler(reservationService, checkoutService),
		Guests:       handlers.NewGuestHandler(guestService),
		Services:     handlers.NewHotelServiceHandler(catalogService),
		Dashboard:    handlers.NewDashboardHandler(roomRepo, reservationRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
