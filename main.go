package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hotel-booking/config"
	"hotel-booking/controllers"
	"hotel-booking/metrics"
	"hotel-booking/routes"
	"hotel-booking/services"
	"hotel-booking/utils"
)

func setupLogger() {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_FORMAT")), "console") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env not found, continuing with environment variables")
	}

	setupLogger()
	metrics.Register()

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	log.Info().Msg("database connection established, migrations applied")

	// services
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	invoiceService := services.NewInvoiceService(db)
	authService := services.NewAuthService(db)

	// controllers
	authController := controllers.NewAuthController(authService)
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	invoiceController := controllers.NewInvoiceController(invoiceService)
	adminController := controllers.NewAdminController(roomService, bookingService, invoiceService)

	// ADMIN_API_KEY is optional: unset leaves the admin routes open
	adminKey := strings.TrimSpace(os.Getenv("ADMIN_API_KEY"))
	if adminKey == "" {
		log.Warn().Msg("ADMIN_API_KEY not set; admin routes are unauthenticated")
	}

	router := routes.SetupRouter(
		authController,
		roomController,
		bookingController,
		invoiceController,
		adminController,
		adminKey,
	)

	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen and serve failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped gracefully")
}
