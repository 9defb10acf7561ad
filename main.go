package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gym-backend/config"
	"gym-backend/controllers"
	"gym-backend/routes"
	"gym-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("ERROR: JWT_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established, migrations applied")

	// Optional dashboard cache
	cache := config.NewRedisClient()
	if cache == nil {
		log.Println("Redis not configured or unreachable; dashboard cache disabled")
	}

	// Initialize services
	salleService := services.NewSalleService(db)
	clientService := services.NewClientService(db)
	reservationService := services.NewReservationService(db)
	dashboardService := services.NewDashboardService(db, cache, clientService, salleService, reservationService)

	// Initialize controllers
	salleController := controllers.NewSalleController(salleService)
	clientController := controllers.NewClientController(clientService)
	reservationController := controllers.NewReservationController(reservationService)
	dashboardController := controllers.NewDashboardController(dashboardService)
	authController := controllers.NewAuthController(jwtSecret)

	router := routes.SetupRouter(
		reservationController,
		salleController,
		clientController,
		dashboardController,
		authController,
		jwtSecret,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
