package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Daniyar457/Legacy_Vault/internal/config"
	"github.com/Daniyar457/Legacy_Vault/internal/database"
	"github.com/Daniyar457/Legacy_Vault/internal/handlers"
	"github.com/Daniyar457/Legacy_Vault/internal/jobs"
	"github.com/Daniyar457/Legacy_Vault/internal/repository"
	"github.com/Daniyar457/Legacy_Vault/internal/scheduler"
	"github.com/Daniyar457/Legacy_Vault/internal/services"
	"github.com/Daniyar457/Legacy_Vault/pkg/logger"
	"github.com/Daniyar457/Legacy_Vault/pkg/middleware"
	"github.com/Daniyar457/Legacy_Vault/pkg/notify"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// Redis holds the expiring phase-1 registration payloads.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	nomineeRepo := repository.NewNomineeRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	actionRepo := repository.NewAdminActionRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	registrationRepo := repository.NewRegistrationRepository(redisClient, cfg.RegistrationTTL)

	// --- Services ---
	activityService := services.NewActivityService(activityRepo)
	userService := services.NewUserService(userRepo, registrationRepo, activityService, cfg.AdminEmail, cfg.AdminPassword)
	wellBeingService := services.NewWellBeingService(userRepo)
	nomineeService := services.NewNomineeService(nomineeRepo, userRepo)
	assetService := services.NewAssetService(assetRepo, userRepo)
	moodService := services.NewMoodService(moodRepo, userRepo)
	adminService := services.NewAdminService(actionRepo, userRepo, activityService)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, cfg)
	wellBeingHandler := handlers.NewWellBeingHandler(wellBeingService)
	nomineeHandler := handlers.NewNomineeHandler(nomineeService)
	assetHandler := handlers.NewAssetHandler(assetService)
	moodHandler := handlers.NewMoodHandler(moodService)
	adminHandler := handlers.NewAdminHandler(wellBeingService, adminService, activityService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Registration and login are the only unauthenticated routes
	router.HandleFunc("/users/register/initiate", userHandler.InitiateRegistrationHandler).Methods("POST")
	router.HandleFunc("/users/register/complete", userHandler.CompleteRegistrationHandler).Methods("POST")
	router.HandleFunc("/users/login", userHandler.LoginHandler).Methods("POST")

	// Protected user routes
	protectedUserRoutes := router.PathPrefix("/users").Subrouter()
	protectedUserRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedUserRoutes.HandleFunc("/me", userHandler.GetMeHandler).Methods("GET")
	protectedUserRoutes.HandleFunc("/me", userHandler.UpdateMeHandler).Methods("PATCH")

	// Well-being routes
	wellBeingRoutes := router.PathPrefix("/wellbeing").Subrouter()
	wellBeingRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	wellBeingRoutes.HandleFunc("/checkin", wellBeingHandler.CheckInHandler).Methods("POST")
	wellBeingRoutes.HandleFunc("/settings", wellBeingHandler.GetSettingsHandler).Methods("GET")
	wellBeingRoutes.HandleFunc("/settings", wellBeingHandler.UpdateSettingsHandler).Methods("PUT")

	// Nominee routes
	nomineeRoutes := router.PathPrefix("/nominees").Subrouter()
	nomineeRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	nomineeRoutes.HandleFunc("", nomineeHandler.CreateNomineeHandler).Methods("POST")
	nomineeRoutes.HandleFunc("", nomineeHandler.GetNomineesHandler).Methods("GET")
	nomineeRoutes.HandleFunc("/{id}", nomineeHandler.GetNomineeHandler).Methods("GET")
	nomineeRoutes.HandleFunc("/{id}", nomineeHandler.UpdateNomineeHandler).Methods("PUT")
	nomineeRoutes.HandleFunc("/{id}", nomineeHandler.DeleteNomineeHandler).Methods("DELETE")

	// Asset routes
	assetRoutes := router.PathPrefix("/assets").Subrouter()
	assetRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	assetRoutes.HandleFunc("", assetHandler.CreateAssetHandler).Methods("POST")
	assetRoutes.HandleFunc("", assetHandler.GetAssetsHandler).Methods("GET")
	assetRoutes.HandleFunc("/{id}", assetHandler.GetAssetHandler).Methods("GET")
	assetRoutes.HandleFunc("/{id}", assetHandler.UpdateAssetHandler).Methods("PUT")
	assetRoutes.HandleFunc("/{id}", assetHandler.DeleteAssetHandler).Methods("DELETE")

	// Mood routes
	moodRoutes := router.PathPrefix("/moods").Subrouter()
	moodRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	moodRoutes.HandleFunc("", moodHandler.CreateMoodEntryHandler).Methods("POST")
	moodRoutes.HandleFunc("", moodHandler.GetMoodEntriesHandler).Methods("GET")

	// Admin routes
	adminRoutes := router.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	adminRoutes.Use(middleware.RequireRole("admin"))
	adminRoutes.HandleFunc("/wellbeing/exceeded", adminHandler.ListExceededHandler).Methods("GET")
	adminRoutes.HandleFunc("/actions", adminHandler.CreateActionHandler).Methods("POST")
	adminRoutes.HandleFunc("/actions", adminHandler.GetActionsHandler).Methods("GET")
	adminRoutes.HandleFunc("/actions/{id}", adminHandler.ResolveActionHandler).Methods("PATCH")
	adminRoutes.HandleFunc("/users", userHandler.AdminGetAllUsersHandler).Methods("GET")
	adminRoutes.HandleFunc("/users/{id}/status", userHandler.AdminUpdateStatusHandler).Methods("PATCH")
	adminRoutes.HandleFunc("/users/{id}/actions", adminHandler.GetUserActionsHandler).Methods("GET")
	adminRoutes.HandleFunc("/activity", adminHandler.GetActivityLogHandler).Methods("GET")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Hourly missed-alert sweep
	sweeper := jobs.NewAlertSweeper(userRepo, wellBeingService, notify.NewDispatcher())
	scheduler.StartWellBeingCron(sweeper)

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
