package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Aidos2284/Wish_Fund/internal/config"
	"github.com/Aidos2284/Wish_Fund/internal/database"
	"github.com/Aidos2284/Wish_Fund/internal/handlers"
	"github.com/Aidos2284/Wish_Fund/internal/repository"
	"github.com/Aidos2284/Wish_Fund/internal/services"
	"github.com/Aidos2284/Wish_Fund/pkg/logger"
	"github.com/Aidos2284/Wish_Fund/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	wishRepo := repository.NewWishRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo)
	wishService := services.NewWishService(wishRepo, offerRepo, userRepo)
	offerService := services.NewOfferService(offerRepo, wishRepo, userRepo)
	wishlistService := services.NewWishlistService(wishlistRepo, wishRepo, userRepo)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, wishService, cfg)
	wishHandler := handlers.NewWishHandler(wishService)
	offerHandler := handlers.NewOfferHandler(offerService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)

	router := mux.NewRouter()

	// Public user routes
	router.HandleFunc("/users/register", userHandler.RegisterUserHandler).Methods("POST")
	router.HandleFunc("/users/login", userHandler.LoginUserHandler).Methods("POST")

	// Protected user routes
	protectedUserRoutes := router.PathPrefix("/users").Subrouter()
	protectedUserRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedUserRoutes.HandleFunc("/me", userHandler.GetMeHandler).Methods("GET")
	protectedUserRoutes.HandleFunc("/me", userHandler.UpdateMeHandler).Methods("PATCH")
	protectedUserRoutes.HandleFunc("/me/wishes", userHandler.GetMyWishesHandler).Methods("GET")
	protectedUserRoutes.HandleFunc("/{username}", userHandler.GetUserByUsernameHandler).Methods("GET")

	// Public wish routes; /top and /last must be registered before /{id}
	wishRoutes := router.PathPrefix("/wishes").Subrouter()
	wishRoutes.HandleFunc("/top", wishHandler.GetTopWishesHandler).Methods("GET")
	wishRoutes.HandleFunc("/last", wishHandler.GetLastWishesHandler).Methods("GET")
	wishRoutes.HandleFunc("/{id}", wishHandler.GetWishByIDHandler).Methods("GET")

	// Protected wish routes
	protectedWishRoutes := router.PathPrefix("/wishes").Subrouter()
	protectedWishRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedWishRoutes.HandleFunc("", wishHandler.CreateWishHandler).Methods("POST")
	protectedWishRoutes.HandleFunc("/{id}", wishHandler.UpdateWishHandler).Methods("PATCH")
	protectedWishRoutes.HandleFunc("/{id}", wishHandler.DeleteWishHandler).Methods("DELETE")
	protectedWishRoutes.HandleFunc("/{id}/copy", wishHandler.CopyWishHandler).Methods("POST")

	// Offer routes
	protectedOfferRoutes := router.PathPrefix("/offers").Subrouter()
	protectedOfferRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedOfferRoutes.HandleFunc("", offerHandler.CreateOfferHandler).Methods("POST")
	protectedOfferRoutes.HandleFunc("", offerHandler.GetOffersHandler).Methods("GET")
	protectedOfferRoutes.HandleFunc("/{id}", offerHandler.GetOfferByIDHandler).Methods("GET")

	// Wishlist routes
	protectedWishlistRoutes := router.PathPrefix("/wishlists").Subrouter()
	protectedWishlistRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedWishlistRoutes.HandleFunc("", wishlistHandler.CreateWishlistHandler).Methods("POST")
	protectedWishlistRoutes.HandleFunc("", wishlistHandler.GetWishlistsHandler).Methods("GET")
	protectedWishlistRoutes.HandleFunc("/{id}", wishlistHandler.GetWishlistByIDHandler).Methods("GET")
	protectedWishlistRoutes.HandleFunc("/{id}", wishlistHandler.UpdateWishlistHandler).Methods("PATCH")
	protectedWishlistRoutes.HandleFunc("/{id}", wishlistHandler.DeleteWishlistHandler).Methods("DELETE")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
