package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Aidos2284/Wish_Fund/internal/config"
	"github.com/Aidos2284/Wish_Fund/internal/models"
	"github.com/Aidos2284/Wish_Fund/internal/services"
	jwtutil "github.com/Aidos2284/Wish_Fund/pkg/jwt"
	"github.com/Aidos2284/Wish_Fund/pkg/middleware"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler handles HTTP requests related to user operations.
type UserHandler struct {
	Service     *services.UserService
	WishService *services.WishService
	Config      *config.Config
}

func NewUserHandler(service *services.UserService, wishService *services.WishService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		Service:     service,
		WishService: wishService,
		Config:      cfg,
	}
}

// RegisterUserHandler handles user registration.
func (h *UserHandler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.WithError(err).Warn("Failed to decode registration request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	user, err := h.Service.RegisterUser(r.Context(), input)
	if err != nil {
		respondError(w, err, "Failed to register user")
		return
	}

	log.WithField("userID", user.ID.Hex()).Info("User registered")
	respondJSON(w, http.StatusCreated, user.Public())
}

// LoginUserHandler verifies credentials and issues a token.
func (h *UserHandler) LoginUserHandler(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.WithError(err).Warn("Failed to decode login request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	user, err := h.Service.AuthenticateUser(r.Context(), credentials.Username, credentials.Password)
	if err != nil {
		log.WithField("username", credentials.Username).Warn("Authentication failed")
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	token, err := jwtutil.GenerateToken(user.ID.Hex(), user.Username, h.Config.JWTSecret, h.Config.TokenExpiry)
	if err != nil {
		log.WithError(err).Error("Failed to generate JWT token")
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	log.WithField("userID", user.ID.Hex()).Info("User logged in")
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// GetMeHandler returns the caller's own profile.
func (h *UserHandler) GetMeHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.Service.GetUser(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err, "Failed to fetch user")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// UpdateMeHandler edits the caller's own profile.
func (h *UserHandler) UpdateMeHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input services.UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	user, err := h.Service.UpdateProfile(r.Context(), claims.UserID, input)
	if err != nil {
		respondError(w, err, "Failed to update profile")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// GetMyWishesHandler returns the caller's own wishes.
func (h *UserHandler) GetMyWishesHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusInternalServerError)
		return
	}

	wishes, err := h.WishService.GetWishesByOwner(r.Context(), userID)
	if err != nil {
		respondError(w, err, "Failed to fetch wishes")
		return
	}
	if wishes == nil {
		wishes = []models.Wish{}
	}

	respondJSON(w, http.StatusOK, wishes)
}

// GetUserByUsernameHandler returns another user's public profile.
func (h *UserHandler) GetUserByUsernameHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.Service.GetUserByUsername(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		respondError(w, err, "Failed to fetch user")
		return
	}

	respondJSON(w, http.StatusOK, user.Public())
}
