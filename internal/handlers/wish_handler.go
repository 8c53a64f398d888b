package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Aidos2284/Wish_Fund/internal/models"
	"github.com/Aidos2284/Wish_Fund/internal/services"
	"github.com/Aidos2284/Wish_Fund/pkg/middleware"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WishHandler struct {
	Service *services.WishService
}

func NewWishHandler(service *services.WishService) *WishHandler {
	return &WishHandler{Service: service}
}

// CreateWishHandler handles creation of a new wish.
func (h *WishHandler) CreateWishHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input services.CreateWishInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	ownerID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusInternalServerError)
		return
	}

	wish, err := h.Service.CreateWish(r.Context(), ownerID, input)
	if err != nil {
		respondError(w, err, "Failed to create wish")
		return
	}

	log.WithField("wishID", wish.ID.Hex()).Info("Wish created")
	respondJSON(w, http.StatusCreated, wish)
}

// GetTopWishesHandler returns the most copied wishes.
func (h *WishHandler) GetTopWishesHandler(w http.ResponseWriter, r *http.Request) {
	wishes, err := h.Service.GetTopWishes(r.Context())
	if err != nil {
		respondError(w, err, "Failed to fetch top wishes")
		return
	}
	if wishes == nil {
		wishes = []models.Wish{}
	}
	respondJSON(w, http.StatusOK, wishes)
}

// GetLastWishesHandler returns the most recently created wishes.
func (h *WishHandler) GetLastWishesHandler(w http.ResponseWriter, r *http.Request) {
	wishes, err := h.Service.GetLastWishes(r.Context())
	if err != nil {
		respondError(w, err, "Failed to fetch last wishes")
		return
	}
	if wishes == nil {
		wishes = []models.Wish{}
	}
	respondJSON(w, http.StatusOK, wishes)
}

// GetWishByIDHandler retrieves a wish with owner and offer summaries.
func (h *WishHandler) GetWishByIDHandler(w http.ResponseWriter, r *http.Request) {
	wish, err := h.Service.GetWish(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err, "Failed to fetch wish")
		return
	}
	respondJSON(w, http.StatusOK, wish)
}

// UpdateWishHandler lets the owner edit a wish that has not raised any
// money yet.
func (h *WishHandler) UpdateWishHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input services.UpdateWishInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid update payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	requesterID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusInternalServerError)
		return
	}

	wish, err := h.Service.UpdateWish(r.Context(), mux.Vars(r)["id"], requesterID, input)
	if err != nil {
		respondError(w, err, "Failed to update wish")
		return
	}

	respondJSON(w, http.StatusOK, wish)
}

// DeleteWishHandler removes a wish that has not raised any money yet.
func (h *WishHandler) DeleteWishHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	requesterID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusInternalServerError)
		return
	}

	wishID := mux.Vars(r)["id"]
	if _, err := h.Service.DeleteWish(r.Context(), wishID, requesterID); err != nil {
		respondError(w, err, "Failed to delete wish")
		return
	}

	log.WithField("wishID", wishID).Info("Wish deleted")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Wish deleted successfully"})
}

// CopyWishHandler duplicates another user's wish into the caller's set.
func (h *WishHandler) CopyWishHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	requesterID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusInternalServerError)
		return
	}

	if err := h.Service.CopyWish(r.Context(), mux.Vars(r)["id"], requesterID); err != nil {
		respondError(w, err, "Failed to copy wish")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{})
}
