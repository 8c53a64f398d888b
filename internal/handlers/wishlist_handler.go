package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Aidos2284/Wish_Fund/internal/services"
	"github.com/Aidos2284/Wish_Fund/pkg/middleware"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WishlistHandler struct {
	Service *services.WishlistService
}

func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{Service: service}
}

// CreateWishlistHandler groups existing wishes into a new wishlist.
func (h *WishlistHandler) CreateWishlistHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input services.WishlistInput
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

	wishlist, err := h.Service.CreateWishlist(r.Context(), ownerID, input)
	if err != nil {
		respondError(w, err, "Failed to create wishlist")
		return
	}

	respondJSON(w, http.StatusCreated, wishlist)
}

// GetWishlistsHandler lists all wishlists.
func (h *WishlistHandler) GetWishlistsHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	wishlists, err := h.Service.GetAllWishlists(r.Context())
	if err != nil {
		respondError(w, err, "Failed to fetch wishlists")
		return
	}

	respondJSON(w, http.StatusOK, wishlists)
}

// GetWishlistByIDHandler returns a single wishlist.
func (h *WishlistHandler) GetWishlistByIDHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	wishlist, err := h.Service.GetWishlist(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err, "Failed to fetch wishlist")
		return
	}

	respondJSON(w, http.StatusOK, wishlist)
}

// UpdateWishlistHandler replaces the name, image and items of a
// wishlist.
func (h *WishlistHandler) UpdateWishlistHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input services.WishlistInput
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

	wishlist, err := h.Service.UpdateWishlist(r.Context(), mux.Vars(r)["id"], requesterID, input)
	if err != nil {
		respondError(w, err, "Failed to update wishlist")
		return
	}

	respondJSON(w, http.StatusOK, wishlist)
}

// DeleteWishlistHandler removes a wishlist and returns its last
// snapshot.
func (h *WishlistHandler) DeleteWishlistHandler(w http.ResponseWriter, r *http.Request) {
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

	wishlist, err := h.Service.RemoveWishlist(r.Context(), mux.Vars(r)["id"], requesterID)
	if err != nil {
		respondError(w, err, "Failed to delete wishlist")
		return
	}

	respondJSON(w, http.StatusOK, wishlist)
}
