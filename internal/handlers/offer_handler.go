package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Aidos2284/Wish_Fund/internal/services"
	"github.com/Aidos2284/Wish_Fund/pkg/middleware"
	"github.com/Aidos2284/Wish_Fund/pkg/money"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OfferHandler struct {
	Service *services.OfferService
}

func NewOfferHandler(service *services.OfferService) *OfferHandler {
	return &OfferHandler{Service: service}
}

// CreateOfferHandler applies a contribution to a wish.
func (h *OfferHandler) CreateOfferHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		ItemID string      `json:"item_id"`
		Amount money.Cents `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if input.Amount <= 0 {
		http.Error(w, "Contribution amount must be positive", http.StatusBadRequest)
		return
	}

	contributorID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusInternalServerError)
		return
	}
	itemID, err := primitive.ObjectIDFromHex(input.ItemID)
	if err != nil {
		http.Error(w, "Wish not found", http.StatusNotFound)
		return
	}

	offer, err := h.Service.CreateOffer(r.Context(), contributorID, itemID, input.Amount)
	if err != nil {
		respondError(w, err, "Failed to create offer")
		return
	}

	log.WithFields(log.Fields{
		"offerID": offer.ID.Hex(),
		"wishID":  input.ItemID,
		"amount":  offer.Amount.String(),
	}).Info("Offer created")
	respondJSON(w, http.StatusCreated, offer)
}

// GetOffersHandler lists all offers with wish and contributor summaries.
func (h *OfferHandler) GetOffersHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	offers, err := h.Service.GetAllOffers(r.Context())
	if err != nil {
		respondError(w, err, "Failed to fetch offers")
		return
	}
	if len(offers) == 0 {
		http.Error(w, "No offers found", http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, offers)
}

// GetOfferByIDHandler returns a single offer.
func (h *OfferHandler) GetOfferByIDHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	offer, err := h.Service.GetOffer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err, "Failed to fetch offer")
		return
	}

	respondJSON(w, http.StatusOK, offer)
}
