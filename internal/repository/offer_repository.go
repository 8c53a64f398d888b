package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Aidos2284/Wish_Fund/internal/models"
	"github.com/Aidos2284/Wish_Fund/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OfferRepository struct {
	collection *mongo.Collection
}

func NewOfferRepository(db *mongo.Database) *OfferRepository {
	return &OfferRepository{collection: db.Collection("offers")}
}

func (r *OfferRepository) CreateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	offer.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, offer)
	if err != nil {
		return nil, fmt.Errorf("failed to create offer: %v", err)
	}

	offer.ID = result.InsertedID.(primitive.ObjectID)
	return offer, nil
}

func (r *OfferRepository) GetOfferByID(ctx context.Context, id primitive.ObjectID) (*models.Offer, error) {
	var offer models.Offer
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&offer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("offer not found")
		}
		return nil, fmt.Errorf("failed to get offer: %v", err)
	}
	return &offer, nil
}

func (r *OfferRepository) GetAllOffers(ctx context.Context) ([]models.Offer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get offers: %v", err)
	}
	defer cursor.Close(ctx)

	var offers []models.Offer
	for cursor.Next(ctx) {
		var offer models.Offer
		if err := cursor.Decode(&offer); err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}

	return offers, nil
}

// GetOffersByItem returns the offers attached to a single wish.
func (r *OfferRepository) GetOffersByItem(ctx context.Context, itemID primitive.ObjectID) ([]models.Offer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"item_id": itemID})
	if err != nil {
		return nil, fmt.Errorf("failed to get offers for wish: %v", err)
	}
	defer cursor.Close(ctx)

	var offers []models.Offer
	for cursor.Next(ctx) {
		var offer models.Offer
		if err := cursor.Decode(&offer); err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}

	return offers, nil
}
