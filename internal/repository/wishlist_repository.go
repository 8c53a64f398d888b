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

type WishlistRepository struct {
	collection *mongo.Collection
}

func NewWishlistRepository(db *mongo.Database) *WishlistRepository {
	return &WishlistRepository{collection: db.Collection("wishlists")}
}

func (r *WishlistRepository) CreateWishlist(ctx context.Context, wishlist *models.Wishlist) (*models.Wishlist, error) {
	wishlist.CreatedAt = time.Now()
	wishlist.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, wishlist)
	if err != nil {
		return nil, fmt.Errorf("failed to create wishlist: %v", err)
	}

	wishlist.ID = result.InsertedID.(primitive.ObjectID)
	return wishlist, nil
}

func (r *WishlistRepository) GetWishlistByID(ctx context.Context, id primitive.ObjectID) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&wishlist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("wishlist not found")
		}
		return nil, fmt.Errorf("failed to get wishlist: %v", err)
	}
	return &wishlist, nil
}

func (r *WishlistRepository) GetAllWishlists(ctx context.Context) ([]models.Wishlist, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlists: %v", err)
	}
	defer cursor.Close(ctx)

	var wishlists []models.Wishlist
	for cursor.Next(ctx) {
		var wishlist models.Wishlist
		if err := cursor.Decode(&wishlist); err != nil {
			return nil, err
		}
		wishlists = append(wishlists, wishlist)
	}

	return wishlists, nil
}

func (r *WishlistRepository) UpdateWishlist(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update wishlist: %v", err)
	}
	return nil
}

func (r *WishlistRepository) DeleteWishlist(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete wishlist: %v", err)
	}
	return nil
}
