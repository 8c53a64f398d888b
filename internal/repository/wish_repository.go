package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Aidos2284/Wish_Fund/internal/models"
	"github.com/Aidos2284/Wish_Fund/pkg/apperrors"
	"github.com/Aidos2284/Wish_Fund/pkg/money"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WishRepository struct {
	collection *mongo.Collection
}

func NewWishRepository(db *mongo.Database) *WishRepository {
	return &WishRepository{collection: db.Collection("wishes")}
}

func (r *WishRepository) CreateWish(ctx context.Context, wish *models.Wish) (*models.Wish, error) {
	wish.CreatedAt = time.Now()
	wish.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, wish)
	if err != nil {
		return nil, fmt.Errorf("failed to create wish: %v", err)
	}

	wish.ID = result.InsertedID.(primitive.ObjectID)
	return wish, nil
}

func (r *WishRepository) GetWishByID(ctx context.Context, id primitive.ObjectID) (*models.Wish, error) {
	var wish models.Wish
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&wish); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("wish not found")
		}
		return nil, fmt.Errorf("failed to get wish: %v", err)
	}
	return &wish, nil
}

func (r *WishRepository) GetWishesByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Wish, error) {
	return r.findWishes(ctx, bson.M{"owner_id": ownerID}, nil)
}

// GetWishesByIDs returns the wishes that exist among the given ids.
// Unknown ids are simply absent from the result.
func (r *WishRepository) GetWishesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Wish, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.findWishes(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// GetLastWishes returns the most recently created wishes, newest first.
func (r *WishRepository) GetLastWishes(ctx context.Context, limit int64) ([]models.Wish, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	return r.findWishes(ctx, bson.M{}, opts)
}

// GetTopWishes returns the most copied wishes, most copied first.
func (r *WishRepository) GetTopWishes(ctx context.Context, limit int64) ([]models.Wish, error) {
	opts := options.Find().SetSort(bson.D{{Key: "copied", Value: -1}}).SetLimit(limit)
	return r.findWishes(ctx, bson.M{"copied": bson.M{"$gt": 0}}, opts)
}

func (r *WishRepository) findWishes(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Wish, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection.Find(ctx, filter, opts)
	} else {
		cursor, err = r.collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wishes: %v", err)
	}
	defer cursor.Close(ctx)

	var wishes []models.Wish
	for cursor.Next(ctx) {
		var wish models.Wish
		if err := cursor.Decode(&wish); err != nil {
			return nil, err
		}
		wishes = append(wishes, wish)
	}

	return wishes, nil
}

func (r *WishRepository) UpdateWish(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update wish: %v", err)
	}
	return nil
}

// ApplyRaise atomically adds delta to the raised amount of a wish, but
// only if raised still holds the value the caller validated against.
// Returns false when a concurrent contribution got there first.
func (r *WishRepository) ApplyRaise(ctx context.Context, id primitive.ObjectID, expected, delta money.Cents) (bool, error) {
	filter := bson.M{"_id": id, "raised": expected}
	update := bson.M{
		"$inc": bson.M{"raised": delta},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to apply raise: %v", err)
	}
	if result.ModifiedCount == 0 {
		logrus.WithField("wishID", id.Hex()).Warn("Raise conflicted with a concurrent contribution")
		return false, nil
	}
	return true, nil
}

// AdjustRaised adds delta to the raised amount unconditionally. Used to
// compensate an applied raise, which must land even when concurrent
// contributions have moved raised since.
func (r *WishRepository) AdjustRaised(ctx context.Context, id primitive.ObjectID, delta money.Cents) error {
	update := bson.M{
		"$inc": bson.M{"raised": delta},
		"$set": bson.M{"updated_at": time.Now()},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to adjust raised amount: %v", err)
	}
	return nil
}

// IncrementCopied bumps the copy counter of a wish by one.
func (r *WishRepository) IncrementCopied(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"copied": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment copy counter: %v", err)
	}
	return nil
}

func (r *WishRepository) DeleteWish(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete wish: %v", err)
	}
	return nil
}
