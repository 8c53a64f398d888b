package services

import (
	"context"

	"github.com/Aidos2284/Wish_Fund/internal/models"
	"github.com/Aidos2284/Wish_Fund/pkg/money"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store interfaces implemented by internal/repository. Services depend
// on these rather than the concrete repositories so tests can substitute
// in-memory fakes.

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.User, error)
}

type WishStore interface {
	CreateWish(ctx context.Context, wish *models.Wish) (*models.Wish, error)
	GetWishByID(ctx context.Context, id primitive.ObjectID) (*models.Wish, error)
	GetWishesByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Wish, error)
	GetWishesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Wish, error)
	GetLastWishes(ctx context.Context, limit int64) ([]models.Wish, error)
	GetTopWishes(ctx context.Context, limit int64) ([]models.Wish, error)
	UpdateWish(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	ApplyRaise(ctx context.Context, id primitive.ObjectID, expected, delta money.Cents) (bool, error)
	AdjustRaised(ctx context.Context, id primitive.ObjectID, delta money.Cents) error
	IncrementCopied(ctx context.Context, id primitive.ObjectID) error
	DeleteWish(ctx context.Context, id primitive.ObjectID) error
}

type OfferStore interface {
	CreateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error)
	GetOfferByID(ctx context.Context, id primitive.ObjectID) (*models.Offer, error)
	GetAllOffers(ctx context.Context) ([]models.Offer, error)
	GetOffersByItem(ctx context.Context, itemID primitive.ObjectID) ([]models.Offer, error)
}

type WishlistStore interface {
	CreateWishlist(ctx context.Context, wishlist *models.Wishlist) (*models.Wishlist, error)
	GetWishlistByID(ctx context.Context, id primitive.ObjectID) (*models.Wishlist, error)
	GetAllWishlists(ctx context.Context) ([]models.Wishlist, error)
	UpdateWishlist(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	DeleteWishlist(ctx context.Context, id primitive.ObjectID) error
}
