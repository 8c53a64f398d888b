package services

import (
	"context"
	"fmt"

	"github.com/Aidos2284/Wish_Fund/internal/models"
	"github.com/Aidos2284/Wish_Fund/pkg/apperrors"
	"github.com/Aidos2284/Wish_Fund/pkg/money"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stores standing in for the Mongo repositories.

type fakeUserStore struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserStore) add(username, email string) *models.User {
	user := &models.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Email:    email,
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID()
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	return user, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.NotFound("user not found")
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperrors.NotFound("user not found")
}

func (f *fakeUserStore) GetUsersByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	var users []models.User
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (f *fakeUserStore) UpdateUser(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	for key, value := range updates {
		switch key {
		case "username":
			user.Username = value.(string)
		case "about":
			user.About = value.(string)
		case "avatar":
			user.Avatar = value.(string)
		case "email":
			user.Email = value.(string)
		case "hashed_password":
			user.HashedPassword = value.(string)
		}
	}
	return user, nil
}

type fakeWishStore struct {
	wishes map[primitive.ObjectID]*models.Wish

	// raiseConflicts makes the next n ApplyRaise calls report a lost
	// race regardless of the expected value.
	raiseConflicts int
	raiseCalls     int

	failCreate          bool
	failIncrementCopied bool
}

func newFakeWishStore() *fakeWishStore {
	return &fakeWishStore{wishes: make(map[primitive.ObjectID]*models.Wish)}
}

func (f *fakeWishStore) add(owner primitive.ObjectID, price, raised money.Cents) *models.Wish {
	wish := &models.Wish{
		ID:      primitive.NewObjectID(),
		Name:    "test wish",
		Price:   price,
		Raised:  raised,
		OwnerID: owner,
	}
	f.wishes[wish.ID] = wish
	return wish
}

func (f *fakeWishStore) CreateWish(_ context.Context, wish *models.Wish) (*models.Wish, error) {
	if f.failCreate {
		return nil, fmt.Errorf("insert failed")
	}
	wish.ID = primitive.NewObjectID()
	f.wishes[wish.ID] = wish
	return wish, nil
}

func (f *fakeWishStore) GetWishByID(_ context.Context, id primitive.ObjectID) (*models.Wish, error) {
	wish, ok := f.wishes[id]
	if !ok {
		return nil, apperrors.NotFound("wish not found")
	}
	copied := *wish
	return &copied, nil
}

func (f *fakeWishStore) GetWishesByOwner(_ context.Context, ownerID primitive.ObjectID) ([]models.Wish, error) {
	var wishes []models.Wish
	for _, wish := range f.wishes {
		if wish.OwnerID == ownerID {
			wishes = append(wishes, *wish)
		}
	}
	return wishes, nil
}

func (f *fakeWishStore) GetWishesByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Wish, error) {
	var wishes []models.Wish
	for _, id := range ids {
		if wish, ok := f.wishes[id]; ok {
			wishes = append(wishes, *wish)
		}
	}
	return wishes, nil
}

func (f *fakeWishStore) GetLastWishes(_ context.Context, limit int64) ([]models.Wish, error) {
	var wishes []models.Wish
	for _, wish := range f.wishes {
		wishes = append(wishes, *wish)
	}
	if int64(len(wishes)) > limit {
		wishes = wishes[:limit]
	}
	return wishes, nil
}

func (f *fakeWishStore) GetTopWishes(_ context.Context, limit int64) ([]models.Wish, error) {
	var wishes []models.Wish
	for _, wish := range f.wishes {
		if wish.Copied > 0 {
			wishes = append(wishes, *wish)
		}
	}
	if int64(len(wishes)) > limit {
		wishes = wishes[:limit]
	}
	return wishes, nil
}

func (f *fakeWishStore) UpdateWish(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	wish, ok := f.wishes[id]
	if !ok {
		return apperrors.NotFound("wish not found")
	}
	for key, value := range updates {
		switch key {
		case "name":
			wish.Name = value.(string)
		case "link":
			wish.Link = value.(string)
		case "image":
			wish.Image = value.(string)
		case "price":
			wish.Price = value.(money.Cents)
		case "description":
			wish.Description = value.(string)
		}
	}
	return nil
}

func (f *fakeWishStore) ApplyRaise(_ context.Context, id primitive.ObjectID, expected, delta money.Cents) (bool, error) {
	f.raiseCalls++
	wish, ok := f.wishes[id]
	if !ok {
		return false, nil
	}
	if f.raiseConflicts > 0 {
		f.raiseConflicts--
		// Simulate the concurrent contribution the conflict stands for.
		wish.Raised += delta
		return false, nil
	}
	if wish.Raised != expected {
		return false, nil
	}
	wish.Raised += delta
	return true, nil
}

func (f *fakeWishStore) AdjustRaised(_ context.Context, id primitive.ObjectID, delta money.Cents) error {
	wish, ok := f.wishes[id]
	if !ok {
		return apperrors.NotFound("wish not found")
	}
	wish.Raised += delta
	return nil
}

func (f *fakeWishStore) IncrementCopied(_ context.Context, id primitive.ObjectID) error {
	if f.failIncrementCopied {
		return fmt.Errorf("update failed")
	}
	wish, ok := f.wishes[id]
	if !ok {
		return apperrors.NotFound("wish not found")
	}
	wish.Copied++
	return nil
}

func (f *fakeWishStore) DeleteWish(_ context.Context, id primitive.ObjectID) error {
	delete(f.wishes, id)
	return nil
}

type fakeOfferStore struct {
	offers []models.Offer

	failCreate bool
}

func newFakeOfferStore() *fakeOfferStore {
	return &fakeOfferStore{}
}

func (f *fakeOfferStore) CreateOffer(_ context.Context, offer *models.Offer) (*models.Offer, error) {
	if f.failCreate {
		return nil, fmt.Errorf("insert failed")
	}
	offer.ID = primitive.NewObjectID()
	f.offers = append(f.offers, *offer)
	return offer, nil
}

func (f *fakeOfferStore) GetOfferByID(_ context.Context, id primitive.ObjectID) (*models.Offer, error) {
	for i := range f.offers {
		if f.offers[i].ID == id {
			return &f.offers[i], nil
		}
	}
	return nil, apperrors.NotFound("offer not found")
}

func (f *fakeOfferStore) GetAllOffers(_ context.Context) ([]models.Offer, error) {
	return append([]models.Offer(nil), f.offers...), nil
}

func (f *fakeOfferStore) GetOffersByItem(_ context.Context, itemID primitive.ObjectID) ([]models.Offer, error) {
	var offers []models.Offer
	for _, offer := range f.offers {
		if offer.ItemID == itemID {
			offers = append(offers, offer)
		}
	}
	return offers, nil
}

type fakeWishlistStore struct {
	wishlists map[primitive.ObjectID]*models.Wishlist
}

func newFakeWishlistStore() *fakeWishlistStore {
	return &fakeWishlistStore{wishlists: make(map[primitive.ObjectID]*models.Wishlist)}
}

func (f *fakeWishlistStore) CreateWishlist(_ context.Context, wishlist *models.Wishlist) (*models.Wishlist, error) {
	wishlist.ID = primitive.NewObjectID()
	f.wishlists[wishlist.ID] = wishlist
	return wishlist, nil
}

func (f *fakeWishlistStore) GetWishlistByID(_ context.Context, id primitive.ObjectID) (*models.Wishlist, error) {
	wishlist, ok := f.wishlists[id]
	if !ok {
		return nil, apperrors.NotFound("wishlist not found")
	}
	copied := *wishlist
	return &copied, nil
}

func (f *fakeWishlistStore) GetAllWishlists(_ context.Context) ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	for _, wishlist := range f.wishlists {
		wishlists = append(wishlists, *wishlist)
	}
	return wishlists, nil
}

func (f *fakeWishlistStore) UpdateWishlist(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	wishlist, ok := f.wishlists[id]
	if !ok {
		return apperrors.NotFound("wishlist not found")
	}
	for key, value := range updates {
		switch key {
		case "name":
			wishlist.Name = value.(string)
		case "image":
			wishlist.Image = value.(string)
		case "item_ids":
			wishlist.ItemIDs = value.([]primitive.ObjectID)
		}
	}
	return nil
}

func (f *fakeWishlistStore) DeleteWishlist(_ context.Context, id primitive.ObjectID) error {
	delete(f.wishlists, id)
	return nil
}
