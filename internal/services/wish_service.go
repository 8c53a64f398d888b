package services

import (
	"context"

	"github.com/Aidos2284/Wish_Fund/internal/models"
	"github.com/Aidos2284/Wish_Fund/pkg/apperrors"
	"github.com/Aidos2284/Wish_Fund/pkg/money"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	lastWishesLimit = 20
	topWishesLimit  = 10
)

type WishService struct {
	wishes WishStore
	offers OfferStore
	users  UserStore
}

func NewWishService(wishes WishStore, offers OfferStore, users UserStore) *WishService {
	return &WishService{
		wishes: wishes,
		offers: offers,
		users:  users,
	}
}

// CreateWishInput carries the user-supplied fields of a new wish.
type CreateWishInput struct {
	Name        string      `json:"name"`
	Link        string      `json:"link"`
	Image       string      `json:"image"`
	Price       money.Cents `json:"price"`
	Description string      `json:"description"`
}

func (s *WishService) CreateWish(ctx context.Context, ownerID primitive.ObjectID, input CreateWishInput) (*models.Wish, error) {
	if input.Name == "" {
		return nil, apperrors.Invalid("wish must have a name")
	}
	if input.Price <= 0 {
		return nil, apperrors.Invalid("wish price must be positive")
	}

	wish := &models.Wish{
		Name:        input.Name,
		Link:        input.Link,
		Image:       input.Image,
		Price:       input.Price,
		Raised:      0,
		Copied:      0,
		Description: input.Description,
		OwnerID:     ownerID,
	}

	return s.wishes.CreateWish(ctx, wish)
}

// GetWish returns a wish with its owner and contribution summaries.
func (s *WishService) GetWish(ctx context.Context, id string) (*models.WishDetails, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("wish not found")
	}

	wish, err := s.wishes.GetWishByID(ctx, objID)
	if err != nil {
		return nil, err
	}

	owner, err := s.users.GetUserByID(ctx, wish.OwnerID)
	if err != nil {
		return nil, err
	}

	offers, err := s.offers.GetOffersByItem(ctx, objID)
	if err != nil {
		return nil, err
	}

	contributorIDs := make([]primitive.ObjectID, 0, len(offers))
	seen := make(map[primitive.ObjectID]bool)
	for _, offer := range offers {
		if !seen[offer.UserID] {
			seen[offer.UserID] = true
			contributorIDs = append(contributorIDs, offer.UserID)
		}
	}
	contributors, err := s.users.GetUsersByIDs(ctx, contributorIDs)
	if err != nil {
		return nil, err
	}
	contributorByID := make(map[primitive.ObjectID]models.User, len(contributors))
	for _, contributor := range contributors {
		contributorByID[contributor.ID] = contributor
	}

	summaries := make([]models.OfferSummary, 0, len(offers))
	for _, offer := range offers {
		contributor := contributorByID[offer.UserID]
		summaries = append(summaries, models.OfferSummary{
			ID:        offer.ID,
			Amount:    offer.Amount,
			User:      contributor.Public(),
			CreatedAt: offer.CreatedAt,
		})
	}

	return &models.WishDetails{
		Wish:   *wish,
		Owner:  owner.Public(),
		Offers: summaries,
	}, nil
}

func (s *WishService) GetWishesByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Wish, error) {
	return s.wishes.GetWishesByOwner(ctx, ownerID)
}

// GetLastWishes returns the most recently created wishes.
func (s *WishService) GetLastWishes(ctx context.Context) ([]models.Wish, error) {
	return s.wishes.GetLastWishes(ctx, lastWishesLimit)
}

// GetTopWishes returns the most copied wishes.
func (s *WishService) GetTopWishes(ctx context.Context) ([]models.Wish, error) {
	return s.wishes.GetTopWishes(ctx, topWishesLimit)
}

// UpdateWishInput carries the replaceable fields of a wish. Nil fields
// are left untouched.
type UpdateWishInput struct {
	Name        *string      `json:"name"`
	Link        *string      `json:"link"`
	Image       *string      `json:"image"`
	Price       *money.Cents `json:"price"`
	Description *string      `json:"description"`
}

// UpdateWish applies an owner's edit to a wish. Wishes that already
// raised money are frozen and cannot be edited.
func (s *WishService) UpdateWish(ctx context.Context, id string, requesterID primitive.ObjectID, input UpdateWishInput) (*models.Wish, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("wish not found")
	}

	wish, err := s.wishes.GetWishByID(ctx, objID)
	if err != nil {
		return nil, err
	}

	if wish.OwnerID != requesterID {
		return nil, apperrors.Forbidden("you cannot edit someone else's wish")
	}
	if wish.Raised > 0 {
		return nil, apperrors.Forbidden("you cannot edit a wish that is already raising money")
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperrors.Invalid("wish must have a name")
		}
		updates["name"] = *input.Name
	}
	if input.Link != nil {
		updates["link"] = *input.Link
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, apperrors.Invalid("wish price must be positive")
		}
		updates["price"] = *input.Price
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}

	if len(updates) > 0 {
		if err := s.wishes.UpdateWish(ctx, objID, updates); err != nil {
			return nil, err
		}
	}

	return s.wishes.GetWishByID(ctx, objID)
}

// DeleteWish removes a wish. Only the owner may delete it, and only
// while nothing has been raised toward it.
func (s *WishService) DeleteWish(ctx context.Context, id string, requesterID primitive.ObjectID) (*models.Wish, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("wish not found")
	}

	wish, err := s.wishes.GetWishByID(ctx, objID)
	if err != nil {
		return nil, err
	}

	if wish.OwnerID != requesterID {
		return nil, apperrors.Forbidden("you cannot delete someone else's wish")
	}
	if wish.Raised > 0 {
		return nil, apperrors.Forbidden("you cannot delete a wish that has already raised money")
	}

	if err := s.wishes.DeleteWish(ctx, objID); err != nil {
		return nil, err
	}

	return wish, nil
}

// CopyWish duplicates another user's wish into the requester's own set.
// The source's copy counter is incremented; the duplicate starts with
// nothing raised and no offers.
func (s *WishService) CopyWish(ctx context.Context, id string, requesterID primitive.ObjectID) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NotFound("wish not found")
	}

	wish, err := s.wishes.GetWishByID(ctx, objID)
	if err != nil {
		return err
	}

	if wish.OwnerID == requesterID {
		return apperrors.Forbidden("you cannot copy your own wish")
	}

	copied := &models.Wish{
		Name:        wish.Name,
		Link:        wish.Link,
		Image:       wish.Image,
		Price:       wish.Price,
		Raised:      0,
		Copied:      0,
		Description: wish.Description,
		OwnerID:     requesterID,
	}

	// The duplicate is created before the counter bump so a failed
	// create cannot leave the source's counter inflated.
	created, err := s.wishes.CreateWish(ctx, copied)
	if err != nil {
		return err
	}

	if err := s.wishes.IncrementCopied(ctx, objID); err != nil {
		if deleteErr := s.wishes.DeleteWish(ctx, created.ID); deleteErr != nil {
			logrus.WithFields(logrus.Fields{
				"wishID": created.ID.Hex(),
				"error":  deleteErr,
			}).Error("Failed to remove duplicate after copy counter failure")
		}
		return err
	}

	return nil
}
