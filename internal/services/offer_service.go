package services

import (
	"context"
	"fmt"

	"github.com/Aidos2284/Wish_Fund/internal/models"
	"github.com/Aidos2284/Wish_Fund/pkg/apperrors"
	"github.com/Aidos2284/Wish_Fund/pkg/money"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// raiseRetries bounds how often a contribution is re-validated after
// losing the raise to a concurrent contribution.
const raiseRetries = 3

type OfferService struct {
	offers OfferStore
	wishes WishStore
	users  UserStore
}

func NewOfferService(offers OfferStore, wishes WishStore, users UserStore) *OfferService {
	return &OfferService{
		offers: offers,
		wishes: wishes,
		users:  users,
	}
}

// ValidateContribution decides whether a contribution may be applied to
// a wish and returns the new raised amount. Rules are checked in order;
// the first failing rule wins.
func ValidateContribution(wish *models.Wish, contributorID primitive.ObjectID, amount money.Cents) (money.Cents, error) {
	if wish.OwnerID == contributorID {
		return 0, apperrors.Forbidden("you cannot contribute to your own wish")
	}
	if amount > wish.Price {
		return 0, apperrors.Forbidden("contribution exceeds the price of the wish")
	}
	if amount > wish.Price-wish.Raised {
		return 0, apperrors.Forbidden("contribution exceeds the remaining amount")
	}
	if wish.Raised == wish.Price {
		return 0, apperrors.Forbidden("the wish is already fully funded")
	}
	return wish.Raised + amount, nil
}

// CreateOffer applies a contribution to a wish and records the offer.
// The raise and the offer are treated as one unit of work: the raise is
// applied with a guarded atomic increment, and if recording the offer
// fails afterwards the raise is compensated.
func (s *OfferService) CreateOffer(ctx context.Context, contributorID, itemID primitive.ObjectID, amount money.Cents) (*models.Offer, error) {
	if amount <= 0 {
		return nil, apperrors.Invalid("contribution amount must be positive")
	}

	if _, err := s.users.GetUserByID(ctx, contributorID); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < raiseRetries; attempt++ {
		wish, err := s.wishes.GetWishByID(ctx, itemID)
		if err != nil {
			return nil, err
		}

		if _, err := ValidateContribution(wish, contributorID, amount); err != nil {
			return nil, err
		}

		applied, err := s.wishes.ApplyRaise(ctx, itemID, wish.Raised, amount)
		if err != nil {
			return nil, err
		}
		if !applied {
			// A concurrent contribution changed raised since we read it.
			// Re-read and validate against the fresh value.
			continue
		}

		offer := &models.Offer{
			Amount: amount,
			UserID: contributorID,
			ItemID: itemID,
		}

		created, err := s.offers.CreateOffer(ctx, offer)
		if err != nil {
			// The raise already landed, so the decrement must land too,
			// even when concurrent contributions moved raised since.
			if rollbackErr := s.wishes.AdjustRaised(ctx, itemID, -amount); rollbackErr != nil {
				logrus.WithFields(logrus.Fields{
					"wishID": itemID.Hex(),
					"amount": amount.String(),
					"error":  rollbackErr,
				}).Error("Failed to roll back raise after offer insert failure")
			}
			return nil, fmt.Errorf("failed to record offer: %v", err)
		}

		return created, nil
	}

	return nil, fmt.Errorf("wish is receiving too many concurrent contributions, try again")
}

// GetAllOffers returns every offer with its wish and contributor
// summaries.
func (s *OfferService) GetAllOffers(ctx context.Context) ([]models.OfferDetails, error) {
	offers, err := s.offers.GetAllOffers(ctx)
	if err != nil {
		return nil, err
	}
	return s.expandOffers(ctx, offers)
}

// GetOffer returns a single offer with its wish and contributor
// summaries.
func (s *OfferService) GetOffer(ctx context.Context, id string) (*models.OfferDetails, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("offer not found")
	}

	offer, err := s.offers.GetOfferByID(ctx, objID)
	if err != nil {
		return nil, err
	}

	details, err := s.expandOffers(ctx, []models.Offer{*offer})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// expandOffers attaches wish and user summaries, loading each referenced
// document once.
func (s *OfferService) expandOffers(ctx context.Context, offers []models.Offer) ([]models.OfferDetails, error) {
	wishIDs := make([]primitive.ObjectID, 0, len(offers))
	userIDs := make([]primitive.ObjectID, 0, len(offers))
	seenWishes := make(map[primitive.ObjectID]bool)
	seenUsers := make(map[primitive.ObjectID]bool)
	for _, offer := range offers {
		if !seenWishes[offer.ItemID] {
			seenWishes[offer.ItemID] = true
			wishIDs = append(wishIDs, offer.ItemID)
		}
		if !seenUsers[offer.UserID] {
			seenUsers[offer.UserID] = true
			userIDs = append(userIDs, offer.UserID)
		}
	}

	wishes, err := s.wishes.GetWishesByIDs(ctx, wishIDs)
	if err != nil {
		return nil, err
	}
	users, err := s.users.GetUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	wishByID := make(map[primitive.ObjectID]models.Wish, len(wishes))
	for _, wish := range wishes {
		wishByID[wish.ID] = wish
	}
	userByID := make(map[primitive.ObjectID]models.User, len(users))
	for _, user := range users {
		userByID[user.ID] = user
	}

	details := make([]models.OfferDetails, 0, len(offers))
	for _, offer := range offers {
		wish := wishByID[offer.ItemID]
		user := userByID[offer.UserID]
		details = append(details, models.OfferDetails{
			Offer: offer,
			Item:  wish.Summary(),
			User:  user.Public(),
		})
	}

	return details, nil
}
