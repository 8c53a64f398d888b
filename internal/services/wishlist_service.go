package services

import (
	"context"

	"github.com/Aidos2284/Wish_Fund/internal/models"
	"github.com/Aidos2284/Wish_Fund/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WishlistService struct {
	wishlists WishlistStore
	wishes    WishStore
	users     UserStore
}

func NewWishlistService(wishlists WishlistStore, wishes WishStore, users UserStore) *WishlistService {
	return &WishlistService{
		wishlists: wishlists,
		wishes:    wishes,
		users:     users,
	}
}

// WishlistInput carries the user-supplied fields of a wishlist. Item ids
// are always the full set; updates replace the previous membership.
type WishlistInput struct {
	Name    string   `json:"name"`
	Image   string   `json:"image"`
	ItemIDs []string `json:"item_ids"`
}

// resolveItems maps requested item ids to wishes that actually exist.
// Unknown or malformed ids are dropped from the result.
func (s *WishlistService) resolveItems(ctx context.Context, itemIDs []string) ([]models.Wish, error) {
	ids := make([]primitive.ObjectID, 0, len(itemIDs))
	for _, raw := range itemIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return s.wishes.GetWishesByIDs(ctx, ids)
}

func (s *WishlistService) CreateWishlist(ctx context.Context, ownerID primitive.ObjectID, input WishlistInput) (*models.Wishlist, error) {
	if input.Name == "" {
		return nil, apperrors.Invalid("wishlist must have a name")
	}

	wishes, err := s.resolveItems(ctx, input.ItemIDs)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]primitive.ObjectID, 0, len(wishes))
	for _, wish := range wishes {
		itemIDs = append(itemIDs, wish.ID)
	}

	wishlist := &models.Wishlist{
		Name:    input.Name,
		Image:   input.Image,
		OwnerID: ownerID,
		ItemIDs: itemIDs,
	}

	return s.wishlists.CreateWishlist(ctx, wishlist)
}

// GetWishlist returns a wishlist with its owner and item summaries. The
// owner summary never includes the email or password.
func (s *WishlistService) GetWishlist(ctx context.Context, id string) (*models.WishlistDetails, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("wishlist not found")
	}

	wishlist, err := s.wishlists.GetWishlistByID(ctx, objID)
	if err != nil {
		return nil, err
	}

	return s.expandWishlist(ctx, wishlist)
}

func (s *WishlistService) GetAllWishlists(ctx context.Context) ([]models.WishlistDetails, error) {
	wishlists, err := s.wishlists.GetAllWishlists(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]models.WishlistDetails, 0, len(wishlists))
	for i := range wishlists {
		expanded, err := s.expandWishlist(ctx, &wishlists[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *expanded)
	}

	return details, nil
}

// UpdateWishlist replaces the name, image and full item set of a
// wishlist. Only the owner may update it.
func (s *WishlistService) UpdateWishlist(ctx context.Context, id string, requesterID primitive.ObjectID, input WishlistInput) (*models.WishlistDetails, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("wishlist not found")
	}

	wishlist, err := s.wishlists.GetWishlistByID(ctx, objID)
	if err != nil {
		return nil, err
	}

	if wishlist.OwnerID != requesterID {
		return nil, apperrors.Forbidden("you cannot edit someone else's wishlist")
	}

	wishes, err := s.resolveItems(ctx, input.ItemIDs)
	if err != nil {
		return nil, err
	}
	itemIDs := make([]primitive.ObjectID, 0, len(wishes))
	for _, wish := range wishes {
		itemIDs = append(itemIDs, wish.ID)
	}

	updates := map[string]interface{}{
		"name":     input.Name,
		"image":    input.Image,
		"item_ids": itemIDs,
	}

	if err := s.wishlists.UpdateWishlist(ctx, objID, updates); err != nil {
		return nil, err
	}

	updated, err := s.wishlists.GetWishlistByID(ctx, objID)
	if err != nil {
		return nil, err
	}

	return s.expandWishlist(ctx, updated)
}

// RemoveWishlist deletes a wishlist and returns its last snapshot. Only
// the owner may delete it.
func (s *WishlistService) RemoveWishlist(ctx context.Context, id string, requesterID primitive.ObjectID) (*models.WishlistDetails, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("wishlist not found")
	}

	wishlist, err := s.wishlists.GetWishlistByID(ctx, objID)
	if err != nil {
		return nil, err
	}

	if wishlist.OwnerID != requesterID {
		return nil, apperrors.Forbidden("you cannot delete someone else's wishlist")
	}

	snapshot, err := s.expandWishlist(ctx, wishlist)
	if err != nil {
		return nil, err
	}

	if err := s.wishlists.DeleteWishlist(ctx, objID); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (s *WishlistService) expandWishlist(ctx context.Context, wishlist *models.Wishlist) (*models.WishlistDetails, error) {
	owner, err := s.users.GetUserByID(ctx, wishlist.OwnerID)
	if err != nil {
		return nil, err
	}

	wishes, err := s.wishes.GetWishesByIDs(ctx, wishlist.ItemIDs)
	if err != nil {
		return nil, err
	}

	items := make([]models.WishSummary, 0, len(wishes))
	for i := range wishes {
		items = append(items, wishes[i].Summary())
	}

	return &models.WishlistDetails{
		ID:        wishlist.ID,
		Name:      wishlist.Name,
		Image:     wishlist.Image,
		Owner:     owner.Public(),
		Items:     items,
		CreatedAt: wishlist.CreatedAt,
		UpdatedAt: wishlist.UpdatedAt,
	}, nil
}
