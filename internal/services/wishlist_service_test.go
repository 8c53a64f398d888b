package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Aidos2284/Wish_Fund/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newWishlistService() (*WishlistService, *fakeWishlistStore, *fakeWishStore, *fakeUserStore) {
	wishlists := newFakeWishlistStore()
	wishes := newFakeWishStore()
	users := newFakeUserStore()
	return NewWishlistService(wishlists, wishes, users), wishlists, wishes, users
}

func TestCreateWishlistDropsUnknownItems(t *testing.T) {
	svc, _, wishes, users := newWishlistService()
	owner := users.add("owner", "owner@example.com")
	wish := wishes.add(owner.ID, cents("100.00"), cents("0.00"))

	wishlist, err := svc.CreateWishlist(context.Background(), owner.ID, WishlistInput{
		Name: "birthday",
		ItemIDs: []string{
			wish.ID.Hex(),
			primitive.NewObjectID().Hex(), // unknown id
			"not-a-hex-id",                // malformed id
		},
	})
	require.NoError(t, err)

	require.Len(t, wishlist.ItemIDs, 1)
	assert.Equal(t, wish.ID, wishlist.ItemIDs[0])
}

func TestUpdateWishlistReplacesItemSet(t *testing.T) {
	svc, _, wishes, users := newWishlistService()
	owner := users.add("owner", "owner@example.com")
	first := wishes.add(owner.ID, cents("10.00"), cents("0.00"))
	second := wishes.add(owner.ID, cents("20.00"), cents("0.00"))

	wishlist, err := svc.CreateWishlist(context.Background(), owner.ID, WishlistInput{
		Name:    "birthday",
		ItemIDs: []string{first.ID.Hex()},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateWishlist(context.Background(), wishlist.ID.Hex(), owner.ID, WishlistInput{
		Name:    "new year",
		Image:   "https://example.com/tree.png",
		ItemIDs: []string{second.ID.Hex()},
	})
	require.NoError(t, err)

	assert.Equal(t, "new year", updated.Name)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, second.ID, updated.Items[0].ID, "previous item set fully replaced")
}

func TestUpdateWishlistOwnerOnly(t *testing.T) {
	svc, _, _, users := newWishlistService()
	owner := users.add("owner", "owner@example.com")
	stranger := users.add("stranger", "stranger@example.com")

	wishlist, err := svc.CreateWishlist(context.Background(), owner.ID, WishlistInput{Name: "birthday"})
	require.NoError(t, err)

	_, err = svc.UpdateWishlist(context.Background(), wishlist.ID.Hex(), stranger.ID, WishlistInput{Name: "mine now"})
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestRemoveWishlistOwnerOnlyReturnsSnapshot(t *testing.T) {
	svc, wishlists, wishes, users := newWishlistService()
	owner := users.add("owner", "owner@example.com")
	stranger := users.add("stranger", "stranger@example.com")
	wish := wishes.add(owner.ID, cents("10.00"), cents("0.00"))

	wishlist, err := svc.CreateWishlist(context.Background(), owner.ID, WishlistInput{
		Name:    "birthday",
		ItemIDs: []string{wish.ID.Hex()},
	})
	require.NoError(t, err)

	_, err = svc.RemoveWishlist(context.Background(), wishlist.ID.Hex(), stranger.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))

	snapshot, err := svc.RemoveWishlist(context.Background(), wishlist.ID.Hex(), owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "birthday", snapshot.Name)
	require.Len(t, snapshot.Items, 1)

	_, err = wishlists.GetWishlistByID(context.Background(), wishlist.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGetWishlistHidesOwnerPrivateFields(t *testing.T) {
	svc, _, _, users := newWishlistService()
	owner := users.add("owner", "owner@example.com")
	owner.HashedPassword = "$2a$10$secret"

	wishlist, err := svc.CreateWishlist(context.Background(), owner.ID, WishlistInput{Name: "birthday"})
	require.NoError(t, err)

	details, err := svc.GetWishlist(context.Background(), wishlist.ID.Hex())
	require.NoError(t, err)

	raw, err := json.Marshal(details)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "owner@example.com")
	assert.NotContains(t, string(raw), "secret")
	assert.Contains(t, string(raw), `"username":"owner"`)
}
