package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wishlist groups existing wishes under a name. Updating a wishlist
// replaces its item set entirely.
type Wishlist struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	Image     string               `bson:"image" json:"image"`
	OwnerID   primitive.ObjectID   `bson:"owner_id" json:"owner_id"`
	ItemIDs   []primitive.ObjectID `bson:"item_ids" json:"item_ids"`
	CreatedAt time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at" json:"updated_at"`
}

// WishlistDetails is the read model for wishlist endpoints. The owner is
// always the public projection, never the raw user document.
type WishlistDetails struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	Image     string             `json:"image"`
	Owner     PublicUser         `json:"owner"`
	Items     []WishSummary      `json:"items"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
