package models

import (
	"time"

	"github.com/Aidos2284/Wish_Fund/pkg/money"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Offer is a contribution toward a wish. Offers are immutable once
// created; there are no update or delete operations.
type Offer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Amount    money.Cents        `bson:"amount" json:"amount"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	ItemID    primitive.ObjectID `bson:"item_id" json:"item_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// OfferSummary is the projection of an offer embedded in wish details.
type OfferSummary struct {
	ID        primitive.ObjectID `json:"id"`
	Amount    money.Cents        `json:"amount"`
	User      PublicUser         `json:"user"`
	CreatedAt time.Time          `json:"created_at"`
}

// OfferDetails is the read model for offer endpoints: the offer plus
// summaries of the wish it funds and the user who made it.
type OfferDetails struct {
	Offer
	Item WishSummary `json:"item"`
	User PublicUser  `json:"user"`
}
