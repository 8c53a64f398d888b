package models

import (
	"time"

	"github.com/Aidos2284/Wish_Fund/pkg/money"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wish is a funding target: a gift someone would like to receive, with a
// price and the amount raised toward it so far. Raised is only ever
// changed through the offer service.
type Wish struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Link        string             `bson:"link" json:"link"`
	Image       string             `bson:"image" json:"image"`
	Price       money.Cents        `bson:"price" json:"price"`
	Raised      money.Cents        `bson:"raised" json:"raised"`
	Copied      int64              `bson:"copied" json:"copied"`
	Description string             `bson:"description" json:"description"`
	OwnerID     primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// WishSummary is the bounded projection of a wish embedded in offer and
// wishlist responses.
type WishSummary struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name"`
	Image  string             `json:"image"`
	Price  money.Cents        `json:"price"`
	Raised money.Cents        `json:"raised"`
}

// Summary strips a wish down to the fields read paths embed.
func (w *Wish) Summary() WishSummary {
	return WishSummary{
		ID:     w.ID,
		Name:   w.Name,
		Image:  w.Image,
		Price:  w.Price,
		Raised: w.Raised,
	}
}

// WishDetails is the read model for a single wish: the wish itself plus
// its owner and contribution summaries.
type WishDetails struct {
	Wish
	Owner  PublicUser     `json:"owner"`
	Offers []OfferSummary `json:"offers"`
}
