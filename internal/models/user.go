package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultAbout  = "Nothing about me yet"
	DefaultAvatar = "https://i.pravatar.cc/300"
)

// User represents a registered account. The password hash never leaves
// the server and the email is only shown to the account owner.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username       string             `bson:"username" json:"username"`
	About          string             `bson:"about" json:"about"`
	Avatar         string             `bson:"avatar" json:"avatar"`
	Email          string             `bson:"email" json:"email"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// PublicUser is the projection of a user safe to embed in responses seen
// by other users: no email, no credentials.
type PublicUser struct {
	ID        primitive.ObjectID `json:"id"`
	Username  string             `json:"username"`
	About     string             `json:"about"`
	Avatar    string             `json:"avatar"`
	CreatedAt time.Time          `json:"created_at"`
}

// Public strips the private fields from a user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		About:     u.About,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}
