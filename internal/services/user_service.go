package services

import (
	"context"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/Aidos2284/Wish_Fund/internal/models"
	"github.com/Aidos2284/Wish_Fund/pkg/apperrors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// UserService encapsulates the business logic for user operations.
type UserService struct {
	repo UserStore
}

func NewUserService(repo UserStore) *UserService {
	return &UserService{repo: repo}
}

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username string `json:"username"`
	About    string `json:"about"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser creates an account after checking uniqueness and hashing
// the password.
func (s *UserService) RegisterUser(ctx context.Context, input RegisterInput) (*models.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, apperrors.Invalid("missing required user fields")
	}
	if len(input.Username) < 2 || len(input.Username) > 30 {
		return nil, apperrors.Invalid("username must be between 2 and 30 characters")
	}
	if !emailRegex.MatchString(input.Email) {
		return nil, apperrors.Invalid("invalid email format")
	}

	if existing, _ := s.repo.GetUserByUsername(ctx, input.Username); existing != nil {
		return nil, apperrors.Forbidden("a user with this username already exists")
	}
	if existing, _ := s.repo.GetUserByEmail(ctx, input.Email); existing != nil {
		return nil, apperrors.Forbidden("a user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Password hashing failed")
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:       input.Username,
		About:          input.About,
		Avatar:         input.Avatar,
		Email:          input.Email,
		HashedPassword: string(hashed),
	}
	if user.About == "" {
		user.About = models.DefaultAbout
	}
	if user.Avatar == "" {
		user.Avatar = models.DefaultAvatar
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %v", err)
	}

	logrus.WithField("userID", created.ID.Hex()).Info("User registered successfully")
	return created, nil
}

// AuthenticateUser verifies a username/password pair.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("user not found")
	}
	return s.repo.GetUserByID(ctx, objID)
}

// GetUserByUsername returns another user's public profile.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.repo.GetUserByUsername(ctx, username)
}

// UpdateProfileInput carries the editable profile fields. Nil fields are
// left untouched.
type UpdateProfileInput struct {
	Username *string `json:"username"`
	About    *string `json:"about"`
	Avatar   *string `json:"avatar"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UpdateProfile edits the caller's own profile, re-checking uniqueness
// and re-hashing the password when those fields change.
func (s *UserService) UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("user not found")
	}

	updates := map[string]interface{}{}

	if input.Username != nil {
		if len(*input.Username) < 2 || len(*input.Username) > 30 {
			return nil, apperrors.Invalid("username must be between 2 and 30 characters")
		}
		existing, _ := s.repo.GetUserByUsername(ctx, *input.Username)
		if existing != nil && existing.ID != objID {
			return nil, apperrors.Forbidden("a user with this username already exists")
		}
		updates["username"] = *input.Username
	}
	if input.Email != nil {
		if !emailRegex.MatchString(*input.Email) {
			return nil, apperrors.Invalid("invalid email format")
		}
		existing, _ := s.repo.GetUserByEmail(ctx, *input.Email)
		if existing != nil && existing.ID != objID {
			return nil, apperrors.Forbidden("a user with this email already exists")
		}
		updates["email"] = *input.Email
	}
	if input.About != nil {
		updates["about"] = *input.About
	}
	if input.Avatar != nil {
		updates["avatar"] = *input.Avatar
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %v", err)
		}
		updates["hashed_password"] = string(hashed)
	}

	if len(updates) == 0 {
		return s.repo.GetUserByID(ctx, objID)
	}

	return s.repo.UpdateUser(ctx, objID, updates)
}
