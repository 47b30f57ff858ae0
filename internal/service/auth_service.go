// Package service contains the business rules sitting between HTTP handlers
// and the repositories.
package service

import (
	"context"
	"errors"
	"time"

	"repairhub/internal/models"
	"repairhub/internal/repository"
	"repairhub/internal/token"
)

const placeholderAvatarURL = "/placeholder-user.jpg"

// AuthService issues and resolves session tokens.
//
// Tokens are the unsigned recoverable kind (see the token package) and login
// only verifies that a user with the email exists and a password was supplied.
// Both are documented weaknesses of this core, kept for behavioral parity.
type AuthService struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

// RegisterInput carries the fields for a new account.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// Session pairs a minted token with the user it authenticates.
type Session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// NewAuthService creates an AuthService. A nil clock defaults to time.Now.
func NewAuthService(userRepo repository.UserRepository, clock func() time.Time) *AuthService {
	if clock == nil {
		clock = time.Now
	}
	return &AuthService{userRepo: userRepo, now: clock}
}

// Register creates a user and returns a fresh session. Email and username
// collisions surface as Conflict via the unique constraints, so concurrent
// registrations cannot both succeed.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	if in.Email == "" || in.Username == "" || in.Password == "" {
		return nil, models.NewValidationError("Email, username, and password are required")
	}

	user := &models.User{
		Email:     in.Email,
		Username:  in.Username,
		Password:  in.Password,
		Bio:       "",
		AvatarURL: placeholderAvatarURL,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &Session{Token: token.Mint(user.ID, s.now()), User: user}, nil
}

// Login resolves the email to a user and mints a session token.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*Session, error) {
	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewInvalidCredentialsError()
	}
	if in.Password == "" {
		return nil, models.NewInvalidCredentialsError()
	}

	return &Session{Token: token.Mint(user.ID, s.now()), User: user}, nil
}

// Resolve parses a raw token and returns the user it authenticates. Malformed
// tokens and tokens for users that no longer exist both yield InvalidToken.
func (s *AuthService) Resolve(ctx context.Context, raw string) (*models.User, error) {
	userID, _, err := token.Parse(raw)
	if err != nil {
		return nil, models.NewInvalidTokenError()
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			return nil, models.NewInvalidTokenError()
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfileInput carries the optional fields of a profile patch.
type UpdateProfileInput struct {
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

// UpdateProfile applies a partial update to the authenticated user's profile.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		if *in.Username == "" {
			return nil, models.NewValidationError("Username cannot be blank")
		}
		user.Username = *in.Username
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.AvatarURL != nil {
		user.AvatarURL = *in.AvatarURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
