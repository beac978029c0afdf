package repository

import (
	"context"
	"errors"

	"github.com/duniya2no/ReMeet/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrVerificationNotFound is returned when no pending phone verification exists.
	ErrVerificationNotFound = errors.New("phone verification not found")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user account.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// ListPushTargets retrieves users who opted into notifications and have a
	// registered device token.
	ListPushTargets(ctx context.Context) ([]*entity.User, error)
}

// RefreshTokenRepository defines the interface for login session persistence.
type RefreshTokenRepository interface {
	// Create persists a new refresh token.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a refresh token by its hash.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// CountActiveByUser counts unexpired tokens for a user.
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteByHash removes a refresh token, ending the session.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes all expired tokens.
	DeleteExpired(ctx context.Context) (int64, error)
}

// PhoneVerificationRepository defines the interface for pending phone challenges.
type PhoneVerificationRepository interface {
	// Upsert replaces any pending verification for the user with a new challenge.
	Upsert(ctx context.Context, verification *entity.PhoneVerification) error

	// FindByUser retrieves the pending verification for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.PhoneVerification, error)

	// Delete removes a pending verification once consumed.
	Delete(ctx context.Context, id uuid.UUID) error
}
