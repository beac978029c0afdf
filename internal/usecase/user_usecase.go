package usecase

import (
	"context"
	"io"

	"github.com/duniya2no/ReMeet/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines the mutable profile fields. Nil pointers leave
// the stored value untouched.
type UpdateProfileInput struct {
	Name                 *string
	Phone                *string
	BusinessType         *string
	ShopName             *string
	Address              *string
	NotificationsEnabled *bool
	DarkMode             *bool
	FCMToken             *string
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful login or refresh.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account and profile operations.
type UserUsecase interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Refresh rotates a valid refresh token into a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// Logout revokes the session behind the given refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// GetProfile retrieves the account profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies partial profile changes.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)

	// UploadAvatar stores a profile image and returns its reference URL.
	UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader) (string, error)

	// ChangePassword re-authenticates with the current password and sets a new one.
	ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error

	// StartPhoneVerification issues a 6-digit challenge for the given phone.
	StartPhoneVerification(ctx context.Context, userID uuid.UUID, phone string) error

	// ConfirmPhoneVerification checks the challenge code and marks the phone verified.
	ConfirmPhoneVerification(ctx context.Context, userID uuid.UUID, code string) error

	// ShopCardQR renders the shop's contact card as a PNG QR code.
	ShopCardQR(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// PurgeExpiredSessions removes refresh tokens past their expiry and
	// returns how many were removed. Run periodically by the worker.
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
