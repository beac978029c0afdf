package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the business-owner account. One profile exists per authenticated
// account; it is created at sign-up and mutated through the profile screens.
type User struct {
	ID                   uuid.UUID `json:"id"`                    // The Global Unique Identifier (GUID) for the user.
	Email                string    `json:"email"`                 // Login identifier, unique.
	Name                 string    `json:"name"`                  // Display name.
	Phone                string    `json:"phone"`                 // Contact phone number.
	PhoneVerified        bool      `json:"phone_verified"`        // Set after the phone verification challenge succeeds.
	BusinessType         string    `json:"business_type"`         // e.g. "Salon", "Gym", "Pool".
	ShopName             string    `json:"shop_name"`             // The shop's display name.
	Address              string    `json:"address"`               // The shop's address.
	AvatarURL            string    `json:"avatar_url"`            // Reference to the uploaded avatar image.
	NotificationsEnabled bool      `json:"notifications_enabled"` // Push notification preference flag.
	DarkMode             bool      `json:"dark_mode"`             // Dark-mode preference flag.
	FCMToken             string    `json:"-"`                     // Device token for push delivery, empty when unregistered.
	PasswordHash         string    `json:"-"`                     // Bcrypt-hashed password, never serialized.
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// RefreshToken is a stored login session credential.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TokenHash string    `json:"-"`          // Hash of the refresh token, never the raw value.
	ExpiresAt time.Time `json:"expires_at"` // Sessions past this point are invalid.
	CreatedAt time.Time `json:"created_at"`
}

// PhoneVerification is a pending confirmation-code challenge for a phone number.
type PhoneVerification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Phone     string    `json:"phone"`
	CodeHash  string    `json:"-"` // Hash of the 6-digit code, never the raw value.
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
