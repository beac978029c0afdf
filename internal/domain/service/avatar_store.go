package service

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// AvatarStore defines the interface for profile image storage.
type AvatarStore interface {
	// Save stores an avatar image for the user and returns its public reference URL.
	Save(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader) (string, error)

	// Delete removes a stored avatar. Deleting a missing avatar is not an error.
	Delete(ctx context.Context, userID uuid.UUID) error
}
