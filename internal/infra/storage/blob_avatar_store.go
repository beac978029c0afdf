// Package storage provides blob-backed implementations of the domain storage services.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/duniya2no/ReMeet/config"
	"github.com/duniya2no/ReMeet/internal/domain/lifecycle"
	"github.com/duniya2no/ReMeet/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobAvatarStore implements service.AvatarStore on top of a gocloud.dev bucket.
type blobAvatarStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the avatar store, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBlobAvatarStore opens the configured bucket and returns it as a service.AvatarStore.
func NewBlobAvatarStore(params Params) (service.AvatarStore, error) {
	cfg := params.Config.Avatar
	if cfg == nil || cfg.BucketURL == "" {
		// Avatars won't survive a restart without a configured bucket.
		params.Logger.Warn("Avatar bucket not configured, using in-memory storage")
		cfg = &config.AvatarConfig{BucketURL: "mem://"}
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open avatar bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobAvatarStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Save stores an avatar image for the user and returns its public reference URL.
// One object per user; a new upload replaces the previous one.
func (s *blobAvatarStore) Save(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader) (string, error) {
	key := avatarKey(userID)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open avatar writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write avatar")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize avatar write")
	}

	s.logger.Info("Avatar stored",
		slog.String("user_id", userID.String()),
		slog.String("key", key),
	)

	return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
}

// Delete removes a stored avatar. Deleting a missing avatar is not an error.
func (s *blobAvatarStore) Delete(ctx context.Context, userID uuid.UUID) error {
	err := s.bucket.Delete(ctx, avatarKey(userID))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete avatar")
	}

	return nil
}

func avatarKey(userID uuid.UUID) string {
	return fmt.Sprintf("avatars/%s.png", userID)
}
