package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"time"

	"github.com/duniya2no/ReMeet/config"
	deliverycontext "github.com/duniya2no/ReMeet/internal/delivery/context"
	"github.com/duniya2no/ReMeet/internal/domain/entity"
	domainerrors "github.com/duniya2no/ReMeet/internal/domain/errors"
	"github.com/duniya2no/ReMeet/internal/domain/repository"
	"github.com/duniya2no/ReMeet/internal/domain/service"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultVerificationTTL = 10 * time.Minute

// userService implements the UserUsecase interface.
type userService struct {
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	verificationRepo  repository.PhoneVerificationRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	avatarStore       service.AvatarStore
	qrcodeService     service.QRCodeService
	maxActiveSessions int
	verificationTTL   time.Duration
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	VerificationRepo repository.PhoneVerificationRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	AvatarStore      service.AvatarStore
	QRCodeService    service.QRCodeService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	verificationTTL := defaultVerificationTTL
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
		if params.Config.Auth.VerificationTTL > 0 {
			verificationTTL = params.Config.Auth.VerificationTTL
		}
	}

	return &userService{
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		verificationRepo:  params.VerificationRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		avatarStore:       params.AvatarStore,
		qrcodeService:     params.QRCodeService,
		maxActiveSessions: maxActiveSessions,
		verificationTTL:   verificationTTL,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with a hashed password.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		Email:                input.Email,
		Name:                 input.Name,
		PasswordHash:         passwordHash,
		NotificationsEnabled: true,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected, wrong password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if srv.maxActiveSessions > 0 {
		active, err := srv.refreshTokenRepo.CountActiveByUser(ctx, user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count active sessions")
		}
		if active >= int64(srv.maxActiveSessions) {
			srv.log(ctx).Warn("Login rejected, session limit reached",
				slog.Any("userID", user.ID),
				slog.Int64("activeSessions", active),
			)

			return nil, domainerrors.ErrSessionLimitExceeded
		}
	}

	return srv.issueTokens(ctx, user)
}

// Refresh rotates a valid refresh token into a new token pair.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	userID, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	stored, err := srv.refreshTokenRepo.FindByHash(ctx, hashToken(refreshToken))
	if errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if stored.UserID != userID || time.Now().After(stored.ExpiresAt) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	// Rotation: the presented token dies with this exchange.
	if err := srv.refreshTokenRepo.DeleteByHash(ctx, stored.TokenHash); err != nil &&
		!errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return nil, errors.Wrap(err, "failed to rotate refresh token")
	}

	return srv.issueTokens(ctx, user)
}

// Logout revokes the session behind the given refresh token. Revoking a
// token that is already gone succeeds.
func (srv *userService) Logout(ctx context.Context, refreshToken string) error {
	err := srv.refreshTokenRepo.DeleteByHash(ctx, hashToken(refreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// GetProfile retrieves the account profile.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	return user, nil
}

// UpdateProfile applies partial profile changes. Nil fields keep their stored values.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil && *input.Phone != user.Phone {
		user.Phone = *input.Phone
		// A new number must be verified again.
		user.PhoneVerified = false
	}
	if input.BusinessType != nil {
		user.BusinessType = *input.BusinessType
	}
	if input.ShopName != nil {
		user.ShopName = *input.ShopName
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.NotificationsEnabled != nil {
		user.NotificationsEnabled = *input.NotificationsEnabled
	}
	if input.DarkMode != nil {
		user.DarkMode = *input.DarkMode
	}
	if input.FCMToken != nil {
		user.FCMToken = *input.FCMToken
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return user, nil
}

// UploadAvatar stores a profile image and records its reference URL.
func (srv *userService) UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader) (string, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}

	avatarURL, err := srv.avatarStore.Save(ctx, userID, contentType, body)
	if err != nil {
		srv.log(ctx).Error("Failed to store avatar", slog.Any("userID", userID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to store avatar")
	}

	user.AvatarURL = avatarURL
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", err
	}

	return avatarURL, nil
}

// ChangePassword re-authenticates with the current password and sets a new one.
func (srv *userService) ChangePassword(ctx context.Context, userID uuid.UUID, input usecase.ChangePasswordInput) error {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected, wrong current password", slog.Any("userID", userID))

		return domainerrors.ErrInvalidCredentials
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed
	}

	if err := srv.userRepo.UpdatePasswordHash(ctx, userID, newHash); err != nil {
		return err
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return nil
}

// StartPhoneVerification issues a 6-digit challenge for the given phone.
// Only the code's hash is stored; any previous pending challenge is replaced.
func (srv *userService) StartPhoneVerification(ctx context.Context, userID uuid.UUID, phone string) error {
	if _, err := srv.GetProfile(ctx, userID); err != nil {
		return err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}

	codeHash, err := srv.hasher.Hash(code)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed
	}

	verification := &entity.PhoneVerification{
		UserID:    userID,
		Phone:     phone,
		CodeHash:  codeHash,
		ExpiresAt: time.Now().Add(srv.verificationTTL),
	}
	if err := srv.verificationRepo.Upsert(ctx, verification); err != nil {
		return err
	}

	// TODO: hand the code to an SMS gateway once one is provisioned. The raw
	// code stays out of the logs; only its hash leaves this function.
	srv.log(ctx).Debug("Phone verification challenge issued",
		slog.Any("userID", userID),
		slog.String("phone", phone),
	)

	return nil
}

// ConfirmPhoneVerification checks the challenge code and marks the phone verified.
func (srv *userService) ConfirmPhoneVerification(ctx context.Context, userID uuid.UUID, code string) error {
	verification, err := srv.verificationRepo.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrVerificationNotFound) {
		return domainerrors.ErrVerificationInvalid
	}
	if err != nil {
		return errors.Wrap(err, "failed to find phone verification")
	}

	if time.Now().After(verification.ExpiresAt) || !srv.hasher.Check(code, verification.CodeHash) {
		return domainerrors.ErrVerificationInvalid
	}

	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	user.Phone = verification.Phone
	user.PhoneVerified = true
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := srv.verificationRepo.Delete(ctx, verification.ID); err != nil &&
		!errors.Is(err, repository.ErrVerificationNotFound) {
		srv.log(ctx).Warn("Failed to clean up consumed verification", slog.Any("userID", userID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Phone verified", slog.Any("userID", userID))

	return nil
}

// ShopCardQR renders the shop's contact card as a PNG QR code.
func (srv *userService) ShopCardQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.qrcodeService.GenerateShopCardQR(service.ShopCard{
		ShopName:     user.ShopName,
		BusinessType: user.BusinessType,
		Phone:        user.Phone,
		Address:      user.Address,
	})
}

// PurgeExpiredSessions removes refresh tokens past their expiry. Sessions are
// only revoked lazily when presented, so abandoned ones accumulate until this
// sweep runs.
func (srv *userService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired sessions")
	}

	if removed > 0 {
		srv.log(ctx).Info("Expired sessions purged", slog.Int64("removed", removed))
	}

	return removed, nil
}

// issueTokens generates a token pair and persists the refresh session.
func (srv *userService) issueTokens(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh session")
	}

	srv.log(ctx).Debug("Session issued", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// hashToken derives the storage key for a refresh token. Raw tokens are never persisted.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// generateVerificationCode produces a 6-digit challenge code.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
