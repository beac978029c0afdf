package impl

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/duniya2no/ReMeet/internal/domain/entity"
	domainerrors "github.com/duniya2no/ReMeet/internal/domain/errors"
	"github.com/duniya2no/ReMeet/internal/domain/repository"
	"github.com/duniya2no/ReMeet/internal/domain/service"
	mockRepo "github.com/duniya2no/ReMeet/internal/mocks/repository"
	mockSvc "github.com/duniya2no/ReMeet/internal/mocks/service"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	verificationRepo *mockRepo.MockPhoneVerificationRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	avatarStore      *mockSvc.MockAvatarStore
	qrcodeService    *mockSvc.MockQRCodeService
}

func createTestUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	return createTestUserServiceWithLogger(t, testLogger())
}

func createTestUserServiceWithLogger(t *testing.T, logger *slog.Logger) (usecase.UserUsecase, *userServiceMocks) {
	mocks := &userServiceMocks{
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		verificationRepo: mockRepo.NewMockPhoneVerificationRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		avatarStore:      mockSvc.NewMockAvatarStore(t),
		qrcodeService:    mockSvc.NewMockQRCodeService(t),
	}

	svc := NewUserService(UserServiceParams{
		UserRepo:         mocks.userRepo,
		RefreshTokenRepo: mocks.refreshTokenRepo,
		VerificationRepo: mocks.verificationRepo,
		Hasher:           mocks.hasher,
		TokenService:     mocks.tokenService,
		AvatarStore:      mocks.avatarStore,
		QRCodeService:    mocks.qrcodeService,
		Config:           testConfig(),
		Logger:           logger,
	})

	return svc, mocks
}

func testUser(password string) *entity.User {
	return &entity.User{
		ID:                   uuid.New(),
		Email:                "owner@example.com",
		Name:                 "Aisha",
		PasswordHash:         "hashed:" + password,
		NotificationsEnabled: true,
	}
}

func expectIssuedTokens(mocks *userServiceMocks, userID uuid.UUID, access, refresh string) {
	mocks.tokenService.On("GenerateTokens", userID).Return(access, refresh, nil)
	mocks.tokenService.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour)
	mocks.refreshTokenRepo.On("Create", mock.Anything, mock.MatchedBy(func(session *entity.RefreshToken) bool {
		// The raw token must never be stored, only a digest of it.
		return session.UserID == userID &&
			session.TokenHash != refresh &&
			len(session.TokenHash) == 64 &&
			session.ExpiresAt.After(time.Now())
	})).Return(nil)
}

func TestUserService_Register_Success(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByEmail", ctx, "owner@example.com").
		Return(nil, repository.ErrUserNotFound)
	mocks.hasher.On("Hash", "s3cret-pass").Return("hashed:s3cret-pass", nil)
	mocks.userRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = uuid.New()
	}).Return(nil)

	user, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "owner@example.com",
		Name:     "Aisha",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "hashed:s3cret-pass", user.PasswordHash)
	assert.True(t, user.NotificationsEnabled)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByEmail", ctx, "owner@example.com").
		Return(testUser("s3cret-pass"), nil)

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "owner@example.com",
		Password: "s3cret-pass",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()
	user := testUser("s3cret-pass")

	mocks.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	mocks.hasher.On("Check", "s3cret-pass", user.PasswordHash).Return(true)
	mocks.refreshTokenRepo.On("CountActiveByUser", ctx, user.ID).Return(int64(1), nil)
	expectIssuedTokens(mocks, user.ID, "access-token", "refresh-token")

	out, err := svc.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()
	user := testUser("s3cret-pass")

	mocks.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	mocks.hasher.On("Check", "wrong-pass", user.PasswordHash).Return(false)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "wrong-pass"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_SessionLimitReached(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()
	user := testUser("s3cret-pass")

	mocks.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	mocks.hasher.On("Check", "s3cret-pass", user.PasswordHash).Return(true)
	mocks.refreshTokenRepo.On("CountActiveByUser", ctx, user.ID).Return(int64(5), nil)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "s3cret-pass"})

	assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
}

func TestUserService_Refresh_RotatesSession(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()
	user := testUser("s3cret-pass")

	presented := "old-refresh-token"
	presentedHash := hashToken(presented)

	mocks.tokenService.On("ValidateRefreshToken", presented).Return(user.ID, nil)
	mocks.refreshTokenRepo.On("FindByHash", ctx, presentedHash).Return(&entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: presentedHash,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	mocks.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mocks.refreshTokenRepo.On("DeleteByHash", ctx, presentedHash).Return(nil)
	expectIssuedTokens(mocks, user.ID, "new-access", "new-refresh")

	out, err := svc.Refresh(ctx, presented)

	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, "new-refresh", out.RefreshToken)
}

func TestUserService_Refresh_ExpiredSession(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()
	user := testUser("s3cret-pass")

	presented := "stale-refresh-token"
	presentedHash := hashToken(presented)

	mocks.tokenService.On("ValidateRefreshToken", presented).Return(user.ID, nil)
	mocks.refreshTokenRepo.On("FindByHash", ctx, presentedHash).Return(&entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: presentedHash,
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)

	_, err := svc.Refresh(ctx, presented)

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Refresh_RevokedSession(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()

	presented := "revoked-refresh-token"

	mocks.tokenService.On("ValidateRefreshToken", presented).Return(uuid.New(), nil)
	mocks.refreshTokenRepo.On("FindByHash", ctx, hashToken(presented)).
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := svc.Refresh(ctx, presented)

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_IsIdempotent(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()

	mocks.refreshTokenRepo.On("DeleteByHash", ctx, hashToken("gone-token")).
		Return(repository.ErrRefreshTokenNotFound)

	assert.NoError(t, svc.Logout(ctx, "gone-token"))
}

func TestUserService_UpdateProfile_PhoneChangeResetsVerification(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()

	user := testUser("s3cret-pass")
	user.Phone = "+923001234567"
	user.PhoneVerified = true

	mocks.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mocks.userRepo.On("Update", ctx, mock.Anything).Return(nil)

	newPhone := "+923009876543"
	updated, err := svc.UpdateProfile(ctx, user.ID, usecase.UpdateProfileInput{Phone: &newPhone})

	require.NoError(t, err)
	assert.Equal(t, newPhone, updated.Phone)
	assert.False(t, updated.PhoneVerified)
}

func TestUserService_UpdateProfile_NilFieldsKeepStoredValues(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()

	user := testUser("s3cret-pass")
	user.ShopName = "Aisha Salon"
	user.PhoneVerified = true

	mocks.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mocks.userRepo.On("Update", ctx, mock.Anything).Return(nil)

	darkMode := true
	updated, err := svc.UpdateProfile(ctx, user.ID, usecase.UpdateProfileInput{DarkMode: &darkMode})

	require.NoError(t, err)
	assert.True(t, updated.DarkMode)
	assert.Equal(t, "Aisha Salon", updated.ShopName)
	assert.True(t, updated.PhoneVerified)
}

func TestUserService_UploadAvatar(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()
	user := testUser("s3cret-pass")

	mocks.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mocks.avatarStore.On("Save", ctx, user.ID, "image/png", mock.Anything).
		Return("https://cdn.example.com/avatars/"+user.ID.String()+".png", nil)
	mocks.userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return strings.HasSuffix(u.AvatarURL, ".png")
	})).Return(nil)

	url, err := svc.UploadAvatar(ctx, user.ID, "image/png", strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.Contains(t, url, user.ID.String())
}

func TestUserService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()
	user := testUser("s3cret-pass")

	mocks.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mocks.hasher.On("Check", "not-my-password", user.PasswordHash).Return(false)

	err := svc.ChangePassword(ctx, user.ID, usecase.ChangePasswordInput{
		CurrentPassword: "not-my-password",
		NewPassword:     "brand-new-pass",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()
	user := testUser("s3cret-pass")

	mocks.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mocks.hasher.On("Check", "s3cret-pass", user.PasswordHash).Return(true)
	mocks.hasher.On("Hash", "brand-new-pass").Return("hashed:brand-new-pass", nil)
	mocks.userRepo.On("UpdatePasswordHash", ctx, user.ID, "hashed:brand-new-pass").Return(nil)

	err := svc.ChangePassword(ctx, user.ID, usecase.ChangePasswordInput{
		CurrentPassword: "s3cret-pass",
		NewPassword:     "brand-new-pass",
	})

	assert.NoError(t, err)
}

func TestUserService_PhoneVerification_StartStoresOnlyHash(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()
	user := testUser("s3cret-pass")

	mocks.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	var issuedCode string
	mocks.hasher.On("Hash", mock.MatchedBy(func(code string) bool {
		issuedCode = code

		return len(code) == 6
	})).Return("hashed-code", nil)
	mocks.verificationRepo.On("Upsert", ctx, mock.MatchedBy(func(v *entity.PhoneVerification) bool {
		return v.UserID == user.ID &&
			v.Phone == "+923001234567" &&
			v.CodeHash == "hashed-code" &&
			v.ExpiresAt.After(time.Now())
	})).Return(nil)

	require.NoError(t, svc.StartPhoneVerification(ctx, user.ID, "+923001234567"))
	assert.Len(t, issuedCode, 6)
}

func TestUserService_PhoneVerification_StartKeepsCodeOutOfLogs(t *testing.T) {
	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc, mocks := createTestUserServiceWithLogger(t, logger)
	ctx := context.Background()
	user := testUser("s3cret-pass")

	mocks.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	var issuedCode string
	mocks.hasher.On("Hash", mock.MatchedBy(func(code string) bool {
		issuedCode = code

		return len(code) == 6
	})).Return("hashed-code", nil)
	mocks.verificationRepo.On("Upsert", ctx, mock.Anything).Return(nil)

	require.NoError(t, svc.StartPhoneVerification(ctx, user.ID, "+923001234567"))

	// The challenge outlives any log retention window, so the raw code must
	// never be written to the log stream.
	require.Len(t, issuedCode, 6)
	assert.Contains(t, logBuffer.String(), "Phone verification challenge issued")
	assert.NotContains(t, logBuffer.String(), issuedCode)
}

func TestUserService_PhoneVerification_ConfirmSuccess(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()
	user := testUser("s3cret-pass")

	verification := &entity.PhoneVerification{
		ID:        uuid.New(),
		UserID:    user.ID,
		Phone:     "+923001234567",
		CodeHash:  "hashed-code",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	mocks.verificationRepo.On("FindByUser", ctx, user.ID).Return(verification, nil)
	mocks.hasher.On("Check", "123456", "hashed-code").Return(true)
	mocks.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mocks.userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Phone == "+923001234567" && u.PhoneVerified
	})).Return(nil)
	mocks.verificationRepo.On("Delete", ctx, verification.ID).Return(nil)

	assert.NoError(t, svc.ConfirmPhoneVerification(ctx, user.ID, "123456"))
}

func TestUserService_PhoneVerification_ConfirmExpiredChallenge(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.verificationRepo.On("FindByUser", ctx, userID).Return(&entity.PhoneVerification{
		UserID:    userID,
		CodeHash:  "hashed-code",
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)

	err := svc.ConfirmPhoneVerification(ctx, userID, "123456")

	assert.ErrorIs(t, err, domainerrors.ErrVerificationInvalid)
}

func TestUserService_PhoneVerification_ConfirmWrongCode(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.verificationRepo.On("FindByUser", ctx, userID).Return(&entity.PhoneVerification{
		UserID:    userID,
		CodeHash:  "hashed-code",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}, nil)
	mocks.hasher.On("Check", "000000", "hashed-code").Return(false)

	err := svc.ConfirmPhoneVerification(ctx, userID, "000000")

	assert.ErrorIs(t, err, domainerrors.ErrVerificationInvalid)
}

func TestUserService_ShopCardQR(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()

	user := testUser("s3cret-pass")
	user.ShopName = "Aisha Salon"
	user.BusinessType = "salon"
	user.Phone = "+923001234567"
	user.Address = "Shop 4, Liberty Market"

	mocks.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mocks.qrcodeService.On("GenerateShopCardQR", service.ShopCard{
		ShopName:     "Aisha Salon",
		BusinessType: "salon",
		Phone:        "+923001234567",
		Address:      "Shop 4, Liberty Market",
	}).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := svc.ShopCardQR(ctx, user.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetProfile(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetProfile_RepositoryFailureIsWrapped(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.On("FindByID", ctx, userID).Return(nil, errors.New("connection reset"))

	_, err := svc.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_PurgeExpiredSessions(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()

	mocks.refreshTokenRepo.On("DeleteExpired", ctx).Return(int64(3), nil)

	removed, err := svc.PurgeExpiredSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestUserService_PurgeExpiredSessions_RepositoryFailureIsWrapped(t *testing.T) {
	svc, mocks := createTestUserService(t)
	ctx := context.Background()

	mocks.refreshTokenRepo.On("DeleteExpired", ctx).Return(int64(0), errors.New("connection reset"))

	removed, err := svc.PurgeExpiredSessions(ctx)

	require.Error(t, err)
	assert.Zero(t, removed)
}
