package impl

import (
	"context"
	"testing"

	"github.com/duniya2no/ReMeet/internal/domain/entity"
	"github.com/duniya2no/ReMeet/internal/domain/repository"
	mockRepo "github.com/duniya2no/ReMeet/internal/mocks/repository"
	mockSvc "github.com/duniya2no/ReMeet/internal/mocks/service"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOutboxDispatcher(t *testing.T) (
	usecase.OutboxDispatcher,
	*mockRepo.MockOutboxRepository,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockUserRepository,
	*mockSvc.MockPushService,
	*mockSvc.MockEventPublisher,
) {
	outboxRepo := mockRepo.NewMockOutboxRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	pushService := mockSvc.NewMockPushService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	dispatcher := NewOutboxDispatcher(OutboxDispatcherParams{
		TxManager: &stubTxManager{factory: &stubRepositoryFactory{
			outbox:        outboxRepo,
			notifications: notificationRepo,
		}},
		UserRepo:       userRepo,
		PushService:    pushService,
		EventPublisher: eventPublisher,
		Config:         testConfig(),
		Logger:         testLogger(),
	})

	return dispatcher, outboxRepo, notificationRepo, userRepo, pushService, eventPublisher
}

func queuedEvent(name string) *entity.OutboxEvent {
	return &entity.OutboxEvent{
		ID:       uuid.New(),
		Category: entity.NotificationCategoryCreated,
		Title:    entity.NotificationCategoryCreated.Title(),
		Message:  "Appointment scheduled for " + name + " on Jun 13, 2025 10:30 AM.",
	}
}

func TestOutboxDispatcher_DispatchPending_Success(t *testing.T) {
	dispatcher, outboxRepo, notificationRepo, userRepo, pushService, eventPublisher := createTestOutboxDispatcher(t)
	ctx := context.Background()

	eventA := queuedEvent("Aisha")
	eventB := queuedEvent("Bilal")

	outboxRepo.On("FetchUnpublished", ctx, 100, 5).
		Return([]*entity.OutboxEvent{eventA, eventB}, nil)
	userRepo.On("ListPushTargets", ctx).Return([]*entity.User{
		{ID: uuid.New(), NotificationsEnabled: true, FCMToken: "device-token"},
	}, nil)
	pushService.On("SendBatchNotification", ctx, []string{"device-token"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 0, nil, nil)
	eventPublisher.On("PublishAppointmentEvent", ctx, mock.Anything).Return(nil)

	created := make([]*entity.Notification, 0, 2)
	notificationRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		created = append(created, args.Get(1).(*entity.Notification))
	}).Return(nil)
	outboxRepo.On("MarkPublished", ctx, eventA.ID).Return(nil)
	outboxRepo.On("MarkPublished", ctx, eventB.ID).Return(nil)

	published, err := dispatcher.DispatchPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, published)

	require.Len(t, created, 2)
	assert.Equal(t, eventA.Title, created[0].Title)
	assert.Equal(t, eventA.Message, created[0].Message)
}

func TestOutboxDispatcher_DispatchPending_EmptyQueue(t *testing.T) {
	dispatcher, outboxRepo, _, _, _, _ := createTestOutboxDispatcher(t)
	ctx := context.Background()

	outboxRepo.On("FetchUnpublished", ctx, 100, 5).Return(nil, nil)

	published, err := dispatcher.DispatchPending(ctx)

	require.NoError(t, err)
	assert.Zero(t, published)
}

func TestOutboxDispatcher_PublishFailureIsRecordedAndRetried(t *testing.T) {
	dispatcher, outboxRepo, _, userRepo, _, eventPublisher := createTestOutboxDispatcher(t)
	ctx := context.Background()

	event := queuedEvent("Aisha")

	outboxRepo.On("FetchUnpublished", ctx, 100, 5).
		Return([]*entity.OutboxEvent{event}, nil)
	userRepo.On("ListPushTargets", ctx).Return(nil, nil)
	eventPublisher.On("PublishAppointmentEvent", ctx, mock.Anything).
		Return(errors.New("broker unavailable"))
	outboxRepo.On("MarkFailed", ctx, event.ID, mock.Anything).Return(nil)

	// The failure stays in the queue; it never reaches the caller.
	published, err := dispatcher.DispatchPending(ctx)

	require.NoError(t, err)
	assert.Zero(t, published)
}

// claimTxManager records when the dispatch callback is running so tests can
// assert which repository calls happen under the batch claim.
type claimTxManager struct {
	factory repository.RepositoryFactory
	inTx    bool
	begun   int
}

func (m *claimTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.begun++
	m.inTx = true
	defer func() { m.inTx = false }()

	return fn(m.factory)
}

// The row claim is a SKIP LOCKED lock that only shields the batch from a
// concurrent dispatcher while the claiming transaction is open. Fetch and
// published stamp must therefore share a single transaction; a fetch on a
// plain connection would release the lock immediately and a second service
// instance could deliver the same events again.
func TestOutboxDispatcher_FetchAndStampShareOneTransaction(t *testing.T) {
	outboxRepo := mockRepo.NewMockOutboxRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	pushService := mockSvc.NewMockPushService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	txManager := &claimTxManager{factory: &stubRepositoryFactory{
		outbox:        outboxRepo,
		notifications: notificationRepo,
	}}

	dispatcher := NewOutboxDispatcher(OutboxDispatcherParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		PushService:    pushService,
		EventPublisher: eventPublisher,
		Config:         testConfig(),
		Logger:         testLogger(),
	})

	ctx := context.Background()
	event := queuedEvent("Aisha")

	outboxRepo.On("FetchUnpublished", ctx, 100, 5).Run(func(mock.Arguments) {
		assert.True(t, txManager.inTx, "fetch must run inside the claiming transaction")
	}).Return([]*entity.OutboxEvent{event}, nil)
	userRepo.On("ListPushTargets", ctx).Return(nil, nil)
	eventPublisher.On("PublishAppointmentEvent", ctx, mock.Anything).Return(nil)
	notificationRepo.On("Create", ctx, mock.Anything).Run(func(mock.Arguments) {
		assert.True(t, txManager.inTx, "feed record must commit with the claim")
	}).Return(nil)
	outboxRepo.On("MarkPublished", ctx, event.ID).Run(func(mock.Arguments) {
		assert.True(t, txManager.inTx, "published stamp must commit with the claim")
	}).Return(nil)

	published, err := dispatcher.DispatchPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, published)
	assert.Equal(t, 1, txManager.begun, "the batch claims exactly one transaction")
}

func TestOutboxDispatcher_PushTargetFailureDoesNotBlockFeed(t *testing.T) {
	dispatcher, outboxRepo, notificationRepo, userRepo, _, eventPublisher := createTestOutboxDispatcher(t)
	ctx := context.Background()

	event := queuedEvent("Aisha")

	outboxRepo.On("FetchUnpublished", ctx, 100, 5).
		Return([]*entity.OutboxEvent{event}, nil)
	userRepo.On("ListPushTargets", ctx).Return(nil, errors.New("users table unavailable"))
	eventPublisher.On("PublishAppointmentEvent", ctx, mock.Anything).Return(nil)
	notificationRepo.On("Create", ctx, mock.Anything).Return(nil)
	outboxRepo.On("MarkPublished", ctx, event.ID).Return(nil)

	published, err := dispatcher.DispatchPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, published)
}
