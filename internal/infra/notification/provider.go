package notification

import (
	"context"
	"log/slog"

	"github.com/duniya2no/ReMeet/config"
	"github.com/duniya2no/ReMeet/internal/domain/service"

	"go.uber.org/fx"
)

// noopPushService is used when Firebase is not configured. Notifications
// still reach the in-app feed; only device pushes are skipped.
type noopPushService struct {
	logger *slog.Logger
}

func (s *noopPushService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.Debug("Push delivery skipped, no push provider configured", slog.String("title", title))

	return nil
}

func (s *noopPushService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	s.logger.Debug("Push delivery skipped, no push provider configured",
		slog.String("title", title),
		slog.Int("tokens", len(tokens)),
	)

	return 0, 0, nil, nil
}

// PushServiceParams holds dependencies for the push service provider.
type PushServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService selects the push provider from configuration. Without a
// Firebase section the no-op provider is used.
func NewPushService(params PushServiceParams) (service.PushService, error) {
	if params.Config.Firebase == nil || params.Config.Firebase.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return &noopPushService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, params.Config.Firebase.CredentialsPath)
}
