package webhookservice

import (
	"context"

	"github.com/lfreitas-dev/pixadmin/internal/domain"
	"go.uber.org/zap"
)

// ProviderMercadoPago is the provider label written to the audit log.
const ProviderMercadoPago = "Mercado Pago"

type Repo interface {
	Save(ctx context.Context, webhook *domain.Webhook) error
	FindUnprocessed(ctx context.Context, maxRetries int, limit uint32) ([]domain.Webhook, error)
	MarkProcessed(ctx context.Context, id int) error
	MarkFailed(ctx context.Context, id int, errMsg string) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Ingest persists the raw inbound event before anything looks at it. The
// stored row doubles as the outbox entry the dispatcher later reconciles.
func (s *Service) Ingest(ctx context.Context, provider, eventType string, headers, payload []byte) (*domain.Webhook, error) {
	webhook := &domain.Webhook{
		Provider:    provider,
		EventType:   eventType,
		HTTPHeaders: headers,
		Payload:     payload,
	}
	if err := s.repo.Save(ctx, webhook); err != nil {
		zap.L().Error("can't persist webhook event", zap.String("provider", provider), zap.Error(err))
		return nil, err
	}

	zap.L().Info("webhook event recorded", zap.String("provider", provider), zap.String("event_type", eventType), zap.Int("id", webhook.ID))
	return webhook, nil
}
