package webhookrepo

import (
	"context"

	"github.com/lfreitas-dev/pixadmin/internal/domain"
	"github.com/lfreitas-dev/pixadmin/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Save appends the raw provider event to the audit log. Nothing is validated
// here; the row must survive even when downstream processing fails.
func (r *Repository) Save(ctx context.Context, webhook *domain.Webhook) error {
	query := `
        INSERT INTO webhooks (provider, event_type, http_headers, payload)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, webhook.Provider, webhook.EventType, webhook.HTTPHeaders, webhook.Payload).
		Scan(&webhook.ID, &webhook.CreatedAt)
	if err != nil {
		zap.L().Error("can't save webhook", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindUnprocessed(ctx context.Context, maxRetries int, limit uint32) ([]domain.Webhook, error) {
	query := `
        SELECT id, provider, COALESCE(event_type, ''), http_headers, payload, processed, retries, COALESCE(error_message, ''), created_at, processed_at
        FROM webhooks
        WHERE processed = FALSE AND retries < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, maxRetries, int(limit))
	if err != nil {
		zap.L().Error("can't get webhooks for processing", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var webhooks []domain.Webhook
	for rows.Next() {
		var webhook domain.Webhook
		err := rows.Scan(
			&webhook.ID, &webhook.Provider, &webhook.EventType, &webhook.HTTPHeaders,
			&webhook.Payload, &webhook.Processed, &webhook.Retries, &webhook.ErrorMessage,
			&webhook.CreatedAt, &webhook.ProcessedAt,
		)
		if err != nil {
			zap.L().Error("can't scan webhook row", zap.Error(err))
			return nil, err
		}
		webhooks = append(webhooks, webhook)
	}
	return webhooks, nil
}

func (r *Repository) MarkProcessed(ctx context.Context, id int) error {
	query := `
        UPDATE webhooks
        SET processed = TRUE, processed_at = NOW(), error_message = NULL
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark webhook processed", zap.Error(err))
		return err
	}
	return nil
}

// MarkFailed records a reconciliation failure and bumps the retry counter.
// Rows that exhaust retries stay visible in the table with the last error.
func (r *Repository) MarkFailed(ctx context.Context, id int, errMsg string) error {
	query := `
        UPDATE webhooks
        SET retries = retries + 1, error_message = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, errMsg, id)
	if err != nil {
		zap.L().Error("can't mark webhook failed", zap.Error(err))
		return err
	}
	return nil
}
