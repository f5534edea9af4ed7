package chargerepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lfreitas-dev/pixadmin/internal/domain"
	"github.com/lfreitas-dev/pixadmin/internal/pg"
	"go.uber.org/zap"
)

const chargeColumns = `
	id, order_id, COALESCE(txid, ''), COALESCE(e2e_id, ''), status, amount, currency,
	COALESCE(description, ''), COALESCE(qr_url, ''), COALESCE(copia_e_cola, ''),
	expiration_at, paid_at, payer_info, provider_raw, created_at
`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Save(ctx context.Context, charge *domain.Charge) error {
	query := `
        INSERT INTO charges (order_id, txid, e2e_id, status, amount, currency, description, qr_url, copia_e_cola, expiration_at, provider_raw)
        VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query,
			charge.OrderID, charge.TxID, charge.E2EID, charge.Status, charge.Amount, charge.Currency,
			charge.Description, charge.QRUrl, charge.CopiaECola, charge.ExpirationAt, charge.ProviderRaw,
		).Scan(&charge.ID, &charge.CreatedAt)
		if err != nil {
			zap.L().Error("can't save charge", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE id = $1`
	charge, err := r.scanCharge(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find charge", zap.Error(err))
		return nil, err
	}
	return charge, nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) (*domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE order_id = $1`
	charge, err := r.scanCharge(r.db.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find charge by order id", zap.Error(err))
		return nil, err
	}
	return charge, nil
}

func (r *Repository) List(ctx context.Context, filter domain.ChargeFilter) ([]domain.Charge, error) {
	var conditions []string
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		conditions = append(conditions, fmt.Sprintf("(description ILIKE $%d OR order_id ILIKE $%d)", len(args), len(args)))
	}

	query := `SELECT ` + chargeColumns + ` FROM charges`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list charges", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var charges []domain.Charge
	for rows.Next() {
		charge, err := r.scanCharge(rows)
		if err != nil {
			zap.L().Error("can't scan charge row", zap.Error(err))
			return nil, err
		}
		charges = append(charges, *charge)
	}
	return charges, nil
}

// MarkPaid flips the charge matching order_id to "pago" and stamps the
// settlement fields. Returns the number of affected rows; zero means no
// charge carries that order_id.
func (r *Repository) MarkPaid(ctx context.Context, orderID, txid, e2eID string, payerInfo, providerRaw []byte) (int64, error) {
	query := `
        UPDATE charges
        SET status = 'pago', paid_at = NOW(), e2e_id = NULLIF($1, ''), txid = NULLIF($2, ''), payer_info = $3, provider_raw = $4
        WHERE order_id = $5
    `
	tag, err := r.db.Exec(ctx, query, e2eID, txid, payerInfo, providerRaw, orderID)
	if err != nil {
		zap.L().Error("can't mark charge paid", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// MarkCancelled flips the charge matching order_id to "cancelado".
func (r *Repository) MarkCancelled(ctx context.Context, orderID string, providerRaw []byte) (int64, error) {
	query := `
        UPDATE charges
        SET status = 'cancelado', provider_raw = $1
        WHERE order_id = $2
    `
	tag, err := r.db.Exec(ctx, query, providerRaw, orderID)
	if err != nil {
		zap.L().Error("can't mark charge cancelled", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) scanCharge(row pgx.Row) (*domain.Charge, error) {
	var charge domain.Charge
	err := row.Scan(
		&charge.ID, &charge.OrderID, &charge.TxID, &charge.E2EID, &charge.Status,
		&charge.Amount, &charge.Currency, &charge.Description, &charge.QRUrl,
		&charge.CopiaECola, &charge.ExpirationAt, &charge.PaidAt, &charge.PayerInfo,
		&charge.ProviderRaw, &charge.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &charge, nil
}
