package payoutrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lfreitas-dev/pixadmin/internal/domain"
	"github.com/lfreitas-dev/pixadmin/internal/pg"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const selectPayouts = `SELECT
	id, reference, COALESCE(destination_type, ''), COALESCE(destination_key, ''),
	COALESCE(beneficiary_name, ''), COALESCE(doc_type, ''), COALESCE(doc_number, ''),
	amount, status, scheduled_for, approved_by, approved_at, provider_raw, created_at
 FROM payouts`

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func payoutRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "reference", "destination_type", "destination_key", "beneficiary_name",
		"doc_type", "doc_number", "amount", "status", "scheduled_for",
		"approved_by", "approved_at", "provider_raw", "created_at",
	})
}

func TestRepository_Save(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
		INSERT INTO payouts (reference, destination_type, destination_key, beneficiary_name, doc_type, doc_number, amount, status, scheduled_for)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`)

	tests := []struct {
		name      string
		payout    *domain.Payout
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save payout successfully",
			payout: &domain.Payout{
				Reference:       "PAYOUT-2024-0001",
				DestinationType: "pix_key",
				DestinationKey:  "maria@example.com",
				BeneficiaryName: "Maria Silva",
				DocType:         "CPF",
				DocNumber:       "12345678901",
				Amount:          150.75,
				Status:          "requested",
			},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("PAYOUT-2024-0001", "pix_key", "maria@example.com", "Maria Silva",
						"CPF", "12345678901", 150.75, "requested", (*time.Time)(nil)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			payout: &domain.Payout{
				Reference: "PAYOUT-2024-0001",
				Amount:    150.75,
				Status:    "requested",
			},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), tt.payout)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, tt.payout.ID)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Payout
	}{
		{
			name: "Payout found",
			id:   1,
			mockSetup: func() {
				rows := payoutRows().AddRow(
					1, "PAYOUT-2024-0001", "pix_key", "maria@example.com", "Maria Silva",
					"CPF", "12345678901", 150.75, "requested", (*time.Time)(nil),
					(*int)(nil), (*time.Time)(nil), []byte(nil), now,
				)
				mock.ExpectQuery(regexp.QuoteMeta(selectPayouts + " WHERE id = $1")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.Payout{
				ID:              1,
				Reference:       "PAYOUT-2024-0001",
				DestinationType: "pix_key",
				DestinationKey:  "maria@example.com",
				BeneficiaryName: "Maria Silva",
				DocType:         "CPF",
				DocNumber:       "12345678901",
				Amount:          150.75,
				Status:          "requested",
				CreatedAt:       now,
			},
		},
		{
			name: "Payout not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectPayouts + " WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectPayouts + " WHERE id = $1")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByReference(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		reference string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:      "Payout found",
			reference: "PAYOUT-2024-0001",
			mockSetup: func() {
				rows := payoutRows().AddRow(
					1, "PAYOUT-2024-0001", "", "", "", "", "", 150.75, "requested",
					(*time.Time)(nil), (*int)(nil), (*time.Time)(nil), []byte(nil), now,
				)
				mock.ExpectQuery(regexp.QuoteMeta(selectPayouts + " WHERE reference = $1")).
					WithArgs("PAYOUT-2024-0001").
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name:      "Payout not found",
			reference: "PAYOUT-404",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectPayouts + " WHERE reference = $1")).
					WithArgs("PAYOUT-404").
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name:      "Database error",
			reference: "PAYOUT-2024-0001",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectPayouts + " WHERE reference = $1")).
					WithArgs("PAYOUT-2024-0001").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByReference(context.Background(), tt.reference)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, result)
				assert.Equal(t, tt.reference, result.Reference)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		status    string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name:   "All payouts",
			status: "",
			mockSetup: func() {
				rows := payoutRows().
					AddRow(2, "PAYOUT-2024-0002", "", "", "", "", "", 99.0, "approved",
						(*time.Time)(nil), (*int)(nil), (*time.Time)(nil), []byte(nil), now).
					AddRow(1, "PAYOUT-2024-0001", "", "", "", "", "", 150.75, "requested",
						(*time.Time)(nil), (*int)(nil), (*time.Time)(nil), []byte(nil), now)
				mock.ExpectQuery(regexp.QuoteMeta(selectPayouts + " ORDER BY created_at DESC")).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name:   "Filtered by status",
			status: "requested",
			mockSetup: func() {
				rows := payoutRows().
					AddRow(1, "PAYOUT-2024-0001", "", "", "", "", "", 150.75, "requested",
						(*time.Time)(nil), (*int)(nil), (*time.Time)(nil), []byte(nil), now)
				mock.ExpectQuery(regexp.QuoteMeta(selectPayouts + " WHERE status = $1 ORDER BY created_at DESC")).
					WithArgs("requested").
					WillReturnRows(rows)
			},
			count: 1,
		},
		{
			name:   "Database error",
			status: "",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectPayouts + " ORDER BY created_at DESC")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), tt.status)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
		})
	}
}

func TestRepository_Approve(t *testing.T) {
	repo, mock, tx := NewMock(t)

	query := regexp.QuoteMeta(`
		UPDATE payouts
		SET status = 'approved', approved_by = $1, approved_at = NOW()
		WHERE id = $2 AND status = 'requested'`)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		affected  int64
	}{
		{
			name: "Payout approved",
			id:   1,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(query).
						WithArgs(7, 1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
			affected: 1,
		},
		{
			name: "Payout not in requested status",
			id:   2,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(query).
						WithArgs(7, 2).
						WillReturnResult(pgxmock.NewResult("UPDATE", 0))
					return fn(ctx)
				})
			},
			affected: 0,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(query).
						WithArgs(7, 1).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			affected, err := repo.Approve(context.Background(), tt.id, 7)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.affected, affected)
			}
		})
	}
}
