package payoutservice

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lfreitas-dev/pixadmin/internal/domain"
	"go.uber.org/zap"
)

const (
	RequestedStatus = "requested"
	ApprovedStatus  = "approved"
)

var (
	ErrReferenceAlreadyExists = errors.New("payout reference already exists")
	ErrPayoutNotFound         = errors.New("payout not found")
	ErrPayoutNotApprovable    = errors.New("payout is not awaiting approval")
	ErrApprovalNotAllowed     = errors.New("role is not allowed to approve payouts")
)

// approverRoles are the roles that may sign off a payout.
var approverRoles = map[string]struct{}{
	"admin":      {},
	"financeiro": {},
}

type Repo interface {
	Save(ctx context.Context, payout *domain.Payout) error
	FindByID(ctx context.Context, id int) (*domain.Payout, error)
	FindByReference(ctx context.Context, reference string) (*domain.Payout, error)
	List(ctx context.Context, status string) ([]domain.Payout, error)
	Approve(ctx context.Context, id, approvedBy int) (int64, error)
}

type CreatePayoutParams struct {
	Reference       string
	DestinationType string
	DestinationKey  string
	BeneficiaryName string
	DocType         string
	DocNumber       string
	Amount          float64
	ScheduledFor    *time.Time
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreatePayout(ctx context.Context, params CreatePayoutParams) (*domain.Payout, error) {
	existing, err := s.repo.FindByReference(ctx, params.Reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("payout reference already exists", zap.String("reference", params.Reference))
		return nil, ErrReferenceAlreadyExists
	}

	payout := &domain.Payout{
		Reference:       params.Reference,
		DestinationType: params.DestinationType,
		DestinationKey:  params.DestinationKey,
		BeneficiaryName: params.BeneficiaryName,
		DocType:         params.DocType,
		DocNumber:       params.DocNumber,
		Amount:          params.Amount,
		Status:          RequestedStatus,
		ScheduledFor:    params.ScheduledFor,
	}
	if err := s.repo.Save(ctx, payout); err != nil {
		// The FindByReference precheck races with concurrent requests; the
		// unique index on reference is the authority.
		if isUniqueViolation(err) {
			return nil, ErrReferenceAlreadyExists
		}
		zap.L().Error("can't save payout: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("payout created", zap.String("reference", params.Reference))
	return payout, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *Service) GetPayout(ctx context.Context, id int) (*domain.Payout, error) {
	payout, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payout == nil {
		return nil, ErrPayoutNotFound
	}
	return payout, nil
}

func (s *Service) ListPayouts(ctx context.Context, status string) ([]domain.Payout, error) {
	payouts, err := s.repo.List(ctx, status)
	if err != nil {
		zap.L().Error("failed to list payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}

// ApprovePayout stamps the approver on a requested payout. Only requested
// payouts transition; anything else is reported as a conflict.
func (s *Service) ApprovePayout(ctx context.Context, id, approverID int, approverRole string) (*domain.Payout, error) {
	if _, ok := approverRoles[approverRole]; !ok {
		zap.L().Info("payout approval denied", zap.Int("payout_id", id), zap.String("role", approverRole))
		return nil, ErrApprovalNotAllowed
	}

	affected, err := s.repo.Approve(ctx, id, approverID)
	if err != nil {
		zap.L().Error("can't approve payout: ", zap.Error(err))
		return nil, err
	}
	if affected == 0 {
		payout, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if payout == nil {
			return nil, ErrPayoutNotFound
		}
		return nil, ErrPayoutNotApprovable
	}

	zap.L().Info("payout approved", zap.Int("payout_id", id), zap.Int("approved_by", approverID))
	return s.repo.FindByID(ctx, id)
}
