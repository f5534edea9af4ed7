package chargeservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lfreitas-dev/pixadmin/internal/domain"
	"github.com/lfreitas-dev/pixadmin/internal/mercadopago"
	"go.uber.org/zap"
)

const (
	// AwaitingPaymentStatus cobrança emitida, aguardando pagamento do QR;
	AwaitingPaymentStatus string = "aguardando"
	// PaidStatus pagamento confirmado pelo provedor;
	PaidStatus string = "pago"
	// CancelledStatus pagamento cancelado ou rejeitado;
	CancelledStatus string = "cancelado"

	defaultExpireInMinutes = 30
)

var (
	ErrOrderAlreadyExists = errors.New("order already exists")
	ErrChargeNotFound     = errors.New("charge not found")
)

type Repo interface {
	Save(ctx context.Context, charge *domain.Charge) error
	FindByID(ctx context.Context, id int) (*domain.Charge, error)
	FindByOrderID(ctx context.Context, orderID string) (*domain.Charge, error)
	List(ctx context.Context, filter domain.ChargeFilter) ([]domain.Charge, error)
	MarkPaid(ctx context.Context, orderID, txid, e2eID string, payerInfo, providerRaw []byte) (int64, error)
	MarkCancelled(ctx context.Context, orderID string, providerRaw []byte) (int64, error)
}

type CreateChargeParams struct {
	Amount          float64
	Description     string
	OrderID         string
	ExpireInMinutes int
}

type Service struct {
	repo       Repo
	provider   mercadopago.ClientI
	webhookURL string
}

func New(repo Repo, provider mercadopago.ClientI, webhookURL string) *Service {
	return &Service{
		repo:       repo,
		provider:   provider,
		webhookURL: webhookURL,
	}
}

func (s *Service) CreateCharge(ctx context.Context, params CreateChargeParams) (*domain.Charge, error) {
	orderID := params.OrderID
	if orderID == "" {
		orderID = generateOrderID()
	}

	existing, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("order already exists", zap.String("order_id", orderID))
		return nil, ErrOrderAlreadyExists
	}

	expireInMinutes := params.ExpireInMinutes
	if expireInMinutes <= 0 {
		expireInMinutes = defaultExpireInMinutes
	}
	expiration := time.Now().Add(time.Duration(expireInMinutes) * time.Minute)

	payment, err := s.provider.CreatePayment(ctx, &mercadopago.PaymentRequest{
		TransactionAmount: params.Amount,
		Description:       params.Description,
		PaymentMethodID:   "pix",
		ExternalReference: orderID,
		NotificationURL:   s.webhookURL,
		DateOfExpiration:  expiration.Format(time.RFC3339),
	})
	if err != nil {
		zap.L().Error("can't create provider payment", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}

	txData := payment.PointOfInteraction.TransactionData
	charge := &domain.Charge{
		OrderID:      orderID,
		TxID:         txData.TransactionID,
		E2EID:        txData.FinancialInstitutionID,
		Status:       AwaitingPaymentStatus,
		Amount:       params.Amount,
		Currency:     "BRL",
		Description:  params.Description,
		QRUrl:        "data:image/png;base64," + txData.QRCodeBase64,
		CopiaECola:   txData.QRCode,
		ExpirationAt: &expiration,
		ProviderRaw:  payment.Raw,
	}

	if err := s.repo.Save(ctx, charge); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrOrderAlreadyExists
		}
		zap.L().Error("can't save charge: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("charge created", zap.String("order_id", orderID), zap.String("txid", charge.TxID))
	return charge, nil
}

func (s *Service) GetCharge(ctx context.Context, id int) (*domain.Charge, error) {
	charge, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if charge == nil {
		return nil, ErrChargeNotFound
	}
	return charge, nil
}

func (s *Service) ListCharges(ctx context.Context, filter domain.ChargeFilter) ([]domain.Charge, error) {
	charges, err := s.repo.List(ctx, filter)
	if err != nil {
		zap.L().Error("failed to list charges", zap.Error(err))
		return nil, err
	}
	return charges, nil
}

// generateOrderID keeps the ORDER-<millis>-<suffix> shape the admin panel
// already parses, with a uuid suffix instead of a random integer.
func generateOrderID() string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("ORDER-%d-%s", time.Now().UnixMilli(), suffix)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
