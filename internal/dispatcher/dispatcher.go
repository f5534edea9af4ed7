package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lfreitas-dev/pixadmin/internal/domain"
	"github.com/lfreitas-dev/pixadmin/internal/dto"
	"github.com/lfreitas-dev/pixadmin/internal/mercadopago"
	"github.com/lfreitas-dev/pixadmin/internal/service/chargeservice"
	"github.com/lfreitas-dev/pixadmin/internal/service/webhookservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxRetries bounds reconciliation attempts per event; events that exhaust
// them stay in the webhooks table with their last error for operators.
const maxRetries = 3

var processingEvents sync.Map

// Service drains unprocessed webhook events and reconciles charge status
// against the authoritative payment state fetched from the provider.
type Service struct {
	webhookRepo  webhookservice.Repo
	chargeRepo   chargeservice.Repo
	provider     mercadopago.ClientI
	limit        uint32
	workerPool   WorkerPoolI
	pollInterval time.Duration
}

func New(webhookRepo webhookservice.Repo, chargeRepo chargeservice.Repo, provider mercadopago.ClientI) *Service {
	return &Service{
		webhookRepo:  webhookRepo,
		chargeRepo:   chargeRepo,
		provider:     provider,
		limit:        1000,
		workerPool:   NewWorkerPool(10),
		pollInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Webhook dispatcher started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping dispatcher")
			return
		case <-ticker.C:
			s.processEvents(ctx)
		}
	}
}

func (s *Service) processEvents(ctx context.Context) {
	events, err := s.webhookRepo.FindUnprocessed(ctx, maxRetries, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch webhook events for processing", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, event := range events {
		event := event

		if _, loaded := processingEvents.LoadOrStore(event.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingEvents.Delete(event.ID)
				if err := s.handleEvent(ctx, event); err != nil {
					if markErr := s.webhookRepo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
						zap.L().Error("Failed to record webhook failure", zap.Int("webhookID", event.ID), zap.Error(markErr))
					}
					return err
				}
				return nil
			})
			if err != nil {
				processingEvents.Delete(event.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing webhook events", zap.Error(err))
	}
}

func (s *Service) handleEvent(ctx context.Context, event domain.Webhook) error {
	var payload dto.WebhookEventDTO
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return fmt.Errorf("can't parse webhook payload: %w", err)
	}

	paymentID := parsePaymentID(payload.Data.ID)
	if payload.Type != "payment" || paymentID == "" {
		zap.L().Info("Skipping non-payment webhook event", zap.Int("webhookID", event.ID), zap.String("type", payload.Type))
		return s.webhookRepo.MarkProcessed(ctx, event.ID)
	}

	// The webhook body is untrusted; only the provider's own record decides
	// the charge outcome.
	payment, err := s.provider.GetPayment(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("failed to fetch payment %s: %w", paymentID, err)
	}

	if err := s.reconcile(ctx, event, payment); err != nil {
		return err
	}
	return s.webhookRepo.MarkProcessed(ctx, event.ID)
}

func (s *Service) reconcile(ctx context.Context, event domain.Webhook, payment *mercadopago.Payment) error {
	orderID := payment.ExternalReference

	switch payment.Status {
	case "approved", "authorized":
		txid := strconv.FormatInt(payment.ID, 10)
		e2eID := payment.PointOfInteraction.TransactionData.FinancialInstitutionID
		affected, err := s.chargeRepo.MarkPaid(ctx, orderID, txid, e2eID, payment.Payer, payment.Raw)
		if err != nil {
			return fmt.Errorf("failed to mark charge paid for order %s: %w", orderID, err)
		}
		if affected == 0 {
			zap.L().Warn("Payment refers to unknown order", zap.Int("webhookID", event.ID), zap.String("orderID", orderID))
			return nil
		}
		zap.L().Info("Charge marked paid", zap.String("orderID", orderID), zap.String("txid", txid))
	case "cancelled", "rejected":
		affected, err := s.chargeRepo.MarkCancelled(ctx, orderID, payment.Raw)
		if err != nil {
			return fmt.Errorf("failed to mark charge cancelled for order %s: %w", orderID, err)
		}
		if affected == 0 {
			zap.L().Warn("Cancellation refers to unknown order", zap.Int("webhookID", event.ID), zap.String("orderID", orderID))
			return nil
		}
		zap.L().Info("Charge marked cancelled", zap.String("orderID", orderID))
	default:
		zap.L().Info("Payment status requires no local update", zap.String("orderID", orderID), zap.String("status", payment.Status))
	}
	return nil
}

// parsePaymentID accepts both the numeric and the quoted form Mercado Pago
// uses for data.id across event versions.
func parsePaymentID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}
	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber.String()
	}
	return ""
}
