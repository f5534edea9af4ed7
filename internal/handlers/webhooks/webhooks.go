package webhooks

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/lfreitas-dev/pixadmin/internal/domain"
	"github.com/lfreitas-dev/pixadmin/internal/dto"
	"github.com/lfreitas-dev/pixadmin/internal/service/webhookservice"
	"github.com/lfreitas-dev/pixadmin/pkg/utils"
)

type Service interface {
	Ingest(ctx context.Context, provider, eventType string, headers, payload []byte) (*domain.Webhook, error)
}

type WebhookHandler struct {
	webhookService Service
}

func New(webhookService Service) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
	}
}

// ReceiveMercadoPago godoc
//
//	@Summary		Receive Mercado Pago webhook
//	@Description	Persist the raw provider event and acknowledge. Reconciliation runs asynchronously.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Event recorded"
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		500	{object}	utils.Response	"Event could not be recorded"
//	@Router			/api/webhooks/mercadopago [post]
func (h *WebhookHandler) ReceiveMercadoPago(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var event dto.WebhookEventDTO
	if err := json.Unmarshal(payload, &event); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Header marshalling never fails for http.Header, but a nil blob is
	// still an acceptable audit record.
	headers, _ := json.Marshal(r.Header)

	_, err = h.webhookService.Ingest(r.Context(), webhookservice.ProviderMercadoPago, event.Type, headers, payload)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// 200 goes out as soon as the event is durable; the provider never sees
	// reconciliation failures.
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}
