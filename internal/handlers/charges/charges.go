package charges

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/lfreitas-dev/pixadmin/internal/domain"
	"github.com/lfreitas-dev/pixadmin/internal/dto"
	"github.com/lfreitas-dev/pixadmin/internal/mercadopago"
	"github.com/lfreitas-dev/pixadmin/internal/service/chargeservice"
	"github.com/lfreitas-dev/pixadmin/pkg/utils"
)

type Service interface {
	CreateCharge(ctx context.Context, params chargeservice.CreateChargeParams) (*domain.Charge, error)
	GetCharge(ctx context.Context, id int) (*domain.Charge, error)
	ListCharges(ctx context.Context, filter domain.ChargeFilter) ([]domain.Charge, error)
}

type ChargeHandler struct {
	chargeService Service
	validate      *validator.Validate
}

func New(chargeService Service) *ChargeHandler {
	return &ChargeHandler{
		chargeService: chargeService,
		validate:      validator.New(),
	}
}

// CreateCharge godoc
//
//	@Summary		Create a PIX charge
//	@Description	Create a payment-provider PIX charge and persist it as "aguardando"
//	@Tags			Charges
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateChargeRequestDTO	true	"Charge request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.CreateChargeResponseDTO
//	@Failure		400	{object}	utils.Response	"Amount and description are required"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		409	{object}	utils.Response	"Order already exists"
//	@Failure		500	{object}	utils.Response	"Provider or internal error"
//	@Router			/api/charges [post]
func (h *ChargeHandler) CreateCharge(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateChargeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount and description are required")
		return
	}

	charge, err := h.chargeService.CreateCharge(r.Context(), chargeservice.CreateChargeParams{
		Amount:          req.Amount,
		Description:     req.Description,
		OrderID:         req.OrderID,
		ExpireInMinutes: req.ExpireInMinutes,
	})
	if err != nil {
		var apiErr *mercadopago.APIError
		switch {
		case errors.Is(err, chargeservice.ErrOrderAlreadyExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.As(err, &apiErr):
			utils.RespondWithError(w, http.StatusInternalServerError, "Error creating PIX charge: "+apiErr.Message)
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	resp := dto.CreateChargeResponseDTO{
		ID:          charge.ID,
		Status:      charge.Status,
		QRUrl:       charge.QRUrl,
		CopiaECola:  charge.CopiaECola,
		TxID:        charge.TxID,
		OrderID:     charge.OrderID,
		Amount:      charge.Amount,
		Description: charge.Description,
	}
	if charge.ExpirationAt != nil {
		resp.ExpirationAt = charge.ExpirationAt.Format(time.RFC3339)
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// GetCharge godoc
//
//	@Summary		Get charge details
//	@Tags			Charges
//	@Produce		json
//	@Param			id	path	int	true	"Charge ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ChargeDTO
//	@Failure		400	{object}	utils.Response	"Invalid charge id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Charge not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/charges/{id} [get]
func (h *ChargeHandler) GetCharge(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid charge id")
		return
	}

	charge, err := h.chargeService.GetCharge(r.Context(), id)
	if err != nil {
		if errors.Is(err, chargeservice.ErrChargeNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Charge not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toChargeDTO(charge))
}

// ListCharges godoc
//
//	@Summary		List charges
//	@Description	List charges filtered by status, creation range and free text over description/order id
//	@Tags			Charges
//	@Produce		json
//	@Param			status	query	string	false	"Exact status match"
//	@Param			from	query	string	false	"Created at lower bound (RFC3339)"
//	@Param			to		query	string	false	"Created at upper bound (RFC3339)"
//	@Param			q		query	string	false	"Case-insensitive substring of description or order id"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ChargeDTO
//	@Failure		400	{object}	utils.Response	"Invalid time bound"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/charges [get]
func (h *ChargeHandler) ListCharges(w http.ResponseWriter, r *http.Request) {
	filter := domain.ChargeFilter{
		Status: r.URL.Query().Get("status"),
		Query:  r.URL.Query().Get("q"),
	}
	if from := r.URL.Query().Get("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid 'from' time bound")
			return
		}
		filter.From = &t
	}
	if to := r.URL.Query().Get("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid 'to' time bound")
			return
		}
		filter.To = &t
	}

	charges, err := h.chargeService.ListCharges(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ChargeDTO, 0, len(charges))
	for i := range charges {
		response = append(response, toChargeDTO(&charges[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toChargeDTO(charge *domain.Charge) dto.ChargeDTO {
	resp := dto.ChargeDTO{
		ID:          charge.ID,
		OrderID:     charge.OrderID,
		TxID:        charge.TxID,
		E2EID:       charge.E2EID,
		Status:      charge.Status,
		Amount:      charge.Amount,
		Currency:    charge.Currency,
		Description: charge.Description,
		QRUrl:       charge.QRUrl,
		CopiaECola:  charge.CopiaECola,
		PayerInfo:   json.RawMessage(charge.PayerInfo),
		ProviderRaw: json.RawMessage(charge.ProviderRaw),
		CreatedAt:   charge.CreatedAt.Format(time.RFC3339),
	}
	if charge.ExpirationAt != nil {
		resp.ExpirationAt = charge.ExpirationAt.Format(time.RFC3339)
	}
	if charge.PaidAt != nil {
		resp.PaidAt = charge.PaidAt.Format(time.RFC3339)
	}
	return resp
}
