package payouts

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
	"github.com/lfreitas-dev/pixadmin/internal/service/payoutservice"
	"github.com/lfreitas-dev/pixadmin/pkg/auth"
	"github.com/lfreitas-dev/pixadmin/pkg/utils"
)

type Service interface {
	CreatePayout(ctx context.Context, params payoutservice.CreatePayoutParams) (*domain.Payout, error)
	GetPayout(ctx context.Context, id int) (*domain.Payout, error)
	ListPayouts(ctx context.Context, status string) ([]domain.Payout, error)
	ApprovePayout(ctx context.Context, id, approverID int, approverRole string) (*domain.Payout, error)
}

type PayoutHandler struct {
	payoutService Service
	validate      *validator.Validate
}

func New(payoutService Service) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
		validate:      validator.New(),
	}
}

// CreatePayout godoc
//
//	@Summary		Request a payout
//	@Tags			Payouts
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreatePayoutRequestDTO	true	"Payout request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.PayoutDTO
//	@Failure		400	{object}	utils.Response	"Reference and amount are required"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		409	{object}	utils.Response	"Reference already exists"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payouts [post]
func (h *PayoutHandler) CreatePayout(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Reference and amount are required")
		return
	}

	params := payoutservice.CreatePayoutParams{
		Reference:       req.Reference,
		DestinationType: req.DestinationType,
		DestinationKey:  req.DestinationKey,
		BeneficiaryName: req.BeneficiaryName,
		DocType:         req.DocType,
		DocNumber:       req.DocNumber,
		Amount:          req.Amount,
	}
	if req.ScheduledFor != "" {
		t, err := time.Parse(time.RFC3339, req.ScheduledFor)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid 'scheduledFor' timestamp")
			return
		}
		params.ScheduledFor = &t
	}

	payout, err := h.payoutService.CreatePayout(r.Context(), params)
	if err != nil {
		if errors.Is(err, payoutservice.ErrReferenceAlreadyExists) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPayoutDTO(payout))
}

// GetPayout godoc
//
//	@Summary		Get payout details
//	@Tags			Payouts
//	@Produce		json
//	@Param			id	path	int	true	"Payout ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PayoutDTO
//	@Failure		400	{object}	utils.Response	"Invalid payout id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Payout not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payouts/{id} [get]
func (h *PayoutHandler) GetPayout(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payout id")
		return
	}

	payout, err := h.payoutService.GetPayout(r.Context(), id)
	if err != nil {
		if errors.Is(err, payoutservice.ErrPayoutNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Payout not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPayoutDTO(payout))
}

// ListPayouts godoc
//
//	@Summary		List payouts
//	@Tags			Payouts
//	@Produce		json
//	@Param			status	query	string	false	"Exact status match"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PayoutDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payouts [get]
func (h *PayoutHandler) ListPayouts(w http.ResponseWriter, r *http.Request) {
	payouts, err := h.payoutService.ListPayouts(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PayoutDTO, 0, len(payouts))
	for i := range payouts {
		response = append(response, toPayoutDTO(&payouts[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ApprovePayout godoc
//
//	@Summary		Approve a requested payout
//	@Description	Stamp the authenticated approver on a payout awaiting approval. Restricted to admin and financeiro roles.
//	@Tags			Payouts
//	@Produce		json
//	@Param			id	path	int	true	"Payout ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PayoutDTO
//	@Failure		400	{object}	utils.Response	"Invalid payout id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Role not allowed to approve"
//	@Failure		404	{object}	utils.Response	"Payout not found"
//	@Failure		409	{object}	utils.Response	"Payout is not awaiting approval"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payouts/{id}/approve [post]
func (h *PayoutHandler) ApprovePayout(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payout id")
		return
	}

	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	payout, err := h.payoutService.ApprovePayout(r.Context(), id, claims.UserID, claims.Role)
	if err != nil {
		switch {
		case errors.Is(err, payoutservice.ErrApprovalNotAllowed):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, payoutservice.ErrPayoutNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Payout not found")
		case errors.Is(err, payoutservice.ErrPayoutNotApprovable):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPayoutDTO(payout))
}

func toPayoutDTO(payout *domain.Payout) dto.PayoutDTO {
	resp := dto.PayoutDTO{
		ID:              payout.ID,
		Reference:       payout.Reference,
		DestinationType: payout.DestinationType,
		DestinationKey:  payout.DestinationKey,
		BeneficiaryName: payout.BeneficiaryName,
		DocType:         payout.DocType,
		DocNumber:       payout.DocNumber,
		Amount:          payout.Amount,
		Status:          payout.Status,
		ApprovedBy:      payout.ApprovedBy,
		CreatedAt:       payout.CreatedAt.Format(time.RFC3339),
	}
	if payout.ScheduledFor != nil {
		resp.ScheduledFor = payout.ScheduledFor.Format(time.RFC3339)
	}
	if payout.ApprovedAt != nil {
		resp.ApprovedAt = payout.ApprovedAt.Format(time.RFC3339)
	}
	return resp
}
