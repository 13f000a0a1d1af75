package payment

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/dto"
	"github.com/GlebRadaev/campuspay/internal/handlers/httperr"
	"github.com/GlebRadaev/campuspay/internal/handlers/request"
	"github.com/GlebRadaev/campuspay/internal/substrate"
	"github.com/GlebRadaev/campuspay/pkg/utils"
)

type Service interface {
	Deposit(ctx context.Context, sender domain.Address, payment *substrate.Payment) (uint64, error)
	Transfer(ctx context.Context, sender, recipient domain.Address, amount uint64, note string) (uint64, error)
	Withdraw(ctx context.Context, sender domain.Address, amount uint64) error
	VerifyCampus(ctx context.Context, sender, user domain.Address, campus string) (bool, error)
	GetBalance(ctx context.Context, user domain.Address) (uint64, error)
	IsVerified(ctx context.Context, user domain.Address) (bool, error)
	GetStats(ctx context.Context) (domain.PaymentStats, error)
	GetPayouts(ctx context.Context, receiver domain.Address) ([]domain.Payout, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Deposit godoc
//
//	@Summary		Deposit into the ledger
//	@Description	Credit the caller with an inbound payment addressed to APP-PAYMENT
//	@Tags			Payment
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.DepositRequestDTO	true	"Attached payment"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		422	{object}	utils.Response	"Payment rejected"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payment/deposit [post]
func (h *PaymentHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	caller, ok := request.Caller(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.DepositRequestDTO
	if err := request.Decode(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	balance, err := h.paymentService.Deposit(r.Context(), caller, request.Payment(req.Payment))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Address: string(caller), Balance: balance})
}

// Transfer godoc
//
//	@Summary		Transfer between ledger balances
//	@Tags			Payment
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.TransferRequestDTO	true	"Transfer request"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.IDResponseDTO	"Transfer id"
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		422	{object}	utils.Response	"Insufficient balance"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payment/transfer [post]
func (h *PaymentHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	caller, ok := request.Caller(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.TransferRequestDTO
	if err := request.Decode(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := h.paymentService.Transfer(r.Context(), caller, domain.Address(req.Recipient), req.Amount, req.Note)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.IDResponseDTO{ID: id})
}

// Withdraw godoc
//
//	@Summary		Withdraw from the ledger
//	@Description	Debit the caller and queue a payout from program custody
//	@Tags			Payment
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.WithdrawRequestDTO	true	"Withdraw request"
//	@Security		BearerAuth
//	@Success		202	{object}	dto.AmountResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		422	{object}	utils.Response	"Insufficient balance"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payment/withdraw [post]
func (h *PaymentHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	caller, ok := request.Caller(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.WithdrawRequestDTO
	if err := request.Decode(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.paymentService.Withdraw(r.Context(), caller, req.Amount); err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.AmountResponseDTO{Amount: req.Amount})
}

// VerifyCampus godoc
//
//	@Summary		Mark a user as campus verified
//	@Description	Admin only
//	@Tags			Payment
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.VerifyCampusRequestDTO	true	"Verification request"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.VerifiedResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Only creator can verify"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payment/verify [post]
func (h *PaymentHandler) VerifyCampus(w http.ResponseWriter, r *http.Request) {
	caller, ok := request.Caller(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.VerifyCampusRequestDTO
	if err := request.Decode(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	verified, err := h.paymentService.VerifyCampus(r.Context(), caller, domain.Address(req.User), req.Campus)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifiedResponseDTO{Address: req.User, Verified: verified})
}

// GetBalance godoc
//
//	@Summary	Get ledger balance
//	@Tags		Payment
//	@Produce	json
//	@Param		address	path		string	true	"Account address"
//	@Success	200		{object}	dto.BalanceResponseDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/payment/balance/{address} [get]
func (h *PaymentHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	addr, err := request.Address(r, "address")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	balance, err := h.paymentService.GetBalance(r.Context(), addr)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Address: string(addr), Balance: balance})
}

// IsVerified godoc
//
//	@Summary	Get campus verification flag
//	@Tags		Payment
//	@Produce	json
//	@Param		address	path		string	true	"Account address"
//	@Success	200		{object}	dto.VerifiedResponseDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/payment/verified/{address} [get]
func (h *PaymentHandler) IsVerified(w http.ResponseWriter, r *http.Request) {
	addr, err := request.Address(r, "address")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	verified, err := h.paymentService.IsVerified(r.Context(), addr)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifiedResponseDTO{Address: string(addr), Verified: verified})
}

// GetStats godoc
//
//	@Summary	Ledger platform stats
//	@Tags		Payment
//	@Produce	json
//	@Success	200	{object}	domain.PaymentStats
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/payment/stats [get]
func (h *PaymentHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.paymentService.GetStats(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// GetPayouts godoc
//
//	@Summary		Payouts received by the caller
//	@Description	Outbound transfers from every program to the caller, newest first
//	@Tags			Payment
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PayoutResponseDTO
//	@Success		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/payouts [get]
func (h *PaymentHandler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	caller, ok := request.Caller(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	payouts, err := h.paymentService.GetPayouts(r.Context(), caller)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if len(payouts) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.PayoutResponseDTO, 0, len(payouts))
	for _, p := range payouts {
		response = append(response, dto.PayoutResponseDTO{
			ID:        p.ID.String(),
			App:       string(p.App),
			Amount:    p.Amount,
			Kind:      string(p.Kind),
			Reference: p.Reference,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
			SentAt:    p.SentAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
