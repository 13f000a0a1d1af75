package expense

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/dto"
	"github.com/GlebRadaev/campuspay/internal/handlers/httperr"
	"github.com/GlebRadaev/campuspay/internal/handlers/request"
	"github.com/GlebRadaev/campuspay/internal/service/expenseservice"
	"github.com/GlebRadaev/campuspay/internal/substrate"
	"github.com/GlebRadaev/campuspay/pkg/utils"
)

type Service interface {
	CreateGroup(ctx context.Context, sender domain.Address, params expenseservice.CreateGroupParams) (uint64, error)
	Contribute(ctx context.Context, sender domain.Address, groupID uint64, payment *substrate.Payment) error
	SettleGroup(ctx context.Context, sender domain.Address, groupID uint64) error
	GetGroup(ctx context.Context, groupID uint64) (domain.Group, error)
	GetContribution(ctx context.Context, groupID uint64, member domain.Address) (uint64, error)
	GetStats(ctx context.Context) (domain.ExpenseStats, error)
}

type ExpenseHandler struct {
	expenseService Service
}

func New(expenseService Service) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// CreateGroup godoc
//
//	@Summary		Create an expense group
//	@Description	The caller becomes the creator and receives the settlement
//	@Tags			Expense
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateGroupRequestDTO	true	"Group parameters"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.IDResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		409	{object}	utils.Response	"Deadline must be in future"
//	@Failure		422	{object}	utils.Response	"Invalid group parameters"
//	@Router			/api/groups [post]
func (h *ExpenseHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	caller, ok := request.Caller(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateGroupRequestDTO
	if err := request.Decode(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := h.expenseService.CreateGroup(r.Context(), caller, expenseservice.CreateGroupParams{
		TotalAmount: req.TotalAmount,
		NumMembers:  req.NumMembers,
		Deadline:    req.Deadline,
		PenaltyRate: req.PenaltyRate,
		Description: req.Description,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.IDResponseDTO{ID: id})
}

// Contribute godoc
//
//	@Summary		Pay a share into a group
//	@Tags			Expense
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Group id"
//	@Param			request	body	dto.ContributeRequestDTO	true	"Attached payment"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ContributionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		404	{object}	utils.Response	"Group not found"
//	@Failure		409	{object}	utils.Response	"Group already settled"
//	@Failure		422	{object}	utils.Response	"Insufficient payment"
//	@Router			/api/groups/{id}/contribute [post]
func (h *ExpenseHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	caller, ok := request.Caller(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := request.ID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.ContributeRequestDTO
	if err := request.Decode(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.expenseService.Contribute(r.Context(), caller, id, request.Payment(req.Payment)); err != nil {
		httperr.Write(w, err)
		return
	}
	amount, err := h.expenseService.GetContribution(r.Context(), id, caller)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ContributionResponseDTO{GroupID: id, Member: string(caller), Amount: amount})
}

// SettleGroup godoc
//
//	@Summary		Settle a fully funded group
//	@Description	Creator only. Pays the collected total to the creator once.
//	@Tags			Expense
//	@Produce		json
//	@Param			id	path	int	true	"Group id"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.Group
//	@Failure		403	{object}	utils.Response	"Only creator can settle"
//	@Failure		404	{object}	utils.Response	"Group not found"
//	@Failure		409	{object}	utils.Response	"Not fully funded or already settled"
//	@Router			/api/groups/{id}/settle [post]
func (h *ExpenseHandler) SettleGroup(w http.ResponseWriter, r *http.Request) {
	caller, ok := request.Caller(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := request.ID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.expenseService.SettleGroup(r.Context(), caller, id); err != nil {
		httperr.Write(w, err)
		return
	}
	h.respondGroup(w, r, id)
}

// GetGroup godoc
//
//	@Summary	Get group
//	@Tags		Expense
//	@Produce	json
//	@Param		id	path		int	true	"Group id"
//	@Success	200	{object}	domain.Group
//	@Failure	404	{object}	utils.Response	"Group not found"
//	@Router		/api/groups/{id} [get]
func (h *ExpenseHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	id, err := request.ID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondGroup(w, r, id)
}

func (h *ExpenseHandler) respondGroup(w http.ResponseWriter, r *http.Request, id uint64) {
	group, err := h.expenseService.GetGroup(r.Context(), id)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, group)
}

// GetContribution godoc
//
//	@Summary	Get a member's contribution
//	@Tags		Expense
//	@Produce	json
//	@Param		id		path		int		true	"Group id"
//	@Param		address	path		string	true	"Member address"
//	@Success	200		{object}	dto.ContributionResponseDTO
//	@Router		/api/groups/{id}/contributions/{address} [get]
func (h *ExpenseHandler) GetContribution(w http.ResponseWriter, r *http.Request) {
	id, err := request.ID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	member, err := request.Address(r, "address")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	amount, err := h.expenseService.GetContribution(r.Context(), id, member)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ContributionResponseDTO{GroupID: id, Member: string(member), Amount: amount})
}

// GetStats godoc
//
//	@Summary	Expense platform stats
//	@Tags		Expense
//	@Produce	json
//	@Success	200	{object}	domain.ExpenseStats
//	@Router		/api/groups/stats [get]
func (h *ExpenseHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.expenseService.GetStats(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}
