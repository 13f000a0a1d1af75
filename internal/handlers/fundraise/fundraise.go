package fundraise

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/dto"
	"github.com/GlebRadaev/campuspay/internal/handlers/httperr"
	"github.com/GlebRadaev/campuspay/internal/handlers/request"
	"github.com/GlebRadaev/campuspay/internal/service/fundraiseservice"
	"github.com/GlebRadaev/campuspay/internal/substrate"
	"github.com/GlebRadaev/campuspay/pkg/utils"
)

type Service interface {
	CreateCampaign(ctx context.Context, sender domain.Address, params fundraiseservice.CreateCampaignParams) (uint64, error)
	Donate(ctx context.Context, sender domain.Address, campaignID uint64, payment *substrate.Payment) error
	ReleaseMilestone(ctx context.Context, sender domain.Address, campaignID uint64) (uint64, error)
	ClaimRefund(ctx context.Context, sender domain.Address, campaignID uint64) (uint64, error)
	GetCampaign(ctx context.Context, campaignID uint64) (domain.Campaign, error)
	GetDonation(ctx context.Context, campaignID uint64, donor domain.Address) (uint64, error)
	GetStats(ctx context.Context) (domain.FundraiseStats, error)
}

type FundraiseHandler struct {
	fundraiseService Service
}

func New(fundraiseService Service) *FundraiseHandler {
	return &FundraiseHandler{
		fundraiseService: fundraiseService,
	}
}

// CreateCampaign godoc
//
//	@Summary	Create a milestone campaign
//	@Tags		Fundraise
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.CreateCampaignRequestDTO	true	"Campaign parameters"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.IDResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid request body"
//	@Failure	409	{object}	utils.Response	"Deadline must be in future"
//	@Failure	422	{object}	utils.Response	"Invalid campaign parameters"
//	@Router		/api/campaigns [post]
func (h *FundraiseHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := request.Caller(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateCampaignRequestDTO
	if err := request.Decode(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := h.fundraiseService.CreateCampaign(r.Context(), caller, fundraiseservice.CreateCampaignParams{
		Goal:          req.Goal,
		NumMilestones: req.NumMilestones,
		Deadline:      req.Deadline,
		Title:         req.Title,
		Description:   req.Description,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.IDResponseDTO{ID: id})
}

// Donate godoc
//
//	@Summary	Donate to a campaign
//	@Tags		Fundraise
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int					true	"Campaign id"
//	@Param		request	body	dto.DonateRequestDTO	true	"Attached payment"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DonationResponseDTO
//	@Failure	404	{object}	utils.Response	"Campaign not found"
//	@Failure	409	{object}	utils.Response	"Campaign not active"
//	@Failure	422	{object}	utils.Response	"Payment rejected"
//	@Router		/api/campaigns/{id}/donate [post]
func (h *FundraiseHandler) Donate(w http.ResponseWriter, r *http.Request) {
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
	var req dto.DonateRequestDTO
	if err := request.Decode(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.fundraiseService.Donate(r.Context(), caller, id, request.Payment(req.Payment)); err != nil {
		httperr.Write(w, err)
		return
	}
	amount, err := h.fundraiseService.GetDonation(r.Context(), id, caller)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DonationResponseDTO{CampaignID: id, Donor: string(caller), Amount: amount})
}

// ReleaseMilestone godoc
//
//	@Summary		Release the next milestone
//	@Description	Creator only. Pays goal / num_milestones to the creator.
//	@Tags			Fundraise
//	@Produce		json
//	@Param			id	path	int	true	"Campaign id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AmountResponseDTO
//	@Failure		403	{object}	utils.Response	"Only creator"
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		409	{object}	utils.Response	"Not fully funded or all milestones released"
//	@Router			/api/campaigns/{id}/release [post]
func (h *FundraiseHandler) ReleaseMilestone(w http.ResponseWriter, r *http.Request) {
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
	amount, err := h.fundraiseService.ReleaseMilestone(r.Context(), caller, id)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AmountResponseDTO{Amount: amount})
}

// ClaimRefund godoc
//
//	@Summary		Claim a refund
//	@Description	Available after the deadline when the goal was not reached
//	@Tags			Fundraise
//	@Produce		json
//	@Param			id	path	int	true	"Campaign id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AmountResponseDTO
//	@Failure		404	{object}	utils.Response	"No donation found"
//	@Failure		409	{object}	utils.Response	"Deadline not passed, campaign funded or nothing to refund"
//	@Router			/api/campaigns/{id}/refund [post]
func (h *FundraiseHandler) ClaimRefund(w http.ResponseWriter, r *http.Request) {
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
	amount, err := h.fundraiseService.ClaimRefund(r.Context(), caller, id)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AmountResponseDTO{Amount: amount})
}

// GetCampaign godoc
//
//	@Summary	Get campaign
//	@Tags		Fundraise
//	@Produce	json
//	@Param		id	path		int	true	"Campaign id"
//	@Success	200	{object}	domain.Campaign
//	@Failure	404	{object}	utils.Response	"Campaign not found"
//	@Router		/api/campaigns/{id} [get]
func (h *FundraiseHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := request.ID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	campaign, err := h.fundraiseService.GetCampaign(r.Context(), id)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, campaign)
}

// GetDonation godoc
//
//	@Summary	Get a donor's donation
//	@Tags		Fundraise
//	@Produce	json
//	@Param		id		path		int		true	"Campaign id"
//	@Param		address	path		string	true	"Donor address"
//	@Success	200		{object}	dto.DonationResponseDTO
//	@Router		/api/campaigns/{id}/donations/{address} [get]
func (h *FundraiseHandler) GetDonation(w http.ResponseWriter, r *http.Request) {
	id, err := request.ID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	donor, err := request.Address(r, "address")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	amount, err := h.fundraiseService.GetDonation(r.Context(), id, donor)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DonationResponseDTO{CampaignID: id, Donor: string(donor), Amount: amount})
}

// GetStats godoc
//
//	@Summary	Fundraise platform stats
//	@Tags		Fundraise
//	@Produce	json
//	@Success	200	{object}	domain.FundraiseStats
//	@Router		/api/campaigns/stats [get]
func (h *FundraiseHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.fundraiseService.GetStats(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}
