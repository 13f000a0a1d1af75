package asset

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
	TransferAsset(ctx context.Context, sender domain.Address, assetID uint64, receiver domain.Address, amount uint64) error
	Holding(ctx context.Context, assetID uint64, holder domain.Address) (substrate.Holding, error)
}

type AssetHandler struct {
	assetService Service
}

func New(assetService Service) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// TransferAsset godoc
//
//	@Summary		Transfer asset units
//	@Description	Frozen holdings (non-transferable tickets) are rejected
//	@Tags			Assets
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Asset id"
//	@Param			request	body	dto.TransferAssetRequestDTO	true	"Receiver and amount"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.HoldingResponseDTO
//	@Failure		403	{object}	utils.Response	"Asset holding is frozen"
//	@Failure		404	{object}	utils.Response	"Asset not found"
//	@Failure		422	{object}	utils.Response	"Insufficient asset holding"
//	@Router			/api/assets/{id}/transfer [post]
func (h *AssetHandler) TransferAsset(w http.ResponseWriter, r *http.Request) {
	caller, ok := request.Caller(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	assetID, err := request.ID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.TransferAssetRequestDTO
	if err := request.Decode(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	receiver := domain.Address(req.Receiver)
	if err := h.assetService.TransferAsset(r.Context(), caller, assetID, receiver, req.Amount); err != nil {
		httperr.Write(w, err)
		return
	}
	holding, err := h.assetService.Holding(r.Context(), assetID, receiver)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.HoldingResponseDTO{
		AssetID: assetID,
		Holder:  req.Receiver,
		Amount:  holding.Amount,
		Frozen:  holding.Frozen,
	})
}

// GetHolding godoc
//
//	@Summary	Asset holding of an address
//	@Tags		Assets
//	@Produce	json
//	@Param		id		path		int		true	"Asset id"
//	@Param		address	path		string	true	"Holder address"
//	@Success	200		{object}	dto.HoldingResponseDTO
//	@Failure	404		{object}	utils.Response	"Asset not found"
//	@Router		/api/assets/{id}/holdings/{address} [get]
func (h *AssetHandler) GetHolding(w http.ResponseWriter, r *http.Request) {
	assetID, err := request.ID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	holder, err := request.Address(r, "address")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	holding, err := h.assetService.Holding(r.Context(), assetID, holder)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.HoldingResponseDTO{
		AssetID: assetID,
		Holder:  string(holder),
		Amount:  holding.Amount,
		Frozen:  holding.Frozen,
	})
}
