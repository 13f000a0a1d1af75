package ticket

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/dto"
	"github.com/GlebRadaev/campuspay/internal/handlers/httperr"
	"github.com/GlebRadaev/campuspay/internal/handlers/request"
	"github.com/GlebRadaev/campuspay/internal/service/ticketservice"
	"github.com/GlebRadaev/campuspay/internal/substrate"
	"github.com/GlebRadaev/campuspay/pkg/utils"
	"github.com/GlebRadaev/campuspay/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

var ErrInvalidCode = errors.New("Invalid ticket code")

const qrSize = 256

type Service interface {
	CreateEvent(ctx context.Context, sender domain.Address, params ticketservice.CreateEventParams) (uint64, error)
	BuyTicket(ctx context.Context, sender domain.Address, eventID uint64, payment *substrate.Payment) (uint64, error)
	VerifyTicket(ctx context.Context, assetID uint64) (ticketservice.Verification, error)
	UseTicket(ctx context.Context, sender domain.Address, assetID uint64) error
	WithdrawSales(ctx context.Context, sender domain.Address, eventID uint64) (uint64, error)
	GetEvent(ctx context.Context, eventID uint64) (domain.Event, error)
	GetTicket(ctx context.Context, assetID uint64) (domain.Ticket, error)
	GetStats(ctx context.Context) (domain.TicketStats, error)
}

type TicketHandler struct {
	ticketService Service
}

func New(ticketService Service) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

func ticketResponse(t domain.Ticket) dto.TicketResponseDTO {
	return dto.TicketResponseDTO{
		AssetID:      t.AssetID,
		Code:         validate.TicketCode(t.AssetID),
		EventID:      t.EventID,
		Owner:        string(t.Owner),
		TicketNumber: t.TicketNumber,
		Used:         t.Used,
		PurchaseTime: t.PurchaseTime,
	}
}

func ticketCode(r *http.Request) (uint64, error) {
	assetID, ok := validate.ParseTicketCode(chi.URLParam(r, "code"))
	if !ok {
		return 0, ErrInvalidCode
	}
	return assetID, nil
}

// CreateEvent godoc
//
//	@Summary	Create an event
//	@Tags		Ticketing
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.CreateEventRequestDTO	true	"Event parameters"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.IDResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid request body"
//	@Failure	409	{object}	utils.Response	"End time before start time"
//	@Failure	422	{object}	utils.Response	"Invalid event parameters"
//	@Router		/api/events [post]
func (h *TicketHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	caller, ok := request.Caller(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateEventRequestDTO
	if err := request.Decode(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := h.ticketService.CreateEvent(r.Context(), caller, ticketservice.CreateEventParams{
		Name:         req.Name,
		Price:        req.Price,
		MaxTickets:   req.MaxTickets,
		Transferable: req.Transferable,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Description:  req.Description,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.IDResponseDTO{ID: id})
}

// BuyTicket godoc
//
//	@Summary		Buy a ticket
//	@Description	The attached payment must equal the event price exactly
//	@Tags			Ticketing
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Event id"
//	@Param			request	body	dto.BuyTicketRequestDTO	true	"Attached payment"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.TicketResponseDTO
//	@Failure		404	{object}	utils.Response	"Event not found"
//	@Failure		409	{object}	utils.Response	"Sold out"
//	@Failure		422	{object}	utils.Response	"Incorrect payment"
//	@Router			/api/events/{id}/tickets [post]
func (h *TicketHandler) BuyTicket(w http.ResponseWriter, r *http.Request) {
	caller, ok := request.Caller(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	eventID, err := request.ID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.BuyTicketRequestDTO
	if err := request.Decode(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	assetID, err := h.ticketService.BuyTicket(r.Context(), caller, eventID, request.Payment(req.Payment))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	ticket, err := h.ticketService.GetTicket(r.Context(), assetID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, ticketResponse(ticket))
}

// WithdrawSales godoc
//
//	@Summary		Withdraw ticket revenue
//	@Description	Organizer only. Pays price * sold minus what was already withdrawn.
//	@Tags			Ticketing
//	@Produce		json
//	@Param			id	path	int	true	"Event id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AmountResponseDTO
//	@Failure		403	{object}	utils.Response	"Only organizer"
//	@Failure		409	{object}	utils.Response	"No revenue"
//	@Router			/api/events/{id}/withdraw [post]
func (h *TicketHandler) WithdrawSales(w http.ResponseWriter, r *http.Request) {
	caller, ok := request.Caller(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	eventID, err := request.ID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	amount, err := h.ticketService.WithdrawSales(r.Context(), caller, eventID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AmountResponseDTO{Amount: amount})
}

// GetEvent godoc
//
//	@Summary	Get event
//	@Tags		Ticketing
//	@Produce	json
//	@Param		id	path		int	true	"Event id"
//	@Success	200	{object}	domain.Event
//	@Failure	404	{object}	utils.Response	"Event not found"
//	@Router		/api/events/{id} [get]
func (h *TicketHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := request.ID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	event, err := h.ticketService.GetEvent(r.Context(), eventID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, event)
}

// GetStats godoc
//
//	@Summary	Ticketing stats
//	@Tags		Ticketing
//	@Produce	json
//	@Success	200	{object}	domain.TicketStats
//	@Router		/api/events/stats [get]
func (h *TicketHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ticketService.GetStats(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// GetTicket godoc
//
//	@Summary	Get ticket by code
//	@Tags		Ticketing
//	@Produce	json
//	@Param		code	path		string	true	"Ticket code"
//	@Success	200		{object}	dto.TicketResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid ticket code"
//	@Failure	404		{object}	utils.Response	"Ticket not found"
//	@Router		/api/tickets/{code} [get]
func (h *TicketHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	assetID, err := ticketCode(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	ticket, err := h.ticketService.GetTicket(r.Context(), assetID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ticketResponse(ticket))
}

// VerifyTicket godoc
//
//	@Summary	Gate check
//	@Tags		Ticketing
//	@Produce	json
//	@Param		code	path		string	true	"Ticket code"
//	@Success	200		{object}	dto.VerifyTicketResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid ticket code"
//	@Failure	404		{object}	utils.Response	"Ticket not found"
//	@Router		/api/tickets/{code}/verify [get]
func (h *TicketHandler) VerifyTicket(w http.ResponseWriter, r *http.Request) {
	assetID, err := ticketCode(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	v, err := h.ticketService.VerifyTicket(r.Context(), assetID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyTicketResponseDTO{Owner: string(v.Owner), Valid: v.Valid})
}

// UseTicket godoc
//
//	@Summary	Mark a ticket used
//	@Tags		Ticketing
//	@Produce	json
//	@Param		code	path	string	true	"Ticket code"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.TicketResponseDTO
//	@Failure	403	{object}	utils.Response	"Only organizer can mark used"
//	@Failure	409	{object}	utils.Response	"Ticket already used"
//	@Router		/api/tickets/{code}/use [post]
func (h *TicketHandler) UseTicket(w http.ResponseWriter, r *http.Request) {
	caller, ok := request.Caller(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	assetID, err := ticketCode(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.ticketService.UseTicket(r.Context(), caller, assetID); err != nil {
		httperr.Write(w, err)
		return
	}
	ticket, err := h.ticketService.GetTicket(r.Context(), assetID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ticketResponse(ticket))
}

// GetTicketQR godoc
//
//	@Summary	Ticket code as a QR image
//	@Tags		Ticketing
//	@Produce	png
//	@Param		code	path	string	true	"Ticket code"
//	@Success	200
//	@Failure	400	{object}	utils.Response	"Invalid ticket code"
//	@Failure	404	{object}	utils.Response	"Ticket not found"
//	@Router		/api/tickets/{code}/qr [get]
func (h *TicketHandler) GetTicketQR(w http.ResponseWriter, r *http.Request) {
	assetID, err := ticketCode(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.ticketService.GetTicket(r.Context(), assetID); err != nil {
		httperr.Write(w, err)
		return
	}
	png, err := qrcode.Encode(validate.TicketCode(assetID), qrcode.Medium, qrSize)
	if err != nil {
		zap.L().Error("failed to encode ticket qr", zap.Uint64("asset_id", assetID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		zap.L().Error("failed to write ticket qr", zap.Error(err))
	}
}
