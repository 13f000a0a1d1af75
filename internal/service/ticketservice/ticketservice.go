package ticketservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/store"
	"github.com/GlebRadaev/campuspay/internal/substrate"
	"go.uber.org/zap"
)

const (
	maxTicketsPerEvent = 100000
	ticketAssetName    = "CampusPay Ticket"
	ticketUnitName     = "CPTIX"
)

type Substrate interface {
	Execute(ctx context.Context, req substrate.Request, op substrate.Op) error
	View(ctx context.Context, fn func(ctx context.Context) error) error
	Custody(ctx context.Context, app domain.Address) (uint64, error)
}

var (
	ErrNoTickets          = domain.NewError(domain.ErrInvalid, "must have at least 1 ticket")
	ErrTooManyTickets     = domain.NewError(domain.ErrInvalid, "max 100,000 tickets")
	ErrEndBeforeStart     = domain.NewError(domain.ErrTemporal, "end must be after start")
	ErrEventNotFound      = domain.NewError(domain.ErrNotFound, "event not found")
	ErrSoldOut            = domain.NewError(domain.ErrConflict, "sold out")
	ErrPaymentRequired    = domain.NewError(domain.ErrInvalid, "payment required")
	ErrIncorrectPayment   = domain.NewError(domain.ErrInvalid, "incorrect payment amount")
	ErrPaymentReceiver    = domain.NewError(domain.ErrInvalid, "payment must be to app")
	ErrTicketNotFound     = domain.NewError(domain.ErrNotFound, "ticket not found")
	ErrOnlyOrganizerMarks = domain.NewError(domain.ErrForbidden, "only organizer can mark used")
	ErrTicketUsed         = domain.NewError(domain.ErrConflict, "ticket already used")
	ErrOnlyOrganizer      = domain.NewError(domain.ErrForbidden, "only organizer")
	ErrNoRevenue          = domain.NewError(domain.ErrConflict, "no revenue to withdraw")
)

type state struct {
	NextEventID      uint64 `json:"next_event_id"`
	TotalTicketsSold uint64 `json:"total_tickets_sold"`
}

type CreateEventParams struct {
	Name         string
	Price        uint64
	MaxTickets   uint64
	Transferable bool
	StartTime    uint64
	EndTime      uint64
	Description  string
}

// Verification is the gate-check answer for a ticket.
type Verification struct {
	Owner domain.Address
	Valid bool
}

type Service struct {
	app domain.Address
	sub Substrate

	events  store.Map[domain.Event]
	tickets store.Map[domain.Ticket]
	state   store.Map[state]
}

func New(sub Substrate, records store.Store) *Service {
	return &Service{
		app:     domain.TicketingApp,
		sub:     sub,
		events:  store.NewMap[domain.Event](records, "ticketing/event"),
		tickets: store.NewMap[domain.Ticket](records, "ticketing/ticket"),
		state:   store.NewMap[state](records, "ticketing/state"),
	}
}

func (s *Service) App() domain.Address {
	return s.app
}

func (s *Service) CreateEvent(ctx context.Context, sender domain.Address, params CreateEventParams) (uint64, error) {
	var id uint64
	err := s.sub.Execute(ctx, substrate.Request{App: s.app, Sender: sender}, func(ctx context.Context, call *substrate.Call) error {
		switch {
		case params.MaxTickets == 0:
			return ErrNoTickets
		case params.MaxTickets > maxTicketsPerEvent:
			return ErrTooManyTickets
		case params.EndTime <= params.StartTime:
			return ErrEndBeforeStart
		}

		st, err := s.state.GetOr(ctx, store.RootKey, state{})
		if err != nil {
			return err
		}
		id = st.NextEventID
		event := domain.Event{
			ID:           id,
			Organizer:    call.Sender,
			Price:        params.Price,
			MaxTickets:   params.MaxTickets,
			Transferable: params.Transferable,
			StartTime:    params.StartTime,
			EndTime:      params.EndTime,
		}
		if err := s.events.Put(ctx, store.IDKey(id), event); err != nil {
			return err
		}
		st.NextEventID++
		return s.state.Put(ctx, store.RootKey, st)
	})
	if err != nil {
		zap.L().Info("create event rejected", zap.String("sender", string(sender)), zap.Error(err))
		return 0, err
	}
	zap.L().Info("event created",
		zap.Uint64("event_id", id),
		zap.String("organizer", string(sender)),
		zap.String("name", params.Name),
		zap.String("description", params.Description),
	)
	return id, nil
}

// BuyTicket mints a single-unit asset for the buyer and returns its id.
// Tickets of non-transferable events are frozen in the buyer's holding.
func (s *Service) BuyTicket(ctx context.Context, sender domain.Address, eventID uint64, payment *substrate.Payment) (uint64, error) {
	var assetID uint64
	err := s.sub.Execute(ctx, substrate.Request{App: s.app, Sender: sender, Payment: payment}, func(ctx context.Context, call *substrate.Call) error {
		event, err := s.event(ctx, eventID)
		if err != nil {
			return err
		}
		if event.Sold >= event.MaxTickets {
			return ErrSoldOut
		}
		p := call.Payment
		if p == nil {
			return ErrPaymentRequired
		}
		if p.Amount != event.Price {
			return ErrIncorrectPayment
		}
		if p.Receiver != call.App {
			return ErrPaymentReceiver
		}

		assetID, err = call.Mint(ctx, substrate.AssetParams{
			Name:     ticketAssetName,
			UnitName: ticketUnitName,
			Total:    1,
			Decimals: 0,
			Manager:  call.App,
			Reserve:  call.App,
			Freeze:   call.App,
			Clawback: call.App,
		})
		if err != nil {
			return err
		}
		if err := call.SendAsset(ctx, assetID, call.Sender, 1); err != nil {
			return err
		}
		if !event.Transferable {
			if err := call.FreezeAsset(ctx, assetID, call.Sender, true); err != nil {
				return err
			}
		}

		ticket := domain.Ticket{
			AssetID:      assetID,
			EventID:      eventID,
			Owner:        call.Sender,
			TicketNumber: event.Sold,
			PurchaseTime: call.Now,
		}
		if err := s.tickets.Put(ctx, store.IDKey(assetID), ticket); err != nil {
			return err
		}
		event.Sold++
		if err := s.events.Put(ctx, store.IDKey(eventID), event); err != nil {
			return err
		}
		st, err := s.state.GetOr(ctx, store.RootKey, state{})
		if err != nil {
			return err
		}
		st.TotalTicketsSold++
		return s.state.Put(ctx, store.RootKey, st)
	})
	if err != nil {
		zap.L().Info("ticket purchase rejected", zap.Uint64("event_id", eventID), zap.String("sender", string(sender)), zap.Error(err))
		return 0, err
	}
	zap.L().Info("ticket sold", zap.Uint64("event_id", eventID), zap.Uint64("asset_id", assetID), zap.String("owner", string(sender)))
	return assetID, nil
}

func (s *Service) VerifyTicket(ctx context.Context, assetID uint64) (Verification, error) {
	ticket, err := s.ticket(ctx, assetID)
	if err != nil {
		return Verification{}, err
	}
	return Verification{Owner: ticket.Owner, Valid: !ticket.Used}, nil
}

func (s *Service) UseTicket(ctx context.Context, sender domain.Address, assetID uint64) error {
	err := s.sub.Execute(ctx, substrate.Request{App: s.app, Sender: sender}, func(ctx context.Context, call *substrate.Call) error {
		ticket, err := s.ticket(ctx, assetID)
		if err != nil {
			return err
		}
		event, err := s.event(ctx, ticket.EventID)
		if err != nil {
			return err
		}
		if call.Sender != event.Organizer {
			return ErrOnlyOrganizerMarks
		}
		if ticket.Used {
			return ErrTicketUsed
		}
		ticket.Used = true
		return s.tickets.Put(ctx, store.IDKey(assetID), ticket)
	})
	if err != nil {
		zap.L().Info("use ticket rejected", zap.Uint64("asset_id", assetID), zap.String("sender", string(sender)), zap.Error(err))
		return err
	}
	zap.L().Info("ticket used", zap.Uint64("asset_id", assetID))
	return nil
}

// WithdrawSales pays the organizer the revenue not yet withdrawn and returns it.
func (s *Service) WithdrawSales(ctx context.Context, sender domain.Address, eventID uint64) (uint64, error) {
	var revenue uint64
	err := s.sub.Execute(ctx, substrate.Request{App: s.app, Sender: sender}, func(ctx context.Context, call *substrate.Call) error {
		event, err := s.event(ctx, eventID)
		if err != nil {
			return err
		}
		if call.Sender != event.Organizer {
			return ErrOnlyOrganizer
		}
		gross, err := domain.Mul(event.Price, event.Sold)
		if err != nil {
			return err
		}
		revenue = gross - event.Withdrawn
		if revenue == 0 {
			return ErrNoRevenue
		}

		event.Withdrawn = gross
		if err := s.events.Put(ctx, store.IDKey(eventID), event); err != nil {
			return err
		}
		return call.Pay(ctx, event.Organizer, revenue, domain.PayoutSales, fmt.Sprintf("event:%d", eventID))
	})
	if err != nil {
		zap.L().Info("withdraw sales rejected", zap.Uint64("event_id", eventID), zap.String("sender", string(sender)), zap.Error(err))
		return 0, err
	}
	zap.L().Info("sales withdrawn", zap.Uint64("event_id", eventID), zap.Uint64("amount", revenue))
	return revenue, nil
}

func (s *Service) GetEvent(ctx context.Context, eventID uint64) (domain.Event, error) {
	return s.event(ctx, eventID)
}

// TrackOwner follows the ticket unit to its new holder. Moves of other
// assets, and the mint-time send that happens before the ticket exists, are
// ignored.
func (s *Service) TrackOwner(ctx context.Context, assetID uint64, from, to domain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	ticket, ok, err := s.tickets.Maybe(ctx, store.IDKey(assetID))
	if err != nil {
		return err
	}
	if !ok || ticket.Owner != from {
		return nil
	}
	ticket.Owner = to
	return s.tickets.Put(ctx, store.IDKey(assetID), ticket)
}

func (s *Service) GetTicket(ctx context.Context, assetID uint64) (domain.Ticket, error) {
	return s.ticket(ctx, assetID)
}

func (s *Service) GetStats(ctx context.Context) (domain.TicketStats, error) {
	var stats domain.TicketStats
	err := s.sub.View(ctx, func(ctx context.Context) error {
		st, err := s.state.GetOr(ctx, store.RootKey, state{})
		if err != nil {
			return err
		}
		custody, err := s.sub.Custody(ctx, s.app)
		if err != nil {
			return err
		}
		stats = domain.TicketStats{TotalEvents: st.NextEventID, TotalTicketsSold: st.TotalTicketsSold, Custody: custody}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to get ticket stats", zap.Error(err))
		return domain.TicketStats{}, err
	}
	return stats, nil
}

func (s *Service) event(ctx context.Context, id uint64) (domain.Event, error) {
	event, ok, err := s.events.Maybe(ctx, store.IDKey(id))
	if err != nil {
		zap.L().Error("failed to get event", zap.Error(err))
		return domain.Event{}, err
	}
	if !ok {
		return domain.Event{}, ErrEventNotFound
	}
	return event, nil
}

func (s *Service) ticket(ctx context.Context, assetID uint64) (domain.Ticket, error) {
	ticket, ok, err := s.tickets.Maybe(ctx, store.IDKey(assetID))
	if err != nil {
		zap.L().Error("failed to get ticket", zap.Error(err))
		return domain.Ticket{}, err
	}
	if !ok {
		return domain.Ticket{}, ErrTicketNotFound
	}
	return ticket, nil
}
