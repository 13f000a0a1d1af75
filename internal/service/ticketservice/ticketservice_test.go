package ticketservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/memstore"
	"github.com/GlebRadaev/campuspay/internal/substrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const now = 1_700_000_000

func NewMock(t *testing.T, outbox substrate.Outbox) (*Service, *memstore.Store, *substrate.Executor) {
	ctrl := gomock.NewController(t)
	clock := substrate.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(now, 0)).AnyTimes()

	mem := memstore.New()
	if outbox == nil {
		outbox = mem
	}
	exec := substrate.New(mem, mem, mem, outbox, clock)
	service := New(exec, mem)
	exec.ObserveAssets(service.TrackOwner)
	return service, mem, exec
}

func pay(amount uint64) *substrate.Payment {
	return &substrate.Payment{Receiver: domain.TicketingApp, Amount: amount}
}

func concert(maxTickets uint64, transferable bool) CreateEventParams {
	return CreateEventParams{
		Name:         "Spring concert",
		Price:        10,
		MaxTickets:   maxTickets,
		Transferable: transferable,
		StartTime:    now + 100,
		EndTime:      now + 200,
	}
}

func TestCreateEvent(t *testing.T) {
	service, _, _ := NewMock(t, nil)
	ctx := context.Background()

	tests := []struct {
		name          string
		modify        func(p *CreateEventParams)
		expectedID    uint64
		expectedError error
	}{
		{name: "Valid event", modify: func(p *CreateEventParams) {}, expectedID: 0},
		{name: "Max capacity", modify: func(p *CreateEventParams) { p.MaxTickets = 100000 }, expectedID: 1},
		{name: "No tickets", modify: func(p *CreateEventParams) { p.MaxTickets = 0 }, expectedError: ErrNoTickets},
		{name: "Over capacity", modify: func(p *CreateEventParams) { p.MaxTickets = 100001 }, expectedError: ErrTooManyTickets},
		{name: "End equals start", modify: func(p *CreateEventParams) { p.EndTime = p.StartTime }, expectedError: ErrEndBeforeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := concert(5, true)
			tt.modify(&params)
			id, err := service.CreateEvent(ctx, "org", params)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}

	event, err := service.GetEvent(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.Address("org"), event.Organizer)
	assert.Equal(t, uint64(10), event.Price)

	_, err = service.GetEvent(ctx, 3)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestBuyTicket(t *testing.T) {
	service, _, exec := NewMock(t, nil)
	ctx := context.Background()
	eventID, err := service.CreateEvent(ctx, "org", concert(2, false))
	require.NoError(t, err)

	tests := []struct {
		name          string
		eventID       uint64
		payment       *substrate.Payment
		expectedError error
	}{
		{name: "Unknown event", eventID: 9, payment: pay(10), expectedError: ErrEventNotFound},
		{name: "Underpayment", eventID: eventID, payment: pay(9), expectedError: ErrIncorrectPayment},
		{name: "Overpayment", eventID: eventID, payment: pay(11), expectedError: ErrIncorrectPayment},
		{name: "Wrong receiver", eventID: eventID, payment: &substrate.Payment{Receiver: "org", Amount: 10}, expectedError: ErrPaymentReceiver},
		{name: "No payment", eventID: eventID, payment: nil, expectedError: ErrPaymentRequired},
		{name: "First ticket", eventID: eventID, payment: pay(10)},
		{name: "Last ticket", eventID: eventID, payment: pay(10)},
		{name: "Sold out", eventID: eventID, payment: pay(10), expectedError: ErrSoldOut},
	}

	var bought []uint64
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assetID, err := service.BuyTicket(ctx, "alice", tt.eventID, tt.payment)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			bought = append(bought, assetID)
		})
	}

	require.Len(t, bought, 2)
	for i, assetID := range bought {
		ticket, err := service.GetTicket(ctx, assetID)
		require.NoError(t, err)
		assert.Equal(t, uint64(i), ticket.TicketNumber)
		assert.Equal(t, domain.Address("alice"), ticket.Owner)
		assert.Equal(t, uint64(now), ticket.PurchaseTime)

		holding, err := exec.Holding(ctx, assetID, "alice")
		require.NoError(t, err)
		assert.Equal(t, substrate.Holding{Amount: 1, Frozen: true}, holding)
	}

	err = exec.TransferAsset(ctx, "alice", bought[0], "bob", 1)
	assert.ErrorIs(t, err, substrate.ErrAssetFrozen, "non-transferable tickets are soulbound")

	stats, err := service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStats{TotalEvents: 1, TotalTicketsSold: 2, Custody: 20}, stats)
}

func TestBuyTicketTransferable(t *testing.T) {
	service, _, exec := NewMock(t, nil)
	ctx := context.Background()
	eventID, err := service.CreateEvent(ctx, "org", concert(1, true))
	require.NoError(t, err)

	assetID, err := service.BuyTicket(ctx, "alice", eventID, pay(10))
	require.NoError(t, err)

	require.NoError(t, exec.TransferAsset(ctx, "alice", assetID, "bob", 1))
	holding, err := exec.Holding(ctx, assetID, "bob")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), holding.Amount)
}

func TestVerifyTicketAfterTransfer(t *testing.T) {
	service, _, exec := NewMock(t, nil)
	ctx := context.Background()
	eventID, err := service.CreateEvent(ctx, "org", concert(2, true))
	require.NoError(t, err)
	assetID, err := service.BuyTicket(ctx, "alice", eventID, pay(10))
	require.NoError(t, err)
	other, err := service.BuyTicket(ctx, "carol", eventID, pay(10))
	require.NoError(t, err)

	require.NoError(t, exec.TransferAsset(ctx, "alice", assetID, "bob", 1))

	tests := []struct {
		name     string
		assetID  uint64
		expected Verification
	}{
		{name: "Transferred ticket", assetID: assetID, expected: Verification{Owner: "bob", Valid: true}},
		{name: "Untouched ticket", assetID: other, expected: Verification{Owner: "carol", Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := service.VerifyTicket(ctx, tt.assetID)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}

	ticket, err := service.GetTicket(ctx, assetID)
	require.NoError(t, err)
	assert.Equal(t, domain.Address("bob"), ticket.Owner)

	assert.ErrorIs(t, exec.TransferAsset(ctx, "alice", assetID, "mallory", 1), substrate.ErrAssetBalance)
	v, err := service.VerifyTicket(ctx, assetID)
	require.NoError(t, err)
	assert.Equal(t, domain.Address("bob"), v.Owner, "failed transfer leaves owner")
}

func TestTicketNumbersAreDense(t *testing.T) {
	service, _, _ := NewMock(t, nil)
	ctx := context.Background()

	first, err := service.CreateEvent(ctx, "org", concert(30, true))
	require.NoError(t, err)
	second, err := service.CreateEvent(ctx, "org", concert(30, true))
	require.NoError(t, err)

	numbers := map[uint64][]uint64{}
	for i := 0; i < 40; i++ {
		eventID := first
		if i%3 == 0 {
			eventID = second
		}
		assetID, err := service.BuyTicket(ctx, "buyer", eventID, pay(10))
		require.NoError(t, err)
		ticket, err := service.GetTicket(ctx, assetID)
		require.NoError(t, err)
		numbers[eventID] = append(numbers[eventID], ticket.TicketNumber)
	}

	for eventID, got := range numbers {
		for i, n := range got {
			assert.Equal(t, uint64(i), n, "event %d", eventID)
		}
		event, _ := service.GetEvent(ctx, eventID)
		assert.Equal(t, uint64(len(got)), event.Sold)
	}
}

func TestVerifyAndUseTicket(t *testing.T) {
	service, _, _ := NewMock(t, nil)
	ctx := context.Background()
	eventID, err := service.CreateEvent(ctx, "org", concert(3, true))
	require.NoError(t, err)
	assetID, err := service.BuyTicket(ctx, "alice", eventID, pay(10))
	require.NoError(t, err)

	v, err := service.VerifyTicket(ctx, assetID)
	require.NoError(t, err)
	assert.Equal(t, Verification{Owner: "alice", Valid: true}, v)

	_, err = service.VerifyTicket(ctx, assetID+100)
	assert.ErrorIs(t, err, ErrTicketNotFound)

	tests := []struct {
		name          string
		sender        domain.Address
		assetID       uint64
		expectedError error
	}{
		{name: "Not organizer", sender: "alice", assetID: assetID, expectedError: ErrOnlyOrganizerMarks},
		{name: "Unknown ticket", sender: "org", assetID: assetID + 100, expectedError: ErrTicketNotFound},
		{name: "Organizer marks used", sender: "org", assetID: assetID},
		{name: "Already used", sender: "org", assetID: assetID, expectedError: ErrTicketUsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.UseTicket(ctx, tt.sender, tt.assetID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}

	v, err = service.VerifyTicket(ctx, assetID)
	require.NoError(t, err)
	assert.False(t, v.Valid)
}

func TestWithdrawSales(t *testing.T) {
	service, mem, exec := NewMock(t, nil)
	ctx := context.Background()
	eventID, err := service.CreateEvent(ctx, "org", concert(10, true))
	require.NoError(t, err)

	_, err = service.WithdrawSales(ctx, "org", eventID)
	assert.ErrorIs(t, err, ErrNoRevenue)

	for i := 0; i < 3; i++ {
		_, err := service.BuyTicket(ctx, "alice", eventID, pay(10))
		require.NoError(t, err)
	}

	_, err = service.WithdrawSales(ctx, "alice", eventID)
	assert.ErrorIs(t, err, ErrOnlyOrganizer)

	revenue, err := service.WithdrawSales(ctx, "org", eventID)
	require.NoError(t, err)
	assert.Equal(t, uint64(30), revenue)

	_, err = service.WithdrawSales(ctx, "org", eventID)
	assert.ErrorIs(t, err, ErrNoRevenue, "withdrawn revenue is not paid twice")

	_, err = service.BuyTicket(ctx, "bob", eventID, pay(10))
	require.NoError(t, err)
	revenue, err = service.WithdrawSales(ctx, "org", eventID)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), revenue)

	custody, _ := exec.Custody(ctx, domain.TicketingApp)
	assert.Zero(t, custody)

	payouts, _ := mem.FindByReceiver(ctx, "org")
	require.Len(t, payouts, 2)
	for _, p := range payouts {
		assert.Equal(t, domain.PayoutSales, p.Kind)
		assert.Equal(t, "event:0", p.Reference)
	}
}

func TestWithdrawSalesMarksBeforeTransfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := substrate.NewMockOutbox(ctrl)
	service, _, _ := NewMock(t, outbox)
	ctx := context.Background()

	eventID, err := service.CreateEvent(ctx, "org", concert(10, true))
	require.NoError(t, err)
	_, err = service.BuyTicket(ctx, "alice", eventID, pay(10))
	require.NoError(t, err)

	var withdrawnAtTransfer uint64
	outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, payout *domain.Payout) error {
		event, err := service.GetEvent(ctx, eventID)
		require.NoError(t, err)
		withdrawnAtTransfer = event.Withdrawn
		return errors.New("transfer rejected")
	})

	_, err = service.WithdrawSales(ctx, "org", eventID)
	assert.Error(t, err)
	assert.Equal(t, uint64(10), withdrawnAtTransfer)

	event, _ := service.GetEvent(ctx, eventID)
	assert.Zero(t, event.Withdrawn)
}
