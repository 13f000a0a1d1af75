package expenseservice

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
	return New(exec, mem), mem, exec
}

func pay(amount uint64) *substrate.Payment {
	return &substrate.Payment{Receiver: domain.ExpenseApp, Amount: amount}
}

func validGroup() CreateGroupParams {
	return CreateGroupParams{TotalAmount: 100, NumMembers: 4, Deadline: now + 3600, PenaltyRate: 100, Description: "dinner"}
}

func TestCreateGroup(t *testing.T) {
	service, _, _ := NewMock(t, nil)
	ctx := context.Background()

	tests := []struct {
		name          string
		modify        func(p *CreateGroupParams)
		expectedID    uint64
		expectedError error
		expectedKind  error
	}{
		{name: "Valid group", modify: func(p *CreateGroupParams) {}, expectedID: 0},
		{name: "Second group gets next id", modify: func(p *CreateGroupParams) { p.NumMembers = 50 }, expectedID: 1},
		{name: "One member", modify: func(p *CreateGroupParams) { p.NumMembers = 1 }, expectedError: ErrTooFewMembers, expectedKind: domain.ErrInvalid},
		{name: "Too many members", modify: func(p *CreateGroupParams) { p.NumMembers = 51 }, expectedError: ErrTooManyMembers, expectedKind: domain.ErrInvalid},
		{name: "Zero amount", modify: func(p *CreateGroupParams) { p.TotalAmount = 0 }, expectedError: ErrAmountNotPositive, expectedKind: domain.ErrInvalid},
		{name: "Deadline now", modify: func(p *CreateGroupParams) { p.Deadline = now }, expectedError: ErrDeadlineInPast, expectedKind: domain.ErrTemporal},
		{name: "Penalty above 10%", modify: func(p *CreateGroupParams) { p.PenaltyRate = 1001 }, expectedError: ErrPenaltyTooHigh, expectedKind: domain.ErrInvalid},
		{name: "Penalty at 10%", modify: func(p *CreateGroupParams) { p.PenaltyRate = 1000 }, expectedID: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validGroup()
			tt.modify(&params)
			id, err := service.CreateGroup(ctx, "alice", params)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.ErrorIs(t, err, tt.expectedKind)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}

	group, err := service.GetGroup(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.Group{ID: 0, Creator: "alice", TotalAmount: 100, NumMembers: 4, Deadline: now + 3600, PenaltyRate: 100}, group)

	_, err = service.GetGroup(ctx, 99)
	assert.ErrorIs(t, err, ErrGroupNotFound)

	stats, err := service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), stats.TotalGroups)
}

func TestContribute(t *testing.T) {
	service, _, _ := NewMock(t, nil)
	ctx := context.Background()
	_, err := service.CreateGroup(ctx, "alice", CreateGroupParams{TotalAmount: 100, NumMembers: 3, Deadline: now + 60})
	require.NoError(t, err)

	tests := []struct {
		name          string
		groupID       uint64
		sender        domain.Address
		payment       *substrate.Payment
		expectedError error
	}{
		{name: "Floor share accepted", groupID: 0, sender: "bob", payment: pay(33)},
		{name: "Below floor share", groupID: 0, sender: "carol", payment: pay(32), expectedError: ErrInsufficientPayment},
		{name: "Overpayment accepted", groupID: 0, sender: "carol", payment: pay(50)},
		{name: "Repeat contribution", groupID: 0, sender: "bob", payment: pay(40)},
		{name: "Unknown group", groupID: 7, sender: "bob", payment: pay(40), expectedError: ErrGroupNotFound},
		{name: "Wrong receiver", groupID: 0, sender: "bob", payment: &substrate.Payment{Receiver: "alice", Amount: 40}, expectedError: ErrPaymentReceiver},
		{name: "No payment", groupID: 0, sender: "bob", payment: nil, expectedError: ErrPaymentRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Contribute(ctx, tt.sender, tt.groupID, tt.payment)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}

	bob, _ := service.GetContribution(ctx, 0, "bob")
	carol, _ := service.GetContribution(ctx, 0, "carol")
	dave, _ := service.GetContribution(ctx, 0, "dave")
	assert.Equal(t, uint64(73), bob)
	assert.Equal(t, uint64(50), carol)
	assert.Zero(t, dave)

	group, _ := service.GetGroup(ctx, 0)
	assert.Equal(t, uint64(123), group.TotalContributed)
}

func TestSettleGroupScenario(t *testing.T) {
	service, mem, exec := NewMock(t, nil)
	ctx := context.Background()

	id, err := service.CreateGroup(ctx, "alice", validGroup())
	require.NoError(t, err)

	err = service.SettleGroup(ctx, "alice", id)
	assert.ErrorIs(t, err, ErrNotFullyFunded)

	for _, member := range []domain.Address{"alice", "bob", "carol", "dave"} {
		require.NoError(t, service.Contribute(ctx, member, id, pay(25)))
	}

	err = service.SettleGroup(ctx, "bob", id)
	assert.ErrorIs(t, err, ErrOnlyCreatorSettles)

	require.NoError(t, service.SettleGroup(ctx, "alice", id))

	err = service.SettleGroup(ctx, "alice", id)
	assert.ErrorIs(t, err, ErrAlreadySettled)
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = service.Contribute(ctx, "erin", id, pay(25))
	assert.ErrorIs(t, err, ErrGroupSettled)

	payouts, err := mem.FindByReceiver(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, payouts, 1)
	assert.Equal(t, uint64(100), payouts[0].Amount)
	assert.Equal(t, domain.PayoutSettlement, payouts[0].Kind)
	assert.Equal(t, "group:0", payouts[0].Reference)

	custody, _ := exec.Custody(ctx, domain.ExpenseApp)
	assert.Zero(t, custody)

	stats, err := service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ExpenseStats{TotalGroups: 1, TotalSplit: 100}, stats)
}

func TestSettleGroupMarksBeforeTransfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := substrate.NewMockOutbox(ctrl)
	service, _, exec := NewMock(t, outbox)
	ctx := context.Background()

	id, err := service.CreateGroup(ctx, "alice", CreateGroupParams{TotalAmount: 50, NumMembers: 2, Deadline: now + 60})
	require.NoError(t, err)
	require.NoError(t, service.Contribute(ctx, "bob", id, pay(50)))

	var settledAtTransfer bool
	outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, payout *domain.Payout) error {
		group, err := service.GetGroup(ctx, id)
		require.NoError(t, err)
		settledAtTransfer = group.Settled
		return errors.New("transfer rejected")
	})

	err = service.SettleGroup(ctx, "alice", id)
	assert.ErrorContains(t, err, "transfer rejected")
	assert.True(t, settledAtTransfer, "group is marked settled before the transfer is issued")

	group, err := service.GetGroup(ctx, id)
	require.NoError(t, err)
	assert.False(t, group.Settled, "failed bundle leaves no partial state")
	custody, _ := exec.Custody(ctx, domain.ExpenseApp)
	assert.Equal(t, uint64(50), custody)
}
