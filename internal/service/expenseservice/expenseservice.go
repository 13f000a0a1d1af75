package expenseservice

import (
	"context"
	"strconv"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/store"
	"github.com/GlebRadaev/campuspay/internal/substrate"
	"go.uber.org/zap"
)

const (
	minMembers     = 2
	maxMembers     = 50
	maxPenaltyRate = 1000
)

type Substrate interface {
	Execute(ctx context.Context, req substrate.Request, op substrate.Op) error
	View(ctx context.Context, fn func(ctx context.Context) error) error
	Custody(ctx context.Context, app domain.Address) (uint64, error)
}

var (
	ErrTooFewMembers       = domain.NewError(domain.ErrInvalid, "need at least 2 members")
	ErrTooManyMembers      = domain.NewError(domain.ErrInvalid, "max 50 members per group")
	ErrAmountNotPositive   = domain.NewError(domain.ErrInvalid, "amount must be positive")
	ErrDeadlineInPast      = domain.NewError(domain.ErrTemporal, "deadline must be in future")
	ErrPenaltyTooHigh      = domain.NewError(domain.ErrInvalid, "max 10% penalty")
	ErrGroupNotFound       = domain.NewError(domain.ErrNotFound, "group not found")
	ErrGroupSettled        = domain.NewError(domain.ErrConflict, "group already settled")
	ErrPaymentRequired     = domain.NewError(domain.ErrInvalid, "payment required")
	ErrPaymentReceiver     = domain.NewError(domain.ErrInvalid, "payment must be to app")
	ErrInsufficientPayment = domain.NewError(domain.ErrInvalid, "insufficient payment")
	ErrOnlyCreatorSettles  = domain.NewError(domain.ErrForbidden, "only creator can settle")
	ErrNotFullyFunded      = domain.NewError(domain.ErrConflict, "not fully funded")
	ErrAlreadySettled      = domain.NewError(domain.ErrConflict, "already settled")
)

type state struct {
	NextGroupID uint64 `json:"next_group_id"`
	TotalGroups uint64 `json:"total_groups"`
	TotalSplit  uint64 `json:"total_split"`
}

type CreateGroupParams struct {
	TotalAmount uint64
	NumMembers  uint64
	Deadline    uint64
	PenaltyRate uint64
	Description string
}

type Service struct {
	app domain.Address
	sub Substrate

	groups        store.Map[domain.Group]
	contributions store.Map[domain.Contribution]
	state         store.Map[state]
}

func New(sub Substrate, records store.Store) *Service {
	return &Service{
		app:           domain.ExpenseApp,
		sub:           sub,
		groups:        store.NewMap[domain.Group](records, "expense/group"),
		contributions: store.NewMap[domain.Contribution](records, "expense/contribution"),
		state:         store.NewMap[state](records, "expense/state"),
	}
}

func (s *Service) App() domain.Address {
	return s.app
}

func (s *Service) CreateGroup(ctx context.Context, sender domain.Address, params CreateGroupParams) (uint64, error) {
	var id uint64
	err := s.sub.Execute(ctx, substrate.Request{App: s.app, Sender: sender}, func(ctx context.Context, call *substrate.Call) error {
		switch {
		case params.NumMembers < minMembers:
			return ErrTooFewMembers
		case params.NumMembers > maxMembers:
			return ErrTooManyMembers
		case params.TotalAmount == 0:
			return ErrAmountNotPositive
		case params.Deadline <= call.Now:
			return ErrDeadlineInPast
		case params.PenaltyRate > maxPenaltyRate:
			return ErrPenaltyTooHigh
		}

		st, err := s.state.GetOr(ctx, store.RootKey, state{})
		if err != nil {
			return err
		}
		id = st.NextGroupID
		group := domain.Group{
			ID:          id,
			Creator:     call.Sender,
			TotalAmount: params.TotalAmount,
			NumMembers:  params.NumMembers,
			Deadline:    params.Deadline,
			PenaltyRate: params.PenaltyRate,
		}
		if err := s.groups.Put(ctx, store.IDKey(id), group); err != nil {
			return err
		}
		st.NextGroupID++
		st.TotalGroups++
		return s.state.Put(ctx, store.RootKey, st)
	})
	if err != nil {
		zap.L().Info("create group rejected", zap.String("sender", string(sender)), zap.Error(err))
		return 0, err
	}
	zap.L().Info("group created",
		zap.Uint64("group_id", id),
		zap.String("creator", string(sender)),
		zap.Uint64("total_amount", params.TotalAmount),
		zap.Uint64("num_members", params.NumMembers),
		zap.String("description", params.Description),
	)
	return id, nil
}

// Contribute accepts any payment of at least the floor share. Overpayment and
// repeat contributions accumulate.
func (s *Service) Contribute(ctx context.Context, sender domain.Address, groupID uint64, payment *substrate.Payment) error {
	err := s.sub.Execute(ctx, substrate.Request{App: s.app, Sender: sender, Payment: payment}, func(ctx context.Context, call *substrate.Call) error {
		group, ok, err := s.groups.Maybe(ctx, store.IDKey(groupID))
		if err != nil {
			return err
		}
		if !ok {
			return ErrGroupNotFound
		}
		if group.Settled {
			return ErrGroupSettled
		}
		p := call.Payment
		if p == nil {
			return ErrPaymentRequired
		}
		if p.Receiver != call.App {
			return ErrPaymentReceiver
		}
		if p.Amount < group.TotalAmount/group.NumMembers {
			return ErrInsufficientPayment
		}

		key := store.PairKey(groupID, call.Sender)
		c, err := s.contributions.GetOr(ctx, key, domain.Contribution{})
		if err != nil {
			return err
		}
		if c.Amount, err = domain.Add(c.Amount, p.Amount); err != nil {
			return err
		}
		if group.TotalContributed, err = domain.Add(group.TotalContributed, p.Amount); err != nil {
			return err
		}
		if err := s.contributions.Put(ctx, key, c); err != nil {
			return err
		}
		return s.groups.Put(ctx, store.IDKey(groupID), group)
	})
	if err != nil {
		zap.L().Info("contribution rejected", zap.Uint64("group_id", groupID), zap.String("sender", string(sender)), zap.Error(err))
		return err
	}
	zap.L().Info("contribution accepted", zap.Uint64("group_id", groupID), zap.String("sender", string(sender)))
	return nil
}

// SettleGroup marks the group settled before paying the creator.
func (s *Service) SettleGroup(ctx context.Context, sender domain.Address, groupID uint64) error {
	err := s.sub.Execute(ctx, substrate.Request{App: s.app, Sender: sender}, func(ctx context.Context, call *substrate.Call) error {
		group, ok, err := s.groups.Maybe(ctx, store.IDKey(groupID))
		if err != nil {
			return err
		}
		if !ok {
			return ErrGroupNotFound
		}
		if call.Sender != group.Creator {
			return ErrOnlyCreatorSettles
		}
		if group.TotalContributed < group.TotalAmount {
			return ErrNotFullyFunded
		}
		if group.Settled {
			return ErrAlreadySettled
		}

		group.Settled = true
		if err := s.groups.Put(ctx, store.IDKey(groupID), group); err != nil {
			return err
		}
		st, err := s.state.GetOr(ctx, store.RootKey, state{})
		if err != nil {
			return err
		}
		if st.TotalSplit, err = domain.Add(st.TotalSplit, group.TotalAmount); err != nil {
			return err
		}
		if err := s.state.Put(ctx, store.RootKey, st); err != nil {
			return err
		}
		return call.Pay(ctx, group.Creator, group.TotalAmount, domain.PayoutSettlement, "group:"+strconv.FormatUint(groupID, 10))
	})
	if err != nil {
		zap.L().Info("settlement rejected", zap.Uint64("group_id", groupID), zap.String("sender", string(sender)), zap.Error(err))
		return err
	}
	zap.L().Info("group settled", zap.Uint64("group_id", groupID))
	return nil
}

func (s *Service) GetGroup(ctx context.Context, groupID uint64) (domain.Group, error) {
	group, ok, err := s.groups.Maybe(ctx, store.IDKey(groupID))
	if err != nil {
		zap.L().Error("failed to get group", zap.Error(err))
		return domain.Group{}, err
	}
	if !ok {
		return domain.Group{}, ErrGroupNotFound
	}
	return group, nil
}

func (s *Service) GetContribution(ctx context.Context, groupID uint64, member domain.Address) (uint64, error) {
	c, err := s.contributions.GetOr(ctx, store.PairKey(groupID, member), domain.Contribution{})
	if err != nil {
		zap.L().Error("failed to get contribution", zap.Error(err))
		return 0, err
	}
	return c.Amount, nil
}

func (s *Service) GetStats(ctx context.Context) (domain.ExpenseStats, error) {
	var stats domain.ExpenseStats
	err := s.sub.View(ctx, func(ctx context.Context) error {
		st, err := s.state.GetOr(ctx, store.RootKey, state{})
		if err != nil {
			return err
		}
		custody, err := s.sub.Custody(ctx, s.app)
		if err != nil {
			return err
		}
		stats = domain.ExpenseStats{TotalGroups: st.TotalGroups, TotalSplit: st.TotalSplit, Custody: custody}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to get expense stats", zap.Error(err))
		return domain.ExpenseStats{}, err
	}
	return stats, nil
}
