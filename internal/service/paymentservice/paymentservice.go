package paymentservice

import (
	"context"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/store"
	"github.com/GlebRadaev/campuspay/internal/substrate"
	"go.uber.org/zap"
)

type Substrate interface {
	Execute(ctx context.Context, req substrate.Request, op substrate.Op) error
	View(ctx context.Context, fn func(ctx context.Context) error) error
	Custody(ctx context.Context, app domain.Address) (uint64, error)
}

type PayoutRepo interface {
	FindByReceiver(ctx context.Context, receiver domain.Address) ([]domain.Payout, error)
}

var (
	ErrPaymentRequired     = domain.NewError(domain.ErrInvalid, "payment required")
	ErrPaymentReceiver     = domain.NewError(domain.ErrInvalid, "payment must be to app")
	ErrAmountNotPositive   = domain.NewError(domain.ErrInvalid, "amount must be positive")
	ErrInsufficientBalance = domain.NewError(domain.ErrInvalid, "insufficient balance")
	ErrRecipientRequired   = domain.NewError(domain.ErrInvalid, "recipient required")
	ErrOnlyCreatorVerifies = domain.NewError(domain.ErrForbidden, "only creator can verify")
)

type state struct {
	TotalVolume       uint64 `json:"total_volume"`
	TotalTransactions uint64 `json:"total_transactions"`
	ActiveUsers       uint64 `json:"active_users"`
}

type Service struct {
	app     domain.Address
	admin   domain.Address
	sub     Substrate
	payouts PayoutRepo

	balances store.Map[domain.Balance]
	campus   store.Map[domain.CampusRecord]
	state    store.Map[state]
}

func New(admin domain.Address, sub Substrate, records store.Store, payouts PayoutRepo) *Service {
	return &Service{
		app:      domain.PaymentApp,
		admin:    admin,
		sub:      sub,
		payouts:  payouts,
		balances: store.NewMap[domain.Balance](records, "payment/balance"),
		campus:   store.NewMap[domain.CampusRecord](records, "payment/campus"),
		state:    store.NewMap[state](records, "payment/state"),
	}
}

func (s *Service) App() domain.Address {
	return s.app
}

// Deposit credits the caller with the attached payment and returns the new balance.
func (s *Service) Deposit(ctx context.Context, sender domain.Address, payment *substrate.Payment) (uint64, error) {
	var balance uint64
	err := s.sub.Execute(ctx, substrate.Request{App: s.app, Sender: sender, Payment: payment}, func(ctx context.Context, call *substrate.Call) error {
		p := call.Payment
		if p == nil {
			return ErrPaymentRequired
		}
		if p.Receiver != call.App {
			return ErrPaymentReceiver
		}
		if p.Amount == 0 {
			return ErrAmountNotPositive
		}

		st, err := s.state.GetOr(ctx, store.RootKey, state{})
		if err != nil {
			return err
		}
		newBalance, err := s.credit(ctx, &st, call.Sender, p.Amount)
		if err != nil {
			return err
		}
		if st.TotalVolume, err = domain.Add(st.TotalVolume, p.Amount); err != nil {
			return err
		}
		st.TotalTransactions++
		if err := s.state.Put(ctx, store.RootKey, st); err != nil {
			return err
		}
		balance = newBalance
		return nil
	})
	if err != nil {
		zap.L().Info("deposit rejected", zap.String("sender", string(sender)), zap.Error(err))
		return 0, err
	}
	zap.L().Info("deposit accepted", zap.String("sender", string(sender)), zap.Uint64("balance", balance))
	return balance, nil
}

// Transfer moves funds between ledger balances and returns the transfer id.
func (s *Service) Transfer(ctx context.Context, sender, recipient domain.Address, amount uint64, note string) (uint64, error) {
	var id uint64
	err := s.sub.Execute(ctx, substrate.Request{App: s.app, Sender: sender}, func(ctx context.Context, call *substrate.Call) error {
		if recipient == "" {
			return ErrRecipientRequired
		}
		from, err := s.balances.GetOr(ctx, store.AddressKey(call.Sender), domain.Balance{})
		if err != nil {
			return err
		}
		if from.Amount < amount {
			return ErrInsufficientBalance
		}
		if amount == 0 {
			return ErrAmountNotPositive
		}

		from.Amount -= amount
		if err := s.balances.Put(ctx, store.AddressKey(call.Sender), from); err != nil {
			return err
		}
		st, err := s.state.GetOr(ctx, store.RootKey, state{})
		if err != nil {
			return err
		}
		if _, err := s.credit(ctx, &st, recipient, amount); err != nil {
			return err
		}
		st.TotalTransactions++
		if err := s.state.Put(ctx, store.RootKey, st); err != nil {
			return err
		}
		id = st.TotalTransactions
		return nil
	})
	if err != nil {
		zap.L().Info("transfer rejected", zap.String("sender", string(sender)), zap.Error(err))
		return 0, err
	}
	zap.L().Info("transfer completed",
		zap.Uint64("id", id),
		zap.String("sender", string(sender)),
		zap.String("recipient", string(recipient)),
		zap.Uint64("amount", amount),
		zap.String("note", note),
	)
	return id, nil
}

func (s *Service) Withdraw(ctx context.Context, sender domain.Address, amount uint64) error {
	err := s.sub.Execute(ctx, substrate.Request{App: s.app, Sender: sender}, func(ctx context.Context, call *substrate.Call) error {
		bal, err := s.balances.GetOr(ctx, store.AddressKey(call.Sender), domain.Balance{})
		if err != nil {
			return err
		}
		if bal.Amount < amount {
			return ErrInsufficientBalance
		}
		if amount == 0 {
			return ErrAmountNotPositive
		}
		bal.Amount -= amount
		if err := s.balances.Put(ctx, store.AddressKey(call.Sender), bal); err != nil {
			return err
		}
		return call.Pay(ctx, call.Sender, amount, domain.PayoutWithdrawal, "")
	})
	if err != nil {
		zap.L().Info("withdraw rejected", zap.String("sender", string(sender)), zap.Error(err))
		return err
	}
	zap.L().Info("withdraw completed", zap.String("sender", string(sender)), zap.Uint64("amount", amount))
	return nil
}

func (s *Service) VerifyCampus(ctx context.Context, sender, user domain.Address, campus string) (bool, error) {
	err := s.sub.Execute(ctx, substrate.Request{App: s.app, Sender: sender}, func(ctx context.Context, call *substrate.Call) error {
		if call.Sender != s.admin {
			return ErrOnlyCreatorVerifies
		}
		return s.campus.Put(ctx, store.AddressKey(user), domain.CampusRecord{Campus: campus, Verified: true})
	})
	if err != nil {
		zap.L().Info("campus verification rejected", zap.String("sender", string(sender)), zap.Error(err))
		return false, err
	}
	zap.L().Info("campus verified", zap.String("user", string(user)), zap.String("campus", campus))
	return true, nil
}

func (s *Service) GetBalance(ctx context.Context, user domain.Address) (uint64, error) {
	bal, err := s.balances.GetOr(ctx, store.AddressKey(user), domain.Balance{})
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return bal.Amount, nil
}

func (s *Service) IsVerified(ctx context.Context, user domain.Address) (bool, error) {
	rec, err := s.campus.GetOr(ctx, store.AddressKey(user), domain.CampusRecord{})
	if err != nil {
		zap.L().Error("failed to get campus record", zap.Error(err))
		return false, err
	}
	return rec.Verified, nil
}

func (s *Service) GetStats(ctx context.Context) (domain.PaymentStats, error) {
	var stats domain.PaymentStats
	err := s.sub.View(ctx, func(ctx context.Context) error {
		st, err := s.state.GetOr(ctx, store.RootKey, state{})
		if err != nil {
			return err
		}
		custody, err := s.sub.Custody(ctx, s.app)
		if err != nil {
			return err
		}
		stats = domain.PaymentStats{
			TotalVolume:       st.TotalVolume,
			TotalTransactions: st.TotalTransactions,
			ActiveUsers:       st.ActiveUsers,
			Custody:           custody,
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to get payment stats", zap.Error(err))
		return domain.PaymentStats{}, err
	}
	return stats, nil
}

func (s *Service) GetPayouts(ctx context.Context, receiver domain.Address) ([]domain.Payout, error) {
	payouts, err := s.payouts.FindByReceiver(ctx, receiver)
	if err != nil {
		zap.L().Error("failed to fetch payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}

// credit adds amount to addr. An account counts as active again whenever it
// is credited from a zero balance.
func (s *Service) credit(ctx context.Context, st *state, addr domain.Address, amount uint64) (uint64, error) {
	bal, err := s.balances.GetOr(ctx, store.AddressKey(addr), domain.Balance{})
	if err != nil {
		return 0, err
	}
	if bal.Amount == 0 {
		st.ActiveUsers++
	}
	if bal.Amount, err = domain.Add(bal.Amount, amount); err != nil {
		return 0, err
	}
	if err := s.balances.Put(ctx, store.AddressKey(addr), bal); err != nil {
		return 0, err
	}
	return bal.Amount, nil
}
