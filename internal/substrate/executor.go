package substrate

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/pg"
	"github.com/GlebRadaev/campuspay/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	namespaceState   = "substrate/state"
	namespaceCustody = "substrate/custody"
	namespaceAsset   = "substrate/asset"
	namespaceHolding = "substrate/holding"
)

type state struct {
	LastTimestamp uint64 `json:"last_timestamp"`
	NextAssetID   uint64 `json:"next_asset_id"`
	Bundles       uint64 `json:"bundles"`
}

type custody struct {
	Amount uint64 `json:"amount"`
}

// Call is the view an operation gets of its bundle.
type Call struct {
	App     domain.Address
	Sender  domain.Address
	Now     uint64
	Payment *Payment

	exec *Executor
}

type Op func(ctx context.Context, call *Call) error

// AssetObserver sees every asset move inside the bundle that made it.
// An error aborts that bundle.
type AssetObserver func(ctx context.Context, assetID uint64, from, to domain.Address, amount uint64) error

type Executor struct {
	tx     pg.TXManager
	locker Locker
	outbox Outbox
	clock  Clock

	state    store.Map[state]
	custody  store.Map[custody]
	assets   store.Map[Asset]
	holdings store.Map[Holding]

	observers []AssetObserver
}

func New(tx pg.TXManager, locker Locker, records store.Store, outbox Outbox, clock Clock) *Executor {
	return &Executor{
		tx:       tx,
		locker:   locker,
		outbox:   outbox,
		clock:    clock,
		state:    store.NewMap[state](records, namespaceState),
		custody:  store.NewMap[custody](records, namespaceCustody),
		assets:   store.NewMap[Asset](records, namespaceAsset),
		holdings: store.NewMap[Holding](records, namespaceHolding),
	}
}

// Execute runs op as one atomic bundle. Any error discards every effect,
// including the custody credit of the attached payment and queued payouts.
func (e *Executor) Execute(ctx context.Context, req Request, op Op) error {
	return e.tx.Begin(ctx, func(ctx context.Context) error {
		if err := e.locker.Lock(ctx); err != nil {
			return err
		}

		st, err := e.state.GetOr(ctx, store.RootKey, state{})
		if err != nil {
			return err
		}
		now := e.unixNow()
		if now < st.LastTimestamp {
			now = st.LastTimestamp
		}
		st.LastTimestamp = now
		st.Bundles++
		if err := e.state.Put(ctx, store.RootKey, st); err != nil {
			return err
		}

		if p := req.Payment; p != nil && req.App != "" && p.Receiver == req.App {
			if err := e.credit(ctx, req.App, p.Amount); err != nil {
				return err
			}
		}

		return op(ctx, &Call{
			App:     req.App,
			Sender:  req.Sender,
			Now:     now,
			Payment: req.Payment,
			exec:    e,
		})
	})
}

// View runs fn against a consistent snapshot without taking the bundle lock.
func (e *Executor) View(ctx context.Context, fn func(ctx context.Context) error) error {
	return e.tx.Begin(ctx, fn)
}

func (e *Executor) Custody(ctx context.Context, app domain.Address) (uint64, error) {
	c, err := e.custody.GetOr(ctx, store.AddressKey(app), custody{})
	if err != nil {
		return 0, err
	}
	return c.Amount, nil
}

func (e *Executor) unixNow() uint64 {
	sec := e.clock.Now().Unix()
	if sec < 0 {
		return 0
	}
	return uint64(sec)
}

func (e *Executor) credit(ctx context.Context, app domain.Address, amount uint64) error {
	c, err := e.custody.GetOr(ctx, store.AddressKey(app), custody{})
	if err != nil {
		return err
	}
	if c.Amount, err = domain.Add(c.Amount, amount); err != nil {
		return err
	}
	return e.custody.Put(ctx, store.AddressKey(app), c)
}

// Pay moves amount out of the program's custody to receiver. The payout is
// delivered after the bundle commits.
func (c *Call) Pay(ctx context.Context, receiver domain.Address, amount uint64, kind domain.PayoutKind, reference string) error {
	e := c.exec
	held, err := e.custody.GetOr(ctx, store.AddressKey(c.App), custody{})
	if err != nil {
		return err
	}
	if held.Amount < amount {
		return ErrInsufficientCustody
	}
	held.Amount -= amount
	if err := e.custody.Put(ctx, store.AddressKey(c.App), held); err != nil {
		return err
	}

	payout := &domain.Payout{
		ID:        uuid.New(),
		App:       c.App,
		Receiver:  receiver,
		Amount:    amount,
		Kind:      kind,
		Reference: reference,
		Status:    domain.PayoutStatusPending,
		CreatedAt: time.Unix(int64(c.Now), 0).UTC(),
	}
	if err := e.outbox.Enqueue(ctx, payout); err != nil {
		return fmt.Errorf("can't enqueue payout: %w", err)
	}
	zap.L().Info("payout enqueued",
		zap.String("id", payout.ID.String()),
		zap.String("app", string(c.App)),
		zap.String("receiver", string(receiver)),
		zap.Uint64("amount", amount),
		zap.String("kind", string(kind)),
	)
	return nil
}
