// Package substrate executes operation bundles atomically: one transaction,
// one global lock, a monotonic clock, program custody and an asset registry
// kept in the record store.
package substrate

import (
	"context"
	"time"

	"github.com/GlebRadaev/campuspay/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type Locker interface {
	Lock(ctx context.Context) error
}

// Outbox records outbound transfers inside the bundle transaction.
type Outbox interface {
	Enqueue(ctx context.Context, payout *domain.Payout) error
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Payment is an inbound value transfer attached to a bundle.
type Payment struct {
	Receiver domain.Address `json:"receiver"`
	Amount   uint64         `json:"amount"`
}

type Request struct {
	App     domain.Address
	Sender  domain.Address
	Payment *Payment
}

var (
	ErrInsufficientCustody = domain.NewError(domain.ErrInvalid, "insufficient program custody")
	ErrAssetNotFound       = domain.NewError(domain.ErrNotFound, "asset not found")
	ErrAssetTotal          = domain.NewError(domain.ErrInvalid, "asset total must be positive")
	ErrAssetFrozen         = domain.NewError(domain.ErrForbidden, "asset holding is frozen")
	ErrAssetBalance        = domain.NewError(domain.ErrInvalid, "insufficient asset holding")
	ErrNotAssetHolder      = domain.NewError(domain.ErrForbidden, "sender is not the holder")
	ErrNotFreezeAuthority  = domain.NewError(domain.ErrForbidden, "sender is not the freeze authority")
)
