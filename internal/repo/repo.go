package repo

import (
	"github.com/GlebRadaev/campuspay/internal/memstore"
	"github.com/GlebRadaev/campuspay/internal/payout"
	"github.com/GlebRadaev/campuspay/internal/pg"
	payoutrepo "github.com/GlebRadaev/campuspay/internal/repo/payout-repo"
	recordrepo "github.com/GlebRadaev/campuspay/internal/repo/record-repo"
	userrepo "github.com/GlebRadaev/campuspay/internal/repo/user-repo"
	"github.com/GlebRadaev/campuspay/internal/service/authservice"
	"github.com/GlebRadaev/campuspay/internal/service/paymentservice"
	"github.com/GlebRadaev/campuspay/internal/store"
	"github.com/GlebRadaev/campuspay/internal/substrate"
)

// PayoutRepo is the outbox as seen by the substrate, the dispatcher and
// the payment history query.
type PayoutRepo interface {
	substrate.Outbox
	payout.Repo
	paymentservice.PayoutRepo
}

type Repositories struct {
	TxManager pg.TXManager
	Locker    substrate.Locker
	UserRepo  authservice.Repo
	Records   store.Store
	Payouts   PayoutRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		TxManager: txManager,
		Locker:    pg.NewAdvisoryLocker(conn),
		UserRepo:  userrepo.New(conn),
		Records:   recordrepo.New(conn, txManager),
		Payouts:   payoutrepo.New(conn, txManager),
	}
}

// NewMemory backs every repository with one in-process store.
func NewMemory(mem *memstore.Store) *Repositories {
	return &Repositories{
		TxManager: mem,
		Locker:    mem,
		UserRepo:  mem,
		Records:   mem,
		Payouts:   mem,
	}
}
