package service

import (
	"context"

	"github.com/GlebRadaev/campuspay/internal/config"
	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/handlers/asset"
	"github.com/GlebRadaev/campuspay/internal/handlers/auth"
	"github.com/GlebRadaev/campuspay/internal/handlers/expense"
	"github.com/GlebRadaev/campuspay/internal/handlers/fundraise"
	"github.com/GlebRadaev/campuspay/internal/handlers/payment"
	"github.com/GlebRadaev/campuspay/internal/handlers/ticket"
	"github.com/GlebRadaev/campuspay/internal/substrate"

	pkgauth "github.com/GlebRadaev/campuspay/pkg/auth"

	"github.com/GlebRadaev/campuspay/internal/repo"
	authservice "github.com/GlebRadaev/campuspay/internal/service/authservice"
	expenseservice "github.com/GlebRadaev/campuspay/internal/service/expenseservice"
	fundraiseservice "github.com/GlebRadaev/campuspay/internal/service/fundraiseservice"
	paymentservice "github.com/GlebRadaev/campuspay/internal/service/paymentservice"
	ticketservice "github.com/GlebRadaev/campuspay/internal/service/ticketservice"
)

type Services struct {
	AuthService      auth.Service
	PaymentService   payment.Service
	ExpenseService   expense.Service
	FundraiseService fundraise.Service
	TicketService    ticket.Service
	AssetService     asset.Service

	accounts *authservice.Service
}

// New builds every program over one executor so they share custody,
// assets and the payout outbox.
func New(repo *repo.Repositories, cfg *config.Config, jwtService pkgauth.JWTServiceInterface) *Services {
	exec := substrate.New(repo.TxManager, repo.Locker, repo.Records, repo.Payouts, substrate.SystemClock{})

	authService := authservice.New(repo.UserRepo, pkgauth.NewHashService(cfg.BcryptCost), jwtService, cfg.AdminAddress)
	paymentService := paymentservice.New(domain.Address(cfg.AdminAddress), exec, repo.Records, repo.Payouts)
	ticketService := ticketservice.New(exec, repo.Records)
	exec.ObserveAssets(ticketService.TrackOwner)

	return &Services{
		AuthService:      authService,
		PaymentService:   paymentService,
		ExpenseService:   expenseservice.New(exec, repo.Records),
		FundraiseService: fundraiseservice.New(exec, repo.Records),
		TicketService:    ticketService,
		AssetService:     exec,
		accounts:         authService,
	}
}

// ProvisionAdmin creates the account allowed to call verify_campus. The
// admin login cannot be taken through registration.
func (s *Services) ProvisionAdmin(ctx context.Context, password string) error {
	return s.accounts.ProvisionAdmin(ctx, password)
}
