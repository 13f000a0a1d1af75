package handlers

import (
	"net/http"
	"time"

	_ "github.com/GlebRadaev/campuspay/docs"
	assethandlers "github.com/GlebRadaev/campuspay/internal/handlers/asset"
	authhandlers "github.com/GlebRadaev/campuspay/internal/handlers/auth"
	expensehandlers "github.com/GlebRadaev/campuspay/internal/handlers/expense"
	fundraisehandlers "github.com/GlebRadaev/campuspay/internal/handlers/fundraise"
	paymenthandlers "github.com/GlebRadaev/campuspay/internal/handlers/payment"
	tickethandlers "github.com/GlebRadaev/campuspay/internal/handlers/ticket"
	"github.com/GlebRadaev/campuspay/internal/service"
	"github.com/GlebRadaev/campuspay/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const requestTimeout = 30 * time.Second

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Deposit(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	VerifyCampus(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	IsVerified(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetPayouts(w http.ResponseWriter, r *http.Request)
}

type ExpenseHandler interface {
	CreateGroup(w http.ResponseWriter, r *http.Request)
	Contribute(w http.ResponseWriter, r *http.Request)
	SettleGroup(w http.ResponseWriter, r *http.Request)
	GetGroup(w http.ResponseWriter, r *http.Request)
	GetContribution(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type FundraiseHandler interface {
	CreateCampaign(w http.ResponseWriter, r *http.Request)
	Donate(w http.ResponseWriter, r *http.Request)
	ReleaseMilestone(w http.ResponseWriter, r *http.Request)
	ClaimRefund(w http.ResponseWriter, r *http.Request)
	GetCampaign(w http.ResponseWriter, r *http.Request)
	GetDonation(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type TicketHandler interface {
	CreateEvent(w http.ResponseWriter, r *http.Request)
	BuyTicket(w http.ResponseWriter, r *http.Request)
	WithdrawSales(w http.ResponseWriter, r *http.Request)
	GetEvent(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetTicket(w http.ResponseWriter, r *http.Request)
	VerifyTicket(w http.ResponseWriter, r *http.Request)
	UseTicket(w http.ResponseWriter, r *http.Request)
	GetTicketQR(w http.ResponseWriter, r *http.Request)
}

type AssetHandler interface {
	TransferAsset(w http.ResponseWriter, r *http.Request)
	GetHolding(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	PaymentHandler   PaymentHandler
	ExpenseHandler   ExpenseHandler
	FundraiseHandler FundraiseHandler
	TicketHandler    TicketHandler
	AssetHandler     AssetHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		PaymentHandler:   paymenthandlers.New(s.PaymentService),
		ExpenseHandler:   expensehandlers.New(s.ExpenseService),
		FundraiseHandler: fundraisehandlers.New(s.FundraiseService),
		TicketHandler:    tickethandlers.New(s.TicketService),
		AssetHandler:     assethandlers.New(s.AssetService),
		jwtService:       jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(requestTimeout),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"https://*", "http://*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders: []string{"Authorization"},
			MaxAge:         300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	protected := auth.Middleware(h.jwtService)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
		r.With(protected).Get("/payouts", h.PaymentHandler.GetPayouts)
	})

	r.Route("/api/payment", func(r chi.Router) {
		r.Get("/balance/{address}", h.PaymentHandler.GetBalance)
		r.Get("/verified/{address}", h.PaymentHandler.IsVerified)
		r.Get("/stats", h.PaymentHandler.GetStats)

		r.Group(func(r chi.Router) {
			r.Use(protected)
			r.Post("/deposit", h.PaymentHandler.Deposit)
			r.Post("/transfer", h.PaymentHandler.Transfer)
			r.Post("/withdraw", h.PaymentHandler.Withdraw)
			r.Post("/verify", h.PaymentHandler.VerifyCampus)
		})
	})

	r.Route("/api/groups", func(r chi.Router) {
		r.Get("/stats", h.ExpenseHandler.GetStats)
		r.Get("/{id}", h.ExpenseHandler.GetGroup)
		r.Get("/{id}/contributions/{address}", h.ExpenseHandler.GetContribution)

		r.Group(func(r chi.Router) {
			r.Use(protected)
			r.Post("/", h.ExpenseHandler.CreateGroup)
			r.Post("/{id}/contribute", h.ExpenseHandler.Contribute)
			r.Post("/{id}/settle", h.ExpenseHandler.SettleGroup)
		})
	})

	r.Route("/api/campaigns", func(r chi.Router) {
		r.Get("/stats", h.FundraiseHandler.GetStats)
		r.Get("/{id}", h.FundraiseHandler.GetCampaign)
		r.Get("/{id}/donations/{address}", h.FundraiseHandler.GetDonation)

		r.Group(func(r chi.Router) {
			r.Use(protected)
			r.Post("/", h.FundraiseHandler.CreateCampaign)
			r.Post("/{id}/donate", h.FundraiseHandler.Donate)
			r.Post("/{id}/release", h.FundraiseHandler.ReleaseMilestone)
			r.Post("/{id}/refund", h.FundraiseHandler.ClaimRefund)
		})
	})

	r.Route("/api/events", func(r chi.Router) {
		r.Get("/stats", h.TicketHandler.GetStats)
		r.Get("/{id}", h.TicketHandler.GetEvent)

		r.Group(func(r chi.Router) {
			r.Use(protected)
			r.Post("/", h.TicketHandler.CreateEvent)
			r.Post("/{id}/tickets", h.TicketHandler.BuyTicket)
			r.Post("/{id}/withdraw", h.TicketHandler.WithdrawSales)
		})
	})

	r.Route("/api/tickets/{code}", func(r chi.Router) {
		r.Get("/", h.TicketHandler.GetTicket)
		r.Get("/verify", h.TicketHandler.VerifyTicket)
		r.Get("/qr", h.TicketHandler.GetTicketQR)
		r.With(protected).Post("/use", h.TicketHandler.UseTicket)
	})

	r.Route("/api/assets/{id}", func(r chi.Router) {
		r.Get("/holdings/{address}", h.AssetHandler.GetHolding)
		r.With(protected).Post("/transfer", h.AssetHandler.TransferAsset)
	})

	return r
}
