package service

import (
	"context"
	"testing"

	"github.com/GlebRadaev/campuspay/internal/config"
	"github.com/GlebRadaev/campuspay/internal/memstore"
	"github.com/GlebRadaev/campuspay/internal/repo"
	"github.com/GlebRadaev/campuspay/internal/service/authservice"
	"github.com/GlebRadaev/campuspay/internal/service/paymentservice"
	"github.com/GlebRadaev/campuspay/internal/substrate"
	pkgauth "github.com/GlebRadaev/campuspay/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := repo.NewMemory(memstore.New())
	cfg := &config.Config{AdminAddress: "admin", BcryptCost: 4}

	services := New(repos, cfg, pkgauth.NewMockJWTServiceInterface(ctrl))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.ExpenseService)
	assert.NotNil(t, services.FundraiseService)
	assert.NotNil(t, services.TicketService)
	assert.IsType(t, &substrate.Executor{}, services.AssetService)
}

func TestAdminLoginReserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{AdminAddress: "admin", BcryptCost: 4}
	services := New(repo.NewMemory(memstore.New()), cfg, pkgauth.NewMockJWTServiceInterface(ctrl))

	_, err := services.AuthService.Register(ctx, "admin", "hunter2hunter2")
	require.ErrorIs(t, err, authservice.ErrReservedLogin)

	_, err = services.PaymentService.VerifyCampus(ctx, "mallory", "mallory", "north")
	assert.ErrorIs(t, err, paymentservice.ErrOnlyCreatorVerifies)

	require.NoError(t, services.ProvisionAdmin(ctx, "deploy-secret"))
	require.NoError(t, services.ProvisionAdmin(ctx, "deploy-secret"))

	user, err := services.AuthService.Authenticate(ctx, "admin", "deploy-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Login)

	_, err = services.AuthService.Register(ctx, "admin", "hunter2hunter2")
	assert.ErrorIs(t, err, authservice.ErrReservedLogin)

	ok, err := services.PaymentService.VerifyCampus(ctx, "admin", "mallory", "north")
	require.NoError(t, err)
	assert.True(t, ok)
}
