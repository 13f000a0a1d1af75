// Package request reads path parameters, the authenticated caller and
// validated JSON bodies for the program handlers.
package request

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/dto"
	"github.com/GlebRadaev/campuspay/internal/substrate"
	"github.com/GlebRadaev/campuspay/pkg/auth"
	"github.com/GlebRadaev/campuspay/pkg/validate"
	"github.com/go-chi/chi/v5"
)

var (
	ErrInvalidBody = errors.New("Invalid request body")
	ErrInvalidID   = errors.New("Invalid id")
	ErrNoAddress   = errors.New("Address is required")
	ErrLongAddress = errors.New("Address is too long")
)

func ID(r *http.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

func Address(r *http.Request, name string) (domain.Address, error) {
	addr := chi.URLParam(r, name)
	if addr == "" {
		return "", ErrNoAddress
	}
	if len(addr) > domain.MaxAddressLen {
		return "", ErrLongAddress
	}
	return domain.Address(addr), nil
}

// Caller is the address carried by the bearer token.
func Caller(r *http.Request) (domain.Address, bool) {
	addr, ok := auth.AddressFromContext(r.Context())
	return domain.Address(addr), ok
}

// Decode reads a JSON body and checks its validate tags.
func Decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return ErrInvalidBody
	}
	return validate.Struct(dst)
}

func Payment(p *dto.PaymentDTO) *substrate.Payment {
	if p == nil {
		return nil
	}
	return &substrate.Payment{Receiver: domain.Address(p.Receiver), Amount: p.Amount}
}
