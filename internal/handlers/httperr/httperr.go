// Package httperr maps domain error kinds to HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/pkg/utils"
	"go.uber.org/zap"
)

func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrTemporal):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalid):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Write replies with the status for err. Unknown errors are logged and
// hidden behind a generic message.
func Write(w http.ResponseWriter, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}
