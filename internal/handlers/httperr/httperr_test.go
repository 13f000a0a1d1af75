package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"not found", domain.NewError(domain.ErrNotFound, "Group not found"), http.StatusNotFound, "not found: Group not found"},
		{"forbidden", domain.NewError(domain.ErrForbidden, "Only creator can release"), http.StatusForbidden, "forbidden: Only creator can release"},
		{"conflict", domain.NewError(domain.ErrConflict, "Already settled"), http.StatusConflict, "state conflict: Already settled"},
		{"temporal", domain.NewError(domain.ErrTemporal, "Event ended"), http.StatusConflict, "temporal precondition failed: Event ended"},
		{"invalid", domain.NewError(domain.ErrInvalid, "Wrong amount"), http.StatusUnprocessableEntity, "invalid argument: Wrong amount"},
		{"overflow", fmt.Errorf("raised: %w", domain.ErrOverflow), http.StatusUnprocessableEntity, "raised: " + domain.ErrOverflow.Error()},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			Write(rr, tt.err)

			var resp utils.Response
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.code, rr.Code)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}
