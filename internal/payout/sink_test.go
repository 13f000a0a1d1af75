package payout

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/campuspay/internal/config"
	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/pkg/clients"
	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func samplePayout() domain.Payout {
	return domain.Payout{
		ID:        uuid.MustParse("7f0c2b1e-9a55-4c3e-8d7e-1b2f3a4c5d6e"),
		App:       domain.TicketingApp,
		Receiver:  "organizer",
		Amount:    250,
		Kind:      domain.PayoutSales,
		Reference: "event:3",
		Status:    domain.PayoutStatusPending,
		CreatedAt: time.Unix(1_700_000_000, 0).UTC(),
	}
}

func TestLogSink_Send(t *testing.T) {
	assert.NoError(t, LogSink{}.Send(context.Background(), samplePayout()))
}

func TestRedisSink_Send(t *testing.T) {
	p := samplePayout()
	body, err := json.Marshal(p)
	require.NoError(t, err)

	tests := []struct {
		name      string
		setup     func(mock redismock.ClientMock)
		expectErr bool
	}{
		{
			name: "pushed to queue",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectRPush(QueueKey, body).SetVal(1)
			},
		},
		{
			name: "redis unavailable",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectRPush(QueueKey, body).SetErr(errors.New("connection refused"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			tt.setup(mock)

			err := NewRedisSink(db).Send(context.Background(), p)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHTTPSink_Send(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		retryAfter string
		expectErr  bool
		expectWait time.Duration
	}{
		{name: "accepted", status: http.StatusAccepted},
		{name: "already delivered", status: http.StatusConflict},
		{name: "rate limited", status: http.StatusTooManyRequests, retryAfter: "2", expectErr: true, expectWait: 2 * time.Second},
		{name: "rate limited without header", status: http.StatusTooManyRequests, expectErr: true},
		{name: "server error", status: http.StatusInternalServerError, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := samplePayout()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/payouts", r.URL.Path)
				assert.Equal(t, p.ID.String(), r.Header.Get("Idempotency-Key"))

				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				var got domain.Payout
				assert.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, p.Amount, got.Amount)

				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			err := NewHTTPSink(server.URL, clients.NewHTTPClient()).Send(context.Background(), p)
			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			var busy *RetryAfterError
			if tt.status == http.StatusTooManyRequests {
				require.ErrorAs(t, err, &busy)
				assert.Equal(t, tt.expectWait, busy.After)
			}
		})
	}
}

func TestHTTPSink_SendTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	client.EXPECT().Post("http://rail/api/payouts", gomock.Any(), gomock.Any()).
		Return(0, nil, nil, errors.New("dial tcp: connection refused"))

	err := NewHTTPSink("http://rail", client).Send(context.Background(), samplePayout())
	assert.ErrorContains(t, err, "connection refused")
}

func TestNewSink(t *testing.T) {
	db, _ := redismock.NewClientMock()

	tests := []struct {
		name      string
		sink      string
		expect    any
		expectErr bool
	}{
		{name: "default", sink: "", expect: LogSink{}},
		{name: "log", sink: config.SinkLog, expect: LogSink{}},
		{name: "redis", sink: config.SinkRedis, expect: &RedisSink{}},
		{name: "http", sink: config.SinkHTTP, expect: &HTTPSink{}},
		{name: "unknown", sink: "kafka", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PayoutSink: tt.sink, PayoutURL: "http://rail"}
			sink, err := NewSink(cfg, db, clients.NewHTTPClient())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.IsType(t, tt.expect, sink)
		})
	}

	_, err := NewSink(&config.Config{PayoutSink: config.SinkRedis}, nil, nil)
	assert.Error(t, err)
}
