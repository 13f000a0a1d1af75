package payout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/campuspay/internal/config"
	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/pkg/clients"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const QueueKey = "payout_queue"

// LogSink only records the payout. Used when no custody rail is configured.
type LogSink struct{}

func (LogSink) Send(_ context.Context, p domain.Payout) error {
	zap.L().Info("Payout released",
		zap.Stringer("id", p.ID),
		zap.String("receiver", string(p.Receiver)),
		zap.Uint64("amount", p.Amount),
	)
	return nil
}

// RedisSink pushes payouts onto a list consumed by the custody worker.
type RedisSink struct {
	client redis.Cmdable
	key    string
}

func NewRedisSink(client redis.Cmdable) *RedisSink {
	return &RedisSink{client: client, key: QueueKey}
}

func (s *RedisSink) Send(ctx context.Context, p domain.Payout) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode payout: %w", err)
	}
	if err := s.client.RPush(ctx, s.key, body).Err(); err != nil {
		return fmt.Errorf("failed to push payout to %s: %w", s.key, err)
	}
	return nil
}

// HTTPSink posts payouts to the custody rail. A conflict means the rail
// already has the payout and counts as delivered.
type HTTPSink struct {
	url    string
	client clients.HTTPClientI
}

func NewHTTPSink(url string, client clients.HTTPClientI) *HTTPSink {
	return &HTTPSink{url: url + "/api/payouts", client: client}
}

func (s *HTTPSink) Send(ctx context.Context, p domain.Payout) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode payout: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Idempotency-Key", p.ID.String())

	status, _, respHeaders, err := s.client.Post(s.url, headers, body)
	if err != nil {
		return err
	}

	switch {
	case status >= http.StatusOK && status < http.StatusMultipleChoices, status == http.StatusConflict:
		return nil
	case status == http.StatusTooManyRequests:
		retry := &RetryAfterError{}
		if seconds, err := strconv.Atoi(respHeaders.Get("Retry-After")); err == nil {
			retry.After = time.Duration(seconds) * time.Second
		}
		return retry
	default:
		return fmt.Errorf("unexpected status code %d from custody rail", status)
	}
}

// NewSink picks the sink named by PAYOUT_SINK.
func NewSink(cfg *config.Config, rdb redis.Cmdable, client clients.HTTPClientI) (Sink, error) {
	switch cfg.PayoutSink {
	case "", config.SinkLog:
		return LogSink{}, nil
	case config.SinkRedis:
		if rdb == nil {
			return nil, fmt.Errorf("redis sink requires a redis client")
		}
		return NewRedisSink(rdb), nil
	case config.SinkHTTP:
		return NewHTTPSink(cfg.PayoutURL, client), nil
	default:
		return nil, fmt.Errorf("unsupported payout sink %q", cfg.PayoutSink)
	}
}
