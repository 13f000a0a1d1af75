package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, ok, err := s.Get(ctx, "payment/balance", "alice")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, "payment/balance", "alice", []byte(`{"amount":5}`)))
	value, ok, err := s.Get(ctx, "payment/balance", "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"amount":5}`, string(value))

	_, ok, _ = s.Get(ctx, "expense/contribution", "alice")
	assert.False(t, ok, "namespaces are isolated")

	require.NoError(t, s.Delete(ctx, "payment/balance", "alice"))
	_, ok, _ = s.Get(ctx, "payment/balance", "alice")
	assert.False(t, ok)
}

func TestStore_BeginRollback(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Put(ctx, "ns", "kept", []byte("1")))
	require.NoError(t, s.Put(ctx, "ns", "removed", []byte("2")))

	boom := errors.New("boom")
	err := s.Begin(ctx, func(ctx context.Context) error {
		require.NoError(t, s.Put(ctx, "ns", "kept", []byte("10")))
		require.NoError(t, s.Put(ctx, "ns", "fresh", []byte("3")))
		require.NoError(t, s.Delete(ctx, "ns", "removed"))
		require.NoError(t, s.Enqueue(ctx, &domain.Payout{ID: uuid.New(), Status: domain.PayoutStatusPending}))
		_, err := s.Create(ctx, &domain.User{Login: "bob"})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	value, ok, _ := s.Get(ctx, "ns", "kept")
	assert.True(t, ok)
	assert.Equal(t, "1", string(value))
	value, ok, _ = s.Get(ctx, "ns", "removed")
	assert.True(t, ok)
	assert.Equal(t, "2", string(value))
	_, ok, _ = s.Get(ctx, "ns", "fresh")
	assert.False(t, ok)

	pending, err := s.FindPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
	user, err := s.FindByLogin(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestStore_BeginNestedJoinsOuter(t *testing.T) {
	ctx := context.Background()
	s := New()

	err := s.Begin(ctx, func(ctx context.Context) error {
		inner := s.Begin(ctx, func(ctx context.Context) error {
			return s.Put(ctx, "ns", "k", []byte("v"))
		})
		require.NoError(t, inner)
		return errors.New("outer failed")
	})
	assert.Error(t, err)

	_, ok, _ := s.Get(ctx, "ns", "k")
	assert.False(t, ok, "inner write is undone with the outer transaction")
}

func TestStore_BeginPanicRollsBack(t *testing.T) {
	ctx := context.Background()
	s := New()

	assert.Panics(t, func() {
		_ = s.Begin(ctx, func(ctx context.Context) error {
			_ = s.Put(ctx, "ns", "k", []byte("v"))
			panic("unexpected")
		})
	})

	_, ok, _ := s.Get(ctx, "ns", "k")
	assert.False(t, ok)
	assert.NoError(t, s.Put(ctx, "ns", "after", []byte("v")), "lock released after panic")
}

func TestStore_Payouts(t *testing.T) {
	ctx := context.Background()
	s := New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	first := domain.Payout{ID: uuid.New(), Receiver: "alice", Amount: 10, Status: domain.PayoutStatusPending, CreatedAt: base}
	second := domain.Payout{ID: uuid.New(), Receiver: "bob", Amount: 20, Status: domain.PayoutStatusPending, CreatedAt: base.Add(time.Second)}
	third := domain.Payout{ID: uuid.New(), Receiver: "alice", Amount: 30, Status: domain.PayoutStatusPending, CreatedAt: base.Add(2 * time.Second)}
	for _, p := range []domain.Payout{first, second, third} {
		p := p
		require.NoError(t, s.Enqueue(ctx, &p))
	}

	pending, err := s.FindPending(ctx, 2)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, second.ID, pending[1].ID)

	sentAt := base.Add(time.Minute)
	require.NoError(t, s.MarkSent(ctx, first.ID, sentAt))
	require.NoError(t, s.MarkFailed(ctx, second.ID, "rail down"))
	assert.ErrorIs(t, s.MarkSent(ctx, uuid.New(), sentAt), domain.ErrNotFound)

	pending, err = s.FindPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, third.ID, pending[0].ID)

	history, err := s.FindByReceiver(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, third.ID, history[0].ID, "newest first")
	assert.Equal(t, domain.PayoutStatusSent, history[1].Status)
	assert.Equal(t, 1, history[1].Attempts)
	assert.Equal(t, sentAt, *history[1].SentAt)
}

func TestStore_Users(t *testing.T) {
	ctx := context.Background()
	s := New()

	user, err := s.Create(ctx, &domain.User{Login: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	_, err = s.Create(ctx, &domain.User{Login: "alice", PasswordHash: "other"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	found, err := s.FindByLogin(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "hash", found.PasswordHash)
}
