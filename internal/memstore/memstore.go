// Package memstore is an in-process backend for the record store, the payout
// outbox and user accounts. Transactions hold a single global lock and undo
// their writes on failure.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/pg"
	"github.com/google/uuid"
)

type txKey struct{}

type journal struct {
	undo []func()
}

func (j *journal) rollback() {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

type Store struct {
	mu sync.RWMutex

	records map[string][]byte
	payouts []*domain.Payout
	users   map[string]*domain.User
	userSeq int
}

func New() *Store {
	return &Store{
		records: make(map[string][]byte),
		users:   make(map[string]*domain.User),
	}
}

var _ pg.TXManager = (*Store)(nil)

// Begin runs fn while holding the store lock. Nested calls join the outer
// transaction.
func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) (err error) {
	if _, ok := ctx.Value(txKey{}).(*journal); ok {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	j := &journal{}
	defer func() {
		if p := recover(); p != nil {
			j.rollback()
			panic(p)
		}
		if err != nil {
			j.rollback()
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, j))
}

// Lock is a no-op: Begin already serializes transactions.
func (s *Store) Lock(ctx context.Context) error {
	return nil
}

func (s *Store) read(ctx context.Context, fn func()) {
	if _, ok := ctx.Value(txKey{}).(*journal); ok {
		fn()
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

func (s *Store) write(ctx context.Context, apply, undo func()) {
	if j, ok := ctx.Value(txKey{}).(*journal); ok {
		j.undo = append(j.undo, undo)
		apply()
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	apply()
}

func recordKey(namespace, key string) string {
	return namespace + "\x00" + key
}

func (s *Store) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	var (
		value []byte
		ok    bool
	)
	s.read(ctx, func() {
		var raw []byte
		raw, ok = s.records[recordKey(namespace, key)]
		if ok {
			value = append([]byte(nil), raw...)
		}
	})
	return value, ok, nil
}

func (s *Store) Put(ctx context.Context, namespace, key string, value []byte) error {
	k := recordKey(namespace, key)
	stored := append([]byte(nil), value...)
	var (
		prev []byte
		had  bool
	)
	s.write(ctx, func() {
		prev, had = s.records[k]
		s.records[k] = stored
	}, func() {
		if had {
			s.records[k] = prev
		} else {
			delete(s.records, k)
		}
	})
	return nil
}

func (s *Store) Delete(ctx context.Context, namespace, key string) error {
	k := recordKey(namespace, key)
	var (
		prev []byte
		had  bool
	)
	s.write(ctx, func() {
		prev, had = s.records[k]
		delete(s.records, k)
	}, func() {
		if had {
			s.records[k] = prev
		}
	})
	return nil
}

func (s *Store) Enqueue(ctx context.Context, payout *domain.Payout) error {
	p := *payout
	var n int
	s.write(ctx, func() {
		n = len(s.payouts)
		s.payouts = append(s.payouts, &p)
	}, func() {
		s.payouts = s.payouts[:n]
	})
	return nil
}

func (s *Store) FindPending(ctx context.Context, limit uint32) ([]domain.Payout, error) {
	var result []domain.Payout
	s.read(ctx, func() {
		for _, p := range s.payouts {
			if uint32(len(result)) >= limit {
				break
			}
			if p.Status == domain.PayoutStatusPending {
				result = append(result, *p)
			}
		}
	})
	return result, nil
}

func (s *Store) FindByReceiver(ctx context.Context, receiver domain.Address) ([]domain.Payout, error) {
	var result []domain.Payout
	s.read(ctx, func() {
		for _, p := range s.payouts {
			if p.Receiver == receiver {
				result = append(result, *p)
			}
		}
	})
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *Store) update(ctx context.Context, id uuid.UUID, fn func(p *domain.Payout)) error {
	var (
		found  bool
		target *domain.Payout
		prev   domain.Payout
	)
	s.write(ctx, func() {
		for _, p := range s.payouts {
			if p.ID == id {
				target, prev = p, *p
				fn(p)
				found = true
				return
			}
		}
	}, func() {
		if target != nil {
			*target = prev
		}
	})
	if !found {
		return fmt.Errorf("payout %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (s *Store) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	return s.update(ctx, id, func(p *domain.Payout) {
		p.Status = domain.PayoutStatusSent
		p.Attempts++
		p.SentAt = &sentAt
	})
}

func (s *Store) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	return s.update(ctx, id, func(p *domain.Payout) {
		p.Status = domain.PayoutStatusFailed
		p.Attempts++
		p.LastError = reason
	})
}

func (s *Store) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user *domain.User
	s.read(ctx, func() {
		if u, ok := s.users[login]; ok {
			cp := *u
			user = &cp
		}
	})
	return user, nil
}

func (s *Store) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	var (
		err     error
		created bool
	)
	s.write(ctx, func() {
		if _, ok := s.users[user.Login]; ok {
			err = fmt.Errorf("login %q: %w", user.Login, domain.ErrConflict)
			return
		}
		s.userSeq++
		user.ID = s.userSeq
		user.CreatedAt = time.Now()
		cp := *user
		s.users[user.Login] = &cp
		created = true
	}, func() {
		if created {
			delete(s.users, user.Login)
		}
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
