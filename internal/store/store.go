// Package store defines the keyed record store every program persists into
// and a typed view over it.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/GlebRadaev/campuspay/internal/domain"
)

type Store interface {
	Get(ctx context.Context, namespace, key string) ([]byte, bool, error)
	Put(ctx context.Context, namespace, key string, value []byte) error
	Delete(ctx context.Context, namespace, key string) error
}

// Map is a typed namespace of a Store. Values are JSON encoded.
type Map[V any] struct {
	store     Store
	namespace string
}

func NewMap[V any](s Store, namespace string) Map[V] {
	return Map[V]{store: s, namespace: namespace}
}

func (m Map[V]) Maybe(ctx context.Context, key string) (V, bool, error) {
	var v V
	raw, ok, err := m.store.Get(ctx, m.namespace, key)
	if err != nil || !ok {
		return v, false, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, fmt.Errorf("can't decode %s/%s: %w", m.namespace, key, err)
	}
	return v, true, nil
}

// GetOr returns def when the key is absent.
func (m Map[V]) GetOr(ctx context.Context, key string, def V) (V, error) {
	v, ok, err := m.Maybe(ctx, key)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

func (m Map[V]) Put(ctx context.Context, key string, v V) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("can't encode %s/%s: %w", m.namespace, key, err)
	}
	return m.store.Put(ctx, m.namespace, key, raw)
}

func (m Map[V]) Delete(ctx context.Context, key string) error {
	return m.store.Delete(ctx, m.namespace, key)
}

// IDKey pads ids so lexical order matches numeric order.
func IDKey(id uint64) string {
	return fmt.Sprintf("%020d", id)
}

func AddressKey(addr domain.Address) string {
	return string(addr)
}

func PairKey(id uint64, addr domain.Address) string {
	return IDKey(id) + "/" + string(addr)
}

const RootKey = "root"
