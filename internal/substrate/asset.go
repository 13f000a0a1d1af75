package substrate

import (
	"context"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/store"
	"go.uber.org/zap"
)

type AssetParams struct {
	Name     string         `json:"name"`
	UnitName string         `json:"unit_name"`
	Total    uint64         `json:"total"`
	Decimals uint32         `json:"decimals"`
	Manager  domain.Address `json:"manager"`
	Reserve  domain.Address `json:"reserve"`
	Freeze   domain.Address `json:"freeze"`
	Clawback domain.Address `json:"clawback"`
}

type Asset struct {
	AssetParams
	ID        uint64         `json:"id"`
	Creator   domain.Address `json:"creator"`
	CreatedAt uint64         `json:"created_at"`
}

type Holding struct {
	Amount uint64 `json:"amount"`
	Frozen bool   `json:"frozen"`
}

// Mint creates an asset held entirely by the calling program. Ids are unique
// across all programs.
func (c *Call) Mint(ctx context.Context, params AssetParams) (uint64, error) {
	if params.Total == 0 {
		return 0, ErrAssetTotal
	}
	e := c.exec
	st, err := e.state.GetOr(ctx, store.RootKey, state{})
	if err != nil {
		return 0, err
	}
	st.NextAssetID++
	id := st.NextAssetID
	if err := e.state.Put(ctx, store.RootKey, st); err != nil {
		return 0, err
	}

	asset := Asset{AssetParams: params, ID: id, Creator: c.App, CreatedAt: c.Now}
	if err := e.assets.Put(ctx, store.IDKey(id), asset); err != nil {
		return 0, err
	}
	if err := e.holdings.Put(ctx, store.PairKey(id, c.App), Holding{Amount: params.Total}); err != nil {
		return 0, err
	}
	zap.L().Debug("asset minted", zap.Uint64("asset_id", id), zap.String("creator", string(c.App)))
	return id, nil
}

// SendAsset moves units out of the calling program's own holding.
func (c *Call) SendAsset(ctx context.Context, assetID uint64, receiver domain.Address, amount uint64) error {
	return c.exec.moveAsset(ctx, c.App, assetID, c.App, receiver, amount)
}

func (c *Call) FreezeAsset(ctx context.Context, assetID uint64, holder domain.Address, frozen bool) error {
	e := c.exec
	asset, ok, err := e.assets.Maybe(ctx, store.IDKey(assetID))
	if err != nil {
		return err
	}
	if !ok {
		return ErrAssetNotFound
	}
	if c.App != asset.Freeze {
		return ErrNotFreezeAuthority
	}
	key := store.PairKey(assetID, holder)
	h, err := e.holdings.GetOr(ctx, key, Holding{})
	if err != nil {
		return err
	}
	h.Frozen = frozen
	return e.holdings.Put(ctx, key, h)
}

// TransferAsset is a holder-initiated transfer in its own bundle.
func (e *Executor) TransferAsset(ctx context.Context, sender domain.Address, assetID uint64, receiver domain.Address, amount uint64) error {
	return e.Execute(ctx, Request{Sender: sender}, func(ctx context.Context, call *Call) error {
		if err := e.moveAsset(ctx, call.Sender, assetID, call.Sender, receiver, amount); err != nil {
			return err
		}
		zap.L().Info("asset transferred",
			zap.Uint64("asset_id", assetID),
			zap.String("from", string(call.Sender)),
			zap.String("to", string(receiver)),
		)
		return nil
	})
}

// ObserveAssets registers fn for every later asset move. Register before
// serving requests; the list is not guarded.
func (e *Executor) ObserveAssets(fn AssetObserver) {
	e.observers = append(e.observers, fn)
}

func (e *Executor) Holding(ctx context.Context, assetID uint64, holder domain.Address) (Holding, error) {
	if _, ok, err := e.assets.Maybe(ctx, store.IDKey(assetID)); err != nil {
		return Holding{}, err
	} else if !ok {
		return Holding{}, ErrAssetNotFound
	}
	return e.holdings.GetOr(ctx, store.PairKey(assetID, holder), Holding{})
}

// moveAsset enforces freeze state unless sender is the clawback authority.
func (e *Executor) moveAsset(ctx context.Context, sender domain.Address, assetID uint64, from, to domain.Address, amount uint64) error {
	asset, ok, err := e.assets.Maybe(ctx, store.IDKey(assetID))
	if err != nil {
		return err
	}
	if !ok {
		return ErrAssetNotFound
	}

	srcKey, dstKey := store.PairKey(assetID, from), store.PairKey(assetID, to)
	src, err := e.holdings.GetOr(ctx, srcKey, Holding{})
	if err != nil {
		return err
	}
	dst, err := e.holdings.GetOr(ctx, dstKey, Holding{})
	if err != nil {
		return err
	}

	if sender != asset.Clawback {
		if sender != from {
			return ErrNotAssetHolder
		}
		if src.Frozen || dst.Frozen {
			return ErrAssetFrozen
		}
	}
	if src.Amount < amount {
		return ErrAssetBalance
	}
	if from == to {
		return nil
	}

	src.Amount -= amount
	dst.Amount += amount
	if err := e.holdings.Put(ctx, srcKey, src); err != nil {
		return err
	}
	if err := e.holdings.Put(ctx, dstKey, dst); err != nil {
		return err
	}
	for _, observe := range e.observers {
		if err := observe(ctx, assetID, from, to, amount); err != nil {
			return err
		}
	}
	return nil
}
