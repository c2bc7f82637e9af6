package common

import (
	"context"

	"github.com/pkg/errors"
)

// PoolShareInfo is the AMM-side metadata for one liquidity pool.
type PoolShareInfo struct {
	PoolId        string          `json:"poolId"`
	ShareDecimals uint8           `json:"shareDecimals"`
	Assets        []AssetIdentity `json:"assets"`
}

// PoolQuerier is the AMM integration surface. It is consumed only to
// resolve LP-share metadata and simulate swaps; the arithmetic core never
// touches it.
type PoolQuerier interface {
	PoolShareInfo(ctx context.Context, poolId string) (*PoolShareInfo, error)
	SimulateSwap(ctx context.Context, poolId string, offer Asset) (ScaledAmount, error)
}

// ResolveLpShareInfo builds the AssetInfo for an LP-share identity from
// the pool's own metadata. Requires the swap capability.
func ResolveLpShareInfo(ctx context.Context, caps Capabilities, querier PoolQuerier, identity AssetIdentity) (*AssetInfo, error) {
	if identity.Kind() != AssetKindLpShare {
		return nil, errors.Wrapf(ErrInvalidAssetIdentity, "%s is not an lp share", identity)
	}
	if !caps.Swap {
		return nil, errors.Wrap(ErrCapabilityDisabled, "swap")
	}
	share, err := querier.PoolShareInfo(ctx, identity.Payload())
	if err != nil {
		return nil, errors.Wrapf(err, "pool %s", identity.Payload())
	}
	if share.ShareDecimals > MAX_ASSET_DECIMALS {
		return nil, errors.Wrapf(ErrInvalidDecimals, "pool %s share decimals %d", share.PoolId, share.ShareDecimals)
	}
	return &AssetInfo{
		Identity:     identity,
		Decimals:     share.ShareDecimals,
		TransferKind: TransferKindLpToken,
	}, nil
}

// SimulateSwap asks the pool what a swap of offer would return. A zero
// offer short-circuits to zero without querying.
func SimulateSwap(ctx context.Context, caps Capabilities, querier PoolQuerier, poolId string, offer Asset) (ScaledAmount, error) {
	if !caps.Swap {
		return ScaledAmount{}, errors.Wrap(ErrCapabilityDisabled, "swap")
	}
	if offer.Amount.IsZero() {
		return ZeroScaledAmount(offer.Amount.Decimals()), nil
	}
	ask, err := querier.SimulateSwap(ctx, poolId, offer)
	if err != nil {
		return ScaledAmount{}, errors.Wrapf(err, "pool %s", poolId)
	}
	return ask, nil
}
