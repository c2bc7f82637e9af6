package common

import (
	"context"

	"github.com/pkg/errors"
)

// PerpMarketInfo is the venue-side metadata for one perpetuals market.
type PerpMarketInfo struct {
	MarketId      string `json:"marketId"`
	ShareDecimals uint8  `json:"shareDecimals"`
}

// PerpMarketQuerier is the perpetuals venue integration surface.
type PerpMarketQuerier interface {
	MarketShareInfo(ctx context.Context, marketId string) (*PerpMarketInfo, error)
}

// ResolvePerpShareInfo builds the AssetInfo for a perp-share identity.
// Requires the perp capability.
func ResolvePerpShareInfo(ctx context.Context, caps Capabilities, querier PerpMarketQuerier, identity AssetIdentity) (*AssetInfo, error) {
	if identity.Kind() != AssetKindPerpShare {
		return nil, errors.Wrapf(ErrInvalidAssetIdentity, "%s is not a perp share", identity)
	}
	if !caps.Perp {
		return nil, errors.Wrap(ErrCapabilityDisabled, "perp")
	}
	market, err := querier.MarketShareInfo(ctx, identity.Payload())
	if err != nil {
		return nil, errors.Wrapf(err, "market %s", identity.Payload())
	}
	if market.ShareDecimals > MAX_ASSET_DECIMALS {
		return nil, errors.Wrapf(ErrInvalidDecimals, "market %s share decimals %d", market.MarketId, market.ShareDecimals)
	}
	return &AssetInfo{
		Identity:     identity,
		Decimals:     market.ShareDecimals,
		TransferKind: TransferKindPerp,
	}, nil
}
