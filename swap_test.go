package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoolQuerier struct {
	pools map[string]*PoolShareInfo
	rate  ScaledAmount
	calls int
}

func (f *fakePoolQuerier) PoolShareInfo(ctx context.Context, poolId string) (*PoolShareInfo, error) {
	f.calls++
	info, ok := f.pools[poolId]
	if !ok {
		return nil, ErrUnknownAsset
	}
	return info, nil
}

func (f *fakePoolQuerier) SimulateSwap(ctx context.Context, poolId string, offer Asset) (ScaledAmount, error) {
	f.calls++
	return offer.Amount.Mul(f.rate, offer.Amount.Decimals(), RoundingFloor)
}

func TestResolveLpShareInfo(t *testing.T) {
	pool := MustAssetIdentity(AssetKindLpShare, "pool1")
	querier := &fakePoolQuerier{
		pools: map[string]*PoolShareInfo{
			"pool1": {
				PoolId:        "pool1",
				ShareDecimals: 6,
				Assets: []AssetIdentity{
					MustAssetIdentity(AssetKindNative, "uusd"),
					MustAssetIdentity(AssetKindContractToken, "addr1"),
				},
			},
		},
	}

	info, err := ResolveLpShareInfo(context.Background(), Capabilities{Swap: true}, querier, pool)
	require.NoError(t, err)
	assert.True(t, info.Identity.Equals(pool))
	assert.Equal(t, uint8(6), info.Decimals)
	assert.Equal(t, TransferKindLpToken, info.TransferKind)
}

func TestResolveLpShareInfoErrors(t *testing.T) {
	querier := &fakePoolQuerier{pools: map[string]*PoolShareInfo{}}

	t.Run("capability disabled", func(t *testing.T) {
		pool := MustAssetIdentity(AssetKindLpShare, "pool1")
		_, err := ResolveLpShareInfo(context.Background(), Capabilities{}, querier, pool)
		assert.ErrorIs(t, err, ErrCapabilityDisabled)
		assert.Zero(t, querier.calls)
	})

	t.Run("not an lp share", func(t *testing.T) {
		uusd := MustAssetIdentity(AssetKindNative, "uusd")
		_, err := ResolveLpShareInfo(context.Background(), Capabilities{Swap: true}, querier, uusd)
		assert.ErrorIs(t, err, ErrInvalidAssetIdentity)
	})

	t.Run("unknown pool", func(t *testing.T) {
		pool := MustAssetIdentity(AssetKindLpShare, "nope")
		_, err := ResolveLpShareInfo(context.Background(), Capabilities{Swap: true}, querier, pool)
		assert.Error(t, err)
	})
}

func TestSimulateSwap(t *testing.T) {
	uusd := MustAssetIdentity(AssetKindNative, "uusd")
	querier := &fakePoolQuerier{rate: MustScaledAmount("2", 0)}

	ask, err := SimulateSwap(context.Background(), Capabilities{Swap: true}, querier, "pool1",
		NewAsset(uusd, MustScaledAmount("1500000", 6)))
	require.NoError(t, err)
	assert.Equal(t, "3000000", ask.Raw().String())
}

func TestSimulateSwapZeroOfferShortCircuits(t *testing.T) {
	uusd := MustAssetIdentity(AssetKindNative, "uusd")
	querier := &fakePoolQuerier{rate: MustScaledAmount("2", 0)}

	ask, err := SimulateSwap(context.Background(), Capabilities{Swap: true}, querier, "pool1",
		NewAsset(uusd, ZeroScaledAmount(6)))
	require.NoError(t, err)
	assert.True(t, ask.IsZero())
	assert.Zero(t, querier.calls)
}

func TestSimulateSwapCapabilityDisabled(t *testing.T) {
	uusd := MustAssetIdentity(AssetKindNative, "uusd")
	querier := &fakePoolQuerier{rate: MustScaledAmount("2", 0)}

	_, err := SimulateSwap(context.Background(), Capabilities{}, querier, "pool1",
		NewAsset(uusd, MustScaledAmount("1", 6)))
	assert.ErrorIs(t, err, ErrCapabilityDisabled)
}

type fakePerpQuerier struct {
	markets map[string]*PerpMarketInfo
}

func (f *fakePerpQuerier) MarketShareInfo(ctx context.Context, marketId string) (*PerpMarketInfo, error) {
	info, ok := f.markets[marketId]
	if !ok {
		return nil, ErrUnknownAsset
	}
	return info, nil
}

func TestResolvePerpShareInfo(t *testing.T) {
	market := MustAssetIdentity(AssetKindPerpShare, "btc-usd")
	querier := &fakePerpQuerier{
		markets: map[string]*PerpMarketInfo{
			"btc-usd": {MarketId: "btc-usd", ShareDecimals: 18},
		},
	}

	info, err := ResolvePerpShareInfo(context.Background(), Capabilities{Perp: true}, querier, market)
	require.NoError(t, err)
	assert.Equal(t, uint8(18), info.Decimals)
	assert.Equal(t, TransferKindPerp, info.TransferKind)

	_, err = ResolvePerpShareInfo(context.Background(), Capabilities{}, querier, market)
	assert.ErrorIs(t, err, ErrCapabilityDisabled)

	uusd := MustAssetIdentity(AssetKindNative, "uusd")
	_, err = ResolvePerpShareInfo(context.Background(), Capabilities{Perp: true}, querier, uusd)
	assert.ErrorIs(t, err, ErrInvalidAssetIdentity)
}
