package common

import (
	"context"
	"testing"

	"github.com/facebookgo/clock"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTransfer(t *testing.T) {
	clk := clock.NewMock()
	uusd := MustAssetIdentity(AssetKindNative, "uusd")
	info := nativeInfo("uusd", 6)

	instruction, err := BuildTransfer(clk, &info, "bob", NewAsset(uusd, MustScaledAmount("100", 6)))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, instruction.RequestId)
	assert.Equal(t, "bob", instruction.Recipient)
	assert.Equal(t, TransferKindNative, instruction.Kind)
	assert.Equal(t, clk.Now().Unix(), instruction.CreatedAt)
}

func TestBuildTransferErrors(t *testing.T) {
	clk := clock.NewMock()
	uusd := MustAssetIdentity(AssetKindNative, "uusd")
	uluna := MustAssetIdentity(AssetKindNative, "uluna")
	info := nativeInfo("uusd", 6)

	t.Run("zero amount", func(t *testing.T) {
		_, err := BuildTransfer(clk, &info, "bob", NewAsset(uusd, ZeroScaledAmount(6)))
		assert.ErrorIs(t, err, ErrZeroAmount)
	})

	t.Run("info mismatch", func(t *testing.T) {
		_, err := BuildTransfer(clk, &info, "bob", NewAsset(uluna, MustScaledAmount("1", 6)))
		assert.ErrorIs(t, err, ErrAssetMismatch)
	})

	t.Run("empty recipient", func(t *testing.T) {
		_, err := BuildTransfer(clk, &info, "", NewAsset(uusd, MustScaledAmount("1", 6)))
		assert.Error(t, err)
	})
}

func TestBuildTransfersDeterministicBatch(t *testing.T) {
	clk := clock.NewMock()
	uusd := MustAssetIdentity(AssetKindNative, "uusd")
	uluna := MustAssetIdentity(AssetKindNative, "uluna")

	infos := NewAssetMap[*AssetInfo]()
	uusdInfo := nativeInfo("uusd", 6)
	ulunaInfo := nativeInfo("uluna", 6)
	infos.Set(uusd, &uusdInfo)
	infos.Set(uluna, &ulunaInfo)

	amounts := NewAssetMap[ScaledAmount]()
	amounts.Set(uusd, MustScaledAmount("100", 6))
	amounts.Set(uluna, MustScaledAmount("200", 6))

	instructions, err := BuildTransfers(clk, infos, "bob", amounts)
	require.NoError(t, err)
	require.Len(t, instructions, 2)
	assert.Equal(t, "native:uluna", instructions[0].Asset.Identity.CanonicalString())
	assert.Equal(t, "native:uusd", instructions[1].Asset.Identity.CanonicalString())
}

func TestBuildTransfersMissingInfo(t *testing.T) {
	clk := clock.NewMock()
	uusd := MustAssetIdentity(AssetKindNative, "uusd")

	amounts := NewAssetMap[ScaledAmount]()
	amounts.Set(uusd, MustScaledAmount("100", 6))

	_, err := BuildTransfers(clk, NewAssetMap[*AssetInfo](), "bob", amounts)
	assert.ErrorIs(t, err, ErrUnknownAsset)
}

func TestRegistryBuildTransfer(t *testing.T) {
	ctx := context.Background()
	backend := newFakeAuthBackend().grant(PermissionAdmin, "admin")
	registry := newTestRegistry(backend, Capabilities{})
	require.NoError(t, registry.Register(ctx, nativeInfo("uusd", 6), "admin"))

	uusd := MustAssetIdentity(AssetKindNative, "uusd")
	instruction, err := registry.BuildTransfer(ctx, "bob", NewAsset(uusd, MustScaledAmount("100", 6)))
	require.NoError(t, err)
	assert.Equal(t, TransferKindNative, instruction.Kind)

	uluna := MustAssetIdentity(AssetKindNative, "uluna")
	_, err = registry.BuildTransfer(ctx, "bob", NewAsset(uluna, MustScaledAmount("100", 6)))
	assert.ErrorIs(t, err, ErrUnknownAsset)
}
