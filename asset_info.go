package common

import (
	"github.com/pkg/errors"
)

// TransferKind is the mechanism used to move an asset: a bank send for
// native coins, a contract execute for cw20 tokens, and the venue-specific
// paths for LP and perp shares.
type TransferKind uint8

const (
	TransferKindNative TransferKind = iota + 1
	TransferKindCw20
	TransferKindLpToken
	TransferKindPerp
)

func (t TransferKind) String() string {
	switch t {
	case TransferKindNative:
		return "Native"
	case TransferKindCw20:
		return "Cw20"
	case TransferKindLpToken:
		return "LpToken"
	case TransferKindPerp:
		return "Perp"
	default:
		return "Unknown"
	}
}

// AssetInfo is the per-asset metadata the registry owns. Entries are
// written at configuration time and read-only afterwards; changes go
// through the registry's admin-gated full replace.
type AssetInfo struct {
	Identity     AssetIdentity `json:"identity"`
	Decimals     uint8         `json:"decimals"`
	TransferKind TransferKind  `json:"transferKind"`

	RegisteredAt int64 `json:"registeredAt"`
	UpdatedAt    int64 `json:"updatedAt"`
}

// expectedTransferKind maps each identity kind onto its only coherent
// transfer mechanism.
func expectedTransferKind(kind AssetKind) TransferKind {
	switch kind {
	case AssetKindNative:
		return TransferKindNative
	case AssetKindContractToken:
		return TransferKindCw20
	case AssetKindLpShare:
		return TransferKindLpToken
	case AssetKindPerpShare:
		return TransferKindPerp
	default:
		return 0
	}
}

func (i AssetInfo) Validate() error {
	if i.Identity.Kind().canonicalTag() == "" {
		return errors.Wrapf(ErrInvalidAssetIdentity, "kind %d", i.Identity.Kind())
	}
	if i.Decimals > MAX_ASSET_DECIMALS {
		return errors.Wrapf(ErrInvalidDecimals, "%s: decimals %d", i.Identity, i.Decimals)
	}
	if want := expectedTransferKind(i.Identity.Kind()); i.TransferKind != want {
		return errors.Wrapf(ErrInvalidAssetIdentity, "%s: transfer kind %s, want %s", i.Identity, i.TransferKind, want)
	}
	return nil
}

func (i AssetInfo) Clone() *AssetInfo {
	return &AssetInfo{
		Identity:     i.Identity,
		Decimals:     i.Decimals,
		TransferKind: i.TransferKind,
		RegisteredAt: i.RegisteredAt,
		UpdatedAt:    i.UpdatedAt,
	}
}
