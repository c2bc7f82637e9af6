package common

import (
	"strings"

	"github.com/pkg/errors"
)

// AssetKind is the closed set of value types the suite accounts for.
// LpShare and PerpShare are only admitted by registries whose
// capabilities enable them.
type AssetKind uint8

const (
	AssetKindNative AssetKind = iota + 1
	AssetKindContractToken
	AssetKindLpShare
	AssetKindPerpShare
)

func (k AssetKind) String() string {
	switch k {
	case AssetKindNative:
		return "Native"
	case AssetKindContractToken:
		return "ContractToken"
	case AssetKindLpShare:
		return "LpShare"
	case AssetKindPerpShare:
		return "PerpShare"
	default:
		return "Unknown"
	}
}

func (k AssetKind) canonicalTag() string {
	switch k {
	case AssetKindNative:
		return "native"
	case AssetKindContractToken:
		return "token"
	case AssetKindLpShare:
		return "lp"
	case AssetKindPerpShare:
		return "perp"
	default:
		return ""
	}
}

// AssetIdentity is the canonical identifier for one fungible value type:
// a native denomination, a token contract address, an LP-share pool id or
// a perp-market share. Identities are immutable and compared by equality
// only; callers needing deterministic order sort on CanonicalString.
type AssetIdentity struct {
	kind    AssetKind
	payload string
}

func NewAssetIdentity(kind AssetKind, payload string) (AssetIdentity, error) {
	if kind.canonicalTag() == "" {
		return AssetIdentity{}, errors.Wrapf(ErrInvalidAssetIdentity, "kind %d", kind)
	}
	if payload == "" {
		return AssetIdentity{}, errors.Wrapf(ErrInvalidAssetIdentity, "empty %s payload", kind)
	}
	return AssetIdentity{kind: kind, payload: payload}, nil
}

func NewNativeIdentity(denom string) (AssetIdentity, error) {
	return NewAssetIdentity(AssetKindNative, denom)
}

func NewContractTokenIdentity(address string) (AssetIdentity, error) {
	return NewAssetIdentity(AssetKindContractToken, address)
}

func NewLpShareIdentity(poolId string) (AssetIdentity, error) {
	return NewAssetIdentity(AssetKindLpShare, poolId)
}

func NewPerpShareIdentity(marketId string) (AssetIdentity, error) {
	return NewAssetIdentity(AssetKindPerpShare, marketId)
}

// MustAssetIdentity panics on invalid input; intended for constants and
// tests.
func MustAssetIdentity(kind AssetKind, payload string) AssetIdentity {
	id, err := NewAssetIdentity(kind, payload)
	if err != nil {
		panic(err)
	}
	return id
}

// ParseAssetIdentity decodes the canonical "tag:payload" form.
func ParseAssetIdentity(raw string) (AssetIdentity, error) {
	tag, payload, found := strings.Cut(raw, ":")
	if !found || payload == "" {
		return AssetIdentity{}, errors.Wrapf(ErrInvalidAssetIdentity, "%q", raw)
	}
	var kind AssetKind
	switch tag {
	case "native":
		kind = AssetKindNative
	case "token":
		kind = AssetKindContractToken
	case "lp":
		kind = AssetKindLpShare
	case "perp":
		kind = AssetKindPerpShare
	default:
		return AssetIdentity{}, errors.Wrapf(ErrInvalidAssetIdentity, "%q", raw)
	}
	return AssetIdentity{kind: kind, payload: payload}, nil
}

func (id AssetIdentity) Kind() AssetKind { return id.kind }
func (id AssetIdentity) Payload() string { return id.payload }

func (id AssetIdentity) Equals(other AssetIdentity) bool {
	return id.kind == other.kind && id.payload == other.payload
}

// CanonicalString is the stable storage-key form. Parse round-trips it.
func (id AssetIdentity) CanonicalString() string {
	return id.kind.canonicalTag() + ":" + id.payload
}

func (id AssetIdentity) String() string {
	return id.CanonicalString()
}

func (id AssetIdentity) MarshalText() ([]byte, error) {
	if id.kind.canonicalTag() == "" {
		return nil, errors.Wrapf(ErrInvalidAssetIdentity, "kind %d", id.kind)
	}
	return []byte(id.CanonicalString()), nil
}

func (id *AssetIdentity) UnmarshalText(text []byte) error {
	parsed, err := ParseAssetIdentity(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Asset pairs an identity with a concrete amount. It is built at
// validation time and consumed immediately; persistence is keyed by the
// identity alone.
type Asset struct {
	Identity AssetIdentity `json:"identity"`
	Amount   ScaledAmount  `json:"amount"`
}

func NewAsset(identity AssetIdentity, amount ScaledAmount) Asset {
	return Asset{Identity: identity, Amount: amount}
}

func (a Asset) CheckedAdd(b Asset) (Asset, error) {
	if !a.Identity.Equals(b.Identity) {
		return Asset{}, errors.Wrapf(ErrAssetMismatch, "add %s to %s", b.Identity, a.Identity)
	}
	amount, err := a.Amount.Add(b.Amount)
	if err != nil {
		return Asset{}, err
	}
	return Asset{Identity: a.Identity, Amount: amount}, nil
}

func (a Asset) CheckedSub(b Asset) (Asset, error) {
	if !a.Identity.Equals(b.Identity) {
		return Asset{}, errors.Wrapf(ErrAssetMismatch, "sub %s from %s", b.Identity, a.Identity)
	}
	amount, err := a.Amount.Sub(b.Amount)
	if err != nil {
		return Asset{}, err
	}
	return Asset{Identity: a.Identity, Amount: amount}, nil
}

// AssetComparison distinguishes a partial match (same identity, different
// amount) from plain inequality, so callers branch on it deliberately
// instead of collapsing both into "not equal".
type AssetComparison uint8

const (
	AssetsEqual AssetComparison = iota + 1
	AssetsSameIdentityDifferentAmount
	AssetsDifferent
)

func (c AssetComparison) String() string {
	switch c {
	case AssetsEqual:
		return "Equal"
	case AssetsSameIdentityDifferentAmount:
		return "SameAssetDifferentAmount"
	case AssetsDifferent:
		return "Different"
	default:
		return "Unknown"
	}
}

func CompareAssets(a, b Asset) AssetComparison {
	if !a.Identity.Equals(b.Identity) {
		return AssetsDifferent
	}
	if !a.Amount.Equal(b.Amount) {
		return AssetsSameIdentityDifferentAmount
	}
	return AssetsEqual
}

// RequireEqual returns the named condition as an error, surfacing
// SameAssetDifferentAmount explicitly per the comparison contract.
func RequireEqual(a, b Asset) error {
	switch CompareAssets(a, b) {
	case AssetsEqual:
		return nil
	case AssetsSameIdentityDifferentAmount:
		return errors.Wrapf(ErrSameAssetDifferentAmount, "%s: %s vs %s", a.Identity, a.Amount, b.Amount)
	default:
		return errors.Wrapf(ErrAssetMismatch, "%s vs %s", a.Identity, b.Identity)
	}
}
