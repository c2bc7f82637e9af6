package common

import (
	"context"
	"strings"

	"github.com/facebookgo/clock"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type AssetInfoStore interface {
	GetAssetInfo(ctx context.Context, key string) (*AssetInfo, error)
	PutAssetInfo(ctx context.Context, key string, info *AssetInfo) error
	ListAssetInfos(ctx context.Context) ([]*AssetInfo, error)
}

// Capabilities gates the optional venue integrations. LP-share assets
// need Swap, perp-share assets need Perp; the arithmetic core is
// capability-independent.
type Capabilities struct {
	Swap bool
	Perp bool
}

// AssetInfoRegistry owns per-asset metadata for one contract instance.
// Mutations are admin-gated and full replaces; readers never observe a
// partially applied entry.
type AssetInfoRegistry struct {
	store AssetInfoStore
	auth  *AuthorizationBridge
	clk   clock.Clock
	log   Log
	caps  Capabilities
}

func NewAssetInfoRegistry(store AssetInfoStore, auth *AuthorizationBridge, clk clock.Clock, log Log, caps Capabilities) *AssetInfoRegistry {
	return &AssetInfoRegistry{
		store: store,
		auth:  auth,
		clk:   clk,
		log:   log,
		caps:  caps,
	}
}

func (r *AssetInfoRegistry) Capabilities() Capabilities {
	return r.caps
}

// checkCapability rejects identity kinds whose venue integration is not
// enabled for this instance.
func (r *AssetInfoRegistry) checkCapability(kind AssetKind) error {
	switch kind {
	case AssetKindLpShare:
		if !r.caps.Swap {
			return errors.Wrap(ErrCapabilityDisabled, "swap")
		}
	case AssetKindPerpShare:
		if !r.caps.Perp {
			return errors.Wrap(ErrCapabilityDisabled, "perp")
		}
	}
	return nil
}

// Register inserts a new entry. Shape and capability problems are
// reported before authorization is evaluated; the duplicate check runs
// against live state after the caller is cleared.
func (r *AssetInfoRegistry) Register(ctx context.Context, info AssetInfo, caller string) error {
	if err := info.Validate(); err != nil {
		return err
	}
	if err := r.checkCapability(info.Identity.Kind()); err != nil {
		return err
	}
	if err := r.auth.Check(ctx, NewAuthorizationContext(caller, PermissionAdmin)); err != nil {
		return err
	}

	key := info.Identity.CanonicalString()
	_, err := r.store.GetAssetInfo(ctx, key)
	if err == nil {
		return errors.Wrapf(ErrDuplicateAsset, "%s", key)
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	now := r.clk.Now().Unix()
	info.RegisteredAt = now
	info.UpdatedAt = now
	if err := r.store.PutAssetInfo(ctx, key, info.Clone()); err != nil {
		return err
	}
	r.log.Info().Str("asset", key).Str("caller", caller).Msg("asset registered")
	return nil
}

// Lookup resolves an identity to its metadata.
func (r *AssetInfoRegistry) Lookup(ctx context.Context, identity AssetIdentity) (*AssetInfo, error) {
	key := identity.CanonicalString()
	info, err := r.store.GetAssetInfo(ctx, key)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.Wrapf(ErrUnknownAsset, "%s", key)
		}
		return nil, err
	}
	return info, nil
}

// Update replaces an existing entry wholesale. Partial patches are not
// offered; the caller supplies the complete new configuration.
func (r *AssetInfoRegistry) Update(ctx context.Context, identity AssetIdentity, info AssetInfo, caller string) error {
	if !identity.Equals(info.Identity) {
		return errors.Wrapf(ErrAssetMismatch, "update %s with info for %s", identity, info.Identity)
	}
	if err := info.Validate(); err != nil {
		return err
	}
	if err := r.checkCapability(info.Identity.Kind()); err != nil {
		return err
	}
	if err := r.auth.Check(ctx, NewAuthorizationContext(caller, PermissionAdmin)); err != nil {
		return err
	}

	existing, err := r.Lookup(ctx, identity)
	if err != nil {
		return err
	}
	info.RegisteredAt = existing.RegisteredAt
	info.UpdatedAt = r.clk.Now().Unix()
	if err := r.store.PutAssetInfo(ctx, identity.CanonicalString(), info.Clone()); err != nil {
		return err
	}
	r.log.Info().Str("asset", identity.CanonicalString()).Str("caller", caller).Msg("asset updated")
	return nil
}

// List returns all entries ordered by canonical key.
func (r *AssetInfoRegistry) List(ctx context.Context) ([]*AssetInfo, error) {
	infos, err := r.store.ListAssetInfos(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(infos, func(a, b *AssetInfo) int {
		return strings.Compare(a.Identity.CanonicalString(), b.Identity.CanonicalString())
	})
	return infos, nil
}

// BuildTransfer resolves the asset's transfer mechanism and emits an
// instruction for it.
func (r *AssetInfoRegistry) BuildTransfer(ctx context.Context, recipient string, asset Asset) (*TransferInstruction, error) {
	info, err := r.Lookup(ctx, asset.Identity)
	if err != nil {
		return nil, err
	}
	return BuildTransfer(r.clk, info, recipient, asset)
}
