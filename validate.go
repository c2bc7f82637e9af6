package common

import (
	"context"

	"github.com/pkg/errors"
)

// ValidationLayer applies the fixed pre-flight sequence every
// state-changing entry point goes through: message shape, identity
// resolution, amount, authorization. The order is part of the contract —
// a caller always learns what is malformed before whether they are
// allowed.
type ValidationLayer struct {
	registry *AssetInfoRegistry
	bridge   *AuthorizationBridge
	log      Log
}

func NewValidationLayer(registry *AssetInfoRegistry, bridge *AuthorizationBridge, log Log) *ValidationLayer {
	return &ValidationLayer{
		registry: registry,
		bridge:   bridge,
		log:      log,
	}
}

// ValidateTransfer checks a transfer message and returns the concrete
// Asset it moves.
func (v *ValidationLayer) ValidateTransfer(ctx context.Context, msg TransferMsg) (Asset, error) {
	if err := validateShape(msg); err != nil {
		return Asset{}, err
	}

	identity, err := ParseAssetIdentity(msg.AssetId)
	if err != nil {
		return Asset{}, err
	}
	info, err := v.registry.Lookup(ctx, identity)
	if err != nil {
		return Asset{}, err
	}

	amount, err := DecodeAmount(msg.Amount, info.Decimals)
	if err != nil {
		return Asset{}, err
	}
	if amount.IsZero() {
		return Asset{}, errors.Wrapf(ErrZeroAmount, "transfer of %s", identity)
	}

	if err := v.bridge.Check(ctx, NewAuthorizationContext(msg.Sender, PermissionTransfer)); err != nil {
		return Asset{}, err
	}

	v.log.Debug().Str("asset", identity.CanonicalString()).Str("sender", msg.Sender).Msg("transfer validated")
	return NewAsset(identity, amount), nil
}

// ValidateRegisterAsset checks shape and builds the AssetInfo a register
// call carries. Authorization and duplicate detection belong to the
// registry itself.
func (v *ValidationLayer) ValidateRegisterAsset(ctx context.Context, msg RegisterAssetMsg) (AssetInfo, error) {
	if err := validateShape(msg); err != nil {
		return AssetInfo{}, err
	}
	identity, err := ParseAssetIdentity(msg.AssetId)
	if err != nil {
		return AssetInfo{}, err
	}
	info := AssetInfo{
		Identity:     identity,
		Decimals:     msg.Decimals,
		TransferKind: msg.TransferKind,
	}
	if err := info.Validate(); err != nil {
		return AssetInfo{}, err
	}
	return info, nil
}

// ValidateUpdateAsset is the update counterpart of ValidateRegisterAsset.
func (v *ValidationLayer) ValidateUpdateAsset(ctx context.Context, msg UpdateAssetMsg) (AssetInfo, error) {
	return v.ValidateRegisterAsset(ctx, RegisterAssetMsg(msg))
}
