package common

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var msgValidator = validator.New(validator.WithRequiredStructEnabled())

// TransferMsg is the wire shape of a transfer request. Amount is the
// human-readable quantity; it is scaled to the asset's registered
// precision during validation.
type TransferMsg struct {
	Sender    string `json:"sender" validate:"required"`
	Recipient string `json:"recipient" validate:"required"`
	AssetId   string `json:"assetId" validate:"required"`
	Amount    string `json:"amount" validate:"required"`
}

type RegisterAssetMsg struct {
	Sender       string       `json:"sender" validate:"required"`
	AssetId      string       `json:"assetId" validate:"required"`
	Decimals     uint8        `json:"decimals" validate:"lte=18"`
	TransferKind TransferKind `json:"transferKind" validate:"required"`
}

type UpdateAssetMsg struct {
	Sender       string       `json:"sender" validate:"required"`
	AssetId      string       `json:"assetId" validate:"required"`
	Decimals     uint8        `json:"decimals" validate:"lte=18"`
	TransferKind TransferKind `json:"transferKind" validate:"required"`
}

func validateShape(msg any) error {
	if err := msgValidator.Struct(msg); err != nil {
		return errors.Wrap(err, "malformed message")
	}
	return nil
}

// DecodeAmount scales a wire amount to the asset's precision. The wire
// value must be exactly representable: sub-unit dust is rejected rather
// than rounded, since no caller chose a rounding direction.
func DecodeAmount(amount string, decimals uint8) (ScaledAmount, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return ScaledAmount{}, errors.Wrapf(err, "amount %q", amount)
	}
	if d.IsNegative() {
		return ScaledAmount{}, errors.Errorf("amount %q is negative", amount)
	}
	raw := d.Shift(int32(decimals))
	if !raw.IsInteger() {
		return ScaledAmount{}, errors.Wrapf(ErrInvalidDecimals, "amount %q exceeds %d decimals", amount, decimals)
	}
	return NewScaledAmount(raw, decimals)
}
