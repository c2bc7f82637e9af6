package common

import "github.com/pkg/errors"

var (
	ErrInvalidAssetIdentity     = errors.New("invalid asset identity")
	ErrUnknownAsset             = errors.New("unknown asset")
	ErrDuplicateAsset           = errors.New("duplicate asset")
	ErrZeroAmount               = errors.New("zero amount")
	ErrInsufficientAmount       = errors.New("insufficient amount")
	ErrAssetMismatch            = errors.New("asset mismatch")
	ErrSameAssetDifferentAmount = errors.New("same asset with different amount")
	ErrArithmeticOverflow       = errors.New("arithmetic overflow")
	ErrDivisionByZero           = errors.New("division by zero")
	ErrUnauthorized             = errors.New("unauthorized")

	ErrInvalidRounding    = errors.New("invalid rounding direction")
	ErrInvalidDecimals    = errors.New("decimals out of range")
	ErrCapabilityDisabled = errors.New("capability disabled")
)
