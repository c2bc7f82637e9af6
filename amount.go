package common

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Rounding selects the direction applied whenever precision is reduced.
// There is no default: every precision-reducing operation takes one
// explicitly, so the call site carries the economic decision (round debt
// up, round collateral credit down).
type Rounding uint8

const (
	RoundingFloor Rounding = iota + 1
	RoundingCeil
)

func (r Rounding) String() string {
	switch r {
	case RoundingFloor:
		return "Floor"
	case RoundingCeil:
		return "Ceil"
	default:
		return "Unknown"
	}
}

// ScaledAmount is a non-negative fixed-point quantity: an integer count of
// base units plus the decimal precision those units are expressed in.
// The represented value is raw / 10^decimals. Raw never exceeds 2^128-1.
type ScaledAmount struct {
	raw      decimal.Decimal
	decimals uint8
}

func NewScaledAmount(raw decimal.Decimal, decimals uint8) (ScaledAmount, error) {
	if decimals > MAX_ASSET_DECIMALS {
		return ScaledAmount{}, errors.Wrapf(ErrInvalidDecimals, "decimals %d", decimals)
	}
	if !raw.IsInteger() {
		return ScaledAmount{}, errors.Errorf("raw amount %s is not an integer", raw)
	}
	if raw.IsNegative() {
		return ScaledAmount{}, errors.Errorf("raw amount %s is negative", raw)
	}
	if raw.GreaterThan(MAX_RAW_AMOUNT) {
		return ScaledAmount{}, errors.Wrapf(ErrArithmeticOverflow, "raw amount %s", raw)
	}
	return ScaledAmount{raw: raw, decimals: decimals}, nil
}

// MustScaledAmount parses the raw base-unit count from a string. Panics on
// invalid input; intended for constants and tests.
func MustScaledAmount(raw string, decimals uint8) ScaledAmount {
	a, err := NewScaledAmount(decimal.RequireFromString(raw), decimals)
	if err != nil {
		panic(err)
	}
	return a
}

func ZeroScaledAmount(decimals uint8) ScaledAmount {
	return ScaledAmount{raw: decimal.Zero, decimals: decimals}
}

func (a ScaledAmount) Raw() decimal.Decimal { return a.raw }
func (a ScaledAmount) Decimals() uint8      { return a.decimals }
func (a ScaledAmount) IsZero() bool         { return a.raw.IsZero() }

// Value is the represented quantity, raw / 10^decimals.
func (a ScaledAmount) Value() decimal.Decimal {
	return a.raw.Shift(-int32(a.decimals))
}

func (a ScaledAmount) String() string {
	return a.Value().String()
}

// Cmp compares represented values. Amounts of differing precision compare
// exactly; no rescaling (and therefore no overflow) is involved.
func (a ScaledAmount) Cmp(b ScaledAmount) int {
	return a.Value().Cmp(b.Value())
}

func (a ScaledAmount) Equal(b ScaledAmount) bool {
	return a.Cmp(b) == 0
}

// Rescale raises precision to target. Lossless by construction; reducing
// precision is a distinct operation (RescaleDown) so the loss is never
// silent.
func (a ScaledAmount) Rescale(target uint8) (ScaledAmount, error) {
	if target > MAX_ASSET_DECIMALS {
		return ScaledAmount{}, errors.Wrapf(ErrInvalidDecimals, "decimals %d", target)
	}
	if target < a.decimals {
		return ScaledAmount{}, errors.Wrapf(ErrInvalidDecimals, "rescale %d -> %d reduces precision", a.decimals, target)
	}
	raw := a.raw.Shift(int32(target - a.decimals))
	if raw.GreaterThan(MAX_RAW_AMOUNT) {
		return ScaledAmount{}, errors.Wrapf(ErrArithmeticOverflow, "rescale %s to %d decimals", a, target)
	}
	return ScaledAmount{raw: raw, decimals: target}, nil
}

// RescaleDown reduces precision to target, rounding in the given direction.
func (a ScaledAmount) RescaleDown(target uint8, rounding Rounding) (ScaledAmount, error) {
	if target > a.decimals {
		return ScaledAmount{}, errors.Wrapf(ErrInvalidDecimals, "rescale down %d -> %d raises precision", a.decimals, target)
	}
	raw, err := divRound(a.raw, ONE.Shift(int32(a.decimals-target)), rounding)
	if err != nil {
		return ScaledAmount{}, err
	}
	return ScaledAmount{raw: raw, decimals: target}, nil
}

func (a ScaledAmount) Add(b ScaledAmount) (ScaledAmount, error) {
	a, b, err := alignScale(a, b)
	if err != nil {
		return ScaledAmount{}, err
	}
	raw := a.raw.Add(b.raw)
	if raw.GreaterThan(MAX_RAW_AMOUNT) {
		return ScaledAmount{}, errors.Wrapf(ErrArithmeticOverflow, "add %s + %s", a, b)
	}
	return ScaledAmount{raw: raw, decimals: a.decimals}, nil
}

func (a ScaledAmount) Sub(b ScaledAmount) (ScaledAmount, error) {
	a, b, err := alignScale(a, b)
	if err != nil {
		return ScaledAmount{}, err
	}
	if a.raw.LessThan(b.raw) {
		return ScaledAmount{}, errors.Wrapf(ErrInsufficientAmount, "sub %s - %s", a, b)
	}
	return ScaledAmount{raw: a.raw.Sub(b.raw), decimals: a.decimals}, nil
}

// Mul multiplies the represented values and expresses the product at
// targetDecimals. The intermediate product is exact; only the final
// rescale rounds, in the given direction.
func (a ScaledAmount) Mul(b ScaledAmount, targetDecimals uint8, rounding Rounding) (ScaledAmount, error) {
	if targetDecimals > MAX_ASSET_DECIMALS {
		return ScaledAmount{}, errors.Wrapf(ErrInvalidDecimals, "decimals %d", targetDecimals)
	}
	product := a.raw.Mul(b.raw)
	exp := int32(a.decimals) + int32(b.decimals) - int32(targetDecimals)
	var raw decimal.Decimal
	var err error
	if exp > 0 {
		raw, err = divRound(product, ONE.Shift(exp), rounding)
		if err != nil {
			return ScaledAmount{}, err
		}
	} else {
		raw = product.Shift(-exp)
	}
	if raw.GreaterThan(MAX_RAW_AMOUNT) {
		return ScaledAmount{}, errors.Wrapf(ErrArithmeticOverflow, "mul %s * %s", a, b)
	}
	return ScaledAmount{raw: raw, decimals: targetDecimals}, nil
}

// Div divides the represented values and expresses the quotient at
// targetDecimals, rounding in the given direction.
func (a ScaledAmount) Div(b ScaledAmount, targetDecimals uint8, rounding Rounding) (ScaledAmount, error) {
	if targetDecimals > MAX_ASSET_DECIMALS {
		return ScaledAmount{}, errors.Wrapf(ErrInvalidDecimals, "decimals %d", targetDecimals)
	}
	if b.raw.IsZero() {
		return ScaledAmount{}, errors.Wrapf(ErrDivisionByZero, "div %s / %s", a, b)
	}
	num := a.raw
	den := b.raw
	exp := int32(b.decimals) + int32(targetDecimals) - int32(a.decimals)
	if exp > 0 {
		num = num.Shift(exp)
	} else {
		den = den.Shift(-exp)
	}
	raw, err := divRound(num, den, rounding)
	if err != nil {
		return ScaledAmount{}, err
	}
	if raw.GreaterThan(MAX_RAW_AMOUNT) {
		return ScaledAmount{}, errors.Wrapf(ErrArithmeticOverflow, "div %s / %s", a, b)
	}
	return ScaledAmount{raw: raw, decimals: targetDecimals}, nil
}

type scaledAmountJSON struct {
	Raw      decimal.Decimal `json:"raw"`
	Decimals uint8           `json:"decimals"`
}

func (a ScaledAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal(scaledAmountJSON{Raw: a.raw, Decimals: a.decimals})
}

func (a *ScaledAmount) UnmarshalJSON(data []byte) error {
	var v scaledAmountJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := NewScaledAmount(v.Raw, v.Decimals)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// alignScale brings both amounts to the larger of the two precisions.
func alignScale(a, b ScaledAmount) (ScaledAmount, ScaledAmount, error) {
	var err error
	switch {
	case a.decimals < b.decimals:
		a, err = a.Rescale(b.decimals)
	case b.decimals < a.decimals:
		b, err = b.Rescale(a.decimals)
	}
	if err != nil {
		return ScaledAmount{}, ScaledAmount{}, err
	}
	return a, b, nil
}

// divRound performs integer division of non-negative operands with the
// caller's rounding direction. Truncation equals floor here because
// operands are never negative.
func divRound(num, den decimal.Decimal, rounding Rounding) (decimal.Decimal, error) {
	q, r := num.QuoRem(den, 0)
	switch rounding {
	case RoundingFloor:
		return q, nil
	case RoundingCeil:
		if !r.IsZero() {
			q = q.Add(ONE)
		}
		return q, nil
	default:
		return decimal.Decimal{}, errors.Wrapf(ErrInvalidRounding, "rounding %d", rounding)
	}
}
