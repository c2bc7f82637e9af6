package common

// SignedAmount is a ScaledAmount magnitude with a sign, used for deltas
// (rate changes, position adjustments) that balances themselves never
// carry. Negative zero normalizes to positive zero.
type SignedAmount struct {
	magnitude ScaledAmount
	negative  bool
}

func NewSignedAmount(magnitude ScaledAmount, negative bool) SignedAmount {
	if magnitude.IsZero() {
		negative = false
	}
	return SignedAmount{magnitude: magnitude, negative: negative}
}

func PositiveAmount(magnitude ScaledAmount) SignedAmount {
	return NewSignedAmount(magnitude, false)
}

func NegativeAmount(magnitude ScaledAmount) SignedAmount {
	return NewSignedAmount(magnitude, true)
}

func (s SignedAmount) Magnitude() ScaledAmount { return s.magnitude }
func (s SignedAmount) IsNegative() bool        { return s.negative }
func (s SignedAmount) IsZero() bool            { return s.magnitude.IsZero() }

func (s SignedAmount) Abs() SignedAmount {
	return SignedAmount{magnitude: s.magnitude}
}

func (s SignedAmount) Neg() SignedAmount {
	return NewSignedAmount(s.magnitude, !s.negative)
}

func (s SignedAmount) String() string {
	if s.negative {
		return "-" + s.magnitude.String()
	}
	return s.magnitude.String()
}

func (s SignedAmount) Cmp(other SignedAmount) int {
	switch {
	case s.negative && !other.negative:
		return -1
	case !s.negative && other.negative:
		return 1
	case s.negative:
		return other.magnitude.Cmp(s.magnitude)
	default:
		return s.magnitude.Cmp(other.magnitude)
	}
}

func (s SignedAmount) Add(other SignedAmount) (SignedAmount, error) {
	if s.negative == other.negative {
		sum, err := s.magnitude.Add(other.magnitude)
		if err != nil {
			return SignedAmount{}, err
		}
		return NewSignedAmount(sum, s.negative), nil
	}

	// Differing signs: the larger magnitude wins.
	larger, smaller := s, other
	if s.magnitude.Cmp(other.magnitude) < 0 {
		larger, smaller = other, s
	}
	diff, err := larger.magnitude.Sub(smaller.magnitude)
	if err != nil {
		return SignedAmount{}, err
	}
	return NewSignedAmount(diff, larger.negative), nil
}

func (s SignedAmount) Sub(other SignedAmount) (SignedAmount, error) {
	return s.Add(other.Neg())
}

// Mul scales the magnitude by an unsigned factor, keeping the sign.
func (s SignedAmount) Mul(factor ScaledAmount, targetDecimals uint8, rounding Rounding) (SignedAmount, error) {
	m, err := s.magnitude.Mul(factor, targetDecimals, rounding)
	if err != nil {
		return SignedAmount{}, err
	}
	return NewSignedAmount(m, s.negative), nil
}
