package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNegativeAmount = errors.New("money cannot be negative")
	ErrInvalidAmount  = errors.New("invalid decimal amount")
)

const basisPointsScale = 10000

// Money is an amount in minor units (cents) of the hotel currency.
type Money struct {
	minor int64
}

func New(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{minor: minor}, nil
}

// FromMinor is used when rehydrating trusted values from storage.
func FromMinor(minor int64) Money {
	return Money{minor: minor}
}

// ParseDecimal reads a non-negative amount with at most two fractional
// digits, e.g. "1234.5" or "1234.50".
func ParseDecimal(s string) (Money, error) {
	s = strings.TrimSpace(s)
	whole, frac, hasFrac := strings.Cut(s, ".")
	if !isDigits(whole) || (hasFrac && (!isDigits(frac) || len(frac) > 2)) {
		return Money{}, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return Money{minor: units*100 + cents}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func Zero() Money {
	return Money{}
}

func (m Money) Minor() int64 { return m.minor }

func (m Money) IsZero() bool { return m.minor == 0 }

func (m Money) Add(other Money) Money {
	return Money{minor: m.minor + other.minor}
}

func (m Money) Sub(other Money) Money {
	return Money{minor: m.minor - other.minor}
}

func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.minor >= other.minor
}

// WithBasisPoints returns m * (1 + bp/10000), rounded half up. The amount is
// split around the scale so only the result itself can overflow.
func (m Money) WithBasisPoints(bp int64) Money {
	factor := basisPointsScale + bp
	whole, rem := m.minor/basisPointsScale, m.minor%basisPointsScale
	return Money{minor: whole*factor + (rem*factor+basisPointsScale/2)/basisPointsScale}
}

// Decimal renders the amount with two fractional digits, e.g. "1234.50".
func (m Money) Decimal() string {
	sign := ""
	v := m.minor
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (m Money) String() string {
	return m.Decimal()
}
