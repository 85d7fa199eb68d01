package bound

import (
	"fmt"
	"math/big"
	"strconv"
)

// Numeric is the capability a scalar domain must provide to be used as
// the value type of a Bound, Zone, or ZoneSet: a total order, addition,
// subtraction, an additive identity, and a diagnostic rendering.
type Numeric[T any] interface {
	// Cmp returns a negative, zero, or positive value for less-than,
	// equal-to, or greater-than respectively.
	Cmp(other T) int
	// Add returns the sum of the receiver and other.
	Add(other T) T
	// Sub returns the receiver minus other.
	Sub(other T) T
	// Zero returns the additive identity of the same concrete type.
	Zero() T
	// String renders a diagnostic decimal form.
	String() string
}

// Float64 is the fast, approximate numeric domain used for the robustness
// translation and other analyses that tolerate floating-point rounding.
type Float64 float64

// Cmp implements Numeric.
func (a Float64) Cmp(b Float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Add implements Numeric.
func (a Float64) Add(b Float64) Float64 { return a + b }

// Sub implements Numeric.
func (a Float64) Sub(b Float64) Float64 { return a - b }

// Zero implements Numeric.
func (a Float64) Zero() Float64 { return 0 }

// String implements Numeric.
func (a Float64) String() string { return strconv.FormatFloat(float64(a), 'g', -1, 64) }

// Rational is the exact numeric domain used for symbolic computation,
// backed by math/big.Rat. The zero value is the rational 0/1.
type Rational struct {
	r *big.Rat
}

// NewRational builds num/den as a Rational.
func NewRational(num, den int64) Rational {
	return Rational{r: big.NewRat(num, den)}
}

// RationalFromInt builds n/1 as a Rational.
func RationalFromInt(n int64) Rational {
	return Rational{r: big.NewRat(n, 1)}
}

// RationalFromFloat64 converts a float64 to its exact rational value.
// NaN and Inf have no rational value and convert to 0.
func RationalFromFloat64(f float64) Rational {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return Rational{r: new(big.Rat)}
	}
	return Rational{r: r}
}

// ParseRational parses a decimal or rational ("3/7") string. A failure
// of the underlying parser (math/big) is wrapped in ErrInvalidRational
// and propagated unchanged.
func ParseRational(s string) (Rational, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, fmt.Errorf("%w: %q", ErrInvalidRational, s)
	}
	return Rational{r: r}, nil
}

func (a Rational) rat() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}
	return a.r
}

// Cmp implements Numeric.
func (a Rational) Cmp(b Rational) int { return a.rat().Cmp(b.rat()) }

// Add implements Numeric.
func (a Rational) Add(b Rational) Rational {
	return Rational{r: new(big.Rat).Add(a.rat(), b.rat())}
}

// Sub implements Numeric.
func (a Rational) Sub(b Rational) Rational {
	return Rational{r: new(big.Rat).Sub(a.rat(), b.rat())}
}

// Zero implements Numeric.
func (a Rational) Zero() Rational { return Rational{r: new(big.Rat)} }

// String implements Numeric. Renders as an integer when the denominator is
// 1, otherwise as "num/den".
func (a Rational) String() string { return a.rat().RatString() }

// Float64 converts the rational to its nearest float64 approximation.
func (a Rational) Float64() float64 {
	f, _ := a.rat().Float64()
	return f
}
