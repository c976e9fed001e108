package expenses

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a signed monetary value. Negative values are expenses,
// positive values are credits; the sign is applied by the caller, never
// interpreted here.
//
// The zero value is "missing" and is persisted as an empty string, which is
// distinct from an explicit zero built with A(0).
type Amount struct {
	value   decimal.Decimal
	defined bool
}

func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value), defined: true}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	case decimal.Decimal:
		return v
	default:
		panic(fmt.Sprintf("unsupported decimal conversion from %T", value))
	}
}

// IsMissing returns true for the missing value. An explicit zero is not missing.
func (a Amount) IsMissing() bool { return !a.defined }

func (a Amount) IsZero() bool     { return a.value.IsZero() }
func (a Amount) IsPositive() bool { return a.value.IsPositive() }
func (a Amount) IsNegative() bool { return a.value.IsNegative() }

// Equal reports value equality; a missing amount only equals another missing one.
func (a Amount) Equal(b Amount) bool { return a.defined == b.defined && a.value.Equal(b.value) }

// Neg returns the amount with its sign flipped.
func (a Amount) Neg() Amount { return Amount{value: a.value.Neg(), defined: a.defined} }

// binary operators. A missing operand counts as zero, and the result is
// defined as soon as one operand is, so sums skip missing values the way the
// aggregate queries need.
func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value.Add(b.value), defined: a.defined || b.defined}
}
func (a Amount) Sub(b Amount) Amount {
	return Amount{value: a.value.Sub(b.value), defined: a.defined || b.defined}
}

// String returns the plain decimal representation, or "" when missing.
func (a Amount) String() string {
	if !a.defined {
		return ""
	}
	return a.value.String()
}

// Float64 returns the closest floating-point representation of the amount.
func (a Amount) Float64() float64 { return a.value.InexactFloat64() }

// Format renders the amount with the currency's symbol and fraction rules,
// e.g. Format("INR") on 130 yields "₹130.00".
func (a Amount) Format(currency string) string {
	// the Money constructor is the only way to get a never-nil currency.
	cur := *money.New(0, currency).Currency()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// MarshalJSON writes a bare JSON number, or "" for the missing value. The
// store file never contains a not-a-number sentinel.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.defined {
		return json.Marshal("")
	}
	return a.value.MarshalJSON()
}

// UnmarshalJSON reads a JSON number. An empty string or null is the missing
// value, preserved as such so a round-trip does not invent a zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if string(trimmed) == `""` || string(trimmed) == "null" {
		*a = Amount{}
		return nil
	}
	var value decimal.Decimal
	if err := value.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}
	*a = Amount{value: value, defined: true}
	return nil
}

var _ json.Marshaler = (*Amount)(nil)
var _ json.Unmarshaler = (*Amount)(nil)
