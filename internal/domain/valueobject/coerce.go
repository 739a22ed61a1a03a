package valueobject

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceNonNegativeDecimal converts a loosely typed numeric value into a non-negative decimal.
// Missing, non-numeric, infinite and negative values all become zero.
func CoerceNonNegativeDecimal(v any) decimal.Decimal {
	d, ok := toDecimal(v)
	if !ok || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ParseDecimal parses a loosely typed numeric value, reporting whether it held a number.
func ParseDecimal(v any) (decimal.Decimal, bool) {
	return toDecimal(v)
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return x, true
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, false
		}
		return *x, true
	case decimal.NullDecimal:
		return x.Decimal, x.Valid
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(x), true
	case float32:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat32(x), true
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int32:
		return decimal.NewFromInt32(x), true
	case int64:
		return decimal.NewFromInt(x), true
	case uint:
		return fromUint64(uint64(x)), true
	case uint32:
		return fromUint64(uint64(x)), true
	case uint64:
		return fromUint64(x), true
	case json.Number:
		return parseDecimalString(x.String())
	case string:
		return parseDecimalString(x)
	default:
		return decimal.Zero, false
	}
}

func parseDecimalString(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func fromUint64(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}
