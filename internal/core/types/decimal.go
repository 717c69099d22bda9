// Package types provides common numeric types shared across the domain.
package types

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// Hundred is used for percentage arithmetic.
var Hundred = decimal.NewFromInt(100)

// ClampPercent constrains a percentage to [0,100].
func ClampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(Hundred) {
		return Hundred
	}
	return p
}

// Numeric is a decimal that decodes leniently from JSON: numbers, numeric
// strings and null are accepted, and anything unparseable decodes to zero
// instead of failing the whole request.
type Numeric struct {
	decimal.Decimal
}

// N wraps a decimal as a Numeric.
func N(d decimal.Decimal) Numeric {
	return Numeric{d}
}

// NFloat wraps a float64 as a Numeric.
func NFloat(f float64) Numeric {
	return Numeric{decimal.NewFromFloat(f)}
}

// MarshalJSON encodes the value as a JSON number.
func (n Numeric) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}

// UnmarshalJSON accepts a JSON number, a quoted numeric string, or null.
// Unparseable input decodes to zero.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		n.Decimal = decimal.Zero
		return nil
	}

	// Unquote strings first; non-numeric content falls back to zero.
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			n.Decimal = decimal.Zero
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			n.Decimal = decimal.Zero
			return nil
		}
		n.Decimal = d
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		n.Decimal = decimal.Zero
		return nil
	}
	n.Decimal = d
	return nil
}

// Value implements driver.Valuer so Numeric maps to Postgres NUMERIC.
func (n Numeric) Value() (driver.Value, error) {
	return n.Decimal.Value()
}

// Scan implements sql.Scanner.
func (n *Numeric) Scan(src any) error {
	return n.Decimal.Scan(src)
}
