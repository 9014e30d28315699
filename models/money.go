package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Money is a fixed-point currency amount. It is a decimal everywhere in the
// engine and a 2-place string at the storage boundary, so no float ever touches
// a billed amount.
type Money struct {
	decimal.Decimal
}

// NewMoney builds a Money from a decimal value.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MoneyFromString parses a decimal string such as "24.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return Money{Decimal: d}, nil
}

// MinorUnits returns the amount in cents, rounded half-up.
func (m Money) MinorUnits() int64 {
	return m.Decimal.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// MarshalBSONValue stores the amount as a fixed 2-place string.
func (m Money) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(m.Decimal.StringFixed(2))
}

// UnmarshalBSONValue reads the amount back from its string form.
func (m *Money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var s string
	if err := bson.UnmarshalValue(t, data, &s); err != nil {
		return fmt.Errorf("money: decode string: %w", err)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("money: parse %q: %w", s, err)
	}
	m.Decimal = d
	return nil
}

// MarshalJSON renders the amount as a JSON string with two fractional digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.Decimal.StringFixed(2) + `"`), nil
}

// UnmarshalJSON accepts either a quoted or a bare decimal literal.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	m.Decimal = d
	return nil
}
