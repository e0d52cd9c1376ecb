package helper

import (
	"database/sql"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func StringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func NullToString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

func StringPtr(s string) *string {
	return &s
}

// StringToUUID parses s, returning uuid.Nil on malformed input.
func StringToUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// Float64ToDecimalExact goes through the string form to keep the
// NUMERIC column precision intact.
func Float64ToDecimalExact(f float64) decimal.Decimal {
	return decimal.RequireFromString(
		strconv.FormatFloat(f, 'f', -1, 64),
	)
}

func Float64PtrToNullDecimal(f *float64) decimal.NullDecimal {
	if f == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{
		Decimal: Float64ToDecimalExact(*f),
		Valid:   true,
	}
}

func NullDecimalToFloat64Ptr(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f, _ := d.Decimal.Float64()
	return &f
}
