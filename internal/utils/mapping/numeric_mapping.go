package mapping

import (
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ToNullDecimal converts a raw numeric column to a decimal. NULL, NaN and
// infinities become an invalid NullDecimal.
func ToNullDecimal(n pgtype.Numeric) decimal.NullDecimal {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite {
		return decimal.NullDecimal{}
	}
	if n.Int == nil {
		return decimal.NewNullDecimal(decimal.Zero)
	}
	return decimal.NewNullDecimal(decimal.NewFromBigInt(n.Int, n.Exp))
}

// ToNumeric converts a decimal to a numeric column value.
func ToNumeric(d decimal.NullDecimal) pgtype.Numeric {
	if !d.Valid {
		return pgtype.Numeric{}
	}
	return pgtype.Numeric{Int: new(big.Int).Set(d.Decimal.Coefficient()), Exp: d.Decimal.Exponent(), Valid: true}
}

// firstPresent returns the first numeric that is not NULL. Non-finite values are
// returned as-is so callers see them as invalid rather than skipping them.
func firstPresent(values ...pgtype.Numeric) pgtype.Numeric {
	for _, v := range values {
		if v.Valid {
			return v
		}
	}
	return pgtype.Numeric{}
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
