// Package pgtest holds argument matchers shared by repository and service tests.
package pgtest

import (
	"github.com/shopspring/decimal"
)

type decimalArg struct {
	want decimal.Decimal
}

// Decimal matches a decimal argument by value rather than by representation.
// It satisfies both pgxmock.Argument and gomock.Matcher.
func Decimal(v string) decimalArg {
	return decimalArg{want: decimal.RequireFromString(v)}
}

func (a decimalArg) Match(v any) bool {
	switch got := v.(type) {
	case decimal.Decimal:
		return got.Equal(a.want)
	case *decimal.Decimal:
		return got != nil && got.Equal(a.want)
	}
	return false
}

func (a decimalArg) Matches(v any) bool {
	return a.Match(v)
}

func (a decimalArg) String() string {
	return "is decimal " + a.want.String()
}
