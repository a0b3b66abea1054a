package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// WholeMonthsBetween counts calendar-month boundaries crossed between from
// and to. Day of month is ignored: interest accrues per calendar month, not
// per elapsed day. Never negative.
func WholeMonthsBetween(from, to time.Time) int64 {
	m := int64(to.Year()-from.Year())*12 + int64(to.Month()) - int64(from.Month())
	if m < 0 {
		return 0
	}
	return m
}

// OutstandingBalance derives what is still owed on l as of asOf:
//
//	nominal + nominal * (rate/100) * months - sum(paid)
//
// paid must contain only amounts of payments that are still alive; callers
// filter soft-deleted payments before calling. The result is not clamped: it
// goes negative when payments exceed the total due. Full decimal precision
// is kept; rounding happens only at serialization.
func OutstandingBalance(l *Loan, paid []decimal.Decimal, asOf time.Time) decimal.Decimal {
	months := WholeMonthsBetween(l.RequestDate, asOf)
	interest := l.NominalValue.Mul(l.InterestRate.Div(hundred)).Mul(decimal.NewFromInt(months))
	balance := l.NominalValue.Add(interest)
	for _, amount := range paid {
		balance = balance.Sub(amount)
	}
	return balance
}
