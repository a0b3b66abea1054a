package uow

import (
	"context"

	"loanbook/internal/domain/loan"
	"loanbook/internal/domain/payment"
)

type Repos struct {
	Loans    loan.Repository
	Payments payment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in. Serializes
	// concurrent balance-check-then-insert sequences on one loan.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
