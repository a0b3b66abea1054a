package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	// GetByLoanID resolves an alive loan by its public id.
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate is GetByLoanID with a row lock, for use inside a tx.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDAnyState resolves a loan regardless of its soft-delete state.
	GetByLoanIDAnyState(ctx context.Context, loanID string) (*Loan, error)
	// List returns loans of one owner, or of all owners when ownerID is empty.
	// Soft-deleted rows are included; list paths never filtered them.
	List(ctx context.Context, ownerID string) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
	SoftDelete(ctx context.Context, l *Loan, by string) error
	Restore(ctx context.Context, l *Loan) error
	// HardDelete physically removes the row. Payments are removed separately,
	// in the same transaction.
	HardDelete(ctx context.Context, l *Loan) error
}
