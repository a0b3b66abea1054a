package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	// GetByPaymentID resolves an alive payment by its public id.
	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	// ListAliveByLoanID returns the alive payments of one loan. This is the
	// set the balance engine consumes and the set nested under a loan
	// representation.
	ListAliveByLoanID(ctx context.Context, loanID string) ([]Payment, error)
	// List returns payments whose parent loan belongs to ownerID, or all
	// payments when ownerID is empty. Soft-deleted rows are included; list
	// paths never filtered them.
	List(ctx context.Context, ownerID string) ([]Payment, error)
	SoftDelete(ctx context.Context, p *Payment, by string) error
	// HardDeleteByLoanID removes every payment of a loan, alive or not.
	// Used when the loan itself is hard-deleted.
	HardDeleteByLoanID(ctx context.Context, loanID string) error
}
