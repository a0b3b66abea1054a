package payment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"loanbook/internal/domain/authz"
	loandomain "loanbook/internal/domain/loan"
	domain "loanbook/internal/domain/payment"
	"loanbook/internal/domain/uow"
	"loanbook/pkg/id"
)

type Usecase struct {
	loans    loandomain.Repository
	payments domain.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(loans loandomain.Repository, payments domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, payments: payments, uow: tx}
}

func today() time.Time {
	n := time.Now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// Create records a payment against an alive loan the principal may act on.
// The whole check-then-insert sequence runs with the loan row locked, so two
// concurrent payments cannot both pass the balance ceiling.
func (u *Usecase) Create(ctx context.Context, pr authz.Principal, in CreatePaymentInput) (*PaymentDTO, error) {
	if in.Amount.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var dto *PaymentDTO
	err := u.uow.WithinLoanTx(ctx, in.Loan, func(r uow.Repos, l *loandomain.Loan) error {
		if !authz.CanActOn(pr, l.UserID) {
			return authz.ErrForbidden
		}
		alive, err := r.Payments.ListAliveByLoanID(ctx, l.LoanID)
		if err != nil {
			return err
		}
		balance := loandomain.OutstandingBalance(l, domain.Amounts(alive), time.Now().UTC())
		if in.Amount.GreaterThan(balance) {
			return domain.ErrInvalidAmount
		}

		p := &domain.Payment{
			PaymentID:   id.NewUUID(),
			LoanID:      l.LoanID,
			PaymentDate: today(),
			Amount:      in.Amount,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}
		dto = ToDTO(p)
		return nil
	})
	if err != nil {
		// the locked fetch only sees alive loans: unknown and soft-deleted
		// ids both surface as not found
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loandomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, pr authz.Principal, paymentID string) (*PaymentDTO, error) {
	p, err := u.payments.GetByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	owner, err := u.loanOwner(ctx, p.LoanID)
	if err != nil {
		return nil, err
	}
	if !authz.CanActOn(pr, owner) {
		return nil, authz.ErrForbidden
	}
	return ToDTO(p), nil
}

func (u *Usecase) List(ctx context.Context, pr authz.Principal) ([]PaymentDTO, error) {
	ps, err := u.payments.List(ctx, authz.ListScope(pr))
	if err != nil {
		return nil, err
	}
	out := make([]PaymentDTO, 0, len(ps))
	for i := range ps {
		out = append(out, *ToDTO(&ps[i]))
	}
	return out, nil
}

func (u *Usecase) Delete(ctx context.Context, pr authz.Principal, paymentID string) error {
	p, err := u.payments.GetByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	owner, err := u.loanOwner(ctx, p.LoanID)
	if err != nil {
		return err
	}
	if !authz.CanActOn(pr, owner) {
		return authz.ErrForbidden
	}
	return u.payments.SoftDelete(ctx, p, pr.UserID)
}

// loanOwner resolves ownership transitively through the parent loan. The
// parent may itself be soft-deleted; it still anchors ownership.
func (u *Usecase) loanOwner(ctx context.Context, loanID string) (string, error) {
	l, err := u.loans.GetByLoanIDAnyState(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return l.UserID, nil
}
