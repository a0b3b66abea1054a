package loan

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"loanbook/internal/domain/authz"
	domain "loanbook/internal/domain/loan"
	paymentdomain "loanbook/internal/domain/payment"
	"loanbook/internal/domain/uow"
	paymentuc "loanbook/internal/usecase/payment"
	"loanbook/pkg/id"
)

type Usecase struct {
	loans    domain.Repository
	payments paymentdomain.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(loans domain.Repository, payments paymentdomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, payments: payments, uow: tx}
}

const dateLayout = "2006-01-02"

func today() time.Time {
	n := time.Now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// Create registers a loan for the caller, or for in.User when the caller is
// privileged. ip is the system-captured request origin, never client data.
func (u *Usecase) Create(ctx context.Context, pr authz.Principal, in CreateLoanInput, ip string) (*LoanDTO, error) {
	l := &domain.Loan{
		LoanID:       id.NewUUID(),
		UserID:       authz.ResolveOwner(pr, in.User),
		NominalValue: in.NominalValue,
		InterestRate: in.InterestRate,
		IPAddress:    ip,
		RequestDate:  today(),
		Bank:         in.Bank,
		Client:       in.Client,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return u.toDTO(ctx, l)
}

// Get resolves existence first (not found), then ownership (forbidden).
// Detail endpoints share that ordering.
func (u *Usecase) Get(ctx context.Context, pr authz.Principal, loanID string) (*LoanDTO, error) {
	l, err := u.getAlive(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if !authz.CanActOn(pr, l.UserID) {
		return nil, authz.ErrForbidden
	}
	return u.toDTO(ctx, l)
}

func (u *Usecase) List(ctx context.Context, pr authz.Principal) ([]LoanDTO, error) {
	ls, err := u.loans.List(ctx, authz.ListScope(pr))
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		dto, err := u.toDTO(ctx, &ls[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, pr authz.Principal, loanID string, in UpdateLoanInput) (*LoanDTO, error) {
	l, err := u.getAlive(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if !authz.CanActOn(pr, l.UserID) {
		return nil, authz.ErrForbidden
	}

	if in.NominalValue != nil {
		l.NominalValue = *in.NominalValue
	}
	if in.InterestRate != nil {
		l.InterestRate = *in.InterestRate
	}
	if in.Bank != nil {
		l.Bank = *in.Bank
	}
	if in.Client != nil {
		l.Client = *in.Client
	}
	if in.User != nil && pr.Privileged {
		l.UserID = *in.User
	}

	if err := u.loans.Save(ctx, l); err != nil {
		return nil, err
	}
	return u.toDTO(ctx, l)
}

// Delete soft-deletes; the row and its payments stay in the store.
func (u *Usecase) Delete(ctx context.Context, pr authz.Principal, loanID string) error {
	l, err := u.getAlive(ctx, loanID)
	if err != nil {
		return err
	}
	if !authz.CanActOn(pr, l.UserID) {
		return authz.ErrForbidden
	}
	return u.loans.SoftDelete(ctx, l, pr.UserID)
}

// Restore clears a soft delete. Privileged only.
func (u *Usecase) Restore(ctx context.Context, pr authz.Principal, loanID string) (*LoanDTO, error) {
	if !pr.Privileged {
		return nil, authz.ErrForbidden
	}
	l, err := u.loans.GetByLoanIDAnyState(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := u.loans.Restore(ctx, l); err != nil {
		return nil, err
	}
	return u.toDTO(ctx, l)
}

// HardDelete physically removes a loan and every payment recorded against
// it, in one transaction. Privileged only.
func (u *Usecase) HardDelete(ctx context.Context, pr authz.Principal, loanID string) error {
	if !pr.Privileged {
		return authz.ErrForbidden
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanIDAnyState(ctx, loanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if err := r.Payments.HardDeleteByLoanID(ctx, l.LoanID); err != nil {
			return err
		}
		return r.Loans.HardDelete(ctx, l)
	})
}

func (u *Usecase) getAlive(ctx context.Context, loanID string) (*domain.Loan, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

// toDTO assembles the loan representation: alive payments nested, balance
// derived at this moment, half-even rounding only here at the edge.
func (u *Usecase) toDTO(ctx context.Context, l *domain.Loan) (*LoanDTO, error) {
	alive, err := u.payments.ListAliveByLoanID(ctx, l.LoanID)
	if err != nil {
		return nil, err
	}
	balance := domain.OutstandingBalance(l, paymentdomain.Amounts(alive), time.Now().UTC())

	nested := make([]paymentuc.PaymentDTO, 0, len(alive))
	for i := range alive {
		nested = append(nested, *paymentuc.ToDTO(&alive[i]))
	}
	return &LoanDTO{
		ID:                 l.LoanID,
		NominalValue:       l.NominalValue.StringFixed(2),
		InterestRate:       l.InterestRate.StringFixed(2),
		IPAddress:          l.IPAddress,
		RequestDate:        l.RequestDate.Format(dateLayout),
		Bank:               l.Bank,
		Client:             l.Client,
		OutstandingBalance: balance.StringFixedBank(2),
		Payments:           nested,
		User:               l.UserID,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
		DeletedAt:          l.DeletedAt,
	}, nil
}
