package loanmock

import (
	"context"
	"errors"

	domain "loanbook/internal/domain/loan"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies loan.Repository.
// Fill in the function fields a test needs; unfilled ones fail loudly.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDAnyStateFn  func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListFn                 func(ctx context.Context, ownerID string) ([]domain.Loan, error)
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	SoftDeleteFn           func(ctx context.Context, l *domain.Loan, by string) error
	RestoreFn              func(ctx context.Context, l *domain.Loan) error
	HardDeleteFn           func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByLoanIDAnyState(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDAnyStateFn != nil {
		return m.GetByLoanIDAnyStateFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, ownerID string) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) SoftDelete(ctx context.Context, l *domain.Loan, by string) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, l, by)
	}
	return nil
}

func (m *Repo) Restore(ctx context.Context, l *domain.Loan) error {
	if m.RestoreFn != nil {
		return m.RestoreFn(ctx, l)
	}
	return nil
}

func (m *Repo) HardDelete(ctx context.Context, l *domain.Loan) error {
	if m.HardDeleteFn != nil {
		return m.HardDeleteFn(ctx, l)
	}
	return nil
}
