package paymentmock

import (
	"context"
	"errors"

	domain "loanbook/internal/domain/payment"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("paymentmock: method not implemented")

// Repo is a function-backed mock that satisfies payment.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, p *domain.Payment) error
	GetByPaymentIDFn     func(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListAliveByLoanIDFn  func(ctx context.Context, loanID string) ([]domain.Payment, error)
	ListFn               func(ctx context.Context, ownerID string) ([]domain.Payment, error)
	SoftDeleteFn         func(ctx context.Context, p *domain.Payment, by string) error
	HardDeleteByLoanIDFn func(ctx context.Context, loanID string) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListAliveByLoanID(ctx context.Context, loanID string) ([]domain.Payment, error) {
	if m.ListAliveByLoanIDFn != nil {
		return m.ListAliveByLoanIDFn(ctx, loanID)
	}
	// most flows only need "no payments yet"
	return nil, nil
}

func (m *Repo) List(ctx context.Context, ownerID string) ([]domain.Payment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) SoftDelete(ctx context.Context, p *domain.Payment, by string) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, p, by)
	}
	return nil
}

func (m *Repo) HardDeleteByLoanID(ctx context.Context, loanID string) error {
	if m.HardDeleteByLoanIDFn != nil {
		return m.HardDeleteByLoanIDFn(ctx, loanID)
	}
	return nil
}
