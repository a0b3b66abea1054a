package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loandomain "loanbook/internal/domain/loan"
)

var _ loandomain.Repository = (*LoanRepository)(nil)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loandomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loandomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loandomain.Loan, error) {
	var out loandomain.Loan
	res := r.db.WithContext(ctx).Scopes(Alive).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loandomain.Loan, error) {
	q := r.db.WithContext(ctx)
	// sqlite (tests) has no FOR UPDATE syntax; its writes serialize anyway
	if r.db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out loandomain.Loan
	res := q.Scopes(Alive).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDAnyState(ctx context.Context, loanID string) (*loandomain.Loan, error) {
	var out loandomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) List(ctx context.Context, ownerID string) ([]loandomain.Loan, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if ownerID != "" {
		q = q.Where("user_id = ?", ownerID)
	}
	var out []loandomain.Loan
	res := q.Find(&out)
	return out, res.Error
}

func (r *LoanRepository) SoftDelete(ctx context.Context, l *loandomain.Loan, by string) error {
	l.MarkDeleted(by, time.Now().UTC())
	return r.db.WithContext(ctx).Model(l).
		Updates(map[string]any{"deleted_at": l.DeletedAt, "deleted_by": l.DeletedBy}).Error
}

func (r *LoanRepository) Restore(ctx context.Context, l *loandomain.Loan) error {
	l.Unmark()
	return r.db.WithContext(ctx).Model(l).
		Updates(map[string]any{"deleted_at": nil, "deleted_by": nil}).Error
}

func (r *LoanRepository) HardDelete(ctx context.Context, l *loandomain.Loan) error {
	return r.db.WithContext(ctx).Delete(&loandomain.Loan{}, "id = ?", l.ID).Error
}
