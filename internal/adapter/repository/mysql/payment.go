package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	paymentdomain "loanbook/internal/domain/payment"
)

var _ paymentdomain.Repository = (*PaymentRepository)(nil)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentdomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*paymentdomain.Payment, error) {
	var out paymentdomain.Payment
	res := r.db.WithContext(ctx).Scopes(Alive).Where("payment_id = ?", paymentID).First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) ListAliveByLoanID(ctx context.Context, loanID string) ([]paymentdomain.Payment, error) {
	var out []paymentdomain.Payment
	res := r.db.WithContext(ctx).Scopes(Alive).
		Where("loan_id = ?", loanID).
		Order("payment_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) List(ctx context.Context, ownerID string) ([]paymentdomain.Payment, error) {
	q := r.db.WithContext(ctx).Order("payments.created_at DESC, payments.id DESC")
	if ownerID != "" {
		q = q.Joins("JOIN loans ON loans.loan_id = payments.loan_id").
			Where("loans.user_id = ?", ownerID)
	}
	var out []paymentdomain.Payment
	res := q.Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) SoftDelete(ctx context.Context, p *paymentdomain.Payment, by string) error {
	p.MarkDeleted(by, time.Now().UTC())
	return r.db.WithContext(ctx).Model(p).
		Updates(map[string]any{"deleted_at": p.DeletedAt, "deleted_by": p.DeletedBy}).Error
}

func (r *PaymentRepository) HardDeleteByLoanID(ctx context.Context, loanID string) error {
	return r.db.WithContext(ctx).
		Delete(&paymentdomain.Payment{}, "loan_id = ?", loanID).Error
}
