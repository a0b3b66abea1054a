package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID        uint64 `gorm:"primaryKey;column:id"`
	PaymentID string `gorm:"column:payment_id;type:char(36);not null;uniqueIndex:ux_payments_payment_id"`
	// Public id of the owning loan.
	LoanID      string          `gorm:"column:loan_id;type:char(36);not null;index:idx_payments_loan"`
	PaymentDate time.Time       `gorm:"column:payment_date;type:date;not null"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(10,2);not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt   *time.Time      `gorm:"column:deleted_at;index"`
	DeletedBy   *string         `gorm:"column:deleted_by;size:64"`
}

func (Payment) TableName() string { return "payments" }

// Alive reports whether the payment has not been soft-deleted.
func (p *Payment) Alive() bool { return p.DeletedAt == nil }

// MarkDeleted records a soft delete on the entity.
func (p *Payment) MarkDeleted(by string, at time.Time) {
	p.DeletedAt = &at
	p.DeletedBy = &by
}

// Amounts extracts the amount of every payment in ps, in order.
func Amounts(ps []Payment) []decimal.Decimal {
	out := make([]decimal.Decimal, len(ps))
	for i := range ps {
		out[i] = ps[i].Amount
	}
	return out
}
