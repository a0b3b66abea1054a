package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type Loan struct {
	ID     uint64 `gorm:"primaryKey;column:id"`
	LoanID string `gorm:"column:loan_id;type:char(36);not null;uniqueIndex:ux_loans_loan_id"`
	// Owner principal id, supplied by the identity provider.
	UserID       string          `gorm:"column:user_id;size:64;not null;index:idx_loans_user"`
	NominalValue decimal.Decimal `gorm:"column:nominal_value;type:decimal(10,2);not null"`
	// Monthly rate as a percentage: 5.00 means 5% per month.
	InterestRate decimal.Decimal `gorm:"column:interest_rate;type:decimal(5,2);not null"`
	IPAddress    string          `gorm:"column:ip_address;size:45;not null"`
	RequestDate  time.Time       `gorm:"column:request_date;type:date;not null"`
	Bank         string          `gorm:"column:bank;size:255;not null"`
	Client       string          `gorm:"column:client;size:255;not null"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    *time.Time      `gorm:"column:deleted_at;index"`
	DeletedBy    *string         `gorm:"column:deleted_by;size:64"`
}

func (Loan) TableName() string { return "loans" }

// Alive reports whether the loan has not been soft-deleted.
func (l *Loan) Alive() bool { return l.DeletedAt == nil }

// MarkDeleted records a soft delete on the entity.
func (l *Loan) MarkDeleted(by string, at time.Time) {
	l.DeletedAt = &at
	l.DeletedBy = &by
}

// Unmark reverses a soft delete on the entity.
func (l *Loan) Unmark() {
	l.DeletedAt = nil
	l.DeletedBy = nil
}
