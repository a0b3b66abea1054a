package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"loanbook/internal/domain/loan"
	"loanbook/internal/domain/payment"
	"loanbook/pkg/id"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loan.Loan{}, &payment.Payment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM payments")
		db.Exec("DELETE FROM loans")
	})
	return db
}

func seedLoan(t *testing.T, db *gorm.DB, userID string) *loan.Loan {
	t.Helper()
	l := &loan.Loan{
		LoanID:       id.NewUUID(),
		UserID:       userID,
		NominalValue: decimal.RequireFromString("1000.00"),
		InterestRate: decimal.RequireFromString("5.00"),
		IPAddress:    "10.0.0.1",
		RequestDate:  time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Bank:         "BCA",
		Client:       "web",
	}
	if err := db.Create(l).Error; err != nil {
		t.Fatalf("seed loan: %v", err)
	}
	return l
}

func seedPayment(t *testing.T, db *gorm.DB, loanID, amount string) *payment.Payment {
	t.Helper()
	p := &payment.Payment{
		PaymentID:   id.NewUUID(),
		LoanID:      loanID,
		PaymentDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.RequireFromString(amount),
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}
	return p
}
