package payment

import (
	"github.com/shopspring/decimal"

	domain "loanbook/internal/domain/payment"
)

type CreatePaymentInput struct {
	// Public id of the target loan.
	Loan   string
	Amount decimal.Decimal
}

type PaymentDTO struct {
	ID          string `json:"id"`
	Loan        string `json:"loan"`
	PaymentDate string `json:"payment_date"`
	Amount      string `json:"amount"`
}

const dateLayout = "2006-01-02"

// ToDTO builds the wire representation of a payment. Money goes out as a
// fixed two-decimal string.
func ToDTO(p *domain.Payment) *PaymentDTO {
	return &PaymentDTO{
		ID:          p.PaymentID,
		Loan:        p.LoanID,
		PaymentDate: p.PaymentDate.Format(dateLayout),
		Amount:      p.Amount.StringFixed(2),
	}
}
