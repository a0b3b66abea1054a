package loan

import (
	"time"

	"github.com/shopspring/decimal"

	paymentuc "loanbook/internal/usecase/payment"
)

type CreateLoanInput struct {
	NominalValue decimal.Decimal
	InterestRate decimal.Decimal
	Bank         string
	Client       string
	// Optional owner override, honored only for privileged principals.
	User string
}

// UpdateLoanInput carries partial updates; nil means "leave as is".
// id, request_date, ip_address and derived fields are not here on purpose.
type UpdateLoanInput struct {
	NominalValue *decimal.Decimal
	InterestRate *decimal.Decimal
	Bank         *string
	Client       *string
	// Honored only for privileged principals.
	User *string
}

type LoanDTO struct {
	ID                 string                 `json:"id"`
	NominalValue       string                 `json:"nominal_value"`
	InterestRate       string                 `json:"interest_rate"`
	IPAddress          string                 `json:"ip_address"`
	RequestDate        string                 `json:"request_date"`
	Bank               string                 `json:"bank"`
	Client             string                 `json:"client"`
	OutstandingBalance string                 `json:"outstanding_balance"`
	Payments           []paymentuc.PaymentDTO `json:"payments"`
	User               string                 `json:"user"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
	DeletedAt          *time.Time             `json:"deleted_at,omitempty"`
}
