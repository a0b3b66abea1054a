package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loanbook/internal/domain/authz"
	loandomain "loanbook/internal/domain/loan"
	domain "loanbook/internal/domain/payment"
	"loanbook/internal/domain/uow"
	"loanbook/internal/testutil/loanmock"
	"loanbook/internal/testutil/paymentmock"
	"loanbook/internal/testutil/uowmock"
)

const (
	loanID    = "aaaaaaaa-0000-4000-8000-000000000001"
	paymentID = "bbbbbbbb-0000-4000-8000-000000000002"
)

var (
	owner = authz.Principal{UserID: "u1"}
	other = authz.Principal{UserID: "u2"}
	admin = authz.Principal{UserID: "adm", Privileged: true}
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return v
}

// loan requested today: zero months elapsed, balance == nominal - paid
func freshLoan(ownerID string) *loandomain.Loan {
	n := time.Now().UTC()
	return &loandomain.Loan{
		ID:           1,
		LoanID:       loanID,
		UserID:       ownerID,
		NominalValue: decimal.RequireFromString("1000.00"),
		InterestRate: decimal.RequireFromString("5.00"),
		RequestDate:  time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC),
	}
}

func lockedOn(l *loandomain.Loan) func(string) (*loandomain.Loan, error) {
	return func(id string) (*loandomain.Loan, error) {
		if l == nil || id != l.LoanID {
			return nil, gorm.ErrRecordNotFound
		}
		return l, nil
	}
}

func newCreateUsecase(t *testing.T, l *loandomain.Loan, payments *paymentmock.Repo) *Usecase {
	t.Helper()
	if payments == nil {
		payments = &paymentmock.Repo{}
	}
	loans := &loanmock.Repo{}
	tx := uowmock.Passthrough(uow.Repos{Loans: loans, Payments: payments}, lockedOn(l))
	return NewUsecase(loans, payments, tx)
}

// ----- Create -----

func TestCreate_RejectsNonPositiveAmounts(t *testing.T) {
	payments := &paymentmock.Repo{
		CreateFn: func(ctx context.Context, p *domain.Payment) error {
			t.Fatal("Create must not be called for invalid amounts")
			return nil
		},
	}
	uc := newCreateUsecase(t, freshLoan("u1"), payments)

	for _, amount := range []string{"0.00", "-100.00"} {
		_, err := uc.Create(context.Background(), owner, CreatePaymentInput{Loan: loanID, Amount: dec(t, amount)})
		if err != domain.ErrInvalidAmount {
			t.Fatalf("amount %s: err = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestCreate_RejectsAmountOverBalance(t *testing.T) {
	payments := &paymentmock.Repo{
		ListAliveByLoanIDFn: func(ctx context.Context, id string) ([]domain.Payment, error) {
			return []domain.Payment{{Amount: dec(t, "400.00")}}, nil
		},
		CreateFn: func(ctx context.Context, p *domain.Payment) error {
			t.Fatal("Create must not be called when the ceiling is exceeded")
			return nil
		},
	}
	uc := newCreateUsecase(t, freshLoan("u1"), payments)

	// balance is 600.00; one cent over must be rejected
	_, err := uc.Create(context.Background(), owner, CreatePaymentInput{Loan: loanID, Amount: dec(t, "600.01")})
	if err != domain.ErrInvalidAmount {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
}

func TestCreate_AcceptsExactBalance(t *testing.T) {
	var created *domain.Payment
	payments := &paymentmock.Repo{
		ListAliveByLoanIDFn: func(ctx context.Context, id string) ([]domain.Payment, error) {
			return []domain.Payment{{Amount: dec(t, "400.00")}}, nil
		},
		CreateFn: func(ctx context.Context, p *domain.Payment) error { created = p; return nil },
	}
	uc := newCreateUsecase(t, freshLoan("u1"), payments)

	dto, err := uc.Create(context.Background(), owner, CreatePaymentInput{Loan: loanID, Amount: dec(t, "600.00")})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if created == nil || !created.Amount.Equal(dec(t, "600.00")) {
		t.Fatalf("persisted payment wrong: %+v", created)
	}
	if len(created.PaymentID) != 36 {
		t.Fatalf("public id length = %d, want 36", len(created.PaymentID))
	}
	if created.PaymentDate.IsZero() {
		t.Fatal("payment date must be system-assigned")
	}
	if dto.Amount != "600.00" || dto.Loan != loanID {
		t.Fatalf("dto wrong: %+v", dto)
	}
}

func TestCreate_UnknownLoanIsNotFound(t *testing.T) {
	uc := newCreateUsecase(t, nil, nil)

	_, err := uc.Create(context.Background(), owner, CreatePaymentInput{Loan: loanID, Amount: dec(t, "10.00")})
	if err != loandomain.ErrNotFound {
		t.Fatalf("err = %v, want loan ErrNotFound", err)
	}
}

func TestCreate_ForbiddenOnForeignLoan(t *testing.T) {
	payments := &paymentmock.Repo{
		CreateFn: func(ctx context.Context, p *domain.Payment) error {
			t.Fatal("Create must not be called on denial")
			return nil
		},
	}
	uc := newCreateUsecase(t, freshLoan("u1"), payments)

	_, err := uc.Create(context.Background(), other, CreatePaymentInput{Loan: loanID, Amount: dec(t, "10.00")})
	if err != authz.ErrForbidden {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestCreate_PrivilegedMayPayForeignLoan(t *testing.T) {
	uc := newCreateUsecase(t, freshLoan("u1"), &paymentmock.Repo{})

	if _, err := uc.Create(context.Background(), admin, CreatePaymentInput{Loan: loanID, Amount: dec(t, "10.00")}); err != nil {
		t.Fatalf("privileged Create err: %v", err)
	}
}

// ----- Get / List / Delete -----

func alivePayment() *domain.Payment {
	return &domain.Payment{
		ID:          7,
		PaymentID:   paymentID,
		LoanID:      loanID,
		Amount:      decimal.RequireFromString("25.00"),
		PaymentDate: time.Now().UTC(),
	}
}

func transitiveUsecase(t *testing.T, loanOwner string, payments *paymentmock.Repo) *Usecase {
	t.Helper()
	loans := &loanmock.Repo{
		GetByLoanIDAnyStateFn: func(ctx context.Context, id string) (*loandomain.Loan, error) {
			return freshLoan(loanOwner), nil
		},
	}
	return NewUsecase(loans, payments, uowmock.New())
}

func TestGet_OwnershipIsTransitive(t *testing.T) {
	payments := &paymentmock.Repo{
		GetByPaymentIDFn: func(ctx context.Context, id string) (*domain.Payment, error) {
			return alivePayment(), nil
		},
	}
	uc := transitiveUsecase(t, "u1", payments)

	if _, err := uc.Get(context.Background(), other, paymentID); err != authz.ErrForbidden {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	dto, err := uc.Get(context.Background(), owner, paymentID)
	if err != nil {
		t.Fatalf("owner Get err: %v", err)
	}
	if dto.ID != paymentID || dto.Amount != "25.00" {
		t.Fatalf("dto wrong: %+v", dto)
	}
}

func TestGet_UnknownPaymentIsNotFound(t *testing.T) {
	payments := &paymentmock.Repo{
		GetByPaymentIDFn: func(ctx context.Context, id string) (*domain.Payment, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := transitiveUsecase(t, "u1", payments)

	if _, err := uc.Get(context.Background(), owner, paymentID); err != domain.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestList_ScopesToOwnerUnlessPrivileged(t *testing.T) {
	var askedOwner string
	payments := &paymentmock.Repo{
		ListFn: func(ctx context.Context, ownerID string) ([]domain.Payment, error) {
			askedOwner = ownerID
			return []domain.Payment{*alivePayment()}, nil
		},
	}
	uc := transitiveUsecase(t, "u1", payments)

	if _, err := uc.List(context.Background(), owner); err != nil {
		t.Fatalf("List err: %v", err)
	}
	if askedOwner != "u1" {
		t.Fatalf("scope = %q, want u1", askedOwner)
	}
	if _, err := uc.List(context.Background(), admin); err != nil {
		t.Fatalf("List err: %v", err)
	}
	if askedOwner != "" {
		t.Fatalf("privileged scope = %q, want empty", askedOwner)
	}
}

func TestDelete_SoftDeleteViaParentOwnership(t *testing.T) {
	p := alivePayment()
	var deletedBy string
	payments := &paymentmock.Repo{
		GetByPaymentIDFn: func(ctx context.Context, id string) (*domain.Payment, error) { return p, nil },
		SoftDeleteFn: func(ctx context.Context, got *domain.Payment, by string) error {
			deletedBy = by
			got.MarkDeleted(by, time.Now().UTC())
			return nil
		},
	}
	uc := transitiveUsecase(t, "u1", payments)

	if err := uc.Delete(context.Background(), other, paymentID); err != authz.ErrForbidden {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if !p.Alive() {
		t.Fatal("payment must stay alive after denied delete")
	}
	if err := uc.Delete(context.Background(), owner, paymentID); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if p.Alive() || deletedBy != "u1" {
		t.Fatalf("soft delete not recorded, deletedBy=%q", deletedBy)
	}
}
