package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestLoanRepository_GetByLoanID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	seeded := seedLoan(t, db, "u1")

	got, err := repo.GetByLoanID(ctx, seeded.LoanID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != "u1" || !got.NominalValue.Equal(seeded.NominalValue) {
		t.Fatalf("got = %+v", got)
	}

	if _, err := repo.GetByLoanID(ctx, "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestLoanRepository_SoftDeleteHidesFromAliveLookups(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := seedLoan(t, db, "u1")
	if err := repo.SoftDelete(ctx, l, "admin"); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	if _, err := repo.GetByLoanID(ctx, l.LoanID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("alive lookup err = %v, want ErrRecordNotFound", err)
	}
	if _, err := repo.GetByLoanIDForUpdate(ctx, l.LoanID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("locked lookup err = %v, want ErrRecordNotFound", err)
	}

	got, err := repo.GetByLoanIDAnyState(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("any-state lookup: %v", err)
	}
	if got.DeletedAt == nil || got.DeletedBy == nil || *got.DeletedBy != "admin" {
		t.Fatalf("markers not persisted: %+v", got)
	}
}

func TestLoanRepository_Restore(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := seedLoan(t, db, "u1")
	if err := repo.SoftDelete(ctx, l, "admin"); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if err := repo.Restore(ctx, l); err != nil {
		t.Fatalf("restore: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("get after restore: %v", err)
	}
	if got.DeletedAt != nil || got.DeletedBy != nil {
		t.Fatalf("markers not cleared: %+v", got)
	}
}

func TestLoanRepository_ListScoping(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l1 := seedLoan(t, db, "u1")
	seedLoan(t, db, "u1")
	seedLoan(t, db, "u2")
	// deleted rows still show up in listings
	if err := repo.SoftDelete(ctx, l1, "u1"); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	mine, err := repo.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list owner: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("owner list len = %d, want 2", len(mine))
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("full list len = %d, want 3", len(all))
	}
	// newest first
	if all[0].ID < all[1].ID || all[1].ID < all[2].ID {
		t.Fatalf("unexpected order: %d, %d, %d", all[0].ID, all[1].ID, all[2].ID)
	}
}

func TestLoanRepository_HardDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := seedLoan(t, db, "u1")
	if err := repo.HardDelete(ctx, l); err != nil {
		t.Fatalf("hard delete: %v", err)
	}
	if _, err := repo.GetByLoanIDAnyState(ctx, l.LoanID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}
