package cli

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sambrend/nomer/internal/db"
	"github.com/sambrend/nomer/internal/models"
	"github.com/sambrend/nomer/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func TestRunResetPasswordCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nomer.db")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	seeded, err := store.Open(db.NewStateBlobRepository(database), time.UTC)
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}

	oldHash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	user := models.User{
		ID:           "u1",
		FirstName:    "Aziz",
		Phone:        "+998901234567",
		PasswordHash: string(oldHash),
		Role:         models.RoleOperator,
		IsApproved:   true,
	}
	if err := seeded.AddUser(user); err != nil {
		t.Fatalf("AddUser() error = %v", err)
	}

	if err := RunResetPasswordCommand(dbPath, "+998 90 123 45 67", time.UTC); err != nil {
		t.Fatalf("RunResetPasswordCommand() error = %v", err)
	}

	reopened, err := store.Open(db.NewStateBlobRepository(database), time.UTC)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	updated, found := reopened.UserByPhone("+998901234567")
	if !found {
		t.Fatal("user lost after reset")
	}
	if updated.PasswordHash == string(oldHash) {
		t.Fatal("password hash unchanged after reset")
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("old-password")) == nil {
		t.Fatal("old password still accepted after reset")
	}
}

func TestRunResetPasswordCommandValidation(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nomer.db")

	if err := RunResetPasswordCommand(dbPath, "   ", time.UTC); err == nil {
		t.Fatal("expected error for blank phone")
	}
	if err := RunResetPasswordCommand(dbPath, "+998901234567", time.UTC); err == nil {
		t.Fatal("expected error for unknown phone")
	}
}
