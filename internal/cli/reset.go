package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/sambrend/nomer/internal/db"
	"github.com/sambrend/nomer/internal/security"
	"github.com/sambrend/nomer/internal/services"
	"github.com/sambrend/nomer/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// RunResetPasswordCommand issues a temporary password for the account
// registered under the given phone number.
func RunResetPasswordCommand(dbPath string, phone string, location *time.Location) error {
	normalizedPhone := services.NormalizePhone(phone)
	if normalizedPhone == "" {
		return errors.New("phone is required")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	domainStore, err := store.Open(db.NewStateBlobRepository(database), location)
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}

	user, found := domainStore.UserByPhone(normalizedPhone)
	if !found {
		return fmt.Errorf("user %s not found", normalizedPhone)
	}

	temporaryPassword, err := security.TemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	hash := string(passwordHash)
	if err := domainStore.UpsertUserFields(user.ID, store.UserPatch{PasswordHash: &hash}); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("Password reset successful")
	fmt.Printf("Temporary password: %s\n", temporaryPassword)

	return nil
}
