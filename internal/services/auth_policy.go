package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/sambrend/nomer/internal/models"
)

var (
	ErrAuthInputInvalid = errors.New("auth input invalid")
	ErrAuthRoleInvalid  = errors.New("auth role invalid")
)

var phoneFormatRegex = regexp.MustCompile(`^\+?\d{7,15}$`)

// SignUpInput is the normalized registration form.
type SignUpInput struct {
	FirstName string
	LastName  string
	Phone     string
	Password  string
	Role      string
}

func NormalizePhone(raw string) string {
	phone := strings.TrimSpace(raw)
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	if !phoneFormatRegex.MatchString(phone) {
		return ""
	}
	return phone
}

// ValidateSignUpInput normalizes and checks a registration form. All
// fields are required; the phone must look like a dialable number and
// the role must be one of the known roles.
func ValidateSignUpInput(raw SignUpInput) (SignUpInput, error) {
	input := SignUpInput{
		FirstName: strings.TrimSpace(raw.FirstName),
		LastName:  strings.TrimSpace(raw.LastName),
		Phone:     NormalizePhone(raw.Phone),
		Password:  strings.TrimSpace(raw.Password),
		Role:      strings.TrimSpace(raw.Role),
	}
	if input.FirstName == "" || input.LastName == "" || input.Phone == "" || input.Password == "" {
		return SignUpInput{}, ErrAuthInputInvalid
	}
	if !models.ValidRole(input.Role) {
		return SignUpInput{}, ErrAuthRoleInvalid
	}
	return input, nil
}

// NormalizeLoginInput trims the credentials and rejects empty ones.
func NormalizeLoginInput(phoneRaw string, passwordRaw string) (string, string, error) {
	phone := NormalizePhone(phoneRaw)
	password := strings.TrimSpace(passwordRaw)
	if phone == "" || password == "" {
		return "", "", ErrAuthInputInvalid
	}
	return phone, password, nil
}
