package services

import (
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain digits", raw: "998901234567", want: "998901234567"},
		{name: "plus prefix", raw: "+998901234567", want: "+998901234567"},
		{name: "spaces and dashes stripped", raw: " +998 90-123-45-67 ", want: "+998901234567"},
		{name: "too short", raw: "12345", want: ""},
		{name: "letters rejected", raw: "+99890abc4567", want: ""},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.raw); got != tt.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidateSignUpInput(t *testing.T) {
	valid := SignUpInput{
		FirstName: " Aziz ",
		LastName:  "Karimov",
		Phone:     "+998 90 123 45 67",
		Password:  "secret123",
		Role:      "operator",
	}

	input, err := ValidateSignUpInput(valid)
	if err != nil {
		t.Fatalf("ValidateSignUpInput() error = %v", err)
	}
	if input.FirstName != "Aziz" || input.Phone != "+998901234567" {
		t.Fatalf("normalized input = %+v", input)
	}

	missing := valid
	missing.Password = "   "
	if _, err := ValidateSignUpInput(missing); !errors.Is(err, ErrAuthInputInvalid) {
		t.Fatalf("expected ErrAuthInputInvalid, got %v", err)
	}

	badPhone := valid
	badPhone.Phone = "not-a-phone"
	if _, err := ValidateSignUpInput(badPhone); !errors.Is(err, ErrAuthInputInvalid) {
		t.Fatalf("expected ErrAuthInputInvalid, got %v", err)
	}

	badRole := valid
	badRole.Role = "admin"
	if _, err := ValidateSignUpInput(badRole); !errors.Is(err, ErrAuthRoleInvalid) {
		t.Fatalf("expected ErrAuthRoleInvalid, got %v", err)
	}
}

func TestNormalizeLoginInput(t *testing.T) {
	phone, password, err := NormalizeLoginInput(" +998901234567 ", " secret ")
	if err != nil {
		t.Fatalf("NormalizeLoginInput() error = %v", err)
	}
	if phone != "+998901234567" || password != "secret" {
		t.Fatalf("normalized = %q/%q", phone, password)
	}

	if _, _, err := NormalizeLoginInput("", "secret"); !errors.Is(err, ErrAuthInputInvalid) {
		t.Fatalf("expected ErrAuthInputInvalid, got %v", err)
	}
}
