package validation

import (
	"fmt"
	"unicode"
)

// ValidatePassword sprawdza, czy hasło spełnia wymagania.
// Wymagania: co najmniej 8 znaków, wielka litera, mała litera i cyfra.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("hasło musi mieć co najmniej 8 znaków")
	}

	var (
		hasUpper  = false
		hasLower  = false
		hasNumber = false
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("hasło musi zawierać co najmniej jedną wielką literę")
	}
	if !hasLower {
		return fmt.Errorf("hasło musi zawierać co najmniej jedną małą literę")
	}
	if !hasNumber {
		return fmt.Errorf("hasło musi zawierać co najmniej jedną cyfrę")
	}

	return nil
}
