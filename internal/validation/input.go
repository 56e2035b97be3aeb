package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Stałe walidacji
const (
	MinUsernameLength = 3
	MaxUsernameLength = 30

	MinDisplayNameLength = 2
	MaxDisplayNameLength = 100

	MinEventTitleLength       = 3
	MaxEventTitleLength       = 200
	MinEventDescriptionLength = 10
	MaxEventDescriptionLength = 5000

	MinOptionTitleLength       = 1
	MaxOptionTitleLength       = 200
	MaxOptionDescriptionLength = 2000
	MaxBenefitLength           = 200
	MaxBenefitsCount           = 20

	MaxCollaborationMessageLength = 2000

	MaxBioLength      = 1000
	MaxLocationLength = 100

	MinPrice = 0.0
	MaxPrice = 100000000.0

	MinMessageLength = 1
	MaxMessageLength = 5000
)

// ValidateLength sprawdza długość tekstu.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s musi mieć co najmniej %d znaków", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s może mieć najwyżej %d znaków", fieldName, max)
	}
	return nil
}

// ValidateEmail sprawdza format adresu email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email jest wymagany")
	}

	email = strings.TrimSpace(email)
	email = strings.ToLower(email)

	if !strings.Contains(email, "@") {
		return fmt.Errorf("email musi zawierać znak @")
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("nieprawidłowy format email")
	}

	localPart := parts[0]
	domainPart := parts[1]

	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("część lokalna email musi mieć od 1 do 64 znaków")
	}

	if len(domainPart) == 0 || len(domainPart) > 255 {
		return fmt.Errorf("część domenowa email musi mieć od 1 do 255 znaków")
	}

	if !strings.Contains(domainPart, ".") {
		return fmt.Errorf("część domenowa email musi zawierać kropkę")
	}

	emailRegex := regexp.MustCompile(`^[a-z0-9._+-]+$`)
	if !emailRegex.MatchString(localPart) {
		return fmt.Errorf("część lokalna email zawiera niedozwolone znaki")
	}

	domainRegex := regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
	if !domainRegex.MatchString(domainPart) {
		return fmt.Errorf("część domenowa email ma nieprawidłowy format")
	}

	return nil
}

// ValidateNonEmpty sprawdza, czy tekst nie jest pusty.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s nie może być puste", fieldName)
	}
	return nil
}

// ValidateUsername sprawdza nazwę użytkownika.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("nazwa użytkownika jest wymagana")
	}

	username = strings.TrimSpace(username)

	if err := ValidateLength("nazwa użytkownika", username, MinUsernameLength, MaxUsernameLength); err != nil {
		return err
	}

	usernameRegex := regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("nazwa użytkownika może zawierać tylko litery, cyfry i podkreślenie")
	}

	if len(username) > 0 && unicode.IsDigit(rune(username[0])) {
		return fmt.Errorf("nazwa użytkownika nie może zaczynać się od cyfry")
	}

	return nil
}

// ValidateDisplayName sprawdza nazwę wyświetlaną.
func ValidateDisplayName(displayName string) error {
	if displayName == "" {
		return fmt.Errorf("nazwa wyświetlana jest wymagana")
	}

	displayName = strings.TrimSpace(displayName)

	return ValidateLength("nazwa wyświetlana", displayName, MinDisplayNameLength, MaxDisplayNameLength)
}

// ValidateEventTitle sprawdza tytuł wydarzenia.
func ValidateEventTitle(title string) error {
	if title == "" {
		return fmt.Errorf("tytuł wydarzenia jest wymagany")
	}

	title = strings.TrimSpace(title)

	return ValidateLength("tytuł wydarzenia", title, MinEventTitleLength, MaxEventTitleLength)
}

// ValidateEventDescription sprawdza opis wydarzenia.
func ValidateEventDescription(description string) error {
	if description == "" {
		return fmt.Errorf("opis wydarzenia jest wymagany")
	}

	description = strings.TrimSpace(description)

	return ValidateLength("opis wydarzenia", description, MinEventDescriptionLength, MaxEventDescriptionLength)
}

// ValidateCollaborationMessage sprawdza wiadomość dołączoną do współpracy.
func ValidateCollaborationMessage(message string) error {
	return ValidateLength("wiadomość", message, 0, MaxCollaborationMessageLength)
}

// ValidatePrice sprawdza widełki cenowe pakietu.
func ValidatePrice(price float64, priceTo *float64) error {
	if price < MinPrice {
		return fmt.Errorf("cena nie może być ujemna")
	}
	if price > MaxPrice {
		return fmt.Errorf("cena nie może przekraczać %.0f", MaxPrice)
	}

	if priceTo != nil {
		if *priceTo < MinPrice {
			return fmt.Errorf("cena maksymalna nie może być ujemna")
		}
		if *priceTo > MaxPrice {
			return fmt.Errorf("cena maksymalna nie może przekraczać %.0f", MaxPrice)
		}
		if price > *priceTo {
			return fmt.Errorf("cena minimalna nie może być większa od maksymalnej")
		}
	}

	return nil
}

// ValidateBenefits sprawdza listę świadczeń pakietu.
func ValidateBenefits(benefits []string) error {
	if len(benefits) > MaxBenefitsCount {
		return fmt.Errorf("liczba świadczeń nie może przekraczać %d", MaxBenefitsCount)
	}

	for _, benefit := range benefits {
		benefit = strings.TrimSpace(benefit)
		if benefit == "" {
			return fmt.Errorf("świadczenie nie może być puste")
		}
		if utf8.RuneCountInString(benefit) > MaxBenefitLength {
			return fmt.Errorf("świadczenie nie może być dłuższe niż %d znaków", MaxBenefitLength)
		}
	}

	return nil
}

// ValidateChatMessage sprawdza treść wiadomości czatu.
func ValidateChatMessage(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("treść wiadomości jest wymagana")
	}

	return ValidateLength("treść wiadomości", content, MinMessageLength, MaxMessageLength)
}
