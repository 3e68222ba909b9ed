package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Field keys shared by the public checkout form, the operator's manual
// reservation form and guest registration. Each rule is usable on its own so
// forms can validate a single field on blur and the whole set on submit.
const (
	FieldFullName        = "fullName"
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldPassword        = "password"
	FieldCardholderName  = "cardholderName"
	FieldCardNumber      = "cardNumber"
	FieldExpiry          = "expiry"
	FieldCVC             = "cvc"
	FieldSpecialRequests = "specialRequests"
	FieldGuestNotes      = "guestNotes"
)

const (
	maxSpecialRequestsLen = 500
	maxGuestNotesLen      = 1000
	maxExpiryYearsAhead   = 20
)

var (
	nameRegex    = regexp.MustCompile(`^[a-zA-Z\s'\-]+$`)
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex   = regexp.MustCompile(`^[\d\s+\-()]{6,20}$`)
	digitsRegex  = regexp.MustCompile(`^\d+$`)
	expiryRegex  = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvcRegex     = regexp.MustCompile(`^\d{3,4}$`)
)

// Field validates a single raw value against the rule for the given field key.
// An empty string means the value is acceptable. Unknown keys pass so callers
// can mix validated and free-form fields in one form map.
func Field(key, value string) string {
	return fieldAt(key, value, time.Now())
}

// FieldAt is Field with an injectable reference time for the expiry rule.
func FieldAt(key, value string, now time.Time) string {
	return fieldAt(key, value, now)
}

func fieldAt(key, value string, now time.Time) string {
	trimmed := strings.TrimSpace(value)

	switch key {
	case FieldFullName, FieldFirstName, FieldLastName:
		if trimmed == "" {
			return "Name is required"
		}
		if len(trimmed) < 2 {
			return "Name must be at least 2 characters"
		}
		if !nameRegex.MatchString(trimmed) {
			return "Name can only contain letters, spaces, hyphens and apostrophes"
		}
		return ""

	case FieldEmail:
		if trimmed == "" {
			return "Email address is required"
		}
		if !emailRegex.MatchString(trimmed) {
			return "Enter a valid email address"
		}
		return ""

	case FieldPhone:
		if trimmed == "" {
			return "Phone number is required"
		}
		if !phoneRegex.MatchString(trimmed) {
			return "Enter a valid phone number"
		}
		return ""

	case FieldPassword:
		if trimmed == "" {
			return "Password is required"
		}
		if len(value) < 6 {
			return "Minimum 6 characters"
		}
		return ""

	case FieldCardholderName:
		if trimmed == "" {
			return "Cardholder name is required"
		}
		if len(trimmed) < 2 {
			return "Enter full name as on card"
		}
		return ""

	case FieldCardNumber:
		if trimmed == "" {
			return "Card number is required"
		}
		cleaned := strings.ReplaceAll(trimmed, " ", "")
		if !digitsRegex.MatchString(cleaned) || len(cleaned) < 13 || len(cleaned) > 19 {
			return "Card number must be 13-19 digits"
		}
		if !LuhnValid(cleaned) {
			return "Invalid card number"
		}
		return ""

	case FieldExpiry:
		if trimmed == "" {
			return "Expiry date is required"
		}
		if !expiryRegex.MatchString(trimmed) {
			return "Format must be MM/YY"
		}
		parts := strings.SplitN(trimmed, "/", 2)
		month, _ := strconv.Atoi(parts[0])
		year, _ := strconv.Atoi(parts[1])
		if month < 1 || month > 12 {
			return "Invalid month"
		}
		currentYear := now.Year() % 100
		currentMonth := int(now.Month())
		if year < currentYear || (year == currentYear && month < currentMonth) {
			return "Card has expired"
		}
		if year > currentYear+maxExpiryYearsAhead {
			return "Invalid expiry year"
		}
		return ""

	case FieldCVC:
		if trimmed == "" {
			return "CVC is required"
		}
		if !cvcRegex.MatchString(trimmed) {
			return "CVC must be 3 or 4 digits"
		}
		return ""

	case FieldSpecialRequests:
		if len(trimmed) > maxSpecialRequestsLen {
			return fmt.Sprintf("Maximum %d characters", maxSpecialRequestsLen)
		}
		return ""

	case FieldGuestNotes:
		if len(trimmed) > maxGuestNotesLen {
			return fmt.Sprintf("Maximum %d characters", maxGuestNotesLen)
		}
		return ""

	default:
		return ""
	}
}

// Form validates every entry and returns only the keys that failed. An empty
// map means the form is acceptable.
func Form(fields map[string]string) map[string]string {
	return FormAt(fields, time.Now())
}

func FormAt(fields map[string]string, now time.Time) map[string]string {
	errors := make(map[string]string)
	for key, value := range fields {
		if msg := fieldAt(key, value, now); msg != "" {
			errors[key] = msg
		}
	}
	return errors
}

// LuhnValid reports whether the digit string passes the Luhn checksum:
// every second digit from the right is doubled, 9 is subtracted when the
// doubling exceeds 9, and the total must be a multiple of 10.
func LuhnValid(number string) bool {
	if number == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}
