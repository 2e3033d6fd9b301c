package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"regexp"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup
)

const defaultPhoneRegion = "US"

// NormalizeEmail lowercases the address, converts an internationalized domain
// to its ASCII form and validates the overall shape.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", errors.New("email is required")
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", fmt.Errorf("invalid email address: %s", raw)
	}

	domain, err := idnaProfile.ToASCII(email[at+1:])
	if err != nil {
		return "", fmt.Errorf("invalid email domain: %w", err)
	}
	email = email[:at+1] + domain

	if !emailPattern.MatchString(email) {
		return "", fmt.Errorf("invalid email address: %s", raw)
	}
	return email, nil
}

// NormalizePhone parses an optional phone number into E.164 form. Empty input
// is allowed and yields nil.
func NormalizePhone(raw, region string) (*string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if region == "" {
		region = defaultPhoneRegion
	}

	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return nil, fmt.Errorf("invalid phone number: %w", err)
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return nil, fmt.Errorf("invalid phone number: %s", raw)
	}

	formatted := phonenumbers.Format(number, phonenumbers.E164)
	return &formatted, nil
}
