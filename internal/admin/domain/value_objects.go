package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// Email is a validated, trimmed address.
type Email string

// NewEmail validates and normalizes an owner email address.
func NewEmail(value string) (Email, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return "", fmt.Errorf("email is required")
	}
	if len(trimmed) > 254 {
		return "", fmt.Errorf("email must be at most 254 characters")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", fmt.Errorf("email address is not valid")
	}
	return Email(trimmed), nil
}

func (e Email) String() string { return string(e) }

// RestaurantName is a validated display name.
type RestaurantName string

// NewRestaurantName validates a restaurant display name.
func NewRestaurantName(value string) (RestaurantName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("restaurant name is required")
	}
	if len([]rune(trimmed)) > 120 {
		return "", fmt.Errorf("restaurant name must be at most 120 characters")
	}
	return RestaurantName(trimmed), nil
}

func (n RestaurantName) String() string { return string(n) }

// OptionList is a deduplicated, trimmed list of question options.
type OptionList []string

// NewOptionList validates options for choice-type questions.
func NewOptionList(values []string) (OptionList, error) {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{})
	for _, raw := range values {
		value := strings.TrimSpace(raw)
		if value == "" {
			return nil, fmt.Errorf("options must not be blank")
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	if len(result) < 2 {
		return nil, fmt.Errorf("choice questions need at least two options")
	}
	return OptionList(result), nil
}

// Strings returns the option values as a plain slice.
func (l OptionList) Strings() []string {
	return append([]string{}, l...)
}
