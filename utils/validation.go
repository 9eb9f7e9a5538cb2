// utils/validation.go
package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var mobileRegex = regexp.MustCompile(`^0[1-9]\d{9}$`)

// ValidateMobile checks for an 11-digit local mobile number
func ValidateMobile(mobile string) bool {
	if len(mobile) != 11 {
		return false
	}
	return mobileRegex.MatchString(mobile)
}

// ValidateLength trims a string field and enforces length bounds
func ValidateLength(value, field string, min, max int) (string, error) {
	processed := strings.TrimSpace(value)
	if len(processed) < min || len(processed) > max {
		return "", fmt.Errorf("%s must be between %d and %d characters", field, min, max)
	}
	return processed, nil
}
