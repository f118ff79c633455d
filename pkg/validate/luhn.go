package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a non-empty digit string with a valid Luhn check
// digit, as printed on loyalty cards.
func IsLuhn(s string) bool {
	if s == "" {
		return false
	}
	return goluhn.Validate(s) == nil
}
