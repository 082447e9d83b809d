package utils

import "regexp"

// Bangladeshi mobile numbers: 01XXXXXXXXX or +8801XXXXXXXXX, ten digits
// after the 0 / +880 prefix.
var phonePattern = regexp.MustCompile(`^(?:\+880|0)1\d{9}$`)

// ValidPhone reports whether s is an acceptable customer phone number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}
