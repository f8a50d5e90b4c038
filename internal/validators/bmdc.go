package validators

import "strings"

// IsBMDCNumberValid accepts Bangladesh Medical and Dental Council
// registration numbers: an optional "A-" dental prefix followed by
// 4 to 6 digits. Only the shape is checked; verification against the
// council registry is a manual step.
func IsBMDCNumberValid(number string) bool {
	n := strings.TrimSpace(strings.ToUpper(number))
	n = strings.TrimPrefix(n, "A-")

	if len(n) < 4 || len(n) > 6 {
		return false
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
