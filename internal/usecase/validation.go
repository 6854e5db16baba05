package usecase

import "unicode"

const maxCityNameLength = 120

// ValidateCityName checks that a city name is non-empty, fits the column
// and contains no control characters.
func ValidateCityName(name string) bool {
	if name == "" || len(name) > maxCityNameLength {
		return false
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}

	return true
}
