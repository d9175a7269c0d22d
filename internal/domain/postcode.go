package domain

import "strings"

// ServedPostcodeAreas lists the North Devon postcode districts we cover.
var ServedPostcodeAreas = []string{"EX31", "EX32", "EX33", "EX34"}

// NormalizePostcode uppercases and strips spaces for comparison.
func NormalizePostcode(postcode string) string {
	return strings.ToUpper(strings.ReplaceAll(postcode, " ", ""))
}

// PostcodeServed returns true if the postcode falls in a served district.
func PostcodeServed(postcode string) bool {
	normalized := NormalizePostcode(postcode)
	for _, area := range ServedPostcodeAreas {
		if strings.HasPrefix(normalized, area) {
			return true
		}
	}
	return false
}
