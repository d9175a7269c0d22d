package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePostcode(t *testing.T) {
	assert.Equal(t, "EX311AB", NormalizePostcode("ex31 1ab"))
	assert.Equal(t, "EX334QZ", NormalizePostcode(" EX33 4QZ "))
}

func TestPostcodeServed(t *testing.T) {
	served := []string{"EX31 1AB", "ex32 2cd", "EX33 4QZ", "EX34 9PL"}
	for _, pc := range served {
		assert.True(t, PostcodeServed(pc), "expected %q to be served", pc)
	}

	notServed := []string{"EX1 1AA", "EX30 1AA", "EX35 2BB", "SW1A 1AA", ""}
	for _, pc := range notServed {
		assert.False(t, PostcodeServed(pc), "expected %q not to be served", pc)
	}
}
