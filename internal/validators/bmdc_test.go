package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBMDCNumberValid(t *testing.T) {
	valid := []string{"1234", "123456", "A-4521", "a-123456", " 98765 "}
	for _, n := range valid {
		assert.True(t, IsBMDCNumberValid(n), n)
	}

	invalid := []string{"", "123", "1234567", "12AB4", "B-1234", "A-"}
	for _, n := range invalid {
		assert.False(t, IsBMDCNumberValid(n), n)
	}
}
