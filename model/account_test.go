// model/account_test.go
package model

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountStatus_IsValid(t *testing.T) {
	assert.True(t, StatusActive.IsValid())
	assert.True(t, StatusInactive.IsValid())
	assert.True(t, StatusSuspended.IsValid())
	assert.True(t, StatusClosed.IsValid())
	assert.False(t, AccountStatus("FROZEN").IsValid())
	assert.False(t, AccountStatus("").IsValid())
}

func TestNewAccountID(t *testing.T) {
	pattern := regexp.MustCompile(`^ACC[A-Z0-9]{12}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewAccountID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "generated duplicate id %s", id)
		seen[id] = true
	}
}
