package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPlausiblePhone(t *testing.T) {
	valid := []string{"+14155552671", "9876543210", "+91 98765 43210", "020-7946-0958"}
	for _, n := range valid {
		assert.True(t, IsPlausiblePhone(n), n)
	}

	invalid := []string{"", "abc", "12", "+1415555267112345678901"}
	for _, n := range invalid {
		assert.False(t, IsPlausiblePhone(n), n)
	}
}

func TestValidatePhoneNumberLocalOnly(t *testing.T) {
	ok, err := ValidatePhoneNumber(context.Background(), "+14155552671", nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ValidatePhoneNumber(context.Background(), "not-a-phone", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsValidEmailSyntax(t *testing.T) {
	assert.True(t, IsValidEmailSyntax("user@example.com"))
	assert.True(t, IsValidEmailSyntax("First Last <user@example.com>"))

	invalid := []string{"", "plainaddress", "@nouser.com", "user@"}
	for _, e := range invalid {
		assert.False(t, IsValidEmailSyntax(e), e)
	}
}
