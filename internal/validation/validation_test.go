package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCredentials(t *testing.T) {
	assert.Nil(t, ValidateCredentials("a@x.com", "password123"))
}

func TestValidateCredentials_CollectsAllFieldErrors(t *testing.T) {
	verr := ValidateCredentials("", "")
	require.NotNil(t, verr)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "email", verr.Fields[0].Field)
	assert.Equal(t, "password", verr.Fields[1].Field)
	assert.Contains(t, verr.Error(), "email")
	assert.Contains(t, verr.Error(), "password")
}

func TestValidateCredentials_EmailFormat(t *testing.T) {
	for _, bad := range []string{"not-an-email", "a@", "@x.com", "a b@x.com"} {
		verr := ValidateCredentials(bad, "password123")
		require.NotNil(t, verr, "email %q should fail", bad)
		assert.Equal(t, "email", verr.Fields[0].Field)
	}
}

func TestValidateCredentials_PasswordLength(t *testing.T) {
	verr := ValidateCredentials("a@x.com", "short")
	require.NotNil(t, verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "password", verr.Fields[0].Field)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.Com "))
}
