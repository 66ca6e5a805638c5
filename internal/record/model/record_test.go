package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errors2 "github.com/wso2/record-reconciliation-service/internal/system/errors"
)

func TestNormalizeEmail_LowercasesAndTrims(t *testing.T) {
	normalized, err := NormalizeEmail("  Anna.Schmidt@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "anna.schmidt@example.com", normalized)
}

func TestNormalizeEmail_AlreadyNormalized(t *testing.T) {
	normalized, err := NormalizeEmail("max@firma.de")
	require.NoError(t, err)
	assert.Equal(t, "max@firma.de", normalized)
}

func TestNormalizeEmail_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"not-an-email",
		"missing@tld",
		"two words@example.com",
		"@example.com",
		"user@.com",
	}
	for _, email := range invalid {
		_, err := NormalizeEmail(email)
		require.Error(t, err, "expected %q to be rejected", email)

		var clientErr *errors2.ClientError
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, errors2.INVALID_EMAIL.Code, clientErr.Code)
		assert.Equal(t, 400, clientErr.StatusCode)
	}
}

func TestNewRecord_NormalizesEmail(t *testing.T) {
	record, err := NewRecord("42", " Max@Firma.DE ", "Max Mustermann", "Hauptstr. 1",
		nil, nil, nil, time.Now(), SourceA)
	require.NoError(t, err)
	assert.Equal(t, "max@firma.de", record.Email)
	assert.Equal(t, SourceA, record.Source)
	assert.Nil(t, record.Phone)
}

func TestNewRecord_RejectsInvalidEmail(t *testing.T) {
	_, err := NewRecord("42", "broken", "Max Mustermann", "Hauptstr. 1",
		nil, nil, nil, time.Now(), SourceB)
	assert.Error(t, err)
}
