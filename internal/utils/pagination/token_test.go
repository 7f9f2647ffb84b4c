package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Test case 1: Standard date/time values
	saleDate := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 3, 12, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(saleDate, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedSaleDate, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, saleDate, decodedSaleDate, "Sale date should match after decode")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")

	// Test case 2: Zero time values
	zeroTime := time.Time{}
	zeroToken := EncodeToken(zeroTime, zeroTime)
	decodedZeroDate, decodedZeroTime, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, zeroTime, decodedZeroDate, "Zero date should match after decode")
	assert.Equal(t, zeroTime, decodedZeroTime, "Zero time should match after decode")
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := DecodeToken("not-base64!!")
	assert.Error(t, err, "Invalid base64 should return an error")

	badToken := EncodeMultiFieldToken("only-one-field")
	_, _, err = DecodeToken(badToken)
	assert.Error(t, err, "Token without a separator should return an error")
}

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	createdAt := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC).Format(time.RFC3339Nano)
	movementID := "3f1a9c2e-0000-4000-8000-000000000001"

	token := EncodeMultiFieldToken(createdAt, movementID)
	fields, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Len(t, fields, 2)
	assert.Equal(t, createdAt, fields[0])
	assert.Equal(t, movementID, fields[1])
}
