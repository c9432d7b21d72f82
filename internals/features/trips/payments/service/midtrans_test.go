package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	InitMidtrans("SB-Mid-server-testkey")

	orderID := "woam-123"
	statusCode := "200"
	grossAmount := "1500.00"
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + "SB-Mid-server-testkey"))
	good := hex.EncodeToString(sum[:])

	assert.True(t, VerifySignature(orderID, statusCode, grossAmount, good))
	assert.True(t, VerifySignature(orderID, statusCode, grossAmount, "  "+good+"  "), "whitespace is tolerated")
	assert.False(t, VerifySignature(orderID, statusCode, grossAmount, "deadbeef"))
	assert.False(t, VerifySignature("woam-456", statusCode, grossAmount, good), "signature is bound to the order")
}

func TestVerifySignatureWithoutServerKey(t *testing.T) {
	InitMidtrans("")
	assert.False(t, VerifySignature("any", "200", "100.00", "sig"))
}

func TestIsSettled(t *testing.T) {
	assert.True(t, IsSettled("settlement", ""))
	assert.True(t, IsSettled("capture", "accept"))
	assert.True(t, IsSettled("capture", ""))
	assert.False(t, IsSettled("capture", "challenge"))
	assert.False(t, IsSettled("pending", ""))
	assert.False(t, IsSettled("deny", ""))
}

func TestIsTerminalFailure(t *testing.T) {
	for _, status := range []string{"deny", "cancel", "expire", "failure"} {
		assert.True(t, IsTerminalFailure(status), status)
	}
	assert.False(t, IsTerminalFailure("pending"))
	assert.False(t, IsTerminalFailure("settlement"))
}

func TestSplitName(t *testing.T) {
	first, last := splitName("Sarah Jane Miller")
	assert.Equal(t, "Sarah", first)
	assert.Equal(t, "Jane Miller", last)

	first, last = splitName("Cher")
	assert.Equal(t, "Cher", first)
	assert.Equal(t, "", last)

	first, last = splitName("   ")
	assert.Equal(t, "Guest", first)
	assert.Equal(t, "", last)
}
