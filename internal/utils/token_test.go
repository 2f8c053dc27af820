package utils_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-api/internal/utils"
)

const testSecret = "test-secret"

func TestGenerateToken_RoundTrip(t *testing.T) {
	token, err := utils.GenerateToken(42, testSecret, utils.TokenTTL)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := utils.VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestGenerateToken_NoSecret(t *testing.T) {
	_, err := utils.GenerateToken(1, "", utils.TokenTTL)
	assert.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	token, err := utils.GenerateToken(7, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = utils.VerifyToken(token, testSecret)
	assert.Error(t, err)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := utils.GenerateToken(7, testSecret, utils.TokenTTL)
	require.NoError(t, err)

	_, err = utils.VerifyToken(token, "other-secret")
	assert.Error(t, err)
}

func TestVerifyToken_Tampered(t *testing.T) {
	token, err := utils.GenerateToken(7, testSecret, utils.TokenTTL)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = utils.VerifyToken(tampered, testSecret)
	assert.Error(t, err)
}

func TestVerifyToken_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "two segments", token: "abc.def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := utils.VerifyToken(tt.token, testSecret)
			assert.Error(t, err)
		})
	}
}
