package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/workspace_backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	now := time.Now()
	token, err := utils.GenerateJWT("user-1", "secret", now, now.Add(time.Minute), "issuer")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "secret", "issuer", nil)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.WithinDuration(t, now.Add(time.Minute), claims.ExpiresAt.Time, time.Second)
}

func TestParseJWT_Failures(t *testing.T) {
	now := time.Now()
	valid, err := utils.GenerateJWT("user-1", "secret", now, now.Add(time.Minute), "issuer")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(valid, "other-secret", "issuer", nil)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = utils.ParseAndValidateJWT(valid, "secret", "someone-else", nil)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	later := func() time.Time { return now.Add(2 * time.Minute) }
	_, err = utils.ParseAndValidateJWT(valid, "secret", "issuer", later)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = utils.ParseAndValidateJWT("not-a-token", "secret", "issuer", nil)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestParseJWT_RejectsMissingUserID(t *testing.T) {
	now := time.Now()
	token, err := utils.GenerateJWT("", "secret", now, now.Add(time.Minute), "")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret", "", nil)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidClaims)
}

func TestParseJWT_RejectsNoneAlgorithm(t *testing.T) {
	claims := utils.UserClaims{UserID: "user-1", RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret", "", nil)
	assert.Error(t, err)
}
