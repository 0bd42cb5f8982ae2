package jwt

import (
	"testing"
	"time"

	"Food-Sustainability-Backend/domain"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestAuthenticate_RoundTrip(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateTokenUser(userID.String())
	require.NoError(t, err)

	identity, err := svc.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService("secret-a", time.Hour)
	require.NoError(t, err)
	verifier, err := NewJWTService("secret-b", time.Hour)
	require.NoError(t, err)

	token, err := issuer.GenerateTokenUser(uuid.NewString())
	require.NoError(t, err)

	_, err = verifier.Authenticate(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestAuthenticate_Expired(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)
	svc.(*jwtService).now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateTokenUser(uuid.NewString())
	require.NoError(t, err)

	_, err = svc.Authenticate(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestAuthenticate_RejectsNonUUIDSubject(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateTokenUser("not-a-uuid")
	require.NoError(t, err)

	_, err = svc.Authenticate(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestAuthenticate_RejectsNoneAlgorithm(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	unsigned := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwtlib.MapClaims{"user_id": uuid.NewString()})
	token, err := unsigned.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Authenticate(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
