package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_GenerateAndVerify(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	token, err := mgr.Generate("3f1f9a6e-9c7e-4a8c-b9d1-2f6f1f62a001")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "3f1f9a6e-9c7e-4a8c-b9d1-2f6f1f62a001", claims.Subject)

	exp, err := mgr.Expiry(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, err := mgr.Generate("user")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	mgr := NewJWTManager("test-secret", -time.Minute)

	token, err := mgr.Generate("user")
	require.NoError(t, err)

	_, err = mgr.Verify(token)
	assert.Error(t, err)
}

func TestExtractToken(t *testing.T) {
	t.Run("cookie wins over header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
		r.Header.Set("Authorization", "Bearer header-token")

		token, err := ExtractToken(r)
		require.NoError(t, err)
		assert.Equal(t, "cookie-token", token)
	})

	t.Run("falls back to bearer header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer header-token")

		token, err := ExtractToken(r)
		require.NoError(t, err)
		assert.Equal(t, "header-token", token)
	})

	t.Run("no token", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)

		_, err := ExtractToken(r)
		assert.Error(t, err)
	})

	t.Run("malformed header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Token abc")

		_, err := ExtractToken(r)
		assert.Error(t, err)
	})
}
