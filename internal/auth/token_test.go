package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()
	a := NewAuthenticator("test-secret", time.Hour)

	token, err := a.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := a.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()
	issuer := NewAuthenticator("secret-a", time.Hour)
	verifier := NewAuthenticator("secret-b", time.Hour)

	token, err := issuer.Issue(1)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()
	a := &Authenticator{secret: []byte("test-secret"), ttl: -time.Hour}

	token, err := a.Issue(1)
	require.NoError(t, err)

	_, err = a.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()
	a := NewAuthenticator("test-secret", time.Hour)

	_, err := a.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = a.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueRequiresSecret(t *testing.T) {
	t.Parallel()
	a := NewAuthenticator("", time.Hour)

	_, err := a.Issue(1)
	assert.Error(t, err)
}

func TestNewAuthenticatorDefaultTTL(t *testing.T) {
	t.Parallel()
	a := NewAuthenticator("s", 0)
	assert.Equal(t, DefaultTokenTTL, a.TTL())
}

func TestExtractToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{"Bearer Header", "Bearer abc123", "", "abc123"},
		{"Cookie Only", "", "cookie-token", "cookie-token"},
		{"Header Wins Over Cookie", "Bearer from-header", "from-cookie", "from-header"},
		{"Malformed Header Falls Back To Cookie", "Token abc", "from-cookie", "from-cookie"},
		{"Neither", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			var got string
			app.Get("/", func(c *fiber.Ctx) error {
				got = ExtractToken(c)
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.want, got)
		})
	}
}
