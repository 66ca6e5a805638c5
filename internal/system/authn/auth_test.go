package authn

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/record-reconciliation-service/internal/system/config"
	"github.com/wso2/record-reconciliation-service/internal/system/log"
)

const testSecret = "test-secret-key"
const testAudience = "record-reconciliation-service"

func TestMain(m *testing.M) {
	if err := log.Init("error"); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func enabledAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		Enabled:   true,
		JWTSecret: testSecret,
		Audience:  testAudience,
	}
}

func signedToken(t *testing.T, secret, audience string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "test-client",
		"aud": audience,
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateToken_Valid(t *testing.T) {
	token := signedToken(t, testSecret, testAudience, time.Now().Add(time.Hour))
	assert.NoError(t, ValidateToken(token, enabledAuthConfig()))
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token := signedToken(t, "some-other-secret", testAudience, time.Now().Add(time.Hour))
	assert.Error(t, ValidateToken(token, enabledAuthConfig()))
}

func TestValidateToken_WrongAudience(t *testing.T) {
	token := signedToken(t, testSecret, "someone-else", time.Now().Add(time.Hour))
	assert.Error(t, ValidateToken(token, enabledAuthConfig()))
}

func TestValidateToken_Expired(t *testing.T) {
	token := signedToken(t, testSecret, testAudience, time.Now().Add(-time.Hour))
	assert.Error(t, ValidateToken(token, enabledAuthConfig()))
}

func TestValidateToken_MissingExpiry(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "test-client",
		"aud": testAudience,
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	assert.Error(t, ValidateToken(signed, enabledAuthConfig()))
}

func TestMiddleware_DisabledAuthPassesThrough(t *testing.T) {
	config.OverrideRRSRuntime(config.Config{
		Auth: config.AuthConfig{Enabled: false},
	})

	called := false
	handler := Middleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	handler(recorder, httptest.NewRequest(http.MethodGet, "/records?email=a@b.co", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestMiddleware_MissingTokenRejected(t *testing.T) {
	config.OverrideRRSRuntime(config.Config{Auth: enabledAuthConfig()})

	handler := Middleware(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without a token")
	})

	recorder := httptest.NewRecorder()
	handler(recorder, httptest.NewRequest(http.MethodGet, "/records?email=a@b.co", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestMiddleware_ValidTokenAccepted(t *testing.T) {
	config.OverrideRRSRuntime(config.Config{Auth: enabledAuthConfig()})

	called := false
	handler := Middleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/records?email=a@b.co", nil)
	request.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, testAudience, time.Now().Add(time.Hour)))

	recorder := httptest.NewRecorder()
	handler(recorder, request)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestMiddleware_MalformedAuthorizationHeader(t *testing.T) {
	config.OverrideRRSRuntime(config.Config{Auth: enabledAuthConfig()})

	handler := Middleware(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with a malformed header")
	})

	request := httptest.NewRequest(http.MethodGet, "/records?email=a@b.co", nil)
	request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	recorder := httptest.NewRecorder()
	handler(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
