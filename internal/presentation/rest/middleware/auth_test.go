package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"online-payments/internal/infrastructure/config"
	otelinfra "online-payments/internal/infrastructure/observability/otel"
)

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.JWTConfig{
		Secret:   "test-secret",
		Issuer:   "payments-cli",
		Audience: "online-payments",
	}
	valid := jwt.RegisteredClaims{
		Issuer:    "payments-cli",
		Subject:   "merchant-app",
		Audience:  jwt.ClaimStrings{"online-payments"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	tests := []struct {
		name           string
		authorization  func(t *testing.T) string
		expectedStatus int
		wantSubject    string
	}{
		{
			name:           "正常系: 有効なトークン",
			authorization:  func(t *testing.T) string { return "Bearer " + signToken(t, jwt.SigningMethodHS256, cfg.Secret, valid) },
			expectedStatus: http.StatusOK,
			wantSubject:    "merchant-app",
		},
		{
			name:           "正常系: HS512で署名されたトークン",
			authorization:  func(t *testing.T) string { return "Bearer " + signToken(t, jwt.SigningMethodHS512, cfg.Secret, valid) },
			expectedStatus: http.StatusOK,
			wantSubject:    "merchant-app",
		},
		{
			name:           "異常系: Authorizationヘッダーなし",
			authorization:  func(t *testing.T) string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: Bearer形式ではない",
			authorization:  func(t *testing.T) string { return "Basic dXNlcjpwYXNz" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: 不正なトークン",
			authorization:  func(t *testing.T) string { return "Bearer invalid-token" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: 別のシークレットで署名",
			authorization:  func(t *testing.T) string { return "Bearer " + signToken(t, jwt.SigningMethodHS256, "other-secret", valid) },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "異常系: 有効期限切れ",
			authorization: func(t *testing.T) string {
				claims := valid
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, cfg.Secret, claims)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "異常系: 発行者が違う",
			authorization: func(t *testing.T) string {
				claims := valid
				claims.Issuer = "someone-else"
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, cfg.Secret, claims)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "異常系: オーディエンスが違う",
			authorization: func(t *testing.T) string {
				claims := valid
				claims.Audience = jwt.ClaimStrings{"another-api"}
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, cfg.Secret, claims)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := otelinfra.NewLogger(noop.NewTracerProvider().Tracer("test"))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/refunds", nil)
			if auth := tt.authorization(t); auth != "" {
				req.Header.Set(echo.HeaderAuthorization, auth)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var subject string
			handler := AuthMiddleware(cfg, logger)(func(c echo.Context) error {
				subject, _ = c.Get(SubjectKey).(string)
				return c.String(http.StatusOK, "ok")
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.wantSubject, subject)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), `"responseCode":"UNAUTHORIZED"`)
				assert.Contains(t, rec.Body.String(), `"responseStatus":"ERROR"`)
			}
		})
	}
}

func TestParseToken_WithoutIssuerAndAudience(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret"}
	token := signToken(t, jwt.SigningMethodHS256, cfg.Secret, jwt.RegisteredClaims{Subject: "anyone"})

	claims, err := ParseToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "anyone", claims.Subject)
}

func TestParseToken_RejectsNoneAlgorithm(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "anyone"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(cfg, token)
	assert.Error(t, err)
}
