package transport

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (failingSource) Token(context.Context) (string, error) {
	return "", errors.New("token endpoint unavailable")
}

func TestStaticToken(t *testing.T) {
	token, err := StaticToken("abc").Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = StaticToken("").Token(context.Background())
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestJWTSigner_Token(t *testing.T) {
	signer := NewJWTSigner("secret", "client", "online-payments", "merchant-1", time.Minute)
	fixed := time.Now().Truncate(time.Second)
	signer.now = func() time.Time { return fixed }

	first, err := signer.Token(context.Background())
	require.NoError(t, err)
	second, err := signer.Token(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "jti makes every token unique")

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(first, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithAudience("online-payments"), jwt.WithIssuer("client"))
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "merchant-1", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, fixed.Add(time.Minute).Unix(), claims.ExpiresAt.Unix())
}

func TestJWTSigner_EmptySecret(t *testing.T) {
	_, err := NewJWTSigner("", "", "", "", 0).Token(context.Background())
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestCredentials_Authorization(t *testing.T) {
	tests := []struct {
		name      string
		creds     Credentials
		authNames []string
		want      string
		wantError error
	}{
		{
			name:      "正常系: 宣言されたスキームのトークンを使う",
			creds:     Credentials{"auth": StaticToken("tok")},
			authNames: []string{"auth"},
			want:      "Bearer tok",
		},
		{
			name:      "正常系: 認証不要の操作",
			creds:     Credentials{"auth": StaticToken("tok")},
			authNames: nil,
			want:      "",
		},
		{
			name:      "正常系: 最初に見つかったスキームを使う",
			creds:     Credentials{"oauth": StaticToken("second")},
			authNames: []string{"auth", "oauth"},
			want:      "Bearer second",
		},
		{
			name:      "異常系: スキームの資格情報がない",
			creds:     Credentials{},
			authNames: []string{"auth"},
			wantError: ErrMissingCredentials,
		},
		{
			name:      "異常系: トークン取得に失敗",
			creds:     Credentials{"auth": failingSource{}},
			authNames: []string{"auth"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.creds.Authorization(context.Background(), tt.authNames)
			if strings.HasPrefix(tt.name, "異常系") {
				require.Error(t, err)
				if tt.wantError != nil {
					assert.ErrorIs(t, err, tt.wantError)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
