package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrMissingCredentials 操作が要求する認証スキームの資格情報がない
	ErrMissingCredentials = errors.New("missing credentials")
)

// TokenSource ベアラートークンの供給元
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken 固定のアクセストークン
type StaticToken string

// Token トークンを返す
func (s StaticToken) Token(context.Context) (string, error) {
	if s == "" {
		return "", ErrMissingCredentials
	}
	return string(s), nil
}

// JWTSigner リクエストごとにHS256で署名した短命トークンを発行する
type JWTSigner struct {
	secret   []byte
	issuer   string
	audience string
	subject  string
	ttl      time.Duration
	now      func() time.Time
}

// NewJWTSigner 新しいJWTSignerを作成
func NewJWTSigner(secret, issuer, audience, subject string, ttl time.Duration) *JWTSigner {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &JWTSigner{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		subject:  subject,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Token 署名済みトークンを発行する
func (s *JWTSigner) Token(context.Context) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingCredentials
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   s.subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		ID:        uuid.NewString(),
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Credentials 認証スキーム名ごとのトークン供給元
type Credentials map[string]TokenSource

// Authorization 操作が宣言した認証スキームからAuthorizationヘッダー値を組み立てる
//
// 認証スキームを宣言しない操作には空文字を返す。
func (c Credentials) Authorization(ctx context.Context, authNames []string) (string, error) {
	for _, name := range authNames {
		source, ok := c[name]
		if !ok {
			continue
		}
		token, err := source.Token(ctx)
		if err != nil {
			return "", fmt.Errorf("auth scheme %q: %w", name, err)
		}
		return "Bearer " + token, nil
	}
	if len(authNames) == 0 {
		return "", nil
	}
	return "", fmt.Errorf("auth schemes %v: %w", authNames, ErrMissingCredentials)
}
