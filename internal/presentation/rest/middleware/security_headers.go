package middleware

import (
	"github.com/labstack/echo/v4"
)

// SecurityHeadersMiddleware セキュリティヘッダーを設定するミドルウェア
func SecurityHeadersMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()

			// クリックジャッキング保護
			h.Set("X-Frame-Options", "DENY")

			// MIMEタイプスニッフィング保護
			h.Set("X-Content-Type-Options", "nosniff")

			// JSONのみを返すAPIなので何も読み込ませない
			h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

			// 決済情報を含むレスポンスはキャッシュさせない
			h.Set("Cache-Control", "no-store")

			if c.Scheme() == "https" {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			h.Set("Referrer-Policy", "no-referrer")

			return next(c)
		}
	}
}
