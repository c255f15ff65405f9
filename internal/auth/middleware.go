package auth

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// ContextUserKey is the echo context key under which CurrentUser stores the
// authenticated user's email.
const ContextUserKey = "currentUserEmail"

// SessionParser returns echo-jwt middleware that reads the session cookie.
// Every page is reachable anonymously, so parse failures and missing
// cookies continue the request instead of rejecting it.
func SessionParser(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:" + SessionCookieName,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(SessionClaims)
		},
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	})
}

// CurrentUser resolves the parsed session token into a user email on the
// context, skipping sessions revoked by logout. Requests without a valid
// session proceed anonymously.
func CurrentUser(store SessionStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return next(c)
			}
			claims, ok := token.Claims.(*SessionClaims)
			if !ok || claims.Email == "" {
				return next(c)
			}
			if revoked, _ := store.IsSessionRevoked(c.Request().Context(), claims.ID); revoked {
				return next(c)
			}
			c.Set(ContextUserKey, claims.Email)
			return next(c)
		}
	}
}

// EmailFromContext returns the authenticated user's email, or "" when the
// request is anonymous.
func EmailFromContext(c echo.Context) string {
	if email, ok := c.Get(ContextUserKey).(string); ok {
		return email
	}
	return ""
}
