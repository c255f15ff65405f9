package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pasko-evg/superlists/internal/auth"
	"github.com/pasko-evg/superlists/internal/service"
)

const checkEmailMessage = "Check your email, we have sent you a link that you can use to log in to the site."

// AuthHandler serves the passwordless login flow: requesting a login link
// by mail, redeeming it, and logging out.
type AuthHandler struct {
	authService  service.AuthService
	sessions     *auth.SessionService
	sessionStore auth.SessionStoreInterface
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(authService service.AuthService, sessions *auth.SessionService, sessionStore auth.SessionStoreInterface) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		sessions:     sessions,
		sessionStore: sessionStore,
	}
}

// SendLoginEmailRequest represents a login-link request.
type SendLoginEmailRequest struct {
	Email string `form:"email" validate:"required,email"`
}

// SendLoginEmail handles POST /accounts/send_login_email. It always
// redirects home; the outcome is reported through a flash message.
func (h *AuthHandler) SendLoginEmail(c echo.Context) error {
	var req SendLoginEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		setFlash(c, "danger", "Enter a valid email address.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := h.authService.SendLoginEmail(c.Request().Context(), req.Email); err != nil {
		c.Logger().Errorf("send login email: %v", err)
		setFlash(c, "danger", "Could not send the login email, please try again later.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	setFlash(c, "success", checkEmailMessage)
	return c.Redirect(http.StatusSeeOther, "/")
}

// Login handles GET /accounts/login?token={uid}. A resolvable token
// establishes a session; any failure leaves the visitor anonymous. Either
// way the response is a redirect home.
func (h *AuthHandler) Login(c echo.Context) error {
	uid := c.QueryParam("token")

	user, err := h.authService.Authenticate(c.Request().Context(), uid)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	_, token, err := h.sessions.IssueSession(user.Email)
	if err != nil {
		c.Logger().Errorf("issue session: %v", err)
		return c.Redirect(http.StatusSeeOther, "/")
	}

	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(auth.SessionExpiry),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles POST /accounts/logout: the session cookie is cleared and
// its id revoked for the token's remaining lifetime.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(auth.SessionCookieName); err == nil {
		if claims, err := h.sessions.ValidateSession(cookie.Value); err == nil {
			ttl := time.Until(claims.ExpiresAt.Time)
			if ttl > 0 {
				if err := h.sessionStore.RevokeSession(c.Request().Context(), claims.ID, ttl); err != nil {
					c.Logger().Errorf("revoke session: %v", err)
				}
			}
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/")
}
