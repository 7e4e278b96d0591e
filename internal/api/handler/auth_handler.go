package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mmp/property-portal/internal/api/middleware"
	"github.com/mmp/property-portal/internal/core/ports"
)

// Token transports. A deployment uses exactly one.
const (
	TransportCookie = "cookie"
	TransportBody   = "body"
)

// SessionConfig controls how the session token travels to the client.
type SessionConfig struct {
	Transport  string
	CookieName string
	// Secure selects SameSite=Strict plus Secure; otherwise SameSite=Lax
	// without Secure for plaintext local development.
	Secure bool
	TTL    time.Duration
}

type AuthHandler struct {
	authService ports.AuthService
	session     SessionConfig
}

func NewAuthHandler(authService ports.AuthService, session SessionConfig) *AuthHandler {
	if session.Transport != TransportBody {
		session.Transport = TransportCookie
	}
	if session.CookieName == "" {
		session.CookieName = middleware.DefaultCookieName
	}
	return &AuthHandler{authService: authService, session: session}
}

// Login authenticates a user and starts a session.
//
// @Summary      Login
// @Description  Sets the session cookie, or returns the token in the body when the
// @Description  deployment uses body transport.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Username: req.Username,
		Password: req.Password,
		RemoteIP: c.RealIP(),
	})
	if err != nil {
		return err
	}

	resp := loginResponse{User: res.User.Summary()}
	if h.session.Transport == TransportBody {
		resp.Token = res.Token
	} else {
		c.SetCookie(h.cookie(res.Token, int(h.session.TTL.Seconds())))
	}
	return c.JSON(http.StatusOK, resp)
}

// Logout clears the session cookie. Tokens are not revoked server-side, so a
// copy held elsewhere stays valid until it expires.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// MaxAge < 0 renders as Max-Age=0.
	c.SetCookie(h.cookie("", -1))
	return c.JSON(http.StatusOK, okResponse)
}

// Me returns the live identity behind the session.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Summary
// @Failure      401  {object}  errorResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	user, err := h.authService.Me(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user.Summary())
}

func (h *AuthHandler) cookie(value string, maxAge int) *http.Cookie {
	ck := &http.Cookie{
		Name:     h.session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.session.Secure {
		ck.Secure = true
		ck.SameSite = http.SameSiteStrictMode
	}
	return ck
}
