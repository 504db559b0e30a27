package api

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/checkmarble/marble-todos/utils"
)

const (
	sessionCookieName = "marble_todos_session"
	flashLifetime     = 10 * time.Minute
)

// Flash holds the one-shot messages shown on the next rendered page.
type Flash struct {
	Error   string `json:"error,omitempty"`
	Success string `json:"success,omitempty"`
}

type sessionClaims struct {
	Flash Flash `json:"flash"`
	jwt.RegisteredClaims
}

// FlashSession stores the flash messages in a signed cookie. The cookie only lives between the
// response that sets a message and the next page render.
type FlashSession struct {
	secret []byte
	secure bool
}

func NewFlashSession(secret string, secure bool) FlashSession {
	return FlashSession{
		secret: []byte(secret),
		secure: secure,
	}
}

func (s FlashSession) encode(flash Flash) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Flash: flash,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(flashLifetime)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "could not sign the session cookie")
	}
	return token, nil
}

func (s FlashSession) decode(value string) (Flash, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(value, &claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Flash{}, errors.Wrap(err, "invalid session cookie")
	}
	return claims.Flash, nil
}

func (s FlashSession) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, value, maxAge, "/", "", s.secure, true)
}

func (s FlashSession) save(c *gin.Context, flash Flash) {
	value, err := s.encode(flash)
	if err != nil {
		utils.LogAndReportSentryError(c.Request.Context(), err)
		return
	}
	s.setCookie(c, value, int(flashLifetime.Seconds()))
}

func (s FlashSession) SetSuccess(c *gin.Context, message string) {
	s.save(c, Flash{Success: message})
}

func (s FlashSession) SetError(c *gin.Context, message string) {
	s.save(c, Flash{Error: message})
}

// Pop returns the pending messages and deletes the cookie. It must be called before anything
// is written to the response body.
func (s FlashSession) Pop(c *gin.Context) Flash {
	value, err := c.Cookie(sessionCookieName)
	if err != nil || value == "" {
		return Flash{}
	}
	s.setCookie(c, "", -1)

	flash, err := s.decode(value)
	if err != nil {
		utils.LoggerFromContext(c.Request.Context()).DebugContext(c.Request.Context(),
			"discarding session cookie", "error", err.Error())
		return Flash{}
	}
	return flash
}
