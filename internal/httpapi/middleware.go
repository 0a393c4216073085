package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/partsdepot/internal/service"
	"github.com/nikolayk812/partsdepot/internal/session"
	"go.uber.org/zap"
)

const (
	SessionHeader = "X-Cart-Session"
	SessionCookie = "cart_session"

	ctxSession = "cartSession"

	maxSessionIDLen = 64
)

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Warn("request", fields...)
		default:
			logger.Debug("request", fields...)
		}
	}
}

// cartSession resolves the cart key. A bearer token selects the signed-in
// customer's stored cart; otherwise the guest session comes from the header
// or the cookie, and a new one is issued when neither is usable.
func cartSession(secret []byte, cookieTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
			claims, err := ParseToken(secret, token)
			if err != nil {
				abort(c, http.StatusUnauthorized, "invalid token")
				return
			}
			c.Set(ctxSession, service.OwnerCartKey(claims.Subject))
			c.Next()
			return
		}

		id := c.GetHeader(SessionHeader)
		if id == "" {
			id, _ = c.Cookie(SessionCookie)
		}
		if id == "" || len(id) > maxSessionIDLen || strings.HasPrefix(id, service.OwnerCartKey("")) {
			id = session.NewSessionID()
		}

		c.Set(ctxSession, id)
		c.Header(SessionHeader, id)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, int(cookieTTL.Seconds()), "/", "", false, true)

		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(ctxSession)
}
