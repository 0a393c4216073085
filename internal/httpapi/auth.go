package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/nikolayk812/partsdepot/internal/domain"
)

const (
	ctxSubject = "subject"
	ctxRole    = "role"
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewToken signs an HS256 token for subject with the given role.
func NewToken(secret []byte, subject string, role domain.Role, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("secret is empty")
	}
	if subject == "" {
		return "", errors.New("subject is empty")
	}

	now := time.Now()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("SignedString: %w", err)
	}

	return signed, nil
}

func ParseToken(secret []byte, token string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("jwt.ParseWithClaims: %w", errors.Join(domain.ErrUnauthorized, err))
	}
	if !parsed.Valid {
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}

// RequireRole rejects requests without a valid bearer token (401) or whose
// token carries another role (403).
func RequireRole(secret []byte, role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abort(c, http.StatusUnauthorized, "authorization header required")
			return
		}

		claims, err := ParseToken(secret, token)
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid token")
			return
		}

		if claims.Role != string(role) {
			abort(c, http.StatusForbidden, domain.ErrForbidden.Error())
			return
		}

		c.Set(ctxSubject, claims.Subject)
		c.Set(ctxRole, claims.Role)

		c.Next()
	}
}
