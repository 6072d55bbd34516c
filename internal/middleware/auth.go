package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/Tiku/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"

	callerIDKey   = "callerID"
	callerRoleKey = "callerRole"
)

// Claims are read from tokens issued by the identity service. This service
// only verifies them.
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Auth verifies an HS256 bearer token and stores the caller id and role on
// the request context.
func Auth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if len(key) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication is not configured"})
			return
		}
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing bearer token"})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			log.Warn().Err(err).Str("path", c.FullPath()).Msg("Rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid token"})
			return
		}
		if claims.UserID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "token has no user_id"})
			return
		}

		c.Set(callerIDKey, claims.UserID)
		c.Set(callerRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole lets only callers with the given role through. It must run
// after Auth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(callerRoleKey) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "insufficient role"})
			return
		}
		c.Next()
	}
}

var errNoCaller = errors.New("no authenticated caller on request")

// CallerID returns the id stored by Auth.
func CallerID(c *gin.Context) (uint, error) {
	v, ok := c.Get(callerIDKey)
	if !ok {
		return 0, errNoCaller
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errNoCaller
	}
	return id, nil
}

// SetCaller stores a caller on the context. Used by tests and by callers
// that authenticate by other means.
func SetCaller(c *gin.Context, userID uint, role string) {
	c.Set(callerIDKey, userID)
	c.Set(callerRoleKey, role)
}
