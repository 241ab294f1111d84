package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoservice-booking/internal/config"
	"github.com/BruksfildServices01/autoservice-booking/internal/httpresp"
)

const ContextClientID = "clientID"

const (
	MsgMissingToken = "Token de autenticación requerido"
	MsgInvalidToken = "Token de autenticación inválido"
)

// IssueToken signs an HS256 token whose subject is the client id.
func IssueToken(cfg *config.Config, clientID uuid.UUID, now time.Time) (string, time.Time, error) {
	exp := now.Add(cfg.TokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   clientID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	return signed, exp, err
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, httpresp.Envelope{
		Success: false,
		Message: message,
	})
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, MsgMissingToken)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c, MsgInvalidToken)
			return
		}

		var claims jwt.RegisteredClaims
		token, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			unauthorized(c, MsgInvalidToken)
			return
		}

		clientID, err := uuid.Parse(claims.Subject)
		if err != nil {
			unauthorized(c, MsgInvalidToken)
			return
		}

		c.Set(ContextClientID, clientID.String())

		c.Next()
	}
}

// ClientID returns the authenticated client set by AuthMiddleware.
func ClientID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextClientID)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(v.(string))
	return id, err == nil
}
