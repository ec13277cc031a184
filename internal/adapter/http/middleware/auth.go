package middleware

import (
	"log"
	"net/http"
	"os"
	"strings"

	"gestao_servicos/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// OwnerKey is the gin context key under which the authenticated owner ID is
// stored. Every record operation is scoped to it.
const OwnerKey = "owner_id"

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid credentials", http.StatusUnauthorized)

// OwnerAuth resolves the record owner from the Authorization bearer token
// (HS256, subject claim = owner ID). When AUTH_JWT_SECRET is not configured
// the middleware runs in dev mode and takes the owner from the X-Owner-ID
// header instead, so local setups work without issuing tokens.
func OwnerAuth() gin.HandlerFunc {
	secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))
	if secret == "" {
		log.Printf("[auth][middleware] AUTH_JWT_SECRET not set; accepting X-Owner-ID header (dev mode)")
		return devOwnerAuth()
	}
	return jwtOwnerAuth([]byte(secret))
}

func jwtOwnerAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(raw, "Bearer ") {
			abortUnauthenticated(c)
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(raw, "Bearer "), func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			abortUnauthenticated(c)
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || strings.TrimSpace(sub) == "" {
			abortUnauthenticated(c)
			return
		}

		c.Set(OwnerKey, strings.TrimSpace(sub))
		c.Next()
	}
}

func devOwnerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := strings.TrimSpace(c.GetHeader("X-Owner-ID"))
		if owner == "" {
			abortUnauthenticated(c)
			return
		}
		c.Set(OwnerKey, owner)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
}
