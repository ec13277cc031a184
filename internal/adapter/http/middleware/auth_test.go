package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func authRouter(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw)
	r.GET("/v1/records", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"owner": c.GetString(OwnerKey)})
	})
	return r
}

func TestJWTOwnerAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := []byte("test-secret")

	sign := func(t *testing.T, claims jwt.Claims, key []byte) string {
		t.Helper()
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		return signed
	}

	t.Run("valid token sets owner", func(t *testing.T) {
		r := authRouter(jwtOwnerAuth(secret))
		token := sign(t, jwt.RegisteredClaims{
			Subject:   "owner-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}, secret)

		req := httptest.NewRequest(http.MethodGet, "/v1/records", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if body := w.Body.String(); body != `{"owner":"owner-1"}` {
			t.Fatalf("unexpected body %s", body)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		r := authRouter(jwtOwnerAuth(secret))

		req := httptest.NewRequest(http.MethodGet, "/v1/records", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		r := authRouter(jwtOwnerAuth(secret))
		token := sign(t, jwt.RegisteredClaims{Subject: "owner-1"}, []byte("other-secret"))

		req := httptest.NewRequest(http.MethodGet, "/v1/records", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		r := authRouter(jwtOwnerAuth(secret))
		token := sign(t, jwt.RegisteredClaims{
			Subject:   "owner-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}, secret)

		req := httptest.NewRequest(http.MethodGet, "/v1/records", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("token without subject", func(t *testing.T) {
		r := authRouter(jwtOwnerAuth(secret))
		token := sign(t, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}, secret)

		req := httptest.NewRequest(http.MethodGet, "/v1/records", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestDevOwnerAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("header sets owner", func(t *testing.T) {
		r := authRouter(devOwnerAuth())

		req := httptest.NewRequest(http.MethodGet, "/v1/records", nil)
		req.Header.Set("X-Owner-ID", "owner-dev")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"owner":"owner-dev"}` {
			t.Fatalf("unexpected body %s", body)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		r := authRouter(devOwnerAuth())

		req := httptest.NewRequest(http.MethodGet, "/v1/records", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
