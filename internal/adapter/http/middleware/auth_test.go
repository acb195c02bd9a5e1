package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func newAuthRouter(adminEmail string) *gin.Engine {
	r := gin.New()
	authed := r.Group("/", RequireAuth(testSecret, "https://auth.example/sign-in"))
	authed.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": CallerIdentity(c).Email})
	})
	authed.GET("/admin", RequireAdmin(adminEmail), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token gets 401 with sign-in url", func(t *testing.T) {
		r := newAuthRouter("admin@test.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["sign_in_url"] != "https://auth.example/sign-in" {
			t.Fatalf("expected sign-in url, got %s", w.Body.String())
		}
	})

	t.Run("garbage token gets 401", func(t *testing.T) {
		r := newAuthRouter("admin@test.com")
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired token gets 401", func(t *testing.T) {
		r := newAuthRouter("admin@test.com")
		token := signToken(t, jwt.MapClaims{
			"sub":   "user-1",
			"email": "dev@test.com",
			"exp":   time.Now().Add(-time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token exposes caller identity", func(t *testing.T) {
		r := newAuthRouter("admin@test.com")
		token := signToken(t, jwt.MapClaims{
			"sub":       "user-1",
			"email":     "dev@test.com",
			"full_name": "Dev User",
			"exp":       time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["email"] != "dev@test.com" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("admin email passes", func(t *testing.T) {
		r := newAuthRouter("admin@test.com")
		token := signToken(t, jwt.MapClaims{
			"sub":   "user-1",
			"email": "admin@test.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("any other email gets 403", func(t *testing.T) {
		r := newAuthRouter("admin@test.com")
		token := signToken(t, jwt.MapClaims{
			"sub":   "user-2",
			"email": "dev@test.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
