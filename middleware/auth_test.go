package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"commquiz/middleware"
	"commquiz/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newAuthRouter() (*gin.Engine, *services.Identity) {
	gin.SetMode(gin.TestMode)

	var captured services.Identity
	router := gin.New()
	router.GET("/whoami", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		identity, _ := middleware.CurrentIdentity(c)
		captured = identity
		c.Status(http.StatusOK)
	})
	return router, &captured
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router, captured := newAuthRouter()

	token := signToken(t, testSecret, jwt.MapClaims{
		"user_code": "c-9",
		"role":      "commissioner",
		"ulb_name":  "East",
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.UserCode != "c-9" || captured.Role != "commissioner" || captured.UlbName != "East" {
		t.Fatalf("unexpected identity: %+v", captured)
	}
}

func TestAuthMiddlewareRejectsBadRequests(t *testing.T) {
	router, _ := newAuthRouter()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", jwt.MapClaims{"user_code": "c-9", "role": "admin"})},
		{"missing claims", "Bearer " + signToken(t, testSecret, jwt.MapClaims{"role": "admin"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", middleware.AuthMiddleware(testSecret), middleware.RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	adminToken := signToken(t, testSecret, jwt.MapClaims{"user_code": "a-1", "role": "admin"})
	takerToken := signToken(t, testSecret, jwt.MapClaims{"user_code": "c-1", "role": "commissioner"})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+takerToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rec.Code)
	}
}
