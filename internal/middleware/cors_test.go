package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newGuardedRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(OriginGuard(origins))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestOriginGuard(t *testing.T) {
	origins := []string{"https://mexicoindia.org", "http://localhost:5500"}

	tests := []struct {
		name       string
		origin     string
		wantStatus int
	}{
		{"no origin header allowed", "", http.StatusOK},
		{"null origin allowed", "null", http.StatusOK},
		{"listed origin allowed", "https://mexicoindia.org", http.StatusOK},
		{"unlisted origin denied", "https://evil.example.com", http.StatusForbidden},
		{"scheme mismatch denied", "http://mexicoindia.org", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newGuardedRouter(origins)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestOriginGuardSetsCORSHeaders(t *testing.T) {
	r := newGuardedRouter([]string{"https://mexicoindia.org"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://mexicoindia.org")
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://mexicoindia.org", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestOriginGuardDenialBody(t *testing.T) {
	r := newGuardedRouter([]string{"https://mexicoindia.org"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"origin not allowed"}`, w.Body.String())
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestOriginGuardPreflight(t *testing.T) {
	r := newGuardedRouter([]string{"https://mexicoindia.org"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://mexicoindia.org")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://mexicoindia.org", w.Header().Get("Access-Control-Allow-Origin"))
}
