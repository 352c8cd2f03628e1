package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware_Preflight(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	})

	req := httptest.NewRequest("OPTIONS", "/cart/add", nil)
	req.Header.Set("Origin", "https://tairet.example")
	rr := httptest.NewRecorder()

	CORSMiddleware(DefaultCORSConfig())(handler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "https://tairet.example", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestIsOriginAllowed(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		allowed []string
		want    bool
	}{
		{name: "wildcard", origin: "https://anything.example", allowed: []string{"*"}, want: true},
		{name: "exact match", origin: "https://tairet.example", allowed: []string{"https://tairet.example"}, want: true},
		{name: "subdomain wildcard", origin: "https://app.tairet.example", allowed: []string{"*.tairet.example"}, want: true},
		{name: "no match", origin: "https://evil.example", allowed: []string{"https://tairet.example"}, want: false},
		{name: "empty list", origin: "https://tairet.example", allowed: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isOriginAllowed(tt.origin, tt.allowed))
		})
	}
}
