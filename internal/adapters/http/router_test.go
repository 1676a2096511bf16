package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestClientTokenMiddlewareAssignsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ClientTokenMiddleware())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString("client_token")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if seen == "" {
		t.Fatalf("middleware must set client_token in the context")
	}
	found := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "ct" && c.Value == seen {
			found = true
		}
	}
	if !found {
		t.Fatalf("ct cookie not set or mismatched, context token %q", seen)
	}
}

func TestClientTokenMiddlewareKeepsExistingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ClientTokenMiddleware())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString("client_token")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "ct", Value: "stable-token"})
	r.ServeHTTP(w, req)

	if seen != "stable-token" {
		t.Fatalf("existing token must be reused, got %q", seen)
	}
}
