package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func requestIDTestRouter(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		*captured = c.GetString(ContextRequestID)
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	var captured string
	r := requestIDTestRouter(&captured)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	if captured == "" {
		t.Fatal("expected a generated request id in the context")
	}
	if got := w.Header().Get("X-Request-ID"); got != captured {
		t.Fatalf("expected response header %q to match context id %q", got, captured)
	}
}

func TestRequestIDPropagatedFromHeader(t *testing.T) {
	var captured string
	r := requestIDTestRouter(&captured)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-id")
	r.ServeHTTP(w, req)

	if captured != "caller-supplied-id" {
		t.Fatalf("expected caller id to be kept, got %q", captured)
	}
	if got := w.Header().Get("X-Request-ID"); got != "caller-supplied-id" {
		t.Fatalf("expected caller id echoed in header, got %q", got)
	}
}
