package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRoleAllowed(t *testing.T) {
	allowed := []string{"admin"}

	if !roleAllowed(allowed, "admin") {
		t.Fatal("expected admin to be allowed")
	}
	if roleAllowed(allowed, "user") {
		t.Fatal("expected user to be rejected")
	}
	if roleAllowed(allowed, "") {
		t.Fatal("expected empty role to be rejected")
	}
	if roleAllowed(nil, "admin") {
		t.Fatal("expected empty allow-set to reject everything")
	}
}

func roleTestRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if role != "" {
			c.Set(ContextUserRole, role)
		}
	})
	r.GET("/admin-only", RequireRoles("admin"), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestRequireRolesRejectsNonAdmin(t *testing.T) {
	r := roleTestRouter("user")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireRolesRejectsMissingRole(t *testing.T) {
	r := roleTestRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireRolesAllowsAdmin(t *testing.T) {
	r := roleTestRouter("admin")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
