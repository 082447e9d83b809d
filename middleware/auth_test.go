package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"printhouse-backend/auth"
	"printhouse-backend/middleware"
	"printhouse-backend/models"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func sessionToken(t *testing.T) string {
	t.Helper()
	token, err := auth.CreateSessionToken(testSecret, models.SessionUser{
		ID: "1", Email: "admin@example.com", Role: "admin",
	})
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func apiRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/auth/me", middleware.RequireAuth(testSecret), func(c *gin.Context) {
		session := middleware.GetSession(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "email": session.User.Email})
	})
	return r
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	r := apiRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	r := apiRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "tampered"})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthAcceptsCookie(t *testing.T) {
	r := apiRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: sessionToken(t)})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRequireAuthAcceptsBearerHeader(t *testing.T) {
	r := apiRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func pageRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pages := r.Group("/admin", middleware.AdminPageGuard(testSecret, "/admin/login"))
	pages.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "panel") })
	pages.GET("/login", func(c *gin.Context) { c.String(http.StatusOK, "login") })
	pages.GET("/orders", func(c *gin.Context) { c.String(http.StatusOK, "orders") })
	return r
}

func TestAdminPageGuardRedirectsAnonymous(t *testing.T) {
	r := pageRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/admin/login?callbackUrl=%2Fadmin%2Forders" {
		t.Errorf("Location = %q", got)
	}
}

func TestAdminPageGuardLetsAnonymousReachLogin(t *testing.T) {
	r := pageRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestAdminPageGuardRedirectsAuthenticatedFromLogin(t *testing.T) {
	r := pageRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: sessionToken(t)})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/admin" {
		t.Errorf("Location = %q, want /admin", got)
	}
}

func TestAdminPageGuardPassesAuthenticated(t *testing.T) {
	r := pageRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: sessionToken(t)})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
