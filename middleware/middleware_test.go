package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-site/services"
)

type fakeRecorder struct {
	ips []string
	err error
}

func (f *fakeRecorder) Track(ip string, now time.Time) error {
	f.ips = append(f.ips, ip)
	return f.err
}

func newEngine(sessions *services.SessionManager, rec VisitRecorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LoadSession(sessions), TrackVisits(rec))
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/", ok)
	r.GET("/blog/:id", ok)
	r.GET("/admin/dashboard", RequireAdmin(), ok)
	return r
}

func TestRequireAdmin(t *testing.T) {
	sessions := services.NewSessionManager("k", false)
	r := newEngine(sessions, &fakeRecorder{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/admin/login" {
		t.Fatalf("anonymous: %d %q", rec.Code, rec.Header().Get("Location"))
	}

	token, _ := sessions.Encode(&services.Session{AdminID: 1})
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: services.SessionCookieName, Value: token})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("logged in: %d", rec.Code)
	}
}

func TestTrackVisitsOnlyAllowListed(t *testing.T) {
	visits := &fakeRecorder{err: errors.New("db down")}
	r := newEngine(services.NewSessionManager("k", false), visits)

	for _, path := range []string{"/", "/blog/3", "/nowhere"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if path == "/" && rec.Code != http.StatusOK {
			t.Fatalf("tracking failure must not fail the request: %d", rec.Code)
		}
	}
	if len(visits.ips) != 1 || visits.ips[0] != "192.0.2.1" {
		t.Fatalf("tracked = %v", visits.ips)
	}
}
