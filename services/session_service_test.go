package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager("test-secret", false)

	token, err := m.Encode(&Session{AdminID: 7})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	sess, err := m.Decode(token)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sess.AdminID != 7 || !sess.Authenticated() {
		t.Fatalf("session = %+v", sess)
	}
}

func TestSessionRejectsForeignSignature(t *testing.T) {
	token, err := NewSessionManager("other-secret", false).Encode(&Session{AdminID: 1})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := NewSessionManager("test-secret", false).Decode(token); err == nil {
		t.Fatal("expected signature mismatch")
	}
}

func TestSessionLoadFromCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewSessionManager("test-secret", false)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if err := m.Save(c, &Session{AdminID: 3}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookieName || !cookies[0].HttpOnly {
		t.Fatalf("cookies = %+v", cookies)
	}

	cases := map[string]uint{
		cookies[0].Value:       3,
		"garbage":              0,
		cookies[0].Value + "x": 0,
	}
	for value, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: value})
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = req
		if got := m.Load(c).AdminID; got != want {
			t.Errorf("Load(%q).AdminID = %d, want %d", value, got, want)
		}
	}

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if m.Load(c).Authenticated() {
		t.Fatal("expected empty session without cookie")
	}
}
