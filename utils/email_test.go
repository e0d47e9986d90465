package utils

import (
	"strings"
	"testing"
)

func TestSMTPConfigConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  SMTPConfig
		want bool
	}{
		{"empty", SMTPConfig{}, false},
		{"no password", SMTPConfig{Server: "smtp.example.com", Username: "me"}, false},
		{"no server", SMTPConfig{Username: "me", Password: "pw"}, false},
		{"complete", SMTPConfig{Server: "smtp.example.com", Username: "me", Password: "pw"}, true},
	}
	for _, tt := range tests {
		if got := tt.cfg.Configured(); got != tt.want {
			t.Fatalf("%s: Configured() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSendIsInertWithoutConfig(t *testing.T) {
	m := NewMailer(SMTPConfig{Server: "smtp.example.com"})
	if m.Send("hi", "a@example.com", "body", "") {
		t.Fatalf("expected Send to report failure when smtp is not configured")
	}
}

func TestBuildMessagePlain(t *testing.T) {
	msg := string(buildMessage("me@example.com", "you@example.com", "Hello\r\nBcc: x@example.com", "body", ""))

	if !strings.Contains(msg, "Subject: Hello  Bcc: x@example.com\r\n") {
		t.Fatalf("expected header injection to be flattened, got %q", msg)
	}
	if !strings.Contains(msg, "Content-Type: text/plain; charset=utf-8") {
		t.Fatalf("expected plain content type, got %q", msg)
	}
	if strings.Contains(msg, "multipart/alternative") {
		t.Fatalf("did not expect multipart body without html")
	}
}

func TestBuildMessageWithHTML(t *testing.T) {
	msg := string(buildMessage("me@example.com", "you@example.com", "Hi", "plain", "<p>html</p>"))

	for _, want := range []string{"multipart/alternative", "text/plain", "text/html", "<p>html</p>", "plain"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected message to contain %q, got %q", want, msg)
		}
	}
}
