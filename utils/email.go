package utils

import (
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

const smtpTimeout = 10 * time.Second

// SMTPConfig is the outbound mail configuration. Every field is optional;
// the mailer stays inert until Server, Username and Password are all set.
type SMTPConfig struct {
	Server   string
	Port     int
	Username string
	Password string
	UseTLS   bool // STARTTLS when true, implicit TLS when false
	Sender   string
}

// Configured reports whether enough settings exist to attempt delivery.
func (c SMTPConfig) Configured() bool {
	return c.Server != "" && c.Username != "" && c.Password != ""
}

// Mailer sends best-effort notification emails.
type Mailer struct {
	cfg SMTPConfig
}

func NewMailer(cfg SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send delivers one message and reports success. Failures are logged and
// returned as false; callers are free to ignore the result.
func (m *Mailer) Send(subject, to, body, html string) bool {
	if !m.cfg.Configured() {
		log.Printf("[MOCK EMAIL] to:%s subject:%q (smtp not configured)", to, subject)
		return false
	}

	msg := buildMessage(m.sender(), to, subject, body, html)
	if err := m.deliver(to, msg); err != nil {
		log.Printf("❌ Failed to send email to %s: %v", to, err)
		return false
	}

	log.Printf("✅ Email sent to %s", to)
	return true
}

func (m *Mailer) sender() string {
	if m.cfg.Sender != "" {
		return m.cfg.Sender
	}
	return m.cfg.Username
}

func (m *Mailer) deliver(to string, msg []byte) error {
	addr := net.JoinHostPort(m.cfg.Server, strconv.Itoa(m.cfg.Port))
	tlsConfig := &tls.Config{ServerName: m.cfg.Server}
	dialer := &net.Dialer{Timeout: smtpTimeout}

	var conn net.Conn
	var err error
	if m.cfg.UseTLS {
		conn, err = dialer.Dial("tcp", addr)
	} else {
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, tlsConfig)
	}
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	_ = conn.SetDeadline(time.Now().Add(smtpTimeout))

	client, err := smtp.NewClient(conn, m.cfg.Server)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if m.cfg.UseTLS {
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if err := client.Auth(smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Server)); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := client.Mail(m.sender()); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func buildMessage(from, to, subject, body, html string) []byte {
	safe := func(s string) string {
		return strings.NewReplacer("\r", " ", "\n", " ").Replace(strings.TrimSpace(s))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", safe(from)))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", safe(to)))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", safe(subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")

	if html == "" {
		sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		sb.WriteString(body + "\r\n")
		return []byte(sb.String())
	}

	boundary := "----=_PORTFOLIO_EMAIL_BOUNDARY"
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(html + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return []byte(sb.String())
}
