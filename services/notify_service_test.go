package services

import (
	"testing"

	"portfolio-site/models"
)

type sentMail struct{ subject, to string }

type fakeMailer struct{ sent []sentMail }

func (m *fakeMailer) Send(subject, to, body, html string) bool {
	m.sent = append(m.sent, sentMail{subject: subject, to: to})
	return true
}

func TestEmailNotifierAlertsOnlyWhenEnabled(t *testing.T) {
	mail := &fakeMailer{}
	NewEmailNotifier(mail, "", true).MessageReceived(models.Message{Name: "x"})
	NewEmailNotifier(mail, "admin@example.com", false).MessageReceived(models.Message{Name: "x"})
	if len(mail.sent) != 0 {
		t.Fatalf("expected no mail, got %+v", mail.sent)
	}

	NewEmailNotifier(mail, "admin@example.com", true).MessageReceived(models.Message{Name: "x"})
	if len(mail.sent) != 1 || mail.sent[0].to != "admin@example.com" {
		t.Fatalf("sent = %+v", mail.sent)
	}
}

func TestEmailNotifierAcknowledgesFeedback(t *testing.T) {
	mail := &fakeMailer{}
	n := NewEmailNotifier(mail, "admin@example.com", false)

	n.FeedbackReceived(models.Feedback{Name: "Ann", Email: "ann@example.com", Notify: false})
	if len(mail.sent) != 0 {
		t.Fatalf("expected no mail without notify, got %+v", mail.sent)
	}

	n.FeedbackReceived(models.Feedback{Name: "Ann", Email: "ann@example.com", Notify: true})
	if len(mail.sent) != 1 || mail.sent[0].to != "ann@example.com" {
		t.Fatalf("sent = %+v", mail.sent)
	}
}
