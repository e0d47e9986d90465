package services

import (
	"fmt"
	"html"
	"log"

	"portfolio-site/models"
)

// Notifier is told about new public submissions. Implementations must be safe
// to call from a background goroutine and never fail the caller.
type Notifier interface {
	MessageReceived(msg models.Message)
	FeedbackReceived(fb models.Feedback)
}

// MailSender is the subset of utils.Mailer used for notifications.
type MailSender interface {
	Send(subject, to, body, html string) bool
}

// EmailNotifier sends admin alerts and submitter acknowledgements.
type EmailNotifier struct {
	Mail       MailSender
	AdminEmail string
	AlertsOn   bool
}

func NewEmailNotifier(mail MailSender, adminEmail string, alertsOn bool) *EmailNotifier {
	return &EmailNotifier{Mail: mail, AdminEmail: adminEmail, AlertsOn: alertsOn}
}

func (n *EmailNotifier) adminAlerts() bool {
	return n.AlertsOn && n.AdminEmail != ""
}

func (n *EmailNotifier) MessageReceived(msg models.Message) {
	if !n.adminAlerts() {
		return
	}
	subject := fmt.Sprintf("New contact message from %s", msg.Name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s", msg.Name, msg.Email, msg.Phone, msg.Message)
	n.Mail.Send(subject, n.AdminEmail, body, "")
}

func (n *EmailNotifier) FeedbackReceived(fb models.Feedback) {
	if n.adminAlerts() {
		subject := fmt.Sprintf("New feedback (%d/5) from %s", fb.Rating, fb.Name)
		body := fmt.Sprintf("Name: %s\nEmail: %s\nRating: %d\n\n%s", fb.Name, fb.Email, fb.Rating, fb.Message)
		n.Mail.Send(subject, n.AdminEmail, body, "")
	}

	if !fb.Notify || fb.Email == "" {
		return
	}
	body := fmt.Sprintf("Hi %s,\n\nThanks for your feedback. It has been received and will be read soon.", fb.Name)
	htmlBody := fmt.Sprintf("<p>Hi %s,</p><p>Thanks for your feedback. It has been received and will be read soon.</p>", html.EscapeString(fb.Name))
	if !n.Mail.Send("Thanks for your feedback", fb.Email, body, htmlBody) {
		log.Printf("⚠️ Feedback %d acknowledgement not sent", fb.ID)
	}
}
