// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"
	"strings"
	texttemplate "text/template"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/atelier-backend/internal/config"
	"github.com/javajoker/atelier-backend/internal/models"
)

// MessageNotifier is told about every message accepted into the inbox.
type MessageNotifier interface {
	MessageReceived(message models.Message)
}

// NotificationService mails the shop owner when a visitor submits the
// contact form. Without SMTP settings it only logs.
type NotificationService struct {
	config   *config.Config
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
	async    bool
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func NewNotificationService(config *config.Config) *NotificationService {
	return &NotificationService{
		config:   config,
		sendMail: smtp.SendMail,
		async:    true,
	}
}

// MessageReceived never blocks the submitting request on SMTP.
func (s *NotificationService) MessageReceived(message models.Message) {
	logger := logrus.WithFields(logrus.Fields{
		"message_id": message.ID,
		"from":       message.Email,
	})

	if !s.config.NotifiesByEmail() {
		logger.Info("New contact message received")
		return
	}

	send := func() {
		if err := s.SendNewMessageEmail(message); err != nil {
			logger.WithError(err).Warn("Failed to send new message email")
			return
		}
		logger.Info("New message email sent")
	}

	if s.async {
		go send()
		return
	}
	send()
}

func (s *NotificationService) SendNewMessageEmail(message models.Message) error {
	tmpl := s.getEmailTemplate("new_message")

	body, err := s.renderTemplate(tmpl.Body, message)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject, err := s.renderSubject(tmpl.Subject, message)
	if err != nil {
		return fmt.Errorf("failed to render email subject: %w", err)
	}

	return s.sendEmail(s.config.Email.NotifyTo, subject, body)
}

func (s *NotificationService) sendEmail(to, subject, body string) error {
	subject = mime.QEncoding.Encode("utf-8", headerSafe(subject))

	var auth smtp.Auth
	if s.config.Email.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.config.Email.FromEmail, to, subject, body))

	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return s.sendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// renderSubject renders plain text; the subject is a header, not HTML.
func (s *NotificationService) renderSubject(templateStr string, data interface{}) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// headerSafe folds CR and LF into spaces so visitor input cannot start a
// new header line.
func headerSafe(value string) string {
	return strings.Join(strings.FieldsFunc(value, func(r rune) bool {
		return r == '\r' || r == '\n'
	}), " ")
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"new_message": {
			Subject: "New message from {{.Name}}",
			Body: `
<!DOCTYPE html>
<html>
<body>
    <h2>New contact form message</h2>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
    <p><strong>Received:</strong> {{.CreatedAt}}</p>
    <p>{{.Message}}</p>
</body>
</html>`,
		},
	}

	return templates[templateType]
}
