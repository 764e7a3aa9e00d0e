package notify

import (
	"fmt"
	"net/smtp"
	"os"

	"github.com/sirupsen/logrus"
)

// Dispatcher delivers check-in reminders over the channels a user enabled.
type Dispatcher interface {
	SendEmail(to, subject, body string) error
	SendSMS(to, body string) error
}

// SMTPDispatcher sends email over SMTP and logs SMS sends as placeholders;
// no SMS provider is integrated.
type SMTPDispatcher struct{}

func NewDispatcher() *SMTPDispatcher {
	return &SMTPDispatcher{}
}

// SendEmail sends a plain text email using SMTP.
func (d *SMTPDispatcher) SendEmail(to, subject, body string) error {
	from := os.Getenv("SMTP_SENDER")
	password := os.Getenv("SMTP_PASSWORD")
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")

	auth := smtp.PlainAuth("", from, password, smtpHost)

	msg := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body + "\r\n")

	address := smtpHost + ":" + smtpPort

	if err := smtp.SendMail(address, auth, from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SendSMS logs the message instead of delivering it.
func (d *SMTPDispatcher) SendSMS(to, body string) error {
	logrus.WithFields(logrus.Fields{
		"to":   to,
		"body": body,
	}).Info("SMS dispatch placeholder")
	return nil
}
