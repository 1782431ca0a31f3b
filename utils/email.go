package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailConfigured reports whether SMTP credentials are present. Callers that
// send best-effort mail (confirmations, reminders) skip sending when not.
func EmailConfigured() bool {
	return os.Getenv("EMAIL_USER") != "" && os.Getenv("SMTP_HOST") != ""
}

// SendEmail delivers an HTML mail through the SMTP server from the
// environment (SMTP_HOST, SMTP_PORT, EMAIL_USER, EMAIL_PASS).
func SendEmail(to, subject, body string) error {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		return fmt.Errorf("SMTP_PORT inválido: %v", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}
