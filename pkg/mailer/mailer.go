package mailer

import (
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/SadatRiyad/BB-Vote-Server/config"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"gopkg.in/gomail.v2"
)

// Mailer delivers one-time passcodes to an address. Dispatch is best-effort:
// callers treat failures as log-and-continue.
type Mailer interface {
	SendOTP(to, code string) error
}

// New selects the provider configured in cfg.Mail.Provider (smtp or sendgrid)
func New(cfg *config.Config, log *logger.Logger) Mailer {
	switch cfg.Mail.Provider {
	case "sendgrid":
		return &sendgridMailer{cfg: cfg, logger: log}
	default:
		return &smtpMailer{cfg: cfg, logger: log}
	}
}

const otpSubject = "Verify your Email with given OTP"

// otpTemplate carries the verification email body; {otp} is substituted.
const otpTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto">
  <h2 style="color: #333">BB-Vote Email Verification</h2>
  <p>Use the following one-time passcode to verify your email address:</p>
  <h1 style="letter-spacing: 6px; text-align: center">{otp}</h1>
  <p>The code is valid for 5 minutes. If you did not request it, you can
  safely ignore this email.</p>
  <p>&mdash; BB-Vote</p>
</div>
`

func renderOTPBody(code string) string {
	return strings.ReplaceAll(otpTemplate, "{otp}", code)
}

// smtpMailer sends through a plain SMTP relay
type smtpMailer struct {
	cfg    *config.Config
	logger *logger.Logger
}

func (m *smtpMailer) SendOTP(to, code string) error {
	mc := m.cfg.Mail
	if mc.SMTPHost == "" || mc.SMTPUser == "" {
		return fmt.Errorf("smtp mailer is not fully configured")
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", mc.SenderEmail, mc.SenderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", otpSubject)
	msg.SetBody("text/html", renderOTPBody(code))

	d := gomail.NewDialer(mc.SMTPHost, mc.SMTPPort, mc.SMTPUser, mc.SMTPPass)
	d.TLSConfig = &tls.Config{ServerName: mc.SMTPHost}

	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email via smtp: %w", err)
	}

	m.logger.Infow("OTP email sent", "provider", "smtp", "to", to)
	return nil
}

// sendgridMailer sends through the SendGrid API
type sendgridMailer struct {
	cfg    *config.Config
	logger *logger.Logger
}

func (m *sendgridMailer) SendOTP(to, code string) error {
	mc := m.cfg.Mail
	if mc.SendGridKey == "" || mc.SenderEmail == "" {
		return fmt.Errorf("sendgrid mailer is not fully configured")
	}

	from := sgmail.NewEmail(mc.SenderName, mc.SenderEmail)
	toEmail := sgmail.NewEmail("", to)
	body := renderOTPBody(code)
	message := sgmail.NewSingleEmail(from, otpSubject, toEmail, body, body)

	client := sendgrid.NewSendClient(mc.SendGridKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via sendgrid: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid api error, status code: %d", response.StatusCode)
	}

	m.logger.Infow("OTP email sent", "provider", "sendgrid", "to", to)
	return nil
}
