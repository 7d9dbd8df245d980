package services

import (
	"fmt"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/configs"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// EmailService sends transactional mail. Without SMTP credentials it
// runs disabled: sends are logged and succeed, so signup and checkout
// keep working in development.
type EmailService struct {
	dialer  *gomail.Dialer
	from    string
	baseURL string
	log     *zap.Logger
}

func NewEmailService(cfg *configs.Config, log *zap.Logger) *EmailService {
	s := &EmailService{from: cfg.MailFrom, baseURL: cfg.PublicBaseURL, log: log}
	if cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		log.Info("SMTP not configured, e-mail sending disabled")
		return s
	}
	s.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	return s
}

func (s *EmailService) SendVerificationEmail(to, token string) error {
	link := fmt.Sprintf("%s/auth/verify?token=%s", s.baseURL, token)
	if s.dialer == nil {
		s.log.Info("e-mail disabled, verification link", zap.String("to", to), zap.String("link", link))
		return nil
	}

	body := fmt.Sprintf(`
		<h2>Verify your account</h2>
		<p>Welcome to Cafe Chain! Click the link below to verify your account:</p>
		<p><a href="%s">Verify my account</a></p>
		<p>If you did not sign up, you can ignore this e-mail.</p>
	`, link)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Verify your Cafe Chain account")
	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}

func (s *EmailService) SendOrderConfirmation(to, reference string, total int64) error {
	if s.dialer == nil {
		s.log.Info("e-mail disabled, order confirmation skipped",
			zap.String("to", to), zap.String("reference", reference))
		return nil
	}

	body := fmt.Sprintf(`
		<h2>Order confirmed</h2>
		<p>Your order <b>%s</b> has been placed.</p>
		<p>Total: %.2f</p>
		<p>You can track its status from your order history.</p>
	`, reference, float64(total)/100)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your Cafe Chain order "+reference)
	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}
