package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendWelcomeEmail(email, name string) error
	SendResetCode(email, code string) error
	SendDueReminder(email, bankName, lastFour string, daysLeft int) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to CardReminder!")

	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account has been created. Add your cards and we will remind
		you before every billing and due date.</p>
		<p>Best regards,<br>The CardReminder Team</p>
	`, name)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

func (s *emailService) SendResetCode(email, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Reset Password OTP")

	body := fmt.Sprintf(`
                <h3>Password reset requested</h3>
                <p>Your OTP is <strong>%s</strong>. It expires in 10 minutes.</p>
                <p>If you did not request this change, you can ignore this email.</p>
        `, code)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reset code: %w", err)
	}
	return nil
}

func (s *emailService) SendDueReminder(email, bankName, lastFour string, daysLeft int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("⚠️ Bill Due: %s", bankName))

	m.SetBody("text/html", fmt.Sprintf(
		"<p>Pay your %s bill (Ending: %s): %s.</p>",
		bankName, lastFour, dueWording(daysLeft),
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send due reminder: %w", err)
	}
	return nil
}

func dueWording(daysLeft int) string {
	if daysLeft == 0 {
		return "due today"
	}
	return fmt.Sprintf("%d days left", daysLeft)
}
