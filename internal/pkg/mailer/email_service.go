// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendRecoveryKey(toEmail, fullName, code string) error
	SendPlanApproved(toEmail, fullName, plan string) error
	SendTicketReply(toEmail, ticketId, subject string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] %q sent to %s\n", subject, toEmail)
	return nil
}

func (s *emailService) SendRecoveryKey(toEmail, fullName, code string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome aboard, %s!</h2>
			<p>This is your account recovery key. Store it somewhere safe:</p>
			<h1 style="color: #4CAF50; letter-spacing: 5px;">%s</h1>
			<p>You will need it to reset your password if you ever lose access.</p>
		</div>
	`, fullName, code)
	return s.send(toEmail, "Your Account Recovery Key", body)
}

func (s *emailService) SendPlanApproved(toEmail, fullName, plan string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Payment confirmed</h2>
			<p>Hi %s, your upgrade to the <b>%s</b> plan has been approved.</p>
			<p>Your new tools are unlocked. Enjoy!</p>
		</div>
	`, fullName, plan)
	return s.send(toEmail, "Your Plan Upgrade Is Live", body)
}

func (s *emailService) SendTicketReply(toEmail, ticketId, subject string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Support replied to your ticket</h2>
			<p>Ticket <b>%s</b> (%s) has a new reply from our team.</p>
			<p>Log in to the dashboard to read it.</p>
		</div>
	`, ticketId, subject)
	return s.send(toEmail, fmt.Sprintf("Update on ticket %s", ticketId), body)
}
