// File: /services/email_service.go
package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"autohub-api/config"
	"autohub-api/models"
)

// EmailService sends dealership notifications. Delivery failures are the
// caller's to log; they never fail the originating request.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// SendInquiryNotification tells the sales inbox about a new inquiry.
func (es *EmailService) SendInquiryNotification(inquiry *models.Inquiry, vehicle *models.Vehicle) error {
	if !es.config.EmailEnabled {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", es.config.InquiryInbox)
	m.SetHeader("Subject", fmt.Sprintf("New inquiry: %s %s", vehicle.Brand, vehicle.Model))
	m.SetHeader("Reply-To", inquiry.Email)

	htmlBody := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>New vehicle inquiry</h2>
    <p><strong>Vehicle:</strong> %s %s (%d)</p>
    <p><strong>From:</strong> %s &lt;%s&gt;</p>
    <p><strong>Message:</strong></p>
    <blockquote style="border-left: 3px solid #007bff; padding-left: 12px;">%s</blockquote>
</body>
</html>`,
		vehicle.Brand, vehicle.Model, vehicle.Year,
		inquiry.Name, inquiry.Email, inquiry.Message)

	m.SetBody("text/html", htmlBody)
	return es.dialer.DialAndSend(m)
}

// SendTestDriveAcknowledgement confirms receipt of a test drive request to
// the customer.
func (es *EmailService) SendTestDriveAcknowledgement(drive *models.TestDrive, user *models.User, vehicle *models.Vehicle) error {
	if !es.config.EmailEnabled {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", fmt.Sprintf("Test drive request received - %s %s", vehicle.Brand, vehicle.Model))

	htmlBody := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Hello %s!</h2>
    <p>We received your test drive request for the <strong>%s %s (%d)</strong>.</p>
    <p>Preferred slot: <strong>%s at %s</strong></p>
    <p>Our team will contact you to confirm the appointment.</p>
</body>
</html>`,
		user.FullName,
		vehicle.Brand, vehicle.Model, vehicle.Year,
		drive.Date.Format("2006-01-02"), drive.Time)

	m.SetBody("text/html", htmlBody)
	return es.dialer.DialAndSend(m)
}
