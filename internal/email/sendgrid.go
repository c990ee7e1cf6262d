package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// buildSendgridMessage assembles the plaintext+HTML message for the Sendgrid
// API. FromName is the display name paired with the sender address.
func buildSendgridMessage(data EmailData, htmlContent, textContent string) *mail.SGMailV3 {
	from := mail.NewEmail(data.FromName, data.From)
	to := mail.NewEmail("", data.To)
	return mail.NewSingleEmail(from, data.Subject, to, textContent, htmlContent)
}

// sendWithSendgrid sends an email using the Sendgrid API
func (s *Service) sendWithSendgrid(data EmailData, htmlContent, textContent string) error {
	response, err := s.sendgridClient.Send(buildSendgridMessage(data, htmlContent, textContent))
	if err != nil {
		return fmt.Errorf("failed to send email via Sendgrid: %w", err)
	}

	if response.StatusCode != 202 {
		return fmt.Errorf("unexpected Sendgrid status code: %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
