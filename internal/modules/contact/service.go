package contact

import (
	"fmt"
	"html"

	"github.com/harborview/realty-core/internal/pkg/mail"
	"go.uber.org/zap"
)

// Service forwards validated contact submissions to the configured
// destination address.
type Service struct {
	sender *mail.Sender
	to     string
	logger *zap.Logger
}

func NewService(sender *mail.Sender, to string, logger *zap.Logger) *Service {
	return &Service{sender: sender, to: to, logger: logger}
}

// Forward emails the submission. With no destination configured the
// submission is logged and the caller still sees success.
func (s *Service) Forward(dto *ContactDTO) error {
	if s.to == "" {
		s.logger.Warn("contact destination not configured, submission not emailed",
			zap.String("name", dto.Name),
			zap.String("email", dto.Email),
			zap.String("inquiry_type", dto.InquiryType),
		)
		return nil
	}

	return s.sender.Send(mail.Message{
		To:      []string{s.to},
		Subject: fmt.Sprintf("New %s inquiry from %s", dto.InquiryType, dto.Name),
		HTML:    renderBody(dto),
	})
}

func renderBody(dto *ContactDTO) string {
	phone := dto.Phone
	if phone == "" {
		phone = "-"
	}
	return fmt.Sprintf(
		`<h2>New contact form submission</h2>
<p><b>Name:</b> %s</p>
<p><b>Email:</b> %s</p>
<p><b>Phone:</b> %s</p>
<p><b>Inquiry:</b> %s</p>
<p><b>Message:</b></p>
<p>%s</p>`,
		html.EscapeString(dto.Name),
		html.EscapeString(dto.Email),
		html.EscapeString(phone),
		html.EscapeString(dto.InquiryType),
		html.EscapeString(dto.Message),
	)
}
