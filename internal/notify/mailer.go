// Package notify sends transactional e-mail through Resend. Bodies are
// rendered from embedded HTML templates.
package notify

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Template names.
const (
	templateNewEnquiry    = "new_enquiry.html"
	templatePasswordReset = "password_reset.html"
)

// sender is the subset of the Resend e-mail service used here.
type sender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Mailer renders and sends e-mails. With no API key it only logs what it
// would have sent.
type Mailer struct {
	emails   sender
	from     string
	operator string
	log      *zap.Logger
}

// NewMailer returns a Mailer sending as from. Operator notifications go to
// operator.
func NewMailer(apiKey, from, operator string, log *zap.Logger) *Mailer {
	m := &Mailer{from: from, operator: operator, log: log}
	if apiKey != "" {
		m.emails = resend.NewClient(apiKey).Emails
	}
	return m
}

// NewEnquiry tells the operator about a submitted enquiry.
func (m *Mailer) NewEnquiry(ctx context.Context, e domain.Enquiry) error {
	if m.operator == "" {
		m.log.Debug("new enquiry e-mail skipped, no operator address", zap.Int64("enquiry_id", e.ID))
		return nil
	}
	data := map[string]any{
		"ID":         e.ID,
		"Name":       e.Name,
		"Email":      e.Email,
		"Phone":      e.Phone,
		"Message":    e.Message,
		"Source":     e.Source,
		"TripID":     derefInt64(e.TripID),
		"Travellers": derefInt(e.Travellers),
		"TravelDate": "",
	}
	if e.TravelDate != nil {
		data["TravelDate"] = e.TravelDate.Format("2 Jan 2006")
	}
	subject := fmt.Sprintf("New enquiry from %s", e.Name)
	return m.send(ctx, m.operator, subject, templateNewEnquiry, data)
}

// PasswordResetCode e-mails a one-time reset code to an admin.
func (m *Mailer) PasswordResetCode(ctx context.Context, to, name, code string) error {
	data := map[string]any{
		"Name":    name,
		"Code":    code,
		"Minutes": int(domain.OTPTTL.Minutes()),
	}
	return m.send(ctx, to, "Your password reset code", templatePasswordReset, data)
}

func (m *Mailer) send(ctx context.Context, to, subject, tmpl string, data map[string]any) error {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, tmpl, data); err != nil {
		return fmt.Errorf("notify.Mailer.send: render %s: %w", tmpl, err)
	}

	if m.emails == nil {
		m.log.Info("e-mail disabled, not sending", zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	_, err := m.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    body.String(),
	})
	if err != nil {
		return fmt.Errorf("notify.Mailer.send: %w", err)
	}
	return nil
}

func derefInt64(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
