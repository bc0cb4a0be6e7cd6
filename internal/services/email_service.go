package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"strings"
	texttemplate "text/template"

	"github.com/eventbook/eventbook-api/internal/types/api/params"
	"github.com/eventbook/eventbook-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// emailSender is the subset of resend.EmailsSvc used here
type emailSender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type EmailService struct {
	emails    emailSender
	logger    *zap.Logger
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string, logger *zap.Logger) *EmailService {
	client := resend.NewClient(apiKey)
	return newEmailServiceWithSender(client.Emails, fromEmail, fromName, logger)
}

func newEmailServiceWithSender(sender emailSender, fromEmail, fromName string, logger *zap.Logger) *EmailService {
	return &EmailService{
		emails:    sender,
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

type emailTemplate struct {
	category string
	subject  string
	html     *template.Template
	text     *texttemplate.Template
}

var (
	refundConfirmationTemplate = emailTemplate{
		category: "refund_confirmation",
		subject:  "Your refund for {{event_title}}",
		html: template.Must(template.New("refund_html").Parse(
			`<p>Hi {{.RecipientName}},</p>` +
				`<p>We have issued a refund of <strong>{{.Amount}} {{.Currency}}</strong> ({{.RefundPercentage}}%) for your booking to <strong>{{.EventTitle}}</strong> on {{.EventStartsAt}}.</p>` +
				`<p>Refunds usually reach your card within 5-10 business days.</p>` +
				`{{if .SupportEmail}}<p>Questions? Contact <a href="mailto:{{.SupportEmail}}">{{.SupportEmail}}</a>.</p>{{end}}`)),
		text: texttemplate.Must(texttemplate.New("refund_text").Parse(
			"Hi {{.RecipientName}},\n\nWe have issued a refund of {{.Amount}} {{.Currency}} ({{.RefundPercentage}}%) for your booking to {{.EventTitle}} on {{.EventStartsAt}}.\n")),
	}

	withdrawalConfirmationTemplate = emailTemplate{
		category: "withdrawal_confirmation",
		subject:  "You have been withdrawn from {{event_title}}",
		html: template.Must(template.New("withdrawal_html").Parse(
			`<p>Hi {{.RecipientName}},</p>` +
				`<p>Your place at <strong>{{.EventTitle}}</strong> has been released.</p>` +
				`{{if ne .Amount "0.00"}}<p>A refund of <strong>{{.Amount}} {{.Currency}}</strong> is on its way.</p>{{else}}<p>No refund applies under the event's refund policy.</p>{{end}}`)),
		text: texttemplate.Must(texttemplate.New("withdrawal_text").Parse(
			"Hi {{.RecipientName}},\n\nYour place at {{.EventTitle}} has been released. Refund: {{.Amount}} {{.Currency}}.\n")),
	}

	waitlistPromotionTemplate = emailTemplate{
		category: "waitlist_promotion",
		subject:  "A seat opened up at {{event_title}}",
		html: template.Must(template.New("waitlist_html").Parse(
			`<p>Hi {{.RecipientName}},</p>` +
				`<p>Good news: a seat at <strong>{{.EventTitle}}</strong> is now yours.</p>` +
				`<p>Your ticket code is <code>{{.TicketCode}}</code>.</p>`)),
		text: texttemplate.Must(texttemplate.New("waitlist_text").Parse(
			"Hi {{.RecipientName}},\n\nA seat at {{.EventTitle}} is now yours. Ticket code: {{.TicketCode}}\n")),
	}
)

// SendRefundConfirmation tells a booker their refund was issued
func (s *EmailService) SendRefundConfirmation(ctx context.Context, to string, data business.EmailData) error {
	return s.sendTemplate(ctx, refundConfirmationTemplate, to, data)
}

// SendWithdrawalConfirmation tells a participant their place was released
func (s *EmailService) SendWithdrawalConfirmation(ctx context.Context, to string, data business.EmailData) error {
	return s.sendTemplate(ctx, withdrawalConfirmationTemplate, to, data)
}

// SendWaitlistPromotion tells a waitlisted participant they got a seat
func (s *EmailService) SendWaitlistPromotion(ctx context.Context, to string, data business.EmailData) error {
	return s.sendTemplate(ctx, waitlistPromotionTemplate, to, data)
}

func (s *EmailService) sendTemplate(ctx context.Context, tmpl emailTemplate, to string, data business.EmailData) error {
	htmlContent, err := renderTemplate(tmpl.html, data)
	if err != nil {
		return fmt.Errorf("failed to render HTML template: %w", err)
	}
	textContent, err := renderTemplate(tmpl.text, data)
	if err != nil {
		return fmt.Errorf("failed to render text template: %w", err)
	}

	return s.SendTransactionalEmail(ctx, params.TransactionalEmailParams{
		To:          []string{to},
		Subject:     parseSubject(tmpl.subject, data),
		HTMLContent: htmlContent,
		TextContent: textContent,
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: map[string]string{"category": tmpl.category},
	})
}

// SendTransactionalEmail sends a general transactional email
func (s *EmailService) SendTransactionalEmail(ctx context.Context, p params.TransactionalEmailParams) error {
	fromName, fromEmail := s.fromName, s.fromEmail
	if p.From != "" {
		fromEmail = p.From
	}
	if p.FromName != "" {
		fromName = p.FromName
	}

	request := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", fromName, fromEmail),
		To:      p.To,
		Subject: p.Subject,
		Html:    p.HTMLContent,
		Text:    p.TextContent,
		Headers: p.Headers,
		Tags:    convertToResendTags(p.Tags),
	}
	if p.ReplyTo != nil {
		request.ReplyTo = *p.ReplyTo
	}

	sent, err := s.emails.Send(request)
	if err != nil {
		s.logger.Error("failed to send transactional email",
			zap.Error(err),
			zap.Strings("to", p.To),
			zap.String("subject", p.Subject))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("transactional email sent",
		zap.String("email_id", sent.Id),
		zap.Strings("to", p.To),
		zap.String("subject", p.Subject))
	return nil
}

type templateExecutor interface {
	Execute(wr io.Writer, data any) error
}

func renderTemplate(tmpl templateExecutor, data business.EmailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// parseSubject replaces simple placeholders in the subject line
func parseSubject(subject string, data business.EmailData) string {
	replacer := strings.NewReplacer(
		"{{recipient_name}}", data.RecipientName,
		"{{event_title}}", data.EventTitle,
		"{{amount}}", data.Amount,
		"{{currency}}", data.Currency,
	)
	return replacer.Replace(subject)
}

func convertToResendTags(tags map[string]string) []resend.Tag {
	if len(tags) == 0 {
		return nil
	}
	out := make([]resend.Tag, 0, len(tags))
	for name, value := range tags {
		out = append(out, resend.Tag{Name: name, Value: value})
	}
	return out
}
