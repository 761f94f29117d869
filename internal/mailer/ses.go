package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/rentdesk/property-management-api/internal/config"
)

// Mailer delivers plain-text notification emails.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SESMailer implements Mailer via AWS SES.
type SESMailer struct {
	client   *ses.Client
	from     string
	fromName string
}

func NewSESMailer(client *ses.Client, cfg *config.SESConfig) *SESMailer {
	return &SESMailer{
		client:   client,
		from:     cfg.FromAddress,
		fromName: cfg.FromName,
	}
}

func (m *SESMailer) Send(ctx context.Context, to, subject, body string) error {
	source := m.from
	if m.fromName != "" {
		source = fmt.Sprintf("%s <%s>", m.fromName, m.from)
	}

	input := &ses.SendEmailInput{
		Source: aws.String(source),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(body),
				},
			},
		},
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("SES send failed: %w", err)
	}

	return nil
}
