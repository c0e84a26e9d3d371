package notify

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"go.uber.org/zap"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/config"
)

// Sender delivers a single email. Implementations can be swapped without changing callers.
type Sender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage represents an email to be sent.
type EmailMessage struct {
	To      string `json:"to"`
	ToName  string `json:"toName,omitempty"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html,omitempty"`
}

// LogSender records messages instead of delivering them.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a sender that only logs.
func NewLogSender(logger *zap.Logger) *LogSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSender{logger: logger}
}

// Send logs the email but doesn't deliver it.
func (s *LogSender) Send(ctx context.Context, msg EmailMessage) error {
	s.logger.Info("email not delivered, log provider active", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

// NewSender builds the sender selected by MAIL_PROVIDER.
func NewSender(ctx context.Context, cfg config.MailConfig, logger *zap.Logger) (Sender, error) {
	switch cfg.Provider {
	case "", "log":
		return NewLogSender(logger), nil
	case "sendgrid":
		sender := NewSendGridSender(SendGridConfig{APIKey: cfg.SendGridAPIKey, FromEmail: cfg.FromEmail, FromName: cfg.FromName}, logger)
		if sender == nil {
			return nil, fmt.Errorf("notify: sendgrid api key is empty")
		}
		return sender, nil
	case "ses":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("notify: load aws config: %w", err)
		}
		return NewSESSender(sesv2.NewFromConfig(awsCfg), SESConfig{FromEmail: cfg.FromEmail, FromName: cfg.FromName}, logger), nil
	case "webhook":
		return NewWebhookSender(ctx, nil, cfg.WebhookURL, logger)
	default:
		return nil, fmt.Errorf("notify: unsupported mail provider %q", cfg.Provider)
	}
}

var _ Sender = (*LogSender)(nil)
