// Package notify delivers sales lead alerts over email (SES) and SMS (SNS).
// Alert delivery is best effort: a lead is accepted as soon as it validates,
// and channel failures are logged and counted, never surfaced to the visitor.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"

	"dukapos-web/internal/common/errors"
	"dukapos-web/internal/common/logger"
	"dukapos-web/internal/common/metrics"
)

// Define interfaces for mocking
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Lead is a sales enquiry captured from the site.
type Lead struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	BusinessType string `json:"business_type,omitempty"`
	City         string `json:"city,omitempty"`
	Message      string `json:"message,omitempty"`
	SourcePage   string `json:"source_page,omitempty"`
}

// Validate checks the minimum fields a sales follow-up needs.
func (l *Lead) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return &errors.StandardError{
			Code:      errors.ErrCodeLeadInvalid,
			Message:   "Lead name is required",
			Timestamp: time.Now().UTC(),
		}
	}
	if strings.TrimSpace(l.Phone) == "" {
		return &errors.StandardError{
			Code:      errors.ErrCodeLeadInvalid,
			Message:   "Lead phone number is required",
			Timestamp: time.Now().UTC(),
		}
	}
	return nil
}

// Config holds alert delivery settings.
type Config struct {
	Enabled    bool
	AWSRegion  string
	FromEmail  string
	SalesEmail string
	SalesPhone string
	Timeout    time.Duration
}

// Notifier fans a lead out to the configured alert channels.
type Notifier struct {
	config    Config
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
}

func New(ctx context.Context, cfg Config, log logger.Logger) (*Notifier, error) {
	n := &Notifier{
		config: cfg,
		logger: log.With(map[string]interface{}{"component": "notify"}),
	}
	if !cfg.Enabled {
		return n, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	n.sesClient = ses.NewFromConfig(awsCfg)
	n.snsClient = sns.NewFromConfig(awsCfg)
	return n, nil
}

// NewWithClients wires explicit clients, used by tests.
func NewWithClients(cfg Config, log logger.Logger, sesClient SESService, snsClient SNSService) *Notifier {
	return &Notifier{
		config:    cfg,
		logger:    log.With(map[string]interface{}{"component": "notify"}),
		sesClient: sesClient,
		snsClient: snsClient,
	}
}

// Alert validates the lead and dispatches the alerts in the background. The
// returned ID identifies the lead in logs; delivery happens under the
// notifier's own timeout, detached from the request context.
func (n *Notifier) Alert(lead *Lead) (string, error) {
	if err := lead.Validate(); err != nil {
		return "", err
	}

	leadID := uuid.New().String()
	if !n.config.Enabled {
		n.logger.Info("lead captured, alerts disabled", map[string]interface{}{
			"leadId": leadID,
		})
		return leadID, nil
	}

	go n.dispatch(leadID, lead)
	return leadID, nil
}

func (n *Notifier) dispatch(leadID string, lead *Lead) {
	ctx, cancel := context.WithTimeout(context.Background(), n.config.Timeout)
	defer cancel()

	subject, body := renderAlert(leadID, lead)

	if n.config.SalesEmail != "" {
		if err := n.sendEmail(ctx, n.config.SalesEmail, subject, body); err != nil {
			metrics.LeadAlerts.WithLabelValues("email", "failed").Inc()
			n.logger.Error("email alert failed", map[string]interface{}{
				"error":  err,
				"leadId": leadID,
			})
		} else {
			metrics.LeadAlerts.WithLabelValues("email", "sent").Inc()
		}
	}

	if n.config.SalesPhone != "" {
		if err := n.sendSMS(ctx, n.config.SalesPhone, smsBody(lead)); err != nil {
			metrics.LeadAlerts.WithLabelValues("sms", "failed").Inc()
			n.logger.Error("SMS alert failed", map[string]interface{}{
				"error":  err,
				"leadId": leadID,
			})
		} else {
			metrics.LeadAlerts.WithLabelValues("sms", "sent").Inc()
		}
	}
}

func renderAlert(leadID string, lead *Lead) (subject, body string) {
	subject = fmt.Sprintf("New DukaPOS lead: %s (%s)", lead.Name, lead.Phone)

	var b strings.Builder
	fmt.Fprintf(&b, "Lead ID: %s\n", leadID)
	fmt.Fprintf(&b, "Name: %s\n", lead.Name)
	fmt.Fprintf(&b, "Phone: %s\n", lead.Phone)
	if lead.BusinessType != "" {
		fmt.Fprintf(&b, "Business: %s\n", lead.BusinessType)
	}
	if lead.City != "" {
		fmt.Fprintf(&b, "City: %s\n", lead.City)
	}
	if lead.SourcePage != "" {
		fmt.Fprintf(&b, "Page: %s\n", lead.SourcePage)
	}
	if lead.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", lead.Message)
	}
	return subject, b.String()
}

func smsBody(lead *Lead) string {
	msg := fmt.Sprintf("New DukaPOS lead: %s, %s", lead.Name, lead.Phone)
	if lead.City != "" {
		msg += ", " + lead.City
	}
	return msg
}

func (n *Notifier) sendEmail(ctx context.Context, to, subject, body string) error {
	_, err := n.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &sestypes.Destination{
			ToAddresses: []string{to},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(n.config.FromEmail),
	})
	return err
}

func (n *Notifier) sendSMS(ctx context.Context, to, message string) error {
	_, err := n.snsClient.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(message),
	})
	return err
}
