// Package notify sends the trainer-desk email for quiz takers who asked to be contacted.
package notify

import (
	"context"
	"fmt"
	"strings"

	"crossbox/gym-api/internal/config"
	"crossbox/gym-api/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"
)

// Notifier delivers a trainer-contact request.
type Notifier interface {
	NotifyTrainerContact(ctx context.Context, submissionID string, answer domain.FitQuizAnswer, recs []domain.Recommendation) error
}

// sesAPI is the subset of the SES client used here.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESNotifier emails the trainer desk through Amazon SES.
type SESNotifier struct {
	client sesAPI
	from   string
	to     string
	logger *zap.Logger
}

// NewSESNotifier loads the default AWS credential chain for cfg.Region.
func NewSESNotifier(ctx context.Context, cfg config.NotificationsConfig, logger *zap.Logger) (*SESNotifier, error) {
	awsConfig, err := awsCfg.LoadDefaultConfig(ctx, awsCfg.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config for ses: %w", err)
	}
	return newSESNotifier(ses.NewFromConfig(awsConfig), cfg.FromEmail, cfg.TrainerDeskEmail, logger), nil
}

func newSESNotifier(client sesAPI, from, to string, logger *zap.Logger) *SESNotifier {
	return &SESNotifier{client: client, from: from, to: to, logger: logger}
}

func (n *SESNotifier) NotifyTrainerContact(ctx context.Context, submissionID string, answer domain.FitQuizAnswer, recs []domain.Recommendation) error {
	input := &ses.SendEmailInput{
		Source:           aws.String(n.from),
		Destination:      &types.Destination{ToAddresses: []string{n.to}},
		ReplyToAddresses: replyTo(answer.Contact.Email),
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(fmt.Sprintf("Trainer contact request: %s", answer.Contact.Name)),
			},
			Body: &types.Body{
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(contactBody(submissionID, answer, recs)),
				},
			},
		},
	}

	out, err := n.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("ses send email: %w", err)
	}

	n.logger.Info("Trainer contact email sent",
		zap.String("submission_id", submissionID),
		zap.String("message_id", aws.ToString(out.MessageId)),
	)
	return nil
}

func replyTo(email string) []string {
	if email == "" {
		return nil
	}
	return []string{email}
}

func contactBody(submissionID string, answer domain.FitQuizAnswer, recs []domain.Recommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A Find My Fit quiz taker asked to be contacted by a trainer.\n\n")
	fmt.Fprintf(&b, "Submission: %s\n", submissionID)
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nPhone: %s\n\n", answer.Contact.Name, answer.Contact.Email, answer.Contact.Phone)
	fmt.Fprintf(&b, "Goal: %s\nExperience: %s\nIntensity: %s\nSession length: %d min\n",
		answer.Goal, answer.Experience, answer.Intensity, answer.Duration)
	if answer.HealthNotes != "" {
		fmt.Fprintf(&b, "Health notes: %s\n", answer.HealthNotes)
	}

	b.WriteString("\nRecommended classes:\n")
	if len(recs) == 0 {
		b.WriteString("  (none matched)\n")
	}
	for _, r := range recs {
		fmt.Fprintf(&b, "  %d. %s (%d min, %s)\n", r.Rank, r.Class.Name, r.Class.DurationMinutes, r.Class.Difficulty)
	}
	return b.String()
}
