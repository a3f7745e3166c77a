package notify

import (
	"context"
	"errors"
	"testing"

	"crossbox/gym-api/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func sampleAnswer() domain.FitQuizAnswer {
	return domain.FitQuizAnswer{
		Goal:           domain.GoalMuscleGain,
		Experience:     domain.ExperienceBeginner,
		Intensity:      domain.IntensityModerate,
		Duration:       45,
		HealthNotes:    "old knee injury",
		ContactTrainer: true,
		Contact:        domain.Contact{Name: "Mira", Email: "mira@example.com", Phone: "555-0101"},
	}
}

func TestSESNotifier_SendsContactEmail(t *testing.T) {
	fake := &fakeSES{}
	n := newSESNotifier(fake, "noreply@crossbox.test", "trainers@crossbox.test", zaptest.NewLogger(t))

	recs := []domain.Recommendation{
		{Rank: 1, Class: domain.Class{Name: "Strength Training", DurationMinutes: 45, Difficulty: "beginner"}},
	}
	err := n.NotifyTrainerContact(context.Background(), "sub-1", sampleAnswer(), recs)

	require.NoError(t, err)
	require.NotNil(t, fake.input)
	assert.Equal(t, "noreply@crossbox.test", aws.ToString(fake.input.Source))
	assert.Equal(t, []string{"trainers@crossbox.test"}, fake.input.Destination.ToAddresses)
	assert.Equal(t, []string{"mira@example.com"}, fake.input.ReplyToAddresses)
	assert.Contains(t, aws.ToString(fake.input.Message.Subject.Data), "Mira")

	body := aws.ToString(fake.input.Message.Body.Text.Data)
	assert.Contains(t, body, "Submission: sub-1")
	assert.Contains(t, body, "Health notes: old knee injury")
	assert.Contains(t, body, "1. Strength Training (45 min, beginner)")
}

func TestSESNotifier_PropagatesSendError(t *testing.T) {
	fake := &fakeSES{err: errors.New("throttled")}
	n := newSESNotifier(fake, "from@x.test", "to@x.test", zaptest.NewLogger(t))

	err := n.NotifyTrainerContact(context.Background(), "sub-2", sampleAnswer(), nil)

	assert.ErrorContains(t, err, "throttled")
	assert.Contains(t, aws.ToString(fake.input.Message.Body.Text.Data), "(none matched)")
}
