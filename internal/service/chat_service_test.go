package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"crossbox/gym-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestChatService(data *MockChatData, opts ...ChatOption) ChatService {
	return NewChatService(data, zap.NewNop(), opts...)
}

func TestClassify_Examples(t *testing.T) {
	svc := newTestChatService(&MockChatData{})

	tests := []struct {
		message string
		want    domain.Intent
	}{
		{"What are your subscription plans?", domain.IntentSubscription},
		{"How much does the yoga class cost?", domain.IntentSubscription},
		{"Tell me about membership", domain.IntentSubscription},
		{"What CLASSES do you run?", domain.IntentWorkout},
		{"Can I talk to a coach?", domain.IntentTrainer},
		{"How do I update my profile", domain.IntentMembership},
		{"I want to reserve a spot", domain.IntentBooking},
		{"hello", domain.IntentGreeting},
		{"Good Morning!", domain.IntentGreeting},
		{"I need support", domain.IntentHelp},
		{"What are your opening hours?", domain.IntentGymInfo},
		{"", domain.IntentDefault},
		{"xyz qwerty", domain.IntentDefault},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Classify(tt.message))
		})
	}
}

// One keyword per route that contains no other route's keyword.
var probeKeywords = map[domain.Intent]string{
	domain.IntentSubscription: "price",
	domain.IntentWorkout:      "workout",
	domain.IntentTrainer:      "coach",
	domain.IntentMembership:   "profile",
	domain.IntentBooking:      "reserve",
	domain.IntentGreeting:     "hello",
	domain.IntentHelp:         "support",
	domain.IntentGymInfo:      "hours",
}

func TestClassify_EarlierIntentWinsRegardlessOfWordOrder(t *testing.T) {
	svc := newTestChatService(&MockChatData{})

	for i, hi := range intentRoutes {
		for _, lo := range intentRoutes[i+1:] {
			msg := probeKeywords[lo.intent] + " and " + probeKeywords[hi.intent]
			assert.Equal(t, hi.intent, svc.Classify(msg), "message %q", msg)
		}
	}
}

func TestClassify_IsCaseInsensitive(t *testing.T) {
	svc := newTestChatService(&MockChatData{})
	for intent, kw := range probeKeywords {
		assert.Equal(t, intent, svc.Classify("  "+kw+"?"))
		assert.Equal(t, intent, svc.Classify(strings.ToUpper(kw)))
	}
}

func TestRespond_Subscription(t *testing.T) {
	ctx := context.Background()
	plans := []domain.Plan{
		{ID: "1", Name: "Basic", Level: "Beginner", Price: 999, Description: "Gym floor access", Duration: "1 month", IsActive: true},
		{ID: "2", Name: "Pro", Level: "Advanced", Price: 1999.5, Description: "Everything", IsActive: true},
	}

	t.Run("lists plans with call to action", func(t *testing.T) {
		data := &MockChatData{}
		data.On("FetchActivePlans", ctx).Return(plans, nil)

		resp := newTestChatService(data).HandleChatMessage(ctx, "What plans do you have?")

		assert.True(t, resp.Success)
		assert.Equal(t, domain.IntentSubscription, resp.Type)
		assert.Contains(t, resp.Message, subscriptionHeader)
		assert.Contains(t, resp.Message, "<b>Basic</b>")
		assert.Contains(t, resp.Message, "₹999/month")
		assert.Contains(t, resp.Message, "₹1999.50/month")
		assert.Contains(t, resp.Message, "⏱️ Duration: 1 month")
		assert.True(t, len(resp.Message) > len(subscriptionCTA))
		assert.Equal(t, subscriptionCTA, resp.Message[len(resp.Message)-len(subscriptionCTA):])
		assert.Equal(t, plans, resp.Data)
		data.AssertExpectations(t)
	})

	t.Run("no plans uses fallback", func(t *testing.T) {
		data := &MockChatData{}
		data.On("FetchActivePlans", ctx).Return([]domain.Plan{}, nil)

		resp := newTestChatService(data).Respond(ctx, domain.IntentSubscription, "plans")

		assert.True(t, resp.Success)
		assert.Equal(t, subscriptionFallback, resp.Message)
		assert.Nil(t, resp.Data)
	})

	t.Run("fetch failure apologises", func(t *testing.T) {
		data := &MockChatData{}
		data.On("FetchActivePlans", ctx).Return(nil, errors.New("connection refused"))

		resp := newTestChatService(data).Respond(ctx, domain.IntentSubscription, "plans")

		assert.False(t, resp.Success)
		assert.Equal(t, domain.IntentSubscription, resp.Type)
		assert.Equal(t, subscriptionApology, resp.Message)
		assert.Equal(t, "connection refused", resp.Error)
	})
}

func TestRespond_WorkoutUsesListLimit(t *testing.T) {
	ctx := context.Background()
	data := &MockChatData{}
	data.On("FetchDistinctClassNames", ctx, 5).Return([]string{"HIIT", "Yoga"}, nil)

	resp := newTestChatService(data, WithListLimit(5)).Respond(ctx, domain.IntentWorkout, "classes")

	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "1. <b>HIIT</b>")
	assert.Contains(t, resp.Message, "2. <b>Yoga</b>")
	assert.Equal(t, []string{"HIIT", "Yoga"}, resp.Data)
	data.AssertExpectations(t)
}

func TestRespond_Trainer(t *testing.T) {
	ctx := context.Background()
	data := &MockChatData{}
	data.On("FetchActiveTrainers", ctx, defaultListLimit).Return([]domain.Trainer{
		{ID: "t1", Name: "Asha", Specialisation: "Strength", Email: "asha@crossbox.fit"},
		{ID: "t2", Name: "Ravi", Specialisation: "Yoga"},
	}, nil)

	resp := newTestChatService(data).Respond(ctx, domain.IntentTrainer, "trainer")

	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "<b>1. Asha</b>")
	assert.Contains(t, resp.Message, "📧 Email: asha@crossbox.fit")
	assert.Contains(t, resp.Message, "<b>2. Ravi</b>")
	assert.NotContains(t, resp.Message, "📱 Phone")
}

func TestRespond_Membership(t *testing.T) {
	ctx := context.Background()

	t.Run("with members", func(t *testing.T) {
		data := &MockChatData{}
		data.On("CountActiveMembers", ctx).Return(int64(42), nil)

		resp := newTestChatService(data).Respond(ctx, domain.IntentMembership, "member")

		assert.True(t, resp.Success)
		assert.Contains(t, resp.Message, "We have 42 active members")
		assert.Nil(t, resp.Data)
	})

	t.Run("zero members uses fallback", func(t *testing.T) {
		data := &MockChatData{}
		data.On("CountActiveMembers", ctx).Return(int64(0), nil)

		resp := newTestChatService(data).Respond(ctx, domain.IntentMembership, "member")

		assert.True(t, resp.Success)
		assert.Equal(t, membershipFallback, resp.Message)
	})
}

func TestRespond_Booking(t *testing.T) {
	ctx := context.Background()

	t.Run("popular classes", func(t *testing.T) {
		data := &MockChatData{}
		data.On("FetchDistinctBookingClassNames", ctx, defaultListLimit).Return([]string{"Zumba"}, nil)

		resp := newTestChatService(data).Respond(ctx, domain.IntentBooking, "booking")

		assert.True(t, resp.Success)
		assert.Contains(t, resp.Message, "<b>Popular Classes:</b>\n1. Zumba\n")
		assert.Contains(t, resp.Message, bookingCTA)
	})

	t.Run("no bookings uses fallback", func(t *testing.T) {
		data := &MockChatData{}
		data.On("FetchDistinctBookingClassNames", ctx, defaultListLimit).Return(nil, nil)

		resp := newTestChatService(data).Respond(ctx, domain.IntentBooking, "booking")

		assert.Equal(t, bookingFallback, resp.Message)
	})
}

// dataBackedIntents lists each intent whose reply reads the store, with the mock
// call it makes and the canned texts it falls back to.
var dataBackedIntents = []struct {
	intent   domain.Intent
	method   string
	args     []any
	empty    any
	failed   any
	fallback string
	apology  string
}{
	{domain.IntentSubscription, "FetchActivePlans", nil, []domain.Plan{}, nil, subscriptionFallback, subscriptionApology},
	{domain.IntentWorkout, "FetchDistinctClassNames", []any{defaultListLimit}, []string{}, nil, workoutFallback, workoutApology},
	{domain.IntentTrainer, "FetchActiveTrainers", []any{defaultListLimit}, []domain.Trainer{}, nil, trainerFallback, trainerApology},
	{domain.IntentMembership, "CountActiveMembers", nil, int64(0), int64(0), membershipFallback, membershipApology},
	{domain.IntentBooking, "FetchDistinctBookingClassNames", []any{defaultListLimit}, []string{}, nil, bookingFallback, bookingApology},
}

func TestRespond_EmptyResultUsesFallback(t *testing.T) {
	ctx := context.Background()
	for _, tt := range dataBackedIntents {
		t.Run(string(tt.intent), func(t *testing.T) {
			data := &MockChatData{}
			data.On(tt.method, append([]any{ctx}, tt.args...)...).Return(tt.empty, nil)

			resp := newTestChatService(data).Respond(ctx, tt.intent, "anything")

			assert.True(t, resp.Success)
			assert.Equal(t, tt.intent, resp.Type)
			assert.Equal(t, tt.fallback, resp.Message)
			assert.Nil(t, resp.Data)
			assert.Empty(t, resp.Error)
			data.AssertExpectations(t)
		})
	}
}

func TestRespond_FetchFailureApologises(t *testing.T) {
	ctx := context.Background()
	for _, tt := range dataBackedIntents {
		t.Run(string(tt.intent), func(t *testing.T) {
			data := &MockChatData{}
			data.On(tt.method, append([]any{ctx}, tt.args...)...).Return(tt.failed, errors.New("connection refused"))

			resp := newTestChatService(data).Respond(ctx, tt.intent, "anything")

			assert.False(t, resp.Success)
			assert.Equal(t, tt.intent, resp.Type)
			assert.Equal(t, tt.apology, resp.Message)
			assert.Equal(t, "connection refused", resp.Error)
			assert.Nil(t, resp.Data)
			data.AssertExpectations(t)
		})
	}
}

func TestRespond_StaticIntentsNeedNoData(t *testing.T) {
	ctx := context.Background()
	data := &MockChatData{}
	svc := newTestChatService(data, WithRandom(rand.New(rand.NewPCG(1, 2))))

	help := svc.HandleChatMessage(ctx, "can you help me")
	assert.True(t, help.Success)
	assert.Equal(t, domain.IntentHelp, help.Type)
	assert.Equal(t, helpMessage, help.Message)

	info := svc.HandleChatMessage(ctx, "where is the gym located")
	assert.Equal(t, domain.IntentGymInfo, info.Type)
	assert.Equal(t, gymInfoMessage, info.Message)

	greet := svc.HandleChatMessage(ctx, "hey")
	assert.Equal(t, domain.IntentGreeting, greet.Type)
	assert.Contains(t, greetingVariants, greet.Message)

	data.AssertNotCalled(t, "FetchActivePlans", mock.Anything)
}

func TestRespond_DefaultDrawsFromVariants(t *testing.T) {
	ctx := context.Background()
	svc := newTestChatService(&MockChatData{})

	seen := map[string]bool{}
	for range 100 {
		resp := svc.HandleChatMessage(ctx, "xyz qwerty")
		require.True(t, resp.Success)
		require.Equal(t, domain.IntentDefault, resp.Type)
		require.Contains(t, defaultVariants, resp.Message)
		seen[resp.Message] = true
	}
	assert.NotEmpty(t, seen)
}

func TestRespond_UnknownIntentFallsBackToDefault(t *testing.T) {
	resp := newTestChatService(&MockChatData{}).Respond(context.Background(), domain.Intent("weather"), "rain?")
	assert.Equal(t, domain.IntentDefault, resp.Type)
	assert.Contains(t, defaultVariants, resp.Message)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "999", formatPrice(999))
	assert.Equal(t, "999.50", formatPrice(999.5))
	assert.Equal(t, "0", formatPrice(0))
}
