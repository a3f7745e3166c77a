package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"crossbox/gym-api/internal/domain"
	"crossbox/gym-api/internal/metrics"
	"crossbox/gym-api/internal/repository"

	"go.uber.org/zap"
)

// defaultListLimit caps every list the chat assistant fetches.
const defaultListLimit = 10

// ChatService answers free-text questions about the gym.
type ChatService interface {
	// Classify maps a message to the first intent, in priority order, whose keywords it contains.
	Classify(message string) domain.Intent
	// Respond builds the reply for an already classified message. It never returns an error:
	// data failures become a reply with Success=false.
	Respond(ctx context.Context, intent domain.Intent, message string) domain.ChatResponse
	// HandleChatMessage classifies and responds in one call.
	HandleChatMessage(ctx context.Context, message string) domain.ChatResponse
}

// intentRoute binds an intent to its trigger keywords and reply builder.
type intentRoute struct {
	intent   domain.Intent
	keywords []string
	respond  func(s *chatService, ctx context.Context) domain.ChatResponse
}

// intentRoutes is scanned top to bottom; the first route with a keyword hit wins.
// Messages matching none of them fall through to IntentDefault.
var intentRoutes = []intentRoute{
	{domain.IntentSubscription, []string{"subscription", "plan", "membership", "price", "cost", "fee"}, (*chatService).subscriptionReply},
	{domain.IntentWorkout, []string{"workout", "exercise", "class", "training", "session", "classes"}, (*chatService).workoutReply},
	{domain.IntentTrainer, []string{"trainer", "coach", "instructor", "specialist"}, (*chatService).trainerReply},
	{domain.IntentMembership, []string{"member", "user", "profile", "account", "registration"}, (*chatService).membershipReply},
	{domain.IntentBooking, []string{"booking", "reserve", "appointment", "schedule"}, (*chatService).bookingReply},
	{domain.IntentGreeting, []string{"hello", "hi", "hey", "greet", "good morning", "how are you"}, (*chatService).greetingReply},
	{domain.IntentHelp, []string{"help", "support", "assist", "question"}, fixedReply(domain.IntentHelp, helpMessage)},
	{domain.IntentGymInfo, []string{"gym", "location", "address", "hours", "timing", "open", "about"}, fixedReply(domain.IntentGymInfo, gymInfoMessage)},
}

// ChatOption customises a chat service.
type ChatOption func(*chatService)

// WithRandom makes greeting and fallback variant selection draw from r.
// *rand.Rand is not safe for concurrent use, so this is meant for tests.
func WithRandom(r *rand.Rand) ChatOption {
	return func(s *chatService) { s.pick = r.IntN }
}

// WithListLimit overrides how many plans, trainers or class names a reply lists.
func WithListLimit(n int) ChatOption {
	return func(s *chatService) {
		if n > 0 {
			s.listLimit = n
		}
	}
}

type chatService struct {
	data      repository.ChatDataSource
	logger    *zap.Logger
	pick      func(n int) int
	listLimit int
}

// NewChatService creates the chat assistant over the given data source.
func NewChatService(data repository.ChatDataSource, logger *zap.Logger, opts ...ChatOption) ChatService {
	s := &chatService{
		data:      data,
		logger:    logger,
		pick:      rand.IntN,
		listLimit: defaultListLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *chatService) Classify(message string) domain.Intent {
	lower := strings.ToLower(message)
	for _, route := range intentRoutes {
		if containsAny(lower, route.keywords) {
			return route.intent
		}
	}
	return domain.IntentDefault
}

func (s *chatService) Respond(ctx context.Context, intent domain.Intent, message string) domain.ChatResponse {
	for _, route := range intentRoutes {
		if route.intent == intent {
			return route.respond(s, ctx)
		}
	}
	return s.defaultReply()
}

func (s *chatService) HandleChatMessage(ctx context.Context, message string) domain.ChatResponse {
	intent := s.Classify(message)
	metrics.ChatMessages.WithLabelValues(string(intent)).Inc()
	s.logger.Debug("Chat message classified", zap.String("intent", string(intent)))
	return s.Respond(ctx, intent, message)
}

// --- Reply template ---

// replySpec describes one data-backed reply: fetch, then either format the result
// and append the call to action, or use the fallback when there is nothing to show.
type replySpec[T any] struct {
	intent   domain.Intent
	fetch    func(ctx context.Context) (T, error)
	empty    func(T) bool
	format   func(T) string
	cta      string
	fallback string // complete message, used when empty(result)
	apology  string // shown when fetch fails
	withData bool   // attach the fetched value to the response
}

func buildReply[T any](ctx context.Context, s *chatService, spec replySpec[T]) domain.ChatResponse {
	v, err := spec.fetch(ctx)
	if err != nil {
		return s.fetchFailed(spec.intent, spec.apology, err)
	}

	if spec.empty(v) {
		return domain.ChatResponse{Success: true, Message: spec.fallback, Type: spec.intent}
	}

	resp := domain.ChatResponse{
		Success: true,
		Message: spec.format(v) + spec.cta,
		Type:    spec.intent,
	}
	if spec.withData {
		resp.Data = v
	}
	return resp
}

// listFormat renders header, one line per item, then footer.
func listFormat[T any](header string, line func(i int, item T) string, footer string) func([]T) string {
	return func(items []T) string {
		var b strings.Builder
		b.WriteString(header)
		for i, item := range items {
			b.WriteString(line(i, item))
		}
		b.WriteString(footer)
		return b.String()
	}
}

func isEmpty[T any](items []T) bool { return len(items) == 0 }

func (s *chatService) fetchFailed(intent domain.Intent, apology string, err error) domain.ChatResponse {
	metrics.ChatFetchFailures.WithLabelValues(string(intent)).Inc()
	s.logger.Error("Chat data fetch failed", zap.String("intent", string(intent)), zap.Error(err))
	return domain.ChatResponse{
		Success: false,
		Message: apology,
		Type:    intent,
		Error:   err.Error(),
	}
}

// --- Per-intent replies ---

func (s *chatService) subscriptionReply(ctx context.Context) domain.ChatResponse {
	return buildReply(ctx, s, replySpec[[]domain.Plan]{
		intent: domain.IntentSubscription,
		fetch:  s.data.FetchActivePlans,
		empty:  isEmpty[domain.Plan],
		format: listFormat(subscriptionHeader, func(_ int, p domain.Plan) string {
			line := fmt.Sprintf("<b>%s</b>\n💪 Level: %s\n💵 Price: ₹%s/month\n📝 Description: %s\n",
				p.Name, p.Level, formatPrice(p.Price), p.Description)
			if p.Duration != "" {
				line += fmt.Sprintf("⏱️ Duration: %s\n", p.Duration)
			}
			return line + "\n"
		}, ""),
		cta:      subscriptionCTA,
		fallback: subscriptionFallback,
		apology:  subscriptionApology,
		withData: true,
	})
}

func (s *chatService) workoutReply(ctx context.Context) domain.ChatResponse {
	return buildReply(ctx, s, replySpec[[]string]{
		intent: domain.IntentWorkout,
		fetch: func(ctx context.Context) ([]string, error) {
			return s.data.FetchDistinctClassNames(ctx, s.listLimit)
		},
		empty: isEmpty[string],
		format: listFormat(workoutHeader, func(i int, name string) string {
			return fmt.Sprintf("%d. <b>%s</b> - Check our schedule for availability\n", i+1, name)
		}, "\n"),
		cta:      workoutCTA,
		fallback: workoutFallback,
		apology:  workoutApology,
		withData: true,
	})
}

func (s *chatService) trainerReply(ctx context.Context) domain.ChatResponse {
	return buildReply(ctx, s, replySpec[[]domain.Trainer]{
		intent: domain.IntentTrainer,
		fetch: func(ctx context.Context) ([]domain.Trainer, error) {
			return s.data.FetchActiveTrainers(ctx, s.listLimit)
		},
		empty: isEmpty[domain.Trainer],
		format: listFormat(trainerHeader, func(i int, t domain.Trainer) string {
			line := fmt.Sprintf("<b>%d. %s</b>\n🎯 Specialization: %s\n", i+1, t.Name, t.Specialisation)
			if t.Email != "" {
				line += fmt.Sprintf("📧 Email: %s\n", t.Email)
			}
			if t.Phone != "" {
				line += fmt.Sprintf("📱 Phone: %s\n", t.Phone)
			}
			return line + "\n"
		}, ""),
		cta:      trainerCTA,
		fallback: trainerFallback,
		apology:  trainerApology,
		withData: true,
	})
}

func (s *chatService) membershipReply(ctx context.Context) domain.ChatResponse {
	return buildReply(ctx, s, replySpec[int64]{
		intent: domain.IntentMembership,
		fetch:  s.data.CountActiveMembers,
		empty:  func(n int64) bool { return n <= 0 },
		format: func(n int64) string {
			return membershipHeader +
				fmt.Sprintf("✨ We have %d active members in our gym family!\n\n", n) +
				membershipDetails
		},
		cta:      membershipCTA,
		fallback: membershipFallback,
		apology:  membershipApology,
	})
}

func (s *chatService) bookingReply(ctx context.Context) domain.ChatResponse {
	return buildReply(ctx, s, replySpec[[]string]{
		intent: domain.IntentBooking,
		fetch: func(ctx context.Context) ([]string, error) {
			return s.data.FetchDistinctBookingClassNames(ctx, s.listLimit)
		},
		empty: isEmpty[string],
		format: listFormat(bookingSteps+"<b>Popular Classes:</b>\n", func(i int, name string) string {
			return fmt.Sprintf("%d. %s\n", i+1, name)
		}, bookingSlots),
		cta:      bookingCTA,
		fallback: bookingFallback,
		apology:  bookingApology,
	})
}

func (s *chatService) greetingReply(_ context.Context) domain.ChatResponse {
	return domain.ChatResponse{Success: true, Message: s.choose(greetingVariants), Type: domain.IntentGreeting}
}

func (s *chatService) defaultReply() domain.ChatResponse {
	return domain.ChatResponse{Success: true, Message: s.choose(defaultVariants), Type: domain.IntentDefault}
}

func fixedReply(intent domain.Intent, message string) func(*chatService, context.Context) domain.ChatResponse {
	return func(*chatService, context.Context) domain.ChatResponse {
		return domain.ChatResponse{Success: true, Message: message, Type: intent}
	}
}

func (s *chatService) choose(variants []string) string {
	return variants[s.pick(len(variants))]
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// formatPrice drops the fraction for whole amounts: 999 -> "999", 999.5 -> "999.50".
func formatPrice(p float64) string {
	if p == float64(int64(p)) {
		return fmt.Sprintf("%d", int64(p))
	}
	return fmt.Sprintf("%.2f", p)
}
