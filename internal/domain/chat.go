package domain

// Intent is the classified purpose of a chat message.
type Intent string

const (
	IntentSubscription Intent = "subscription"
	IntentWorkout      Intent = "workout"
	IntentTrainer      Intent = "trainer"
	IntentMembership   Intent = "membership"
	IntentBooking      Intent = "booking"
	IntentGreeting     Intent = "greeting"
	IntentHelp         Intent = "help"
	IntentGymInfo      Intent = "gym_info"
	IntentDefault      Intent = "default"
)

// ChatResponse is the structured reply produced for every chat message.
// Message may carry <b> markup and newlines for the widget to render.
type ChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Type    Intent `json:"type"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
