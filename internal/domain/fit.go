package domain

import "time"

// Goal is the primary fitness goal picked in the Find My Fit quiz.
type Goal string

const (
	GoalWeightLoss     Goal = "weight_loss"
	GoalMuscleGain     Goal = "muscle_gain"
	GoalEndurance      Goal = "endurance"
	GoalFlexibility    Goal = "flexibility"
	GoalGeneralFitness Goal = "general_fitness"
)

// Experience is the self-reported training level. Class difficulty uses the same values.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// Intensity is the preferred workout intensity.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

// Goals lists every supported goal in quiz order.
var Goals = []Goal{GoalWeightLoss, GoalMuscleGain, GoalEndurance, GoalFlexibility, GoalGeneralFitness}

// Intensities lists every supported intensity from gentlest to hardest.
var Intensities = []Intensity{IntensityLow, IntensityModerate, IntensityHigh}

// Contact holds the quiz taker's contact details.
type Contact struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

// FitQuizAnswer is one completed Find My Fit quiz. It is never modified after submission.
type FitQuizAnswer struct {
	Goal           Goal       `json:"goal" bson:"goal"`
	Experience     Experience `json:"experience" bson:"experience"`
	Intensity      Intensity  `json:"intensity" bson:"intensity"`
	Duration       int        `json:"duration" bson:"duration"` // minutes per session
	HealthNotes    string     `json:"healthNotes,omitempty" bson:"healthNotes,omitempty"`
	ContactTrainer bool       `json:"contactTrainer" bson:"contactTrainer"`
	Contact        Contact    `json:"contact" bson:"contact"`
}

// Recommendation is a ranked class suggestion with its justification.
type Recommendation struct {
	Class       Class  `json:"class"`
	MatchReason string `json:"matchReason"`
	Rank        int    `json:"rank"` // 1-based
}

// FitResult is what a quiz submission returns to the caller.
type FitResult struct {
	SubmissionID    string           `json:"submissionId"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Submission is the persisted form of a FitQuizAnswer.
type Submission struct {
	ID        string        `json:"id"`
	Answer    FitQuizAnswer `json:"answer"`
	CreatedAt time.Time     `json:"createdAt"`
}
