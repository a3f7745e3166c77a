package domain

import "time"

// CountPair is a total/active pair shown on the admin dashboard.
type CountPair struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

// DashboardStats aggregates the admin dashboard counters.
type DashboardStats struct {
	Members  CountPair `json:"members"`
	Trainers CountPair `json:"trainers"`
	Classes  struct {
		Total int64 `json:"total"`
	} `json:"classes"`
	Bookings struct {
		Recent int64 `json:"recent"`
	} `json:"bookings"`
}

// ActivityType tags entries in the recent activity feed.
type ActivityType string

const (
	ActivityBooking       ActivityType = "booking"
	ActivityFitSubmission ActivityType = "fit_submission"
)

// ActivityItem is one row of the admin recent activity feed.
type ActivityItem struct {
	Type      ActivityType `json:"type"`
	Name      string       `json:"name"`
	ClassName string       `json:"class_name,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// ClassSummary is a class with its active booking count, used by the admin class list.
type ClassSummary struct {
	Class
	EnrolledCount int64 `json:"enrolledCount"`
}

// TrainerProfile is a trainer as listed to admins, with a short-lived photo link.
type TrainerProfile struct {
	Trainer
	PhotoURL string `json:"photoUrl,omitempty"`
}

// PhotoUpload is a presigned upload slot for a trainer photo.
type PhotoUpload struct {
	UploadURL string    `json:"uploadUrl"`
	ObjectKey string    `json:"objectKey"`
	ExpiresAt time.Time `json:"expiresAt"`
}
