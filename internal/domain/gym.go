package domain

import "time"

// Plan is a subscription plan offered by the gym.
type Plan struct {
	ID          string  `json:"id"`
	Name        string  `json:"planName"`
	Level       string  `json:"planLevel"`
	Price       float64 `json:"planPrice"`
	Description string  `json:"planDesc"`
	Duration    string  `json:"planDuration,omitempty"`
	IsActive    bool    `json:"isActive"`
}

// Trainer is a gym trainer profile.
type Trainer struct {
	ID             string `json:"trainerId"`
	Name           string `json:"trainerName"`
	Specialisation string `json:"specialisation"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	IsActive       bool   `json:"isActive"`
	PhotoKey       string `json:"-"`
}

// Class is a scheduled class type that can be recommended and booked.
type Class struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	TrainerName     string `json:"trainerName,omitempty"`
	DurationMinutes int    `json:"durationMinutes"`
	Difficulty      string `json:"difficulty"`
	Intensity       string `json:"intensity"`
	Description     string `json:"description,omitempty"`
}

// BookingStatus is the outcome of a booking request.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingWaitlist  BookingStatus = "Waitlist"
)

// Booking is a single class reservation.
type Booking struct {
	ID          string        `json:"id"`
	FullName    string        `json:"fullName"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	ClassName   string        `json:"className"`
	BookingDate string        `json:"bookingDate"` // YYYY-MM-DD
	TimeSlot    string        `json:"timeSlot"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}
