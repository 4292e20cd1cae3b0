package entity

import (
	"time"
)

// Booking is owned jointly by the user who created it and the provider it
// targets. Date holds dates[0] by convention for multi-date events.
type Booking struct {
	ID         string    `json:"id" firestore:"id"`
	UserID     string    `json:"userId" firestore:"userId"`
	ProviderID string    `json:"providerId" firestore:"providerId"`
	ServiceID  string    `json:"serviceId" firestore:"serviceId"`
	EventType  string    `json:"eventType" firestore:"eventType"`
	Date       string    `json:"date" firestore:"date"`
	Dates      []string  `json:"dates" firestore:"dates"`
	Time       string    `json:"time" firestore:"time"`
	GuestCount int       `json:"guestCount" firestore:"guestCount"`
	Notes      string    `json:"notes" firestore:"notes"`
	TotalPrice float64   `json:"totalPrice" firestore:"totalPrice"`
	Status     string    `json:"status" firestore:"status"` // pending, confirmed, completed, cancelled
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" firestore:"updatedAt"`
}
