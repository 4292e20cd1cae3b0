package entity

import (
	"time"
)

// Service is owned by exactly one provider; ownership checks resolve
// transitively through ProviderID.
type Service struct {
	ID          string    `json:"id" firestore:"id"`
	ProviderID  string    `json:"providerId" firestore:"providerId"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	Category    string    `json:"category" firestore:"category"`
	Price       float64   `json:"price" firestore:"price"`
	Duration    int       `json:"duration" firestore:"duration"` // minutes
	Images      []string  `json:"images" firestore:"images"`
	Available   bool      `json:"available" firestore:"available"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}
