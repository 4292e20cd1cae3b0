package entity

import (
	"time"
)

// Provider is the business profile of a user with role=provider. UID is
// unique: at most one provider document per user.
type Provider struct {
	ID           string    `json:"id" firestore:"id"`
	UID          string    `json:"uid" firestore:"uid"`
	BusinessName string    `json:"businessName" firestore:"businessName"`
	Description  string    `json:"description" firestore:"description"`
	Category     string    `json:"category" firestore:"category"` // venue, vendor, entertainment, other
	Location     string    `json:"location" firestore:"location"`
	City         string    `json:"city" firestore:"city"`
	PriceRange   string    `json:"priceRange" firestore:"priceRange"`
	Phone        string    `json:"phone" firestore:"phone"`
	Email        string    `json:"email" firestore:"email"`
	Avatar       string    `json:"avatar" firestore:"avatar"`
	Images       []string  `json:"images" firestore:"images"`
	Features     []string  `json:"features" firestore:"features"`
	Experience   string    `json:"experience" firestore:"experience"`
	Address      string    `json:"address" firestore:"address"`
	AadharURL    string    `json:"aadharUrl" firestore:"aadharUrl"`
	Rating       float64   `json:"rating" firestore:"rating"`
	ReviewCount  int       `json:"reviewCount" firestore:"reviewCount"`
	Status       string    `json:"status" firestore:"status"` // pending, approved, rejected
	Published    bool      `json:"published" firestore:"published"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
}
