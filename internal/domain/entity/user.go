package entity

import (
	"time"
)

// User roles. Role on the document is the source of truth; the matching
// custom claim on the identity token is a denormalized cache refreshed
// whenever the role changes.
const (
	RoleUser     = "user"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

type User struct {
	ID        string    `json:"id" firestore:"id"`
	Email     string    `json:"email" firestore:"email"`
	Name      string    `json:"name" firestore:"name"`
	Phone     string    `json:"phone" firestore:"phone"`
	Avatar    string    `json:"avatar" firestore:"avatar"`
	Role      string    `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}
