package entity

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user can hold. Students are the default on registration.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// User represents an account in the role directory. The instructor counters
// stay at zero for students and admins.
type User struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Name            string    `json:"name"`
	Phone           *string   `json:"phone,omitempty"`
	Role            string    `json:"role"`
	TotalStudents   int       `json:"total_students"`
	NumberOfClasses int       `json:"number_of_classes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
