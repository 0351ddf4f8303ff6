package domain

import "time"

const (
	RoleStudent = "student"
	RoleWarden  = "warden"
	RoleAdmin   = "admin"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleWarden || role == RoleAdmin
}

// User models an authenticated actor in the system.
//
// Hostel is set for students and wardens; RoomNumber, Department, YearOfStudy
// and RollNumber are student-only. Admins carry none of the affiliation
// fields.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Hostel       string    `json:"hostel,omitempty"`
	RoomNumber   string    `json:"roomNumber,omitempty"`
	Department   string    `json:"department,omitempty"`
	YearOfStudy  string    `json:"yearOfStudy,omitempty"`
	RollNumber   string    `json:"rollNumber,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserRef is the lightweight view of a user embedded in complaint reads.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Ref returns the embeddable view of u.
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
