package models

import "gorm.io/gorm"

// Instructor-status lifecycle for a class: created PENDING, an admin
// moves it to ACTIVE or DENIED. Only ACTIVE classes are publicly
// listed and enrollable.
const (
	ClassPending = "pending"
	ClassActive  = "active"
	ClassDenied  = "denied"
)

// Class represents a bookable camp class. AvailableSeats and Enrolled
// are mutated only by the enrollment workflow, one seat at a time.
type Class struct {
	gorm.Model
	Name             string  `json:"name"`
	Image            string  `json:"image"`
	InstructorName   string  `json:"instructorName"`
	InstructorEmail  string  `json:"instructorEmail" gorm:"index;not null"`
	Price            float64 `json:"price"`
	AvailableSeats   int     `json:"availableSeats" gorm:"default:0"`
	Enrolled         int     `json:"enrolled" gorm:"default:0"`
	InstructorStatus string  `json:"instructorStatus" gorm:"default:'pending'"`
	AdminFeedback    string  `json:"adminFeedback" gorm:"type:text"`
}
