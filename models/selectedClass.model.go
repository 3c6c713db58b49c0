package models

import "gorm.io/gorm"

// SelectedClass is one cart item: a class a user has picked but not
// yet paid for. It carries a snapshot of the class fields so the cart
// renders without joining back onto classes. Destroyed by explicit
// removal or consumed by a successful payment.
type SelectedClass struct {
	gorm.Model
	Email           string  `json:"email" gorm:"index;not null"`
	ClassID         uint    `json:"classId" gorm:"index;not null"`
	ClassName       string  `json:"className"`
	Image           string  `json:"image"`
	Price           float64 `json:"price"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail"`
}
