package models

import "gorm.io/gorm"

// Roles stored on a user record. Every registered user starts as
// RoleNone; only an admin can promote.
const (
	RoleNone       = "none"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"default:''"`
	Email    string `json:"email" gorm:"unique;not null"`
	PhotoURL string `json:"photoURL" gorm:"default:''"`
	Role     string `json:"role" gorm:"default:'none'"`
}
