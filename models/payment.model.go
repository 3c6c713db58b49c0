package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment is an append-only record written by the enrollment
// workflow. Nothing updates or deletes payments.
type Payment struct {
	gorm.Model
	Email         string    `json:"email" gorm:"index;not null"`
	ClassID       uint      `json:"classId" gorm:"index;not null"`
	CartID        uint      `json:"cartId"`
	ClassName     string    `json:"className"`
	TransactionID string    `json:"transactionId"`
	Amount        float64   `json:"amount"`
	PaidAt        time.Time `json:"paidAt"`
}
