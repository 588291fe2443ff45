package models

import "time"

// Payment defines the payment model based on the 'payments' table.
// StudentID is a soft reference: existence is not checked on write.
type Payment struct {
	PaymentID   int64         `json:"payment_id" db:"payment_id"`
	StudentID   string        `json:"student_id" db:"student_id"`
	Amount      float64       `json:"amount" db:"amount"`
	PaymentDate time.Time     `json:"payment_date" db:"payment_date"`
	PaymentType string        `json:"payment_type" db:"payment_type"`
	Status      PaymentStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"-" db:"created_at"`
}
