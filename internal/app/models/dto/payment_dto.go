package dto

import (
	"fmt"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
)

// CreatePaymentRequest is the body of POST /api/payments. The date must
// be YYYY-MM-DD; parsing happens in the service.
type CreatePaymentRequest struct {
	StudentID   string  `json:"student_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	PaymentDate string  `json:"payment_date" binding:"required"`
	PaymentType string  `json:"payment_type" binding:"required"`
}

// PaymentResponse is a single payment as listed by GET /api/payments.
// Amount is preformatted with the currency symbol.
type PaymentResponse struct {
	PaymentID   int64  `json:"payment_id"`
	StudentID   string `json:"student_id"`
	Amount      string `json:"amount"`
	PaymentDate string `json:"payment_date"`
	PaymentType string `json:"payment_type"`
	Status      string `json:"status"`
}

// NewPaymentListResponse maps payment models to their wire shape
func NewPaymentListResponse(payments []*models.Payment) []PaymentResponse {
	result := make([]PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		result = append(result, PaymentResponse{
			PaymentID:   payment.PaymentID,
			StudentID:   payment.StudentID,
			Amount:      fmt.Sprintf("₹%.2f", payment.Amount),
			PaymentDate: payment.PaymentDate.Format("2006-01-02"),
			PaymentType: payment.PaymentType,
			Status:      string(payment.Status),
		})
	}
	return result
}
