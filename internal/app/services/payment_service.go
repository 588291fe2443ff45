package services

import (
	"context"
	"fmt"
	"time"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/apperrors"
)

// PaymentDateFormat is the only accepted payment date layout.
const PaymentDateFormat = "2006-01-02"

// PaymentService defines the interface for payment record operations
type PaymentService interface {
	GetAllPayments(ctx context.Context) ([]*models.Payment, error)
	RecordPayment(ctx context.Context, studentID string, amount float64, paymentDate, paymentType string) (int64, error)
}

// paymentServiceImpl implements the PaymentService interface
type paymentServiceImpl struct {
	paymentStore PaymentStore
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(paymentStore PaymentStore) PaymentService {
	return &paymentServiceImpl{paymentStore: paymentStore}
}

// GetAllPayments retrieves all payments, newest payment date first
func (s *paymentServiceImpl) GetAllPayments(ctx context.Context) ([]*models.Payment, error) {
	payments, err := s.paymentStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving payments: %w", err)
	}
	return payments, nil
}

// RecordPayment stores a payment. The student_id is a soft reference and
// is not checked for existence; the date must be YYYY-MM-DD.
func (s *paymentServiceImpl) RecordPayment(ctx context.Context, studentID string, amount float64, paymentDate, paymentType string) (int64, error) {
	parsedDate, err := time.Parse(PaymentDateFormat, paymentDate)
	if err != nil {
		return 0, apperrors.NewValidationError("Invalid date format, expected YYYY-MM-DD")
	}

	payment := &models.Payment{
		StudentID:   studentID,
		Amount:      amount,
		PaymentDate: parsedDate,
		PaymentType: paymentType,
		Status:      models.PaymentCompleted,
	}

	id, err := s.paymentStore.Create(ctx, payment)
	if err != nil {
		return 0, fmt.Errorf("error recording payment: %w", err)
	}
	return id, nil
}
