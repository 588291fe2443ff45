package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/apperrors"
)

func TestRecordPayment(t *testing.T) {
	store := &fakePaymentStore{}
	svc := NewPaymentService(store)

	id, err := svc.RecordPayment(context.Background(), "S1001", 4500.50, "2025-06-01", "Semester Fee")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	payments, err := svc.GetAllPayments(context.Background())
	require.NoError(t, err)
	require.Len(t, payments, 1)

	payment := payments[0]
	assert.Equal(t, "S1001", payment.StudentID)
	assert.Equal(t, 4500.50, payment.Amount)
	assert.Equal(t, "Semester Fee", payment.PaymentType)
	assert.Equal(t, models.PaymentCompleted, payment.Status)
	assert.Equal(t, "2025-06-01", payment.PaymentDate.Format(PaymentDateFormat))
}

func TestRecordPaymentBadDate(t *testing.T) {
	svc := NewPaymentService(&fakePaymentStore{})

	for _, date := range []string{"01-06-2025", "2025/06/01", "yesterday", ""} {
		_, err := svc.RecordPayment(context.Background(), "S1001", 100, date, "Other")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "date %q", date)
	}
}

func TestRecordPaymentUnknownStudentAccepted(t *testing.T) {
	// student_id is a soft reference; no existence check on write.
	svc := NewPaymentService(&fakePaymentStore{})

	_, err := svc.RecordPayment(context.Background(), "S9999", 100, "2025-06-01", "Other")
	assert.NoError(t, err)
}

func TestGetAllPaymentsNewestFirst(t *testing.T) {
	store := &fakePaymentStore{}
	svc := NewPaymentService(store)

	_, err := svc.RecordPayment(context.Background(), "S1001", 100, "2025-06-01", "Other")
	require.NoError(t, err)
	_, err = svc.RecordPayment(context.Background(), "S1002", 200, "2025-06-03", "Other")
	require.NoError(t, err)

	payments, err := svc.GetAllPayments(context.Background())
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "S1002", payments[0].StudentID)
	assert.Equal(t, "S1001", payments[1].StudentID)
}
