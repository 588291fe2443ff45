package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/logger"
)

// PaymentRepository handles payment database operations.
// student_id is a soft reference: writes never check student existence.
type PaymentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all payments, newest payment date first
func (r *PaymentRepository) GetAll(ctx context.Context) ([]*models.Payment, error) {
	sql, args, err := r.sb.Select("payment_id", "student_id", "amount", "payment_date", "payment_type", "status", "created_at").
		From("payments").
		OrderBy("payment_date DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all payments SQL")
		return nil, fmt.Errorf("failed to build get all payments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all payments query")
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		payment := &models.Payment{}
		if err := rows.Scan(&payment.PaymentID, &payment.StudentID, &payment.Amount, &payment.PaymentDate, &payment.PaymentType, &payment.Status, &payment.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning payment row during get all")
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating payment rows")
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return payments, nil
}

// Create inserts a new payment and returns its generated ID
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) (int64, error) {
	sql, args, err := r.sb.Insert("payments").
		Columns("student_id", "amount", "payment_date", "payment_type").
		Values(payment.StudentID, payment.Amount, payment.PaymentDate, payment.PaymentType).
		Suffix("RETURNING payment_id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create payment SQL")
		return 0, fmt.Errorf("failed to build create payment query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create payment query")
		return 0, fmt.Errorf("error creating payment: %w", err)
	}

	return id, nil
}

// GetRecent retrieves the most recently recorded payments
func (r *PaymentRepository) GetRecent(ctx context.Context, limit uint64) ([]*models.Payment, error) {
	sql, args, err := r.sb.Select("payment_id", "student_id", "amount", "payment_date", "payment_type", "status", "created_at").
		From("payments").
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build recent payments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing recent payments query")
		return nil, fmt.Errorf("error querying recent payments: %w", err)
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		payment := &models.Payment{}
		if err := rows.Scan(&payment.PaymentID, &payment.StudentID, &payment.Amount, &payment.PaymentDate, &payment.PaymentType, &payment.Status, &payment.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning recent payment row: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}
