package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/logger"
)

// ComplaintRepository handles complaint database operations.
// student_id is a soft reference on write; the listing join only decorates
// rows with the student's name.
type ComplaintRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all complaints with the owning student's name, newest first
func (r *ComplaintRepository) GetAll(ctx context.Context) ([]*models.Complaint, error) {
	sql, args, err := r.sb.Select("c.complaint_id", "c.student_id", "c.issue_type", "c.description", "c.status", "c.complaint_date", "s.name").
		From("complaints c").
		Join("students s ON c.student_id = s.student_id").
		OrderBy("c.complaint_date DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all complaints SQL")
		return nil, fmt.Errorf("failed to build get all complaints query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all complaints query")
		return nil, fmt.Errorf("error querying complaints: %w", err)
	}
	defer rows.Close()

	complaints := []*models.Complaint{}
	for rows.Next() {
		complaint := &models.Complaint{}
		if err := rows.Scan(&complaint.ComplaintID, &complaint.StudentID, &complaint.IssueType, &complaint.Description, &complaint.Status, &complaint.ComplaintDate, &complaint.StudentName); err != nil {
			logger.Error().Err(err).Msg("Error scanning complaint row during get all")
			return nil, fmt.Errorf("error scanning complaint row: %w", err)
		}
		complaints = append(complaints, complaint)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating complaint rows")
		return nil, fmt.Errorf("error iterating complaint rows: %w", err)
	}

	return complaints, nil
}

// Create inserts a new complaint with Pending status and returns its ID
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) (int64, error) {
	sql, args, err := r.sb.Insert("complaints").
		Columns("student_id", "issue_type", "description", "status").
		Values(complaint.StudentID, complaint.IssueType, complaint.Description, models.ComplaintPending).
		Suffix("RETURNING complaint_id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create complaint SQL")
		return 0, fmt.Errorf("failed to build create complaint query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create complaint query")
		return 0, fmt.Errorf("error creating complaint: %w", err)
	}

	return id, nil
}

// Resolve marks a complaint as Resolved. The transition is one-way; a
// resolved complaint stays resolved.
func (r *ComplaintRepository) Resolve(ctx context.Context, complaintID int64) error {
	sql, args, err := r.sb.Update("complaints").
		Set("status", models.ComplaintResolved).
		Where(squirrel.Eq{"complaint_id": complaintID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building resolve complaint SQL")
		return fmt.Errorf("failed to build resolve complaint query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("complaintID", complaintID).Msg("Error executing resolve complaint query")
		return fmt.Errorf("error resolving complaint: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// CountPending returns the number of complaints still pending
func (r *ComplaintRepository) CountPending(ctx context.Context) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("complaints").
		Where(squirrel.Eq{"status": models.ComplaintPending}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build count pending complaints query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting pending complaints")
		return 0, fmt.Errorf("error counting pending complaints: %w", err)
	}

	return count, nil
}

// CountAll returns the total number of complaints
func (r *ComplaintRepository) CountAll(ctx context.Context) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("complaints").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count complaints query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting complaints")
		return 0, fmt.Errorf("error counting complaints: %w", err)
	}

	return count, nil
}

// GetRecent retrieves the most recently filed complaints
func (r *ComplaintRepository) GetRecent(ctx context.Context, limit uint64) ([]*models.Complaint, error) {
	sql, args, err := r.sb.Select("complaint_id", "student_id", "issue_type", "description", "status", "complaint_date").
		From("complaints").
		OrderBy("complaint_date DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build recent complaints query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing recent complaints query")
		return nil, fmt.Errorf("error querying recent complaints: %w", err)
	}
	defer rows.Close()

	complaints := []*models.Complaint{}
	for rows.Next() {
		complaint := &models.Complaint{}
		if err := rows.Scan(&complaint.ComplaintID, &complaint.StudentID, &complaint.IssueType, &complaint.Description, &complaint.Status, &complaint.ComplaintDate); err != nil {
			return nil, fmt.Errorf("error scanning recent complaint row: %w", err)
		}
		complaints = append(complaints, complaint)
	}

	return complaints, rows.Err()
}
