package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/dberrors"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/logger"
)

// Student error types
var (
	// ErrStudentNotFound is returned when a student is not found.
	ErrStudentNotFound = ErrNotFound
	// ErrStudentAlreadyExists is returned when a student with the same ID exists.
	ErrStudentAlreadyExists = errors.New("student with this ID already exists")
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all students ordered by student ID
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select("student_id", "name", "age", "gender", "contact", "room_no", "created_at").
		From("students").
		OrderBy("student_id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all students SQL")
		return nil, fmt.Errorf("failed to build get all students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(&student.StudentID, &student.Name, &student.Age, &student.Gender, &student.Contact, &student.RoomNo, &student.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning student row during get all")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	sql, args, err := r.sb.Select("student_id", "name", "age", "gender", "contact", "room_no", "created_at").
		From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.StudentID, &student.Name, &student.Age, &student.Gender, &student.Contact, &student.RoomNo, &student.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// GetFirstByRoomNo retrieves the first student assigned to a room, in
// student ID order. Returns ErrStudentNotFound when the room is empty.
// Two students sharing a room is an invariant violation upstream; the
// ordering keeps the pick deterministic instead of hiding the defect.
func (r *StudentRepository) GetFirstByRoomNo(ctx context.Context, roomNo string) (*models.Student, error) {
	sql, args, err := r.sb.Select("student_id", "name", "age", "gender", "contact", "room_no", "created_at").
		From("students").
		Where(squirrel.Eq{"room_no": roomNo}).
		OrderBy("student_id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by room SQL")
		return nil, fmt.Errorf("failed to build get student by room query: %w", err)
	}

	student := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.StudentID, &student.Name, &student.Age, &student.Gender, &student.Contact, &student.RoomNo, &student.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Str("roomNo", roomNo).Msg("Error scanning student row by room")
		return nil, fmt.Errorf("error getting student by room: %w", err)
	}

	return student, nil
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("student_id", "name", "age", "gender", "contact", "room_no").
		Values(student.StudentID, student.Name, student.Age, student.Gender, student.Contact, student.RoomNo).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrStudentAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// UpdateRoom sets (or clears, with nil) the room assignment of a student
func (r *StudentRepository) UpdateRoom(ctx context.Context, studentID string, roomNo *string) error {
	sql, args, err := r.sb.Update("students").
		Set("room_no", roomNo).
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update student room SQL")
		return fmt.Errorf("failed to build update student room query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error executing update student room query")
		return fmt.Errorf("error updating student room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// Delete removes a student by ID. Present in the record layer but not
// exposed by any route.
func (r *StudentRepository) Delete(ctx context.Context, studentID string) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// CountAll returns the total number of students
func (r *StudentRepository) CountAll(ctx context.Context) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("students").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting students")
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return count, nil
}

// GetRecent retrieves the most recently created students
func (r *StudentRepository) GetRecent(ctx context.Context, limit uint64) ([]*models.Student, error) {
	sql, args, err := r.sb.Select("student_id", "name", "age", "gender", "contact", "room_no", "created_at").
		From("students").
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build recent students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing recent students query")
		return nil, fmt.Errorf("error querying recent students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(&student.StudentID, &student.Name, &student.Age, &student.Gender, &student.Contact, &student.RoomNo, &student.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning recent student row: %w", err)
		}
		students = append(students, student)
	}

	return students, rows.Err()
}
