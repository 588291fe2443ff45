package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
	"github.com/anjellyyy/smart-hostel-management-system/internal/app/repositories"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/apperrors"
)

// StudentService defines the interface for student record operations
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, studentID string) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, studentID string) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentStore StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentStore StudentStore) StudentService {
	return &studentServiceImpl{studentStore: studentStore}
}

// validateStudent validates student data before database operations
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.StudentID) == "" {
		return fmt.Errorf("%w: student_id cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if student.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", apperrors.ErrValidationFailed)
	}

	return nil
}

// GetAllStudents retrieves all students ordered by student ID
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := s.studentStore.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// CreateStudent creates a new student record. The optional room_no is
// stored as given; its existence is not checked here, matching the
// record-layer contract (allocation is the only guarded path).
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}

	if err := s.studentStore.Create(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrStudentAlreadyExists) {
			return repositories.ErrStudentAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// DeleteStudent removes a student by ID. Part of the record layer but not
// reachable through any route.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, studentID string) error {
	if err := s.studentStore.Delete(ctx, studentID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
