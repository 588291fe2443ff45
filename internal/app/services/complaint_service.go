package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
	"github.com/anjellyyy/smart-hostel-management-system/internal/app/repositories"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/apperrors"
)

// ComplaintService defines the interface for complaint operations
type ComplaintService interface {
	GetAllComplaints(ctx context.Context) ([]*models.Complaint, error)
	FileComplaint(ctx context.Context, studentID, issueType, description string) (int64, error)
	ResolveComplaint(ctx context.Context, complaintID int64) error
}

// complaintServiceImpl implements the ComplaintService interface
type complaintServiceImpl struct {
	complaintStore ComplaintStore
}

// NewComplaintService creates a new complaint service instance
func NewComplaintService(complaintStore ComplaintStore) ComplaintService {
	return &complaintServiceImpl{complaintStore: complaintStore}
}

// GetAllComplaints retrieves all complaints decorated with student names
func (s *complaintServiceImpl) GetAllComplaints(ctx context.Context) ([]*models.Complaint, error) {
	complaints, err := s.complaintStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving complaints: %w", err)
	}
	return complaints, nil
}

// FileComplaint stores a new complaint with Pending status. The
// student_id is a soft reference, not checked for existence.
func (s *complaintServiceImpl) FileComplaint(ctx context.Context, studentID, issueType, description string) (int64, error) {
	complaint := &models.Complaint{
		StudentID:   studentID,
		IssueType:   issueType,
		Description: description,
		Status:      models.ComplaintPending,
	}

	id, err := s.complaintStore.Create(ctx, complaint)
	if err != nil {
		return 0, fmt.Errorf("error filing complaint: %w", err)
	}
	return id, nil
}

// ResolveComplaint marks a complaint Resolved. Resolving an already
// resolved complaint succeeds and leaves it Resolved; the status never
// moves back to Pending.
func (s *complaintServiceImpl) ResolveComplaint(ctx context.Context, complaintID int64) error {
	if err := s.complaintStore.Resolve(ctx, complaintID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrComplaintNotFound
		}
		return fmt.Errorf("error resolving complaint: %w", err)
	}
	return nil
}
