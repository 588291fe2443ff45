package dto

import (
	"time"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
)

// CreateComplaintRequest is the body of POST /api/complaints.
type CreateComplaintRequest struct {
	StudentID   string `json:"student_id" binding:"required"`
	IssueType   string `json:"issue_type" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// ComplaintResponse is a single complaint as listed by GET /api/complaints.
type ComplaintResponse struct {
	ComplaintID   int64  `json:"complaint_id"`
	StudentID     string `json:"student_id"`
	StudentName   string `json:"student_name,omitempty"`
	IssueType     string `json:"issue_type"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	ComplaintDate string `json:"complaint_date"`
}

// NewComplaintListResponse maps complaint models to their wire shape
func NewComplaintListResponse(complaints []*models.Complaint) []ComplaintResponse {
	result := make([]ComplaintResponse, 0, len(complaints))
	for _, complaint := range complaints {
		result = append(result, ComplaintResponse{
			ComplaintID:   complaint.ComplaintID,
			StudentID:     complaint.StudentID,
			StudentName:   complaint.StudentName,
			IssueType:     complaint.IssueType,
			Description:   complaint.Description,
			Status:        string(complaint.Status),
			ComplaintDate: complaint.ComplaintDate.Format(time.RFC3339),
		})
	}
	return result
}
