package models

import "time"

// Complaint defines the complaint model based on the 'complaints' table.
// StudentID is a soft reference, as on Payment. StudentName is populated
// by the listing query's join and is not a stored column.
type Complaint struct {
	ComplaintID   int64           `json:"complaint_id" db:"complaint_id"`
	StudentID     string          `json:"student_id" db:"student_id"`
	IssueType     string          `json:"issue_type" db:"issue_type"`
	Description   string          `json:"description" db:"description"`
	Status        ComplaintStatus `json:"status" db:"status"`
	ComplaintDate time.Time       `json:"complaint_date" db:"complaint_date"`

	StudentName string `json:"student_name,omitempty"`
}
