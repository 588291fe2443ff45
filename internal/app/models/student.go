package models

import "time"

// Student defines the student model based on the 'students' table.
// RoomNo is the sole occupancy signal: nil means unassigned, non-nil is
// expected to reference an existing room.
type Student struct {
	StudentID string    `json:"student_id" db:"student_id" example:"S1001"`
	Name      string    `json:"name" db:"name" example:"John Doe"`
	Age       int       `json:"age" db:"age" example:"20"`
	Gender    string    `json:"gender" db:"gender" example:"Male"`
	Contact   string    `json:"contact" db:"contact" example:"+911234567890"`
	RoomNo    *string   `json:"room_no" db:"room_no" example:"101"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}
