package dto

import "github.com/anjellyyy/smart-hostel-management-system/internal/app/models"

// CreateStudentRequest is the body of POST /api/students.
type CreateStudentRequest struct {
	StudentID string  `json:"student_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Age       int     `json:"age" binding:"required"`
	Gender    string  `json:"gender" binding:"required"`
	Contact   string  `json:"contact" binding:"required"`
	RoomNo    *string `json:"room_no"`
}

// StudentResponse is a single student as listed by GET /api/students.
type StudentResponse struct {
	StudentID string  `json:"student_id"`
	Name      string  `json:"name"`
	Age       int     `json:"age"`
	Gender    string  `json:"gender"`
	Contact   string  `json:"contact"`
	RoomNo    *string `json:"room_no"`
}

// NewStudentResponse maps a student model to its wire shape
func NewStudentResponse(student *models.Student) StudentResponse {
	return StudentResponse{
		StudentID: student.StudentID,
		Name:      student.Name,
		Age:       student.Age,
		Gender:    student.Gender,
		Contact:   student.Contact,
		RoomNo:    student.RoomNo,
	}
}

// NewStudentListResponse maps a slice of student models
func NewStudentListResponse(students []*models.Student) []StudentResponse {
	result := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		result = append(result, NewStudentResponse(student))
	}
	return result
}
