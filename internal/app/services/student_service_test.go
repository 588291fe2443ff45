package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
	"github.com/anjellyyy/smart-hostel-management-system/internal/app/repositories"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/apperrors"
)

func TestCreateStudent(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store)

	student := &models.Student{StudentID: "S1001", Name: "John Doe", Age: 20, Gender: "Male", Contact: "+911234567890"}
	require.NoError(t, svc.CreateStudent(context.Background(), student))

	got, err := svc.GetStudentByID(context.Background(), "S1001")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.Name)
	assert.Nil(t, got.RoomNo)
}

func TestCreateStudentWithUncheckedRoom(t *testing.T) {
	// room_no on creation is stored as given without an existence check.
	store := &fakeStudentStore{}
	svc := NewStudentService(store)

	student := &models.Student{StudentID: "S1001", Name: "John Doe", Age: 20, RoomNo: strPtr("999")}
	require.NoError(t, svc.CreateStudent(context.Background(), student))

	got, err := svc.GetStudentByID(context.Background(), "S1001")
	require.NoError(t, err)
	require.NotNil(t, got.RoomNo)
	assert.Equal(t, "999", *got.RoomNo)
}

func TestCreateStudentValidation(t *testing.T) {
	svc := NewStudentService(&fakeStudentStore{})

	tests := []struct {
		name    string
		student *models.Student
	}{
		{"nil", nil},
		{"empty id", &models.Student{Name: "John Doe", Age: 20}},
		{"blank name", &models.Student{StudentID: "S1001", Name: "   ", Age: 20}},
		{"zero age", &models.Student{StudentID: "S1001", Name: "John Doe", Age: 0}},
		{"negative age", &models.Student{StudentID: "S1001", Name: "John Doe", Age: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateStudent(context.Background(), tt.student)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestCreateStudentDuplicateID(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store)

	first := &models.Student{StudentID: "S1001", Name: "John Doe", Age: 20}
	require.NoError(t, svc.CreateStudent(context.Background(), first))

	dup := &models.Student{StudentID: "S1001", Name: "Jane Smith", Age: 21}
	err := svc.CreateStudent(context.Background(), dup)
	assert.ErrorIs(t, err, repositories.ErrStudentAlreadyExists)
}

func TestGetStudentByIDNotFound(t *testing.T) {
	svc := NewStudentService(&fakeStudentStore{})

	_, err := svc.GetStudentByID(context.Background(), "S9999")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestGetAllStudentsOrdered(t *testing.T) {
	store := &fakeStudentStore{students: []*models.Student{
		{StudentID: "S1002", Name: "Jane Smith", Age: 21},
		{StudentID: "S1001", Name: "John Doe", Age: 20},
	}}
	svc := NewStudentService(store)

	students, err := svc.GetAllStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "S1001", students[0].StudentID)
	assert.Equal(t, "S1002", students[1].StudentID)
}

func TestDeleteStudent(t *testing.T) {
	store := &fakeStudentStore{students: []*models.Student{
		{StudentID: "S1001", Name: "John Doe", Age: 20},
	}}
	svc := NewStudentService(store)

	require.NoError(t, svc.DeleteStudent(context.Background(), "S1001"))

	err := svc.DeleteStudent(context.Background(), "S1001")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
