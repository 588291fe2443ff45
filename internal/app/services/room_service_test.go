package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/apperrors"
)

func newRoomServiceFixture() (RoomService, *fakeRoomStore, *fakeStudentStore) {
	roomStore := &fakeRoomStore{rooms: []*models.Room{
		{RoomNo: "101", Type: "Single", Capacity: 1},
		{RoomNo: "102", Type: "Double", Capacity: 2},
	}}
	studentStore := &fakeStudentStore{students: []*models.Student{
		{StudentID: "S1001", Name: "John Doe"},
		{StudentID: "S1002", Name: "Jane Smith", RoomNo: strPtr("102")},
	}}
	return NewRoomService(roomStore, studentStore), roomStore, studentStore
}

func TestAllocateRoom(t *testing.T) {
	svc, _, studentStore := newRoomServiceFixture()

	err := svc.AllocateRoom(context.Background(), "S1001", "101")
	require.NoError(t, err)

	student, err := studentStore.GetByID(context.Background(), "S1001")
	require.NoError(t, err)
	require.NotNil(t, student.RoomNo)
	assert.Equal(t, "101", *student.RoomNo)
}

func TestAllocateRoomUnknownStudent(t *testing.T) {
	svc, _, _ := newRoomServiceFixture()

	err := svc.AllocateRoom(context.Background(), "S9999", "101")
	assert.ErrorIs(t, err, apperrors.ErrInvalidReference)
}

func TestAllocateRoomUnknownRoom(t *testing.T) {
	svc, _, _ := newRoomServiceFixture()

	err := svc.AllocateRoom(context.Background(), "S1001", "999")
	assert.ErrorIs(t, err, apperrors.ErrInvalidReference)
}

func TestAllocateRoomMovesStudent(t *testing.T) {
	// Reassigning a housed student succeeds and drops the old room.
	svc, _, studentStore := newRoomServiceFixture()

	err := svc.AllocateRoom(context.Background(), "S1002", "101")
	require.NoError(t, err)

	student, err := studentStore.GetByID(context.Background(), "S1002")
	require.NoError(t, err)
	require.NotNil(t, student.RoomNo)
	assert.Equal(t, "101", *student.RoomNo)

	occupancy, err := svc.GetRoomOccupancy(context.Background())
	require.NoError(t, err)
	require.Len(t, occupancy, 2)
	assert.Equal(t, models.RoomOccupied, occupancy[0].Availability)
	assert.Equal(t, models.RoomAvailable, occupancy[1].Availability)
}

func TestAllocateRoomOccupiedTargetPermitted(t *testing.T) {
	// Occupied rooms are not rejected as allocation targets.
	svc, _, _ := newRoomServiceFixture()

	err := svc.AllocateRoom(context.Background(), "S1001", "102")
	assert.NoError(t, err)
}

func TestVacateRoom(t *testing.T) {
	svc, _, studentStore := newRoomServiceFixture()

	err := svc.VacateRoom(context.Background(), "102")
	require.NoError(t, err)

	student, err := studentStore.GetByID(context.Background(), "S1002")
	require.NoError(t, err)
	assert.Nil(t, student.RoomNo)
}

func TestVacateRoomNoOccupant(t *testing.T) {
	svc, _, _ := newRoomServiceFixture()

	err := svc.VacateRoom(context.Background(), "101")
	assert.ErrorIs(t, err, apperrors.ErrNoOccupant)
}

func TestVacateRoomTwiceFails(t *testing.T) {
	svc, _, _ := newRoomServiceFixture()

	require.NoError(t, svc.VacateRoom(context.Background(), "102"))
	err := svc.VacateRoom(context.Background(), "102")
	assert.ErrorIs(t, err, apperrors.ErrNoOccupant)
}

func TestVacateRoomLowestStudentIDWins(t *testing.T) {
	// With conflicting occupants, vacate clears the deterministic pick and
	// leaves the other assignment in place.
	roomStore := &fakeRoomStore{rooms: []*models.Room{{RoomNo: "101", Type: "Single", Capacity: 1}}}
	studentStore := &fakeStudentStore{students: []*models.Student{
		{StudentID: "S1002", Name: "Jane Smith", RoomNo: strPtr("101")},
		{StudentID: "S1001", Name: "John Doe", RoomNo: strPtr("101")},
	}}
	svc := NewRoomService(roomStore, studentStore)

	require.NoError(t, svc.VacateRoom(context.Background(), "101"))

	first, err := studentStore.GetByID(context.Background(), "S1001")
	require.NoError(t, err)
	assert.Nil(t, first.RoomNo)

	second, err := studentStore.GetByID(context.Background(), "S1002")
	require.NoError(t, err)
	assert.NotNil(t, second.RoomNo)
}

func TestGetAvailableRooms(t *testing.T) {
	svc, _, _ := newRoomServiceFixture()

	available, err := svc.GetAvailableRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "101", available[0].RoomNo)
}
