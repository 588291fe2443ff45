package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
)

func TestBuildOccupancyDerivesFromStudents(t *testing.T) {
	rooms := []*models.Room{
		{RoomNo: "102", Type: "Double", Capacity: 2},
		{RoomNo: "101", Type: "Single", Capacity: 1},
		{RoomNo: "201", Type: "Suite", Capacity: 3},
	}
	students := []*models.Student{
		{StudentID: "S1001", Name: "John Doe", RoomNo: strPtr("101")},
		{StudentID: "S1002", Name: "Jane Smith", RoomNo: nil},
	}

	occupancy := BuildOccupancy(rooms, students)
	require.Len(t, occupancy, 3)

	// Output is sorted by room number regardless of input order.
	assert.Equal(t, "101", occupancy[0].RoomNo)
	assert.Equal(t, "102", occupancy[1].RoomNo)
	assert.Equal(t, "201", occupancy[2].RoomNo)

	assert.Equal(t, models.RoomOccupied, occupancy[0].Availability)
	require.NotNil(t, occupancy[0].OccupiedBy)
	assert.Equal(t, "John Doe", *occupancy[0].OccupiedBy)

	assert.Equal(t, models.RoomAvailable, occupancy[1].Availability)
	assert.Nil(t, occupancy[1].OccupiedBy)
	assert.Equal(t, models.RoomAvailable, occupancy[2].Availability)
}

func TestBuildOccupancyIgnoresUnassignedAndUnknownRooms(t *testing.T) {
	rooms := []*models.Room{{RoomNo: "101", Type: "Single", Capacity: 1}}
	students := []*models.Student{
		{StudentID: "S1001", Name: "John Doe", RoomNo: strPtr("999")}, // dangling reference
		{StudentID: "S1002", Name: "Jane Smith"},
	}

	occupancy := BuildOccupancy(rooms, students)
	require.Len(t, occupancy, 1)
	assert.Equal(t, models.RoomAvailable, occupancy[0].Availability)
}

func TestBuildOccupancyFirstStudentWinsOnConflict(t *testing.T) {
	rooms := []*models.Room{{RoomNo: "101", Type: "Single", Capacity: 1}}
	students := []*models.Student{
		{StudentID: "S1001", Name: "John Doe", RoomNo: strPtr("101")},
		{StudentID: "S1002", Name: "Jane Smith", RoomNo: strPtr("101")},
	}

	occupancy := BuildOccupancy(rooms, students)
	require.Len(t, occupancy, 1)
	require.NotNil(t, occupancy[0].OccupiedBy)
	assert.Equal(t, "John Doe", *occupancy[0].OccupiedBy)
}

func TestBuildOccupancyEmpty(t *testing.T) {
	occupancy := BuildOccupancy(nil, nil)
	assert.NotNil(t, occupancy)
	assert.Empty(t, occupancy)
}

func TestCountAndFilterAvailable(t *testing.T) {
	occupancy := []models.RoomOccupancy{
		{RoomNo: "101", Availability: models.RoomOccupied},
		{RoomNo: "102", Availability: models.RoomAvailable},
		{RoomNo: "103", Availability: models.RoomAvailable},
	}

	assert.Equal(t, 2, CountAvailable(occupancy))

	available := FilterAvailable(occupancy)
	require.Len(t, available, 2)
	assert.Equal(t, "102", available[0].RoomNo)
	assert.Equal(t, "103", available[1].RoomNo)
}
