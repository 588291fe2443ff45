package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
)

func day(offset int) time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func newDashboardFixture() (DashboardService, *fakeStudentStore, *fakeRoomStore, *fakePaymentStore, *fakeComplaintStore) {
	studentStore := &fakeStudentStore{students: []*models.Student{
		{StudentID: "S1001", Name: "John Doe", RoomNo: strPtr("101"), CreatedAt: day(0)},
		{StudentID: "S1002", Name: "Jane Smith", CreatedAt: day(1)},
	}}
	roomStore := &fakeRoomStore{rooms: []*models.Room{
		{RoomNo: "101", Type: "Single", Capacity: 1},
		{RoomNo: "102", Type: "Double", Capacity: 2},
		{RoomNo: "103", Type: "Single", Capacity: 1},
	}}
	paymentStore := &fakePaymentStore{}
	complaintStore := &fakeComplaintStore{complaints: []*models.Complaint{
		{ComplaintID: 1, StudentID: "S1001", Status: models.ComplaintPending, ComplaintDate: day(2)},
		{ComplaintID: 2, StudentID: "S1002", Status: models.ComplaintResolved, ComplaintDate: day(3)},
	}}

	roomService := NewRoomService(roomStore, studentStore)
	svc := NewDashboardService(studentStore, roomStore, paymentStore, complaintStore, roomService)
	return svc, studentStore, roomStore, paymentStore, complaintStore
}

func TestGetStats(t *testing.T) {
	svc, _, _, _, _ := newDashboardFixture()

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 3, stats.TotalRooms)
	assert.Equal(t, 2, stats.AvailableRooms)
	assert.Equal(t, 1, stats.PendingComplaints)
}

func TestGetStatsTracksOccupancy(t *testing.T) {
	// The dashboard count and the rooms listing come from the same
	// derivation, so allocating a room moves both together.
	svc, studentStore, roomStore, _, _ := newDashboardFixture()

	roomService := NewRoomService(roomStore, studentStore)
	require.NoError(t, roomService.AllocateRoom(context.Background(), "S1002", "102"))

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.AvailableRooms)

	occupancy, err := roomService.GetRoomOccupancy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stats.AvailableRooms, CountAvailable(occupancy))
}

func TestGetRecentActivitiesMergesNewestFirst(t *testing.T) {
	svc, _, _, paymentStore, _ := newDashboardFixture()

	paymentStore.payments = []*models.Payment{
		{PaymentID: 1, StudentID: "S1001", Amount: 4500, CreatedAt: day(5)},
	}

	activities, err := svc.GetRecentActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 5)

	// Payment from day 5 comes first, then the complaints, then students.
	assert.Equal(t, "payment", activities[0].Type)
	assert.Equal(t, "Payment of ₹4500.00 recorded for student S1001", activities[0].Description)
	assert.Equal(t, "complaint", activities[1].Type)
	assert.Equal(t, "complaint", activities[2].Type)
	assert.Equal(t, "registration", activities[3].Type)

	for i := 1; i < len(activities); i++ {
		assert.GreaterOrEqual(t, activities[i-1].Date, activities[i].Date)
	}
}

func TestGetRecentActivitiesCappedAtFive(t *testing.T) {
	svc, studentStore, _, paymentStore, complaintStore := newDashboardFixture()

	for i := 0; i < 4; i++ {
		studentStore.students = append(studentStore.students, &models.Student{
			StudentID: "S20" + string(rune('a'+i)), Name: "Extra", CreatedAt: day(10 + i),
		})
		paymentStore.payments = append(paymentStore.payments, &models.Payment{
			PaymentID: int64(i + 1), StudentID: "S1001", Amount: 100, CreatedAt: day(20 + i),
		})
		complaintStore.complaints = append(complaintStore.complaints, &models.Complaint{
			ComplaintID: int64(i + 10), StudentID: "S1001", Status: models.ComplaintPending, ComplaintDate: day(30 + i),
		})
	}

	activities, err := svc.GetRecentActivities(context.Background())
	require.NoError(t, err)
	assert.Len(t, activities, 5)
}

func TestGetRecentActivitiesEmpty(t *testing.T) {
	svc := NewDashboardService(
		&fakeStudentStore{}, &fakeRoomStore{}, &fakePaymentStore{}, &fakeComplaintStore{},
		NewRoomService(&fakeRoomStore{}, &fakeStudentStore{}),
	)

	activities, err := svc.GetRecentActivities(context.Background())
	require.NoError(t, err)
	assert.Empty(t, activities)
}
