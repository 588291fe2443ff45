package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
)

// recentPerSource is how many rows each source contributes to the feed
// before the merged cut-off.
const recentPerSource = 3

// activityFeedLimit caps the merged activities feed.
const activityFeedLimit = 5

const activityDateFormat = "2006-01-02"

// DashboardStats holds the aggregate counts shown on the dashboard.
type DashboardStats struct {
	TotalStudents     int
	TotalRooms        int
	AvailableRooms    int
	PendingComplaints int
}

// DashboardService defines the interface for dashboard aggregation
type DashboardService interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
	GetRecentActivities(ctx context.Context) ([]models.Activity, error)
}

// dashboardServiceImpl implements the DashboardService interface
type dashboardServiceImpl struct {
	studentStore   StudentStore
	roomStore      RoomStore
	paymentStore   PaymentStore
	complaintStore ComplaintStore
	roomService    RoomService
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	studentStore StudentStore,
	roomStore RoomStore,
	paymentStore PaymentStore,
	complaintStore ComplaintStore,
	roomService RoomService,
) DashboardService {
	return &dashboardServiceImpl{
		studentStore:   studentStore,
		roomStore:      roomStore,
		paymentStore:   paymentStore,
		complaintStore: complaintStore,
		roomService:    roomService,
	}
}

// GetStats reports the dashboard counts. The available-rooms figure goes
// through the same occupancy derivation as the rooms endpoints, so the
// dashboard and the room listings cannot drift apart.
func (s *dashboardServiceImpl) GetStats(ctx context.Context) (*DashboardStats, error) {
	totalStudents, err := s.studentStore.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	totalRooms, err := s.roomStore.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting rooms: %w", err)
	}

	occupancy, err := s.roomService.GetRoomOccupancy(ctx)
	if err != nil {
		return nil, fmt.Errorf("error deriving room occupancy: %w", err)
	}

	pendingComplaints, err := s.complaintStore.CountPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting pending complaints: %w", err)
	}

	return &DashboardStats{
		TotalStudents:     totalStudents,
		TotalRooms:        totalRooms,
		AvailableRooms:    CountAvailable(occupancy),
		PendingComplaints: pendingComplaints,
	}, nil
}

// GetRecentActivities merges the newest students, payments and complaints
// into a single feed, newest first, capped at five entries.
func (s *dashboardServiceImpl) GetRecentActivities(ctx context.Context) ([]models.Activity, error) {
	students, err := s.studentStore.GetRecent(ctx, recentPerSource)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent students: %w", err)
	}

	payments, err := s.paymentStore.GetRecent(ctx, recentPerSource)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent payments: %w", err)
	}

	complaints, err := s.complaintStore.GetRecent(ctx, recentPerSource)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent complaints: %w", err)
	}

	activities := make([]models.Activity, 0, len(students)+len(payments)+len(complaints))

	for _, student := range students {
		activities = append(activities, models.Activity{
			Type:        "registration",
			Title:       "New Student Registration",
			Description: fmt.Sprintf("Student %s registered", student.StudentID),
			Date:        student.CreatedAt.Format(activityDateFormat),
		})
	}

	for _, payment := range payments {
		activities = append(activities, models.Activity{
			Type:        "payment",
			Title:       "Payment Received",
			Description: fmt.Sprintf("Payment of ₹%.2f recorded for student %s", payment.Amount, payment.StudentID),
			Date:        payment.CreatedAt.Format(activityDateFormat),
		})
	}

	for _, complaint := range complaints {
		activities = append(activities, models.Activity{
			Type:        "complaint",
			Title:       "New Complaint Filed",
			Description: fmt.Sprintf("Complaint filed by student %s", complaint.StudentID),
			Date:        complaint.ComplaintDate.Format(activityDateFormat),
		})
	}

	// Dates are YYYY-MM-DD strings, so lexical order is date order.
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Date > activities[j].Date
	})

	if len(activities) > activityFeedLimit {
		activities = activities[:activityFeedLimit]
	}

	return activities, nil
}
