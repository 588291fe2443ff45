package dto

// DashboardResponse is the body of GET /api/dashboard. Keys are
// camelCase, unlike the entity endpoints.
type DashboardResponse struct {
	TotalStudents     int `json:"totalStudents"`
	TotalRooms        int `json:"totalRooms"`
	AvailableRooms    int `json:"availableRooms"`
	PendingComplaints int `json:"pendingComplaints"`
}
