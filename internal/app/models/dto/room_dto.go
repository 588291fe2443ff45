package dto

import "github.com/anjellyyy/smart-hostel-management-system/internal/app/models"

// AllocateRoomRequest is the body of POST /api/rooms/allocate.
type AllocateRoomRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	RoomNo    string `json:"room_no" binding:"required"`
}

// VacateRoomRequest is the body of POST /api/rooms/vacate.
type VacateRoomRequest struct {
	RoomNo string `json:"room_no" binding:"required"`
}

// RoomResponse is a room with its derived availability, as listed by
// GET /api/rooms.
type RoomResponse struct {
	RoomNo       string  `json:"room_no"`
	Type         string  `json:"type"`
	Capacity     int     `json:"capacity"`
	Availability string  `json:"availability"`
	OccupiedBy   *string `json:"occupied_by"`
}

// AvailableRoomResponse is a room as listed by GET /api/rooms/available;
// availability is implied by membership in the list.
type AvailableRoomResponse struct {
	RoomNo   string `json:"room_no"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

// NewRoomListResponse maps the derived occupancy view to its wire shape
func NewRoomListResponse(occupancy []models.RoomOccupancy) []RoomResponse {
	result := make([]RoomResponse, 0, len(occupancy))
	for _, room := range occupancy {
		result = append(result, RoomResponse{
			RoomNo:       room.RoomNo,
			Type:         room.Type,
			Capacity:     room.Capacity,
			Availability: string(room.Availability),
			OccupiedBy:   room.OccupiedBy,
		})
	}
	return result
}

// NewAvailableRoomListResponse maps available rooms to their wire shape
func NewAvailableRoomListResponse(occupancy []models.RoomOccupancy) []AvailableRoomResponse {
	result := make([]AvailableRoomResponse, 0, len(occupancy))
	for _, room := range occupancy {
		result = append(result, AvailableRoomResponse{
			RoomNo:   room.RoomNo,
			Type:     room.Type,
			Capacity: room.Capacity,
		})
	}
	return result
}
