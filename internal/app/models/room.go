package models

import "time"

// Room defines the room model based on the 'rooms' table.
// The stored availability column is inert: real availability is derived
// from the student-room relationship on every read (see services.BuildOccupancy).
type Room struct {
	RoomNo       string    `json:"room_no" db:"room_no" example:"101"`
	Type         string    `json:"type" db:"type" example:"Single"`
	Capacity     int       `json:"capacity" db:"capacity" example:"1"`
	Availability string    `json:"-" db:"availability"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
}

// RoomOccupancy is a room decorated with its derived availability.
type RoomOccupancy struct {
	RoomNo       string     `json:"room_no"`
	Type         string     `json:"type"`
	Capacity     int        `json:"capacity"`
	Availability RoomStatus `json:"availability"`
	OccupiedBy   *string    `json:"occupied_by"`
}
