package models

// RoomStatus is the derived availability state of a room.
type RoomStatus string

const (
	RoomAvailable RoomStatus = "Available"
	RoomOccupied  RoomStatus = "Occupied"
)

// ComplaintStatus is the lifecycle state of a complaint.
// The transition is one-way: Pending -> Resolved.
type ComplaintStatus string

const (
	ComplaintPending  ComplaintStatus = "Pending"
	ComplaintResolved ComplaintStatus = "Resolved"
)

// PaymentStatus is the stored state of a payment record.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "Completed"
)

// Default role assigned to registered users.
const RoleUser = "user"
