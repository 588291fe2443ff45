package services

import (
	"context"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
)

// Store interfaces consumed by the services. The concrete implementations
// live in the repositories package; tests substitute in-memory fakes.

// StudentStore is the student persistence surface used by services.
type StudentStore interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, studentID string) (*models.Student, error)
	GetFirstByRoomNo(ctx context.Context, roomNo string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	UpdateRoom(ctx context.Context, studentID string, roomNo *string) error
	Delete(ctx context.Context, studentID string) error
	CountAll(ctx context.Context) (int, error)
	GetRecent(ctx context.Context, limit uint64) ([]*models.Student, error)
}

// RoomStore is the room persistence surface used by services.
type RoomStore interface {
	GetAll(ctx context.Context) ([]*models.Room, error)
	GetByRoomNo(ctx context.Context, roomNo string) (*models.Room, error)
	CountAll(ctx context.Context) (int, error)
}

// PaymentStore is the payment persistence surface used by services.
type PaymentStore interface {
	GetAll(ctx context.Context) ([]*models.Payment, error)
	Create(ctx context.Context, payment *models.Payment) (int64, error)
	GetRecent(ctx context.Context, limit uint64) ([]*models.Payment, error)
}

// ComplaintStore is the complaint persistence surface used by services.
type ComplaintStore interface {
	GetAll(ctx context.Context) ([]*models.Complaint, error)
	Create(ctx context.Context, complaint *models.Complaint) (int64, error)
	Resolve(ctx context.Context, complaintID int64) error
	CountPending(ctx context.Context) (int, error)
	GetRecent(ctx context.Context, limit uint64) ([]*models.Complaint, error)
}

// UserStore is the user persistence surface used by services.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
