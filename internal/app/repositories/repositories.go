package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared sentinel for lookups that match no row.
var ErrNotFound = errors.New("record not found")

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository      *UserRepository
	StudentRepository   *StudentRepository
	RoomRepository      *RoomRepository
	PaymentRepository   *PaymentRepository
	ComplaintRepository *ComplaintRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db),
		StudentRepository:   NewStudentRepository(db),
		RoomRepository:      NewRoomRepository(db),
		PaymentRepository:   NewPaymentRepository(db),
		ComplaintRepository: NewComplaintRepository(db),
	}
}
