// Package seed populates an empty database with the starter data the
// admin UI expects: a handful of rooms, two assigned students, one open
// complaint and a default admin account.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
	"github.com/anjellyyy/smart-hostel-management-system/internal/app/repositories"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/auth"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@hostel.local"
	defaultAdminPassword = "admin123"
)

func strPtr(s string) *string { return &s }

// CreateDefaultData seeds rooms, students, a complaint and the default
// admin account. Each section only runs against an empty table, so
// restarting the server never duplicates data. Errors are collected
// rather than aborting so one bad section does not block the rest.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	roomRepo := repositories.NewRoomRepository(dbPool)
	studentRepo := repositories.NewStudentRepository(dbPool)
	complaintRepo := repositories.NewComplaintRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Rooms --- //
	roomCount, err := roomRepo.CountAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting rooms")
		finalErr = errors.Join(finalErr, err)
	} else if roomCount == 0 {
		rooms := []*models.Room{
			{RoomNo: "101", Type: "Single", Capacity: 1},
			{RoomNo: "102", Type: "Double", Capacity: 2},
			{RoomNo: "103", Type: "Single", Capacity: 1},
			{RoomNo: "201", Type: "Suite", Capacity: 3},
		}
		for _, room := range rooms {
			if err := roomRepo.Create(ctx, room); err != nil {
				lgr.Error().Err(err).Str("room_no", room.RoomNo).Msg("Error seeding room")
				finalErr = errors.Join(finalErr, err)
			}
		}
		lgr.Info().Int("count", len(rooms)).Msg("Seeded default rooms")
	}

	// --- Students --- //
	studentCount, err := studentRepo.CountAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting students")
		finalErr = errors.Join(finalErr, err)
	} else if studentCount == 0 {
		students := []*models.Student{
			{StudentID: "S1001", Name: "John Doe", Age: 20, Gender: "Male", Contact: "+911234567890", RoomNo: strPtr("101")},
			{StudentID: "S1002", Name: "Jane Smith", Age: 21, Gender: "Female", Contact: "+911234567891", RoomNo: strPtr("102")},
		}
		for _, student := range students {
			if err := studentRepo.Create(ctx, student); err != nil {
				lgr.Error().Err(err).Str("student_id", student.StudentID).Msg("Error seeding student")
				finalErr = errors.Join(finalErr, err)
			}
		}
		lgr.Info().Int("count", len(students)).Msg("Seeded default students")
	}

	// --- Complaints --- //
	complaintCount, err := complaintRepo.CountAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting complaints")
		finalErr = errors.Join(finalErr, err)
	} else if complaintCount == 0 {
		complaint := &models.Complaint{
			StudentID:   "S1002",
			IssueType:   "Plumbing",
			Description: "Leak in bathroom",
			Status:      models.ComplaintPending,
		}
		if _, err := complaintRepo.Create(ctx, complaint); err != nil {
			lgr.Error().Err(err).Msg("Error seeding complaint")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Msg("Seeded default complaint")
		}
	}

	// --- Admin account --- //
	taken, err := userRepo.UsernameExists(ctx, defaultAdminUsername)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking admin account")
		finalErr = errors.Join(finalErr, err)
	} else if !taken {
		hashed, err := auth.HashPassword(defaultAdminPassword)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &models.User{
				Username: defaultAdminUsername,
				Email:    defaultAdminEmail,
				Password: hashed,
				Role:     "admin",
			}
			if _, err := userRepo.Create(ctx, admin); err != nil {
				lgr.Error().Err(err).Msg("Error seeding admin account")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Str("username", defaultAdminUsername).Msg("Seeded default admin account")
			}
		}
	}

	return finalErr
}
