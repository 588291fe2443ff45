package services

import (
	"sort"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
)

// BuildOccupancy derives the availability of every room from the
// student-room relationship. A room is Occupied when some student's
// room_no matches it, and occupied_by is that student's name; otherwise
// it is Available with a nil occupant. Rooms are returned in ascending
// room number order regardless of input order.
//
// The derivation is pure and is recomputed on every read; the rooms
// listing, the available listing and the dashboard count all go through
// it so they can never disagree on the same data snapshot.
//
// If two students share a room_no the data already violates the
// single-occupant invariant; the first student in input order wins, which
// keeps the output deterministic without masking the defect.
func BuildOccupancy(rooms []*models.Room, students []*models.Student) []models.RoomOccupancy {
	result := make([]models.RoomOccupancy, 0, len(rooms))
	for _, room := range rooms {
		occ := models.RoomOccupancy{
			RoomNo:       room.RoomNo,
			Type:         room.Type,
			Capacity:     room.Capacity,
			Availability: models.RoomAvailable,
		}
		for _, student := range students {
			if student.RoomNo != nil && *student.RoomNo == room.RoomNo {
				name := student.Name
				occ.Availability = models.RoomOccupied
				occ.OccupiedBy = &name
				break
			}
		}
		result = append(result, occ)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].RoomNo < result[j].RoomNo
	})

	return result
}

// CountAvailable returns how many rooms in the derived view are Available.
func CountAvailable(occupancy []models.RoomOccupancy) int {
	count := 0
	for _, room := range occupancy {
		if room.Availability == models.RoomAvailable {
			count++
		}
	}
	return count
}

// FilterAvailable keeps only the Available rooms of the derived view.
func FilterAvailable(occupancy []models.RoomOccupancy) []models.RoomOccupancy {
	available := make([]models.RoomOccupancy, 0, len(occupancy))
	for _, room := range occupancy {
		if room.Availability == models.RoomAvailable {
			available = append(available, room)
		}
	}
	return available
}
