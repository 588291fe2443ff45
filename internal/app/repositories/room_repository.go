package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anjellyyy/smart-hostel-management-system/internal/app/models"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/dberrors"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/logger"
)

// Room error types
var (
	// ErrRoomNotFound is returned when a room is not found.
	ErrRoomNotFound = ErrNotFound
	// ErrRoomAlreadyExists is returned when a room with the same number exists.
	ErrRoomAlreadyExists = errors.New("room with this number already exists")
)

// RoomRepository handles room database operations
type RoomRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all rooms ordered by room number
func (r *RoomRepository) GetAll(ctx context.Context) ([]*models.Room, error) {
	sql, args, err := r.sb.Select("room_no", "type", "capacity", "availability", "created_at").
		From("rooms").
		OrderBy("room_no ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all rooms SQL")
		return nil, fmt.Errorf("failed to build get all rooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all rooms query")
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}
	defer rows.Close()

	rooms := []*models.Room{}
	for rows.Next() {
		room := &models.Room{}
		if err := rows.Scan(&room.RoomNo, &room.Type, &room.Capacity, &room.Availability, &room.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning room row during get all")
			return nil, fmt.Errorf("error scanning room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating room rows")
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}

	return rooms, nil
}

// GetByRoomNo retrieves a room by its number
func (r *RoomRepository) GetByRoomNo(ctx context.Context, roomNo string) (*models.Room, error) {
	sql, args, err := r.sb.Select("room_no", "type", "capacity", "availability", "created_at").
		From("rooms").
		Where(squirrel.Eq{"room_no": roomNo}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get room by number SQL")
		return nil, fmt.Errorf("failed to build get room query: %w", err)
	}

	room := &models.Room{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&room.RoomNo, &room.Type, &room.Capacity, &room.Availability, &room.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		logger.Error().Err(err).Str("roomNo", roomNo).Msg("Error scanning room row")
		return nil, fmt.Errorf("error getting room by number: %w", err)
	}

	return room, nil
}

// Create inserts a new room
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	sql, args, err := r.sb.Insert("rooms").
		Columns("room_no", "type", "capacity").
		Values(room.RoomNo, room.Type, room.Capacity).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create room SQL")
		return fmt.Errorf("failed to build create room query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrRoomAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create room query")
		return fmt.Errorf("error creating room: %w", err)
	}

	return nil
}

// CountAll returns the total number of rooms
func (r *RoomRepository) CountAll(ctx context.Context) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("rooms").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count rooms query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting rooms")
		return 0, fmt.Errorf("error counting rooms: %w", err)
	}

	return count, nil
}
