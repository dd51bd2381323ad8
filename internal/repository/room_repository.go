package repository

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RoomRepo provides access to rooms and their accessibility features.
// Every room returned by this repository has its Features populated.
type RoomRepo struct {
	db *sqlx.DB
}

// NewRoomRepo returns a RoomRepo bound to db.
func NewRoomRepo(db *sqlx.DB) *RoomRepo { return &RoomRepo{db: db} }

// List returns every room ordered by id.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	const q = `SELECT id, alias FROM rooms ORDER BY id`
	rooms := []model.Room{}
	if err := r.db.SelectContext(ctx, &rooms, q); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, r.attachFeatures(ctx, rooms)
}

// Count returns the number of rooms in the hotel.
func (r *RoomRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM rooms`); err != nil {
		return 0, fmt.Errorf("count rooms: %w", err)
	}
	return n, nil
}

// GetByID returns a single room or NotFound.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT id, alias FROM rooms WHERE id = ?`
	var room model.Room
	if err := r.db.GetContext(ctx, &room, q, id); err != nil {
		return nil, translate(err, "room", id)
	}
	rooms := []model.Room{room}
	if err := r.attachFeatures(ctx, rooms); err != nil {
		return nil, err
	}
	return &rooms[0], nil
}

// GetByIDs returns the rooms that exist among ids, ordered by id.
func (r *RoomRepo) GetByIDs(ctx context.Context, ids []uint64) ([]model.Room, error) {
	rooms := []model.Room{}
	if len(ids) == 0 {
		return rooms, nil
	}
	q, args, err := toSQL(dialect.From("rooms").
		Select("id", "alias").
		Where(goqu.Ex{"id": ids}).
		Order(goqu.C("id").Asc()).
		Prepared(true))
	if err != nil {
		return nil, err
	}
	if err := r.db.SelectContext(ctx, &rooms, q, args...); err != nil {
		return nil, fmt.Errorf("get rooms: %w", err)
	}
	return rooms, r.attachFeatures(ctx, rooms)
}

// LockTx takes row locks on the given rooms for the rest of tx and returns
// the ids that exist.  Concurrent reservations touching the same rooms
// serialise on these locks.
func (r *RoomRepo) LockTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) ([]uint64, error) {
	locked := []uint64{}
	if len(ids) == 0 {
		return locked, nil
	}
	q, args, err := sqlx.In(`SELECT id FROM rooms WHERE id IN (?) ORDER BY id FOR UPDATE`, ids)
	if err != nil {
		return nil, fmt.Errorf("build room lock: %w", err)
	}
	if err := tx.SelectContext(ctx, &locked, tx.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("lock rooms: %w", err)
	}
	return locked, nil
}

// Create inserts a room and sets its id.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
	res, err := r.db.ExecContext(ctx, `INSERT INTO rooms (alias) VALUES (?)`, room.Alias)
	if err != nil {
		return translate(err, "room", 0)
	}
	room.ID, err = lastInsertID(res)
	return err
}

// Update changes the room alias.
func (r *RoomRepo) Update(ctx context.Context, room *model.Room) error {
	res, err := r.db.ExecContext(ctx, `UPDATE rooms SET alias = ? WHERE id = ?`, room.Alias, room.ID)
	if err != nil {
		return translate(err, "room", room.ID)
	}
	return requireAffected(res, "room", room.ID)
}

// Delete removes a room together with its feature assignments.  A room
// that was ever reserved cannot be deleted and yields Conflict.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.ExecContext(ctx, `DELETE FROM room_accessibility_features WHERE room_id = ?`, id); err != nil {
		return translate(err, "room", id)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return translate(err, "room", id)
	}
	if err := requireAffected(res, "room", id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// AddFeature assigns a feature to a room.
func (r *RoomRepo) AddFeature(ctx context.Context, roomID, featureID uint64) error {
	return linkFeature(ctx, r.db, "room_accessibility_features", "room_id", "room", roomID, featureID)
}

// RemoveFeature unassigns a feature from a room.
func (r *RoomRepo) RemoveFeature(ctx context.Context, roomID, featureID uint64) error {
	return unlinkFeature(ctx, r.db, "room_accessibility_features", "room_id", "room", roomID, featureID)
}

func (r *RoomRepo) attachFeatures(ctx context.Context, rooms []model.Room) error {
	ids := make([]uint64, len(rooms))
	for i := range rooms {
		ids[i] = rooms[i].ID
	}
	byRoom, err := featuresByOwner(ctx, r.db, "room_accessibility_features", "room_id", ids)
	if err != nil {
		return err
	}
	for i := range rooms {
		rooms[i].Features = byRoom[rooms[i].ID]
		if rooms[i].Features == nil {
			rooms[i].Features = []model.AccessibilityFeature{}
		}
	}
	return nil
}
