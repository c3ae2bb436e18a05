package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type OwnershipRepo struct {
	db DBTX
}

func NewOwnershipRepo(db DBTX) *OwnershipRepo {
	return &OwnershipRepo{db: db}
}

// InsertItemIfAbsent adds set membership; false means the row already
// existed. Callers condition debits on the returned flag.
func (r *OwnershipRepo) InsertItemIfAbsent(ctx context.Context, userID, itemType, itemID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO owned_items (user_id, item_type, item_id) VALUES (?, ?, ?)
		ON CONFLICT(user_id, item_type, item_id) DO NOTHING
	`, userID, itemType, itemID)
	if err != nil {
		return false, fmt.Errorf("owned item insert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("owned item insert rows: %w", err)
	}
	return n > 0, nil
}

func (r *OwnershipRepo) HasItem(ctx context.Context, userID, itemType, itemID string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT 1 FROM owned_items WHERE user_id = ? AND item_type = ? AND item_id = ? LIMIT 1
	`, userID, itemType, itemID)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("owned item check: %w", err)
	}
	return true, nil
}

// AddStock increments consumable stock, creating the row when absent. The
// increment is refused once quantity reaches max; false signals the cap.
func (r *OwnershipRepo) AddStock(ctx context.Context, userID, itemType, itemID string, max int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO owned_items (user_id, item_type, item_id, quantity) VALUES (?, ?, ?, 1)
		ON CONFLICT(user_id, item_type, item_id) DO UPDATE SET quantity = quantity + 1
		WHERE quantity < ?
	`, userID, itemType, itemID, max)
	if err != nil {
		return false, fmt.Errorf("stock add: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("stock add rows: %w", err)
	}
	return n > 0, nil
}

// TakeStock decrements one unit; false means nothing in stock.
func (r *OwnershipRepo) TakeStock(ctx context.Context, userID, itemType, itemID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE owned_items SET quantity = quantity - 1
		WHERE user_id = ? AND item_type = ? AND item_id = ? AND quantity > 0
	`, userID, itemType, itemID)
	if err != nil {
		return false, fmt.Errorf("stock take: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("stock take rows: %w", err)
	}
	return n > 0, nil
}

func (r *OwnershipRepo) Quantity(ctx context.Context, userID, itemType, itemID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT quantity FROM owned_items WHERE user_id = ? AND item_type = ? AND item_id = ?
	`, userID, itemType, itemID)
	var q int
	if err := row.Scan(&q); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("stock quantity: %w", err)
	}
	return q, nil
}

func (r *OwnershipRepo) ListItems(ctx context.Context, userID string) ([]OwnedItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, item_type, item_id, quantity FROM owned_items
		WHERE user_id = ?
		ORDER BY item_type, item_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("owned items list: %w", err)
	}
	defer rows.Close()

	var out []OwnedItem
	for rows.Next() {
		var it OwnedItem
		if err := rows.Scan(&it.UserID, &it.ItemType, &it.ItemID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("owned items scan: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("owned items rows: %w", err)
	}
	return out, nil
}

func (r *OwnershipRepo) DeleteAllItems(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM owned_items WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("owned items delete: %w", err)
	}
	return nil
}

func (r *OwnershipRepo) InsertRoomIfAbsent(ctx context.Context, userID, roomType, roomID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO owned_rooms (user_id, room_type, room_id) VALUES (?, ?, ?)
		ON CONFLICT(user_id, room_type, room_id) DO NOTHING
	`, userID, roomType, roomID)
	if err != nil {
		return false, fmt.Errorf("owned room insert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("owned room insert rows: %w", err)
	}
	return n > 0, nil
}

func (r *OwnershipRepo) HasRoom(ctx context.Context, userID, roomType, roomID string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT 1 FROM owned_rooms WHERE user_id = ? AND room_type = ? AND room_id = ? LIMIT 1
	`, userID, roomType, roomID)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("owned room check: %w", err)
	}
	return true, nil
}

func (r *OwnershipRepo) ListRooms(ctx context.Context, userID string) ([]OwnedRoom, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, room_type, room_id FROM owned_rooms
		WHERE user_id = ?
		ORDER BY room_type, room_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("owned rooms list: %w", err)
	}
	defer rows.Close()

	var out []OwnedRoom
	for rows.Next() {
		var rm OwnedRoom
		if err := rows.Scan(&rm.UserID, &rm.RoomType, &rm.RoomID); err != nil {
			return nil, fmt.Errorf("owned rooms scan: %w", err)
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("owned rooms rows: %w", err)
	}
	return out, nil
}

// DeleteRoomsExcept clears room ownership, sparing the two defaults.
func (r *OwnershipRepo) DeleteRoomsExcept(ctx context.Context, userID, houseID, workRoomID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM owned_rooms
		WHERE user_id = ?
			AND NOT (room_type = 'house' AND room_id = ?)
			AND NOT (room_type = 'work' AND room_id = ?)
	`, userID, houseID, workRoomID)
	if err != nil {
		return fmt.Errorf("owned rooms delete: %w", err)
	}
	return nil
}
