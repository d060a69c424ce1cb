package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/model"
)

// HourRepo provides methods to work with per-court operating hours.
type HourRepo struct {
	db *sql.DB
}

// NewHourRepo constructs a HourRepo with the given DB handle.
func NewHourRepo(db *sql.DB) *HourRepo {
	return &HourRepo{db: db}
}

// ListByClub retrieves the operating hours of every court belonging to a
// club, ordered by court then hour.
func (r *HourRepo) ListByClub(ctx context.Context, clubID uint64) ([]model.OperatingHour, error) {
	const q = `SELECT h.court_id, h.hour
	           FROM court_hours h
	           JOIN courts c ON c.id = h.court_id
	           WHERE c.club_id = ?
	           ORDER BY h.court_id, h.hour`
	rows, err := r.db.QueryContext(ctx, q, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OperatingHour
	for rows.Next() {
		var h model.OperatingHour
		if err := rows.Scan(&h.CourtID, &h.Hour); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByCourt retrieves the operating hours of a single court in
// ascending order.
func (r *HourRepo) ListByCourt(ctx context.Context, courtID uint64) ([]int, error) {
	const q = `SELECT hour FROM court_hours WHERE court_id = ? ORDER BY hour`
	rows, err := r.db.QueryContext(ctx, q, courtID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []int
	for rows.Next() {
		var h int
		if err := rows.Scan(&h); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ReplaceForClub rewrites the operating hours of every court of a club to
// the half-open range [startHour, endHour).  The court listing, the
// delete and the bulk insert all run in one transaction so a club never
// ends up with a partial schedule and a court added mid-replace cannot
// slip past it.  A club with no courts is a successful no-op; only a
// club that does not exist at all is ErrClubNotFound.  Bookings outside
// the new range are left in place.
func (r *HourRepo) ReplaceForClub(ctx context.Context, clubID uint64, startHour, endHour int) error {
	var exists uint64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM clubs WHERE id = ?`, clubID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrClubNotFound
		}
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	courts, err := courtIDsTx(ctx, tx, clubID)
	if err != nil {
		return err
	}
	if len(courts) == 0 {
		if err := tx.Commit(); err != nil {
			return err
		}
		committed = true
		return nil
	}

	const qDelete = `DELETE h FROM court_hours h
	                 JOIN courts c ON c.id = h.court_id
	                 WHERE c.club_id = ?`
	if _, err := tx.ExecContext(ctx, qDelete, clubID); err != nil {
		return err
	}

	hours := model.HoursInRange(startHour, endHour)
	query := `INSERT INTO court_hours (court_id, hour) VALUES `
	args := make([]interface{}, 0, len(courts)*len(hours)*2)
	first := true
	for _, courtID := range courts {
		for _, h := range hours {
			if !first {
				query += ","
			}
			first = false
			query += "(?, ?)"
			args = append(args, courtID, h)
		}
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// courtIDsTx lists the ids of every court in a club, active or not,
// inside the replace transaction.
func courtIDsTx(ctx context.Context, tx *sql.Tx, clubID uint64) ([]uint64, error) {
	const q = `SELECT id FROM courts WHERE club_id = ? ORDER BY id`
	rows, err := tx.QueryContext(ctx, q, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
