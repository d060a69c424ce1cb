package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/model"
)

// CourtRepo provides methods to work with courts in the database.
type CourtRepo struct {
	db *sql.DB
}

// NewCourtRepo constructs a CourtRepo with the given DB handle.
func NewCourtRepo(db *sql.DB) *CourtRepo {
	return &CourtRepo{db: db}
}

// CreateWithDefaultHours inserts a court and seeds its operating hours
// (8:00 through 20:00 inclusive) in one transaction, so a half-created
// court never shows an empty schedule.
func (r *CourtRepo) CreateWithDefaultHours(ctx context.Context, c *model.Court) error {
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

	const qCourt = `INSERT INTO courts (club_id, name, surface, status) VALUES (?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, qCourt, c.ClubID, c.Name, c.Surface, c.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)

	query := `INSERT INTO court_hours (court_id, hour) VALUES `
	args := make([]interface{}, 0, (model.DefaultCloseHour-model.DefaultOpenHour+1)*2)
	for h := model.DefaultOpenHour; h <= model.DefaultCloseHour; h++ {
		if h > model.DefaultOpenHour {
			query += ","
		}
		query += "(?, ?)"
		args = append(args, c.ID, h)
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

// GetByID retrieves a court by its id (no club scope check).
func (r *CourtRepo) GetByID(ctx context.Context, id uint64) (*model.Court, error) {
	const q = `SELECT id, club_id, name, surface, status, created_at, updated_at
	           FROM courts WHERE id = ?`
	var c model.Court
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&c.ID, &c.ClubID, &c.Name, &c.Surface, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListByClub retrieves all courts of a club ordered by id, matching the
// order in which they were added.
func (r *CourtRepo) ListByClub(ctx context.Context, clubID uint64) ([]model.Court, error) {
	const q = `SELECT id, club_id, name, surface, status, created_at, updated_at
	           FROM courts
	           WHERE club_id = ?
	           ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Court
	for rows.Next() {
		var c model.Court
		if err := rows.Scan(
			&c.ID, &c.ClubID, &c.Name, &c.Surface, &c.Status,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateInfo rewrites a court's name and surface.
// Returns ErrCourtNotFound when no row is affected.
func (r *CourtRepo) UpdateInfo(ctx context.Context, id uint64, name, surface string) error {
	const q = `UPDATE courts
	           SET name = ?, surface = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, name, surface, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCourtNotFound
	}
	return nil
}

// UpdateStatus flips a court between active and inactive.  Bookings on
// an inactive court are kept; they only drop out of the availability view.
func (r *CourtRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	const q = `UPDATE courts
	           SET status = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCourtNotFound
	}
	return nil
}

// DeleteCascade removes a court together with its bookings and operating
// hours in one transaction.  Child rows go first so the court delete never
// trips a foreign key.
func (r *CourtRepo) DeleteCascade(ctx context.Context, id uint64) error {
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

	if _, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE court_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM court_hours WHERE court_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM courts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCourtNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
