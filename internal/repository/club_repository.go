package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/model"
)

// ClubRepo encapsulates all database queries related to clubs.  It
// depends on a sql.DB connection which is configured at startup.
type ClubRepo struct {
	db *sql.DB
}

// NewClubRepo constructs a ClubRepo with the provided DB handle.
func NewClubRepo(db *sql.DB) *ClubRepo { return &ClubRepo{db: db} }

// Create inserts a new club with its shared admin password hash.  On
// success the ID and timestamp fields are populated from the stored row.
func (r *ClubRepo) Create(ctx context.Context, c *model.Club) error {
	const qInsert = `INSERT INTO clubs (name, borough, admin_password_hash) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, c.Name, c.Borough, c.AdminHash)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	const qSelect = `SELECT created_at, updated_at FROM clubs WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, c.ID).Scan(&c.CreatedAt, &c.UpdatedAt)
}

// GetByID fetches a club by its ID.  It returns ErrClubNotFound if no
// row is found.
func (r *ClubRepo) GetByID(ctx context.Context, id uint64) (*model.Club, error) {
	const q = `SELECT id, name, borough, admin_password_hash, created_at, updated_at
	           FROM clubs WHERE id = ?`
	var c model.Club
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&c.ID, &c.Name, &c.Borough, &c.AdminHash, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListAll returns every club.  Callers sort the result with
// model.SortClubs; the query itself orders by id only so the borough
// ordering lives in one place.
func (r *ClubRepo) ListAll(ctx context.Context) ([]*model.Club, error) {
	const q = `SELECT id, name, borough, admin_password_hash, created_at, updated_at
	           FROM clubs ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Club
	for rows.Next() {
		c := new(model.Club)
		if err := rows.Scan(&c.ID, &c.Name, &c.Borough, &c.AdminHash, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateInfo rewrites a club's name and borough.  It returns
// ErrClubNotFound when no row is affected.
func (r *ClubRepo) UpdateInfo(ctx context.Context, id uint64, name, borough string) error {
	const q = `UPDATE clubs
	           SET name = ?, borough = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, name, borough, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrClubNotFound
	}
	return nil
}

// UpdateAdminHash replaces the shared admin password hash of a club.
func (r *ClubRepo) UpdateAdminHash(ctx context.Context, id uint64, hash string) error {
	const q = `UPDATE clubs
	           SET admin_password_hash = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, hash, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrClubNotFound
	}
	return nil
}
