package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/model"
)

// The driver parses DATE columns into time.Time (parseTime=true on the
// DSN), so play_date is scanned as time.Time and formatted back to the
// date-only form the rest of the system speaks.
const dateLayout = "2006-01-02"

// BookingRepo provides methods to work with bookings in the database.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// Create inserts a booking.  The unique key over (court_id, play_date,
// hour) is the single arbiter of slot conflicts: two concurrent inserts
// for the same slot race at the index and exactly one wins.  A duplicate
// key error is translated to ErrSlotTaken.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings (court_id, play_date, hour, player_name, member_id, status)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, b.CourtID, b.PlayDate, b.Hour, b.PlayerName, b.MemberID, b.Status)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrSlotTaken
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// ListForClubDate retrieves every booking on a club's courts for one
// play date, including courts that are currently inactive.
func (r *BookingRepo) ListForClubDate(ctx context.Context, clubID uint64, playDate string) ([]model.Booking, error) {
	const q = `SELECT b.id, b.court_id, b.play_date, b.hour, b.player_name, b.member_id, b.status
	           FROM bookings b
	           JOIN courts c ON c.id = b.court_id
	           WHERE c.club_id = ? AND b.play_date = ?
	           ORDER BY b.court_id, b.hour`
	rows, err := r.db.QueryContext(ctx, q, clubID, playDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Booking
	for rows.Next() {
		var b model.Booking
		var playDate time.Time
		if err := rows.Scan(
			&b.ID, &b.CourtID, &playDate, &b.Hour,
			&b.PlayerName, &b.MemberID, &b.Status,
		); err != nil {
			return nil, err
		}
		b.PlayDate = playDate.Format(dateLayout)
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByIDForClub retrieves a booking by its id while enforcing club scope
// via the courts table.  A booking on another club's court reads as not
// found, not as forbidden, so ids cannot be probed across clubs.
func (r *BookingRepo) GetByIDForClub(ctx context.Context, id, clubID uint64) (*model.Booking, error) {
	const q = `SELECT b.id, b.court_id, b.play_date, b.hour, b.player_name, b.member_id, b.status
	           FROM bookings b
	           JOIN courts c ON c.id = b.court_id
	           WHERE b.id = ? AND c.club_id = ?`
	var b model.Booking
	var playDate time.Time
	err := r.db.QueryRowContext(ctx, q, id, clubID).
		Scan(&b.ID, &b.CourtID, &playDate, &b.Hour, &b.PlayerName, &b.MemberID, &b.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	b.PlayDate = playDate.Format(dateLayout)
	return &b, nil
}

// UpdateDetailsForClub rewrites the player name and member id of a booking
// while enforcing club scope.  The slot itself (court, date, hour) never
// changes through this path.
func (r *BookingRepo) UpdateDetailsForClub(ctx context.Context, id, clubID uint64, playerName, memberID string) error {
	const q = `UPDATE bookings b
	           JOIN courts c ON c.id = b.court_id
	           SET b.player_name = ?, b.member_id = ?, b.updated_at = CURRENT_TIMESTAMP
	           WHERE b.id = ? AND c.club_id = ?`
	res, err := r.db.ExecContext(ctx, q, playerName, memberID, id, clubID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// DeleteForClub removes a booking while enforcing club scope.  Deleting
// the row is what frees the slot: the unique key admits the next insert
// immediately.
func (r *BookingRepo) DeleteForClub(ctx context.Context, id, clubID uint64) error {
	const q = `DELETE b FROM bookings b
	           JOIN courts c ON c.id = b.court_id
	           WHERE b.id = ? AND c.club_id = ?`
	res, err := r.db.ExecContext(ctx, q, id, clubID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}
