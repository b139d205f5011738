package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/emmaus-center/RetreatBooker/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bookingColumns = `id, retreat_id, retreat_title, full_name, phone, email,
		male_seats, female_seats, status, payment_status,
		rescheduled_to_retreat_title, rescheduled_at, version, form, created_at, updated_at`

// Create inserts a booking after an atomic check-and-reserve against the
// retreat's availability. The retreat row is locked for the duration of the
// transaction, so two guests racing for the last seat cannot both commit.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = r.reserveSeats(ctx, tx, b); err != nil {
		return err
	}
	if err = r.insertBooking(ctx, tx, b); err != nil {
		return err
	}

	return tx.Commit()
}

// CreateBatch inserts one booking per cart entry in a single transaction;
// any capacity failure rolls back the whole batch.
func (r *BookingRepository) CreateBatch(ctx context.Context, bookings []*domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, b := range bookings {
		if err = r.reserveSeats(ctx, tx, b); err != nil {
			return err
		}
		if err = r.insertBooking(ctx, tx, b); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *BookingRepository) reserveSeats(ctx context.Context, tx *sql.Tx, b *domain.Booking) error {
	lockQuery := `SELECT status, male_seats, female_seats FROM retreats WHERE id = $1 FOR UPDATE`
	var status domain.RetreatStatus
	var maleOffered, femaleOffered int
	if err := tx.QueryRowContext(ctx, lockQuery, b.RetreatID).
		Scan(&status, &maleOffered, &femaleOffered); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRetreatNotFound
		}
		return fmt.Errorf("lock retreat: %w", err)
	}

	if status == domain.RetreatStatusClosed {
		return domain.ErrClosedForRegistration
	}

	occupancyQuery := `SELECT COALESCE(SUM(male_seats), 0), COALESCE(SUM(female_seats), 0)
					   FROM bookings
					   WHERE retreat_id = $1 AND status = ANY($2)`
	var maleBooked, femaleBooked int
	if err := tx.QueryRowContext(
		ctx, occupancyQuery, b.RetreatID,
		pq.Array(domain.ActiveStatuses),
	).Scan(&maleBooked, &femaleBooked); err != nil {
		return fmt.Errorf("count occupancy: %w", err)
	}

	if maleBooked+b.MaleSeats > maleOffered || femaleBooked+b.FemaleSeats > femaleOffered {
		return domain.ErrNoAvailableSeats
	}

	return nil
}

func (r *BookingRepository) insertBooking(ctx context.Context, tx *sql.Tx, b *domain.Booking) error {
	form, err := json.Marshal(b.Form)
	if err != nil {
		return fmt.Errorf("marshal form: %w", err)
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.RetreatID, b.RetreatTitle, b.FullName, b.Phone, b.Email,
		b.MaleSeats, b.FemaleSeats, b.Status, b.PaymentStatus,
		b.RescheduledToRetreatTitle, b.RescheduledAt, b.Version, form,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// FindByNameAndPhone matches on full name and the whitespace-stripped phone,
// newest first. Multiple bookings may share a household phone; the caller gets
// every candidate.
func (r *BookingRepository) FindByNameAndPhone(ctx context.Context, fullName, phone string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE full_name = $1 AND phone = $2
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, fullName, phone)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// UpdateStatus flips the status only when the caller still holds the current
// version; a stale version is reported, not overwritten.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, version int64, status domain.BookingStatus) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $3, version = version + 1, updated_at = now()
			  WHERE id = $1 AND version = $2
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, version, status)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.diagnoseMissedWrite(ctx, id)
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// Reschedule moves the booking, conditional on the version and on the booking
// not being cancelled; a cancelled row never transitions out.
func (r *BookingRepository) Reschedule(ctx context.Context, id string, version int64, targetID, targetTitle string, at time.Time) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $3,
				  retreat_id = $4,
				  retreat_title = $5,
				  rescheduled_to_retreat_title = $5,
				  rescheduled_at = $6,
				  version = version + 1,
				  updated_at = now()
			  WHERE id = $1 AND version = $2 AND status <> 'cancelled'
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		id, version, domain.BookingStatusRescheduled, targetID, targetTitle, at,
	)
	if err != nil {
		return nil, fmt.Errorf("reschedule booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.diagnoseMissedWrite(ctx, id)
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// diagnoseMissedWrite tells a missing booking apart from a cancelled one and
// from a plain version conflict.
func (r *BookingRepository) diagnoseMissedWrite(ctx context.Context, id string) error {
	checkQuery := `SELECT status FROM bookings WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
	if err != nil {
		return fmt.Errorf("check booking: %w", err)
	}

	var status domain.BookingStatus
	if err = row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("check booking: %w", err)
	}

	if status == domain.BookingStatusCancelled {
		return domain.ErrBookingCancelled
	}

	return domain.ErrStaleVersion
}

func scanBooking(row scanner) (*domain.Booking, error) {
	var b domain.Booking
	var rescheduledAt sql.NullTime
	var form []byte
	if err := row.Scan(
		&b.ID, &b.RetreatID, &b.RetreatTitle, &b.FullName, &b.Phone, &b.Email,
		&b.MaleSeats, &b.FemaleSeats, &b.Status, &b.PaymentStatus,
		&b.RescheduledToRetreatTitle, &rescheduledAt, &b.Version, &form,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if rescheduledAt.Valid {
		b.RescheduledAt = &rescheduledAt.Time
	}
	if len(form) > 0 {
		if err := json.Unmarshal(form, &b.Form); err != nil {
			return nil, fmt.Errorf("unmarshal form: %w", err)
		}
	}
	return &b, nil
}
