package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/refanfc/FounderBooking/internal/domain"
	"github.com/refanfc/FounderBooking/pkg/database"
)

// PostgresBookingRepository implements BookingRepository using PostgreSQL
type PostgresBookingRepository struct {
	db *database.PostgresDB
}

// NewPostgresBookingRepository creates a new PostgreSQL booking repository
func NewPostgresBookingRepository(db *database.PostgresDB) *PostgresBookingRepository {
	return &PostgresBookingRepository{db: db}
}

// Create persists a new booking and assigns its id
func (r *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (
			user_id, creator_id, time_slot_id, message, total_amount,
			status, payment_reference, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	err := r.db.Pool().QueryRow(ctx, query,
		booking.UserID,
		booking.CreatorID,
		booking.TimeSlotID,
		nullString(booking.Message),
		booking.TotalAmount,
		booking.Status.String(),
		nullString(booking.PaymentReference),
		booking.CreatedAt,
		booking.UpdatedAt,
	).Scan(&booking.ID)

	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

// GetByID retrieves a booking by its id
func (r *PostgresBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := selectBookingQuery + ` WHERE id = $1`
	return r.scanBooking(r.db.Pool().QueryRow(ctx, query, id))
}

// GetByPaymentReference retrieves a booking by payment provider reference
func (r *PostgresBookingRepository) GetByPaymentReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query := selectBookingQuery + ` WHERE payment_reference = $1`
	return r.scanBooking(r.db.Pool().QueryRow(ctx, query, reference))
}

// Update persists the booking's status, payment reference and updated_at
func (r *PostgresBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	query := `
		UPDATE bookings
		SET status = $2, payment_reference = $3, updated_at = $4
		WHERE id = $1`

	tag, err := r.db.Pool().Exec(ctx, query,
		booking.ID,
		booking.Status.String(),
		nullString(booking.PaymentReference),
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

// ListByUser retrieves bookings made by a user, newest first
func (r *PostgresBookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.Booking, error) {
	query := selectBookingQuery + `
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	return r.queryBookings(ctx, query, userID, limit, offset)
}

// ListByCreator retrieves bookings against a creator, newest first
func (r *PostgresBookingRepository) ListByCreator(ctx context.Context, creatorID int64, limit, offset int) ([]*domain.Booking, error) {
	query := selectBookingQuery + `
		WHERE creator_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	return r.queryBookings(ctx, query, creatorID, limit, offset)
}

const selectBookingQuery = `
	SELECT id, user_id, creator_id, time_slot_id, message, total_amount,
	       status, payment_reference, created_at, updated_at
	FROM bookings`

func (r *PostgresBookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]*domain.Booking, error) {
	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBookingRow(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}

	return bookings, nil
}

func (r *PostgresBookingRepository) scanBooking(row pgx.Row) (*domain.Booking, error) {
	booking, err := scanBookingRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func scanBookingRow(row pgx.Row) (*domain.Booking, error) {
	booking := &domain.Booking{}
	var status string
	var message, paymentReference *string

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CreatorID,
		&booking.TimeSlotID,
		&message,
		&booking.TotalAmount,
		&status,
		&paymentReference,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan booking: %w", err)
	}

	booking.Status = domain.BookingStatus(status)
	booking.Message = derefString(message)
	booking.PaymentReference = derefString(paymentReference)

	return booking, nil
}
