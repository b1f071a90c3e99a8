package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/refanfc/FounderBooking/internal/domain"
	"github.com/refanfc/FounderBooking/pkg/database"
)

// PostgresTimeSlotRepository implements TimeSlotRepository using PostgreSQL
type PostgresTimeSlotRepository struct {
	db *database.PostgresDB
}

// NewPostgresTimeSlotRepository creates a new PostgreSQL time slot repository
func NewPostgresTimeSlotRepository(db *database.PostgresDB) *PostgresTimeSlotRepository {
	return &PostgresTimeSlotRepository{db: db}
}

// Create persists a new time slot and assigns its id
func (r *PostgresTimeSlotRepository) Create(ctx context.Context, slot *domain.TimeSlot) error {
	query := `
		INSERT INTO time_slots (creator_id, start_time, end_time, is_available)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.Pool().QueryRow(ctx, query,
		slot.CreatorID,
		slot.StartTime,
		slot.EndTime,
		slot.IsAvailable,
	).Scan(&slot.ID)

	if err != nil {
		return fmt.Errorf("failed to create time slot: %w", err)
	}

	return nil
}

// GetByID retrieves a time slot by its id
func (r *PostgresTimeSlotRepository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	query := `
		SELECT id, creator_id, start_time, end_time, is_available
		FROM time_slots
		WHERE id = $1`

	slot := &domain.TimeSlot{}
	err := r.db.Pool().QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.CreatorID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.IsAvailable,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to get time slot: %w", err)
	}

	return slot, nil
}

// ListByCreator retrieves a creator's slots whose start time falls within
// the inclusive [from, to] window. A zero bound leaves that side open.
func (r *PostgresTimeSlotRepository) ListByCreator(ctx context.Context, creatorID int64, from, to time.Time, availableOnly bool) ([]*domain.TimeSlot, error) {
	query := `
		SELECT id, creator_id, start_time, end_time, is_available
		FROM time_slots
		WHERE creator_id = $1
		  AND ($2::timestamptz IS NULL OR start_time >= $2)
		  AND ($3::timestamptz IS NULL OR start_time <= $3)
		  AND ($4 = false OR is_available = true)
		ORDER BY start_time`

	rows, err := r.db.Pool().Query(ctx, query, creatorID, nullTime(from), nullTime(to), availableOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list time slots: %w", err)
	}
	defer rows.Close()

	var slots []*domain.TimeSlot
	for rows.Next() {
		slot := &domain.TimeSlot{}
		err := rows.Scan(
			&slot.ID,
			&slot.CreatorID,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsAvailable,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time slot row: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time slots: %w", err)
	}

	return slots, nil
}

// Claim atomically flips an available slot to unavailable. The
// conditional update is the only write that claims a slot, so two
// concurrent claims can never both succeed.
func (r *PostgresTimeSlotRepository) Claim(ctx context.Context, id int64) error {
	query := `
		UPDATE time_slots
		SET is_available = false
		WHERE id = $1 AND is_available = true`

	tag, err := r.db.Pool().Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to claim time slot: %w", err)
	}

	if tag.RowsAffected() == 0 {
		// Distinguish missing slot from already-claimed slot
		var exists bool
		err := r.db.Pool().QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM time_slots WHERE id = $1)`, id,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check time slot: %w", err)
		}
		if !exists {
			return domain.ErrSlotNotFound
		}
		return domain.ErrSlotUnavailable
	}

	return nil
}

// Release flips a slot back to available. Releasing an already available
// slot is a no-op.
func (r *PostgresTimeSlotRepository) Release(ctx context.Context, id int64) error {
	query := `
		UPDATE time_slots
		SET is_available = true
		WHERE id = $1`

	tag, err := r.db.Pool().Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to release time slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSlotNotFound
	}

	return nil
}

// nullTime returns nil for zero times so the bound is treated as open
func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
