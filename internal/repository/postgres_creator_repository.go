package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/refanfc/FounderBooking/internal/domain"
	"github.com/refanfc/FounderBooking/pkg/database"
)

// PostgresCreatorRepository implements CreatorRepository using PostgreSQL
type PostgresCreatorRepository struct {
	db *database.PostgresDB
}

// NewPostgresCreatorRepository creates a new PostgreSQL creator repository
func NewPostgresCreatorRepository(db *database.PostgresDB) *PostgresCreatorRepository {
	return &PostgresCreatorRepository{db: db}
}

// Create persists a new creator profile and assigns its id
func (r *PostgresCreatorRepository) Create(ctx context.Context, creator *domain.Creator) error {
	query := `
		INSERT INTO creators (user_id, title, rate, duration, category, is_active, timezone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.Pool().QueryRow(ctx, query,
		creator.UserID,
		creator.Title,
		creator.Rate,
		creator.Duration,
		nullString(creator.Category),
		creator.IsActive,
		nullString(creator.Timezone),
	).Scan(&creator.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return domain.ErrCreatorExists
		}
		return fmt.Errorf("failed to create creator: %w", err)
	}

	return nil
}

// GetByID retrieves a creator by its id
func (r *PostgresCreatorRepository) GetByID(ctx context.Context, id int64) (*domain.Creator, error) {
	query := `
		SELECT id, user_id, title, rate, duration, category, is_active, timezone
		FROM creators
		WHERE id = $1`

	return r.scanCreator(r.db.Pool().QueryRow(ctx, query, id))
}

// GetByUserID retrieves the creator profile owned by a user
func (r *PostgresCreatorRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Creator, error) {
	query := `
		SELECT id, user_id, title, rate, duration, category, is_active, timezone
		FROM creators
		WHERE user_id = $1`

	return r.scanCreator(r.db.Pool().QueryRow(ctx, query, userID))
}

// ListActive retrieves active creators joined with their users
func (r *PostgresCreatorRepository) ListActive(ctx context.Context, category string, limit, offset int) ([]*domain.CreatorWithUser, error) {
	query := `
		SELECT
			c.id, c.user_id, c.title, c.rate, c.duration, c.category, c.is_active, c.timezone,
			u.id, u.username, u.fid, u.profile_image, u.display_name, u.bio, u.wallet_address
		FROM creators c
		JOIN users u ON u.id = c.user_id
		WHERE c.is_active = true
		  AND ($1 = '' OR c.category = $1)
		ORDER BY c.id
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Pool().Query(ctx, query, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list creators: %w", err)
	}
	defer rows.Close()

	var creators []*domain.CreatorWithUser
	for rows.Next() {
		cw := &domain.CreatorWithUser{User: &domain.User{}}
		var creatorCategory, creatorTimezone *string
		var profileImage, displayName, bio, walletAddress *string

		err := rows.Scan(
			&cw.ID, &cw.UserID, &cw.Title, &cw.Rate, &cw.Duration,
			&creatorCategory, &cw.IsActive, &creatorTimezone,
			&cw.User.ID, &cw.User.Username, &cw.User.Fid,
			&profileImage, &displayName, &bio, &walletAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan creator row: %w", err)
		}

		cw.Category = derefString(creatorCategory)
		cw.Timezone = derefString(creatorTimezone)
		cw.User.ProfileImage = derefString(profileImage)
		cw.User.DisplayName = derefString(displayName)
		cw.User.Bio = derefString(bio)
		cw.User.WalletAddress = derefString(walletAddress)

		creators = append(creators, cw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate creators: %w", err)
	}

	return creators, nil
}

// Update updates a creator's mutable fields
func (r *PostgresCreatorRepository) Update(ctx context.Context, creator *domain.Creator) error {
	query := `
		UPDATE creators
		SET title = $2, rate = $3, duration = $4, category = $5, is_active = $6, timezone = $7
		WHERE id = $1`

	tag, err := r.db.Pool().Exec(ctx, query,
		creator.ID,
		creator.Title,
		creator.Rate,
		creator.Duration,
		nullString(creator.Category),
		creator.IsActive,
		nullString(creator.Timezone),
	)
	if err != nil {
		return fmt.Errorf("failed to update creator: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCreatorNotFound
	}

	return nil
}

func (r *PostgresCreatorRepository) scanCreator(row pgx.Row) (*domain.Creator, error) {
	creator := &domain.Creator{}
	var category, timezone *string

	err := row.Scan(
		&creator.ID,
		&creator.UserID,
		&creator.Title,
		&creator.Rate,
		&creator.Duration,
		&category,
		&creator.IsActive,
		&timezone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCreatorNotFound
		}
		return nil, fmt.Errorf("failed to get creator: %w", err)
	}

	creator.Category = derefString(category)
	creator.Timezone = derefString(timezone)

	return creator, nil
}
