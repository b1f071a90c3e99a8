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

// PostgreSQL error code for unique violation
const pgUniqueViolationCode = "23505"

// PostgresUserRepository implements UserRepository using PostgreSQL
type PostgresUserRepository struct {
	db *database.PostgresDB
}

// NewPostgresUserRepository creates a new PostgreSQL user repository
func NewPostgresUserRepository(db *database.PostgresDB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// Create persists a new user and assigns its id
func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, fid, profile_image, display_name, bio, wallet_address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.Pool().QueryRow(ctx, query,
		user.Username,
		user.Fid,
		nullString(user.ProfileImage),
		nullString(user.DisplayName),
		nullString(user.Bio),
		nullString(user.WalletAddress),
	).Scan(&user.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by its id
func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, username, fid, profile_image, display_name, bio, wallet_address
		FROM users
		WHERE id = $1`

	return r.scanUser(r.db.Pool().QueryRow(ctx, query, id))
}

// GetByUsername retrieves a user by username
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, fid, profile_image, display_name, bio, wallet_address
		FROM users
		WHERE username = $1`

	return r.scanUser(r.db.Pool().QueryRow(ctx, query, username))
}

// GetByFid retrieves a user by external social id
func (r *PostgresUserRepository) GetByFid(ctx context.Context, fid int64) (*domain.User, error) {
	query := `
		SELECT id, username, fid, profile_image, display_name, bio, wallet_address
		FROM users
		WHERE fid = $1`

	return r.scanUser(r.db.Pool().QueryRow(ctx, query, fid))
}

// UpdateWallet sets the user's wallet address
func (r *PostgresUserRepository) UpdateWallet(ctx context.Context, id int64, walletAddress string) error {
	query := `UPDATE users SET wallet_address = $2 WHERE id = $1`

	tag, err := r.db.Pool().Exec(ctx, query, id, walletAddress)
	if err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *PostgresUserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	var profileImage, displayName, bio, walletAddress *string

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Fid,
		&profileImage,
		&displayName,
		&bio,
		&walletAddress,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.ProfileImage = derefString(profileImage)
	user.DisplayName = derefString(displayName)
	user.Bio = derefString(bio)
	user.WalletAddress = derefString(walletAddress)

	return user, nil
}

// nullString returns nil for empty strings so the column stores NULL
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
