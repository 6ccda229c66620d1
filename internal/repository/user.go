package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, username, hashedPassword string) (domain.User, error) {
	user := domain.User{
		ID:             uuid.NewString(),
		Username:       username,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, hashed_password, created_at)
		VALUES (?, ?, ?, ?)
	`, user.ID, user.Username, user.HashedPassword, user.CreatedAt)
	return user, err
}

func (r *UserRepository) Get(ctx context.Context, id string) (domain.User, error) {
	var user domain.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, hashed_password, created_at
		FROM users
		WHERE id = ?
	`, id).Scan(&user.ID, &user.Username, &user.HashedPassword, &user.CreatedAt)
	return user, err
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var user domain.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, hashed_password, created_at
		FROM users
		WHERE username = ?
	`, username).Scan(&user.ID, &user.Username, &user.HashedPassword, &user.CreatedAt)
	return user, err
}
