package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tarapurtransport/models"
)

type PostgresUserRepo struct {
	db *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

func (r *PostgresUserRepo) CreateUser(ctx context.Context, user *models.AppUser) error {
	if user.ID == "" {
		user.ID = NewID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO app_user (id, name, email, role, password, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, user.Email, user.Role, user.Password, user.CreatedAt)
	return pqDuplicate(err, "email")
}

func (r *PostgresUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.AppUser, error) {
	user := &models.AppUser{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, role, password, created_at
		FROM app_user WHERE email = $1`, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.Password, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
