package repository

import (
	"context"
	"database/sql"
	"time"

	"tarapurtransport/models"
)

type PostgresCompanyRepo struct {
	db *sql.DB
}

func NewPostgresCompanyRepo(db *sql.DB) *PostgresCompanyRepo {
	return &PostgresCompanyRepo{db: db}
}

func (r *PostgresCompanyRepo) Upsert(ctx context.Context, c *models.Company) error {
	if c.Name == "" {
		return nil
	}
	if c.ID == "" {
		c.ID = NewID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO company (id, name, gstin, contact_number, email, address, city, state, country, pin_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (name, gstin) DO NOTHING`,
		c.ID, c.Name, c.GSTIN, c.ContactNumber, c.Email,
		c.Address, c.City, c.State, c.Country, c.PinCode, c.CreatedAt)
	return err
}

func (r *PostgresCompanyRepo) List(ctx context.Context, nameFilter string, p Page) ([]*models.Company, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM company WHERE $1 = '' OR name ILIKE $2`,
		nameFilter, like(nameFilter)).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, gstin, contact_number, email, address, city, state, country, pin_code, created_at
		FROM company
		WHERE $1 = '' OR name ILIKE $2
		ORDER BY name LIMIT $3 OFFSET $4`,
		nameFilter, like(nameFilter), p.Limit, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.GSTIN, &c.ContactNumber, &c.Email,
			&c.Address, &c.City, &c.State, &c.Country, &c.PinCode, &c.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, &c)
	}
	return out, total, rows.Err()
}
