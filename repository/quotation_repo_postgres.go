package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"tarapurtransport/models"
)

type PostgresQuotationRepo struct {
	db *sql.DB
}

func NewPostgresQuotationRepo(db *sql.DB) *PostgresQuotationRepo {
	return &PostgresQuotationRepo{db: db}
}

func (r *PostgresQuotationRepo) Create(ctx context.Context, q *models.Quotation) error {
	if q.ID == "" {
		q.ID = NewID()
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}
	doc, err := json.Marshal(q)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO quotation (id, owner_id, number, doc, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		q.ID, q.CreatedBy, q.QuotationNumber, doc, q.CreatedAt)
	return pqDuplicate(err, "quotationNumber")
}

func (r *PostgresQuotationRepo) List(ctx context.Context, userID string, f QuotationFilter, p Page) ([]*models.Quotation, int64, error) {
	where := `
		owner_id = $1
		AND ($2 = '' OR number ILIKE $3)
		AND ($4 = '' OR doc->'quoteToCompany'->>'companyName' ILIKE $5)`
	args := []interface{}{
		userID,
		f.Number, like(f.Number),
		f.CompanyName, like(f.CompanyName),
	}

	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM quotation WHERE`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT doc FROM quotation WHERE`+where+`
		 ORDER BY created_at DESC LIMIT $6 OFFSET $7`,
		append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*models.Quotation
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, 0, err
		}
		var q models.Quotation
		if err := json.Unmarshal(doc, &q); err != nil {
			return nil, 0, err
		}
		out = append(out, &q)
	}
	return out, total, rows.Err()
}

func (r *PostgresQuotationRepo) GetByID(ctx context.Context, userID, id string) (*models.Quotation, error) {
	var doc []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT doc FROM quotation WHERE id = $1 AND owner_id = $2`,
		id, userID).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var q models.Quotation
	if err := json.Unmarshal(doc, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *PostgresQuotationRepo) Update(ctx context.Context, userID string, q *models.Quotation) error {
	now := time.Now().UTC()
	q.UpdatedAt = &now
	doc, err := json.Marshal(q)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE quotation
		SET number = $1, doc = $2, updated_at = $3
		WHERE id = $4 AND owner_id = $5`,
		q.QuotationNumber, doc, now, q.ID, userID)
	if err != nil {
		return pqDuplicate(err, "quotationNumber")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresQuotationRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM quotation WHERE id = $1 AND owner_id = $2`, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
