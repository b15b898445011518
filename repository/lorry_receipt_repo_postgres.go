package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"tarapurtransport/models"
)

// PostgresLorryReceiptRepo stores each receipt as a JSONB document with the
// filterable fields extracted into columns.
type PostgresLorryReceiptRepo struct {
	db *sql.DB
}

func NewPostgresLorryReceiptRepo(db *sql.DB) *PostgresLorryReceiptRepo {
	return &PostgresLorryReceiptRepo{db: db}
}

func (r *PostgresLorryReceiptRepo) Create(ctx context.Context, lr *models.LorryReceipt) error {
	if lr.ID == "" {
		lr.ID = NewID()
	}
	if lr.CreatedAt.IsZero() {
		lr.CreatedAt = time.Now().UTC()
	}
	doc, err := json.Marshal(lr)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO lorry_receipt (id, owner_id, number, status, doc, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		lr.ID, lr.CreatedBy, lr.LorryReceiptNumber, lr.Status, doc, lr.CreatedAt)
	return pqDuplicate(err, "lorryReceiptNumber")
}

func (r *PostgresLorryReceiptRepo) List(ctx context.Context, userID string, f LorryReceiptFilter, p Page) ([]*models.LorryReceipt, int64, error) {
	where := `
		owner_id = $1
		AND ($2 = '' OR number ILIKE $3)
		AND ($4 = '' OR status = $4)
		AND ($5 = '' OR doc->'consignor'->>'consignorName' ILIKE $6)
		AND ($7 = '' OR doc->'consignee'->>'consigneeName' ILIKE $8)
		AND ($9 = '' OR doc->'truckDetails'->>'truckNumber' ILIKE $10)`
	args := []interface{}{
		userID,
		f.Number, like(f.Number),
		f.Status,
		f.ConsignorName, like(f.ConsignorName),
		f.ConsigneeName, like(f.ConsigneeName),
		f.TruckNumber, like(f.TruckNumber),
	}

	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM lorry_receipt WHERE`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT doc FROM lorry_receipt WHERE`+where+`
		 ORDER BY created_at DESC LIMIT $11 OFFSET $12`,
		append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*models.LorryReceipt
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, 0, err
		}
		var lr models.LorryReceipt
		if err := json.Unmarshal(doc, &lr); err != nil {
			return nil, 0, err
		}
		out = append(out, &lr)
	}
	return out, total, rows.Err()
}

func (r *PostgresLorryReceiptRepo) GetByID(ctx context.Context, userID, id string) (*models.LorryReceipt, error) {
	var doc []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT doc FROM lorry_receipt WHERE id = $1 AND owner_id = $2`,
		id, userID).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var lr models.LorryReceipt
	if err := json.Unmarshal(doc, &lr); err != nil {
		return nil, err
	}
	return &lr, nil
}

func (r *PostgresLorryReceiptRepo) Update(ctx context.Context, userID string, lr *models.LorryReceipt) error {
	now := time.Now().UTC()
	lr.UpdatedAt = &now
	doc, err := json.Marshal(lr)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE lorry_receipt
		SET number = $1, status = $2, doc = $3, updated_at = $4
		WHERE id = $5 AND owner_id = $6`,
		lr.LorryReceiptNumber, lr.Status, doc, now, lr.ID, userID)
	if err != nil {
		return pqDuplicate(err, "lorryReceiptNumber")
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

func (r *PostgresLorryReceiptRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM lorry_receipt WHERE id = $1 AND owner_id = $2`, id, userID)
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
