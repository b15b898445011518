package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"tarapurtransport/models"
)

type PostgresDeliverySlipRepo struct {
	db *sql.DB
}

func NewPostgresDeliverySlipRepo(db *sql.DB) *PostgresDeliverySlipRepo {
	return &PostgresDeliverySlipRepo{db: db}
}

func (r *PostgresDeliverySlipRepo) Create(ctx context.Context, ds *models.DeliverySlip) error {
	if ds.ID == "" {
		ds.ID = NewID()
	}
	if ds.CreatedAt.IsZero() {
		ds.CreatedAt = time.Now().UTC()
	}
	doc, err := json.Marshal(ds)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO delivery_slip (id, owner_id, number, status, doc, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		ds.ID, ds.CreatedBy, ds.SlipNumber, ds.Status, doc, ds.CreatedAt)
	return pqDuplicate(err, "slipNumber")
}

func (r *PostgresDeliverySlipRepo) List(ctx context.Context, userID string, f DeliverySlipFilter, p Page) ([]*models.DeliverySlip, int64, error) {
	where := `
		owner_id = $1
		AND ($2 = '' OR number ILIKE $3)
		AND ($4 = '' OR status = $4)
		AND ($5 = '' OR doc->'parcelDetails'->>'lorryReceiptNumber' ILIKE $6)`
	args := []interface{}{
		userID,
		f.SlipNumber, like(f.SlipNumber),
		f.Status,
		f.LorryReceiptNumber, like(f.LorryReceiptNumber),
	}

	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM delivery_slip WHERE`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT doc FROM delivery_slip WHERE`+where+`
		 ORDER BY created_at DESC LIMIT $7 OFFSET $8`,
		append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*models.DeliverySlip
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, 0, err
		}
		var ds models.DeliverySlip
		if err := json.Unmarshal(doc, &ds); err != nil {
			return nil, 0, err
		}
		out = append(out, &ds)
	}
	return out, total, rows.Err()
}

func (r *PostgresDeliverySlipRepo) GetByID(ctx context.Context, userID, id string) (*models.DeliverySlip, error) {
	var doc []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT doc FROM delivery_slip WHERE id = $1 AND owner_id = $2`,
		id, userID).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var ds models.DeliverySlip
	if err := json.Unmarshal(doc, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (r *PostgresDeliverySlipRepo) Update(ctx context.Context, userID string, ds *models.DeliverySlip) error {
	now := time.Now().UTC()
	ds.UpdatedAt = &now
	doc, err := json.Marshal(ds)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE delivery_slip
		SET number = $1, status = $2, doc = $3, updated_at = $4
		WHERE id = $5 AND owner_id = $6`,
		ds.SlipNumber, ds.Status, doc, now, ds.ID, userID)
	if err != nil {
		return pqDuplicate(err, "slipNumber")
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

func (r *PostgresDeliverySlipRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM delivery_slip WHERE id = $1 AND owner_id = $2`, id, userID)
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
