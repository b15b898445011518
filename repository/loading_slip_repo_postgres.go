package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"tarapurtransport/models"
)

type PostgresLoadingSlipRepo struct {
	db *sql.DB
}

func NewPostgresLoadingSlipRepo(db *sql.DB) *PostgresLoadingSlipRepo {
	return &PostgresLoadingSlipRepo{db: db}
}

func (r *PostgresLoadingSlipRepo) Create(ctx context.Context, ls *models.LoadingSlip) error {
	if ls.ID == "" {
		ls.ID = NewID()
	}
	if ls.CreatedAt.IsZero() {
		ls.CreatedAt = time.Now().UTC()
	}
	doc, err := json.Marshal(ls)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO loading_slip (id, owner_id, number, doc, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		ls.ID, ls.CreatedBy, ls.SlipNumber, doc, ls.CreatedAt)
	return pqDuplicate(err, "slipNumber")
}

func (r *PostgresLoadingSlipRepo) List(ctx context.Context, userID string, f LoadingSlipFilter, p Page) ([]*models.LoadingSlip, int64, error) {
	where := `
		owner_id = $1
		AND ($2 = '' OR number ILIKE $3)
		AND ($4 = '' OR doc->'truckDetails'->>'truckNumber' ILIKE $5)
		AND ($6 = '' OR doc->'companyDetails'->>'companyName' ILIKE $7)`
	args := []interface{}{
		userID,
		f.SlipNumber, like(f.SlipNumber),
		f.TruckNumber, like(f.TruckNumber),
		f.CompanyName, like(f.CompanyName),
	}

	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM loading_slip WHERE`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT doc FROM loading_slip WHERE`+where+`
		 ORDER BY created_at DESC LIMIT $8 OFFSET $9`,
		append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*models.LoadingSlip
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, 0, err
		}
		var ls models.LoadingSlip
		if err := json.Unmarshal(doc, &ls); err != nil {
			return nil, 0, err
		}
		out = append(out, &ls)
	}
	return out, total, rows.Err()
}

func (r *PostgresLoadingSlipRepo) GetByID(ctx context.Context, userID, id string) (*models.LoadingSlip, error) {
	var doc []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT doc FROM loading_slip WHERE id = $1 AND owner_id = $2`,
		id, userID).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var ls models.LoadingSlip
	if err := json.Unmarshal(doc, &ls); err != nil {
		return nil, err
	}
	return &ls, nil
}

func (r *PostgresLoadingSlipRepo) Update(ctx context.Context, userID string, ls *models.LoadingSlip) error {
	now := time.Now().UTC()
	ls.UpdatedAt = &now
	doc, err := json.Marshal(ls)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE loading_slip
		SET number = $1, doc = $2, updated_at = $3
		WHERE id = $4 AND owner_id = $5`,
		ls.SlipNumber, doc, now, ls.ID, userID)
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

func (r *PostgresLoadingSlipRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM loading_slip WHERE id = $1 AND owner_id = $2`, id, userID)
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
