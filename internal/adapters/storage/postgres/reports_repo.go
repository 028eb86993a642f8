package postgres

import (
	"context"
	"database/sql"

	"animal-control-admin/internal/domain/reports"
)

// Schema de la tabla de historial de exportaciones. EnsureSchema la crea si falta.
const reportsSchema = `
	CREATE TABLE IF NOT EXISTS export_reports (
		id           UUID PRIMARY KEY,
		filename     TEXT NOT NULL,
		selector     TEXT NOT NULL,
		date         TEXT NOT NULL DEFAULT '',
		format       TEXT NOT NULL,
		rows         INTEGER NOT NULL,
		generated_by TEXT NOT NULL DEFAULT '',
		generated_at TIMESTAMPTZ NOT NULL
	)
`

type ReportsRepo struct {
	db *sql.DB
}

func NewReportsRepo(db *sql.DB) *ReportsRepo {
	return &ReportsRepo{db: db}
}

func (r *ReportsRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, reportsSchema)
	return err
}

func (r *ReportsRepo) Create(ctx context.Context, rep reports.Report) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO export_reports (
			id, filename, selector, date, format,
			rows, generated_by, generated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		rep.ID,
		rep.Filename,
		rep.Selector,
		rep.Date,
		rep.Format,
		rep.Rows,
		rep.GeneratedBy,
		rep.GeneratedAt,
	)
	return err
}

func (r *ReportsRepo) List(ctx context.Context, limit int) ([]reports.Report, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, filename, selector, date, format,
			rows, generated_by, generated_at
		FROM export_reports
		ORDER BY generated_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reports.Report, 0)
	for rows.Next() {
		var rep reports.Report
		if err := rows.Scan(
			&rep.ID,
			&rep.Filename,
			&rep.Selector,
			&rep.Date,
			&rep.Format,
			&rep.Rows,
			&rep.GeneratedBy,
			&rep.GeneratedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rep)
	}

	return out, rows.Err()
}
