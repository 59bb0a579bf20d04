package history

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/radreport/radreport/internal/domain/report"
)

type entryRepoPG struct{ pool *pgxpool.Pool }

func NewEntryRepoPG(pool *pgxpool.Pool) EntryRepository {
	return &entryRepoPG{pool: pool}
}

const entryCols = `id, name, date, patient_info, draft, report, reviewer_notes, finalized, created_by, created_at`

func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	var patientJSON []byte
	err := row.Scan(&e.ID, &e.Name, &e.Date, &patientJSON, &e.Draft, &e.Report,
		&e.ReviewerNotes, &e.Finalized, &e.CreatedBy, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(patientJSON) > 0 {
		if err := json.Unmarshal(patientJSON, &e.PatientInfo); err != nil {
			e.PatientInfo = report.PatientInfo{}
		}
	}
	return &e, nil
}

func (r *entryRepoPG) Append(ctx context.Context, e *Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	patientJSON, err := json.Marshal(e.PatientInfo)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO report_history (id, name, date, patient_info, draft, report,
			reviewer_notes, finalized, created_by, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		e.ID, e.Name, e.Date, patientJSON, e.Draft, e.Report,
		e.ReviewerNotes, e.Finalized, e.CreatedBy, e.CreatedAt)
	return err
}

func (r *entryRepoPG) List(ctx context.Context, owner string, limit, offset int) ([]*Entry, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM report_history WHERE created_by = $1`, owner).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+entryCols+` FROM report_history
		WHERE created_by = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		owner, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectEntries(rows)
	return items, total, err
}

func (r *entryRepoPG) ListAll(ctx context.Context, limit, offset int) ([]*Entry, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM report_history`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+entryCols+` FROM report_history
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectEntries(rows)
	return items, total, err
}

func (r *entryRepoPG) Delete(ctx context.Context, id uuid.UUID, owner string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM report_history WHERE id = $1 AND created_by = $2`, id, owner)
	return err
}

func collectEntries(rows pgx.Rows) ([]*Entry, error) {
	var items []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
