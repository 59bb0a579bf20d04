package report

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type draftRepoPG struct{ pool *pgxpool.Pool }

func NewDraftRepoPG(pool *pgxpool.Pool) DraftRepository {
	return &draftRepoPG{pool: pool}
}

func (r *draftRepoPG) Get(ctx context.Context, owner string) (*Draft, error) {
	var d Draft
	err := r.pool.QueryRow(ctx,
		`SELECT owner, text, updated_at FROM report_draft WHERE owner = $1`, owner).
		Scan(&d.Owner, &d.Text, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &Draft{Owner: owner}, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *draftRepoPG) Put(ctx context.Context, d *Draft) error {
	d.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO report_draft (owner, text, updated_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (owner) DO UPDATE SET text = EXCLUDED.text, updated_at = EXCLUDED.updated_at`,
		d.Owner, d.Text, d.UpdatedAt)
	return err
}

func (r *draftRepoPG) Delete(ctx context.Context, owner string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM report_draft WHERE owner = $1`, owner)
	return err
}
