package templates

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type templateRepoPG struct{ pool *pgxpool.Pool }

func NewTemplateRepoPG(pool *pgxpool.Pool) TemplateRepository {
	return &templateRepoPG{pool: pool}
}

const tplCols = `id, name, content, section_type, owner, created_at, usage_count`

func scanTemplate(row pgx.Row) (*Template, error) {
	var t Template
	err := row.Scan(&t.ID, &t.Name, &t.Content, &t.SectionType, &t.Owner, &t.CreatedAt, &t.UsageCount)
	return &t, err
}

func (r *templateRepoPG) Save(ctx context.Context, t *Template) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	// Last write wins on name collision
	_, err := r.pool.Exec(ctx, `
		INSERT INTO report_template (id, name, content, section_type, owner)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (name) DO UPDATE SET
			content = EXCLUDED.content,
			section_type = EXCLUDED.section_type,
			owner = EXCLUDED.owner`,
		t.ID, t.Name, t.Content, t.SectionType, t.Owner)
	return err
}

func (r *templateRepoPG) Get(ctx context.Context, name string) (*Template, error) {
	t, err := scanTemplate(r.pool.QueryRow(ctx,
		`SELECT `+tplCols+` FROM report_template WHERE name = $1`, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *templateRepoPG) ListByOwner(ctx context.Context, owner string) ([]*Template, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+tplCols+` FROM report_template WHERE owner = $1 ORDER BY name`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTemplates(rows)
}

func (r *templateRepoPG) ListAll(ctx context.Context) ([]*Template, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+tplCols+` FROM report_template ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTemplates(rows)
}

func (r *templateRepoPG) IncrementUsage(ctx context.Context, name string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE report_template SET usage_count = usage_count + 1 WHERE name = $1`, name)
	return err
}

func (r *templateRepoPG) Delete(ctx context.Context, name string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM report_template WHERE name = $1`, name)
	return err
}

func collectTemplates(rows pgx.Rows) ([]*Template, error) {
	var items []*Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}
