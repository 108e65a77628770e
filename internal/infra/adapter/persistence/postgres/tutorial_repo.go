package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tutorial-api/internal/domain/entity"
	"tutorial-api/internal/observability/metrics"
	"tutorial-api/internal/pkg/search"
	"tutorial-api/internal/repository"
)

// DBTX is the subset of *sql.DB used by the repository.
// *circuitbreaker.DBCircuitBreaker satisfies it too.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type TutorialRepo struct{ db DBTX }

func NewTutorialRepo(db DBTX) repository.TutorialRepository {
	return &TutorialRepo{db: db}
}

const tutorialColumns = `id, title, description, published`

// observe records query latency; errp is read after the query finishes.
func observe(op string, start time.Time, errp *error) {
	metrics.ObserveDBQuery("tutorial_"+op, start, *errp)
}

func scanTutorials(rows *sql.Rows) ([]*entity.Tutorial, error) {
	defer func() { _ = rows.Close() }()

	tutorials := make([]*entity.Tutorial, 0, 16)
	for rows.Next() {
		var t entity.Tutorial
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Published); err != nil {
			return nil, err
		}
		tutorials = append(tutorials, &t)
	}
	return tutorials, rows.Err()
}

func (repo *TutorialRepo) Get(ctx context.Context, id int64) (_ *entity.Tutorial, err error) {
	defer observe("get", time.Now(), &err)
	const query = `
SELECT ` + tutorialColumns + `
FROM tutorials
WHERE id = $1
LIMIT 1`
	rows, err := repo.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	list, err := scanTutorials(rows)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (repo *TutorialRepo) List(ctx context.Context) (_ []*entity.Tutorial, err error) {
	defer observe("list", time.Now(), &err)
	const query = `
SELECT ` + tutorialColumns + `
FROM tutorials
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	list, err := scanTutorials(rows)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return list, nil
}

// SearchByTitle matches title case-insensitively as a substring.
// LIKE metacharacters in title are matched literally.
func (repo *TutorialRepo) SearchByTitle(ctx context.Context, title string) (_ []*entity.Tutorial, err error) {
	defer observe("search", time.Now(), &err)
	const query = `
SELECT ` + tutorialColumns + `
FROM tutorials
WHERE title ILIKE $1 ESCAPE '\'
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query, search.ContainsPattern(title))
	if err != nil {
		return nil, fmt.Errorf("SearchByTitle: %w", err)
	}
	list, err := scanTutorials(rows)
	if err != nil {
		return nil, fmt.Errorf("SearchByTitle: %w", err)
	}
	return list, nil
}

func (repo *TutorialRepo) ListByPublished(ctx context.Context, published bool) (_ []*entity.Tutorial, err error) {
	defer observe("list_published", time.Now(), &err)
	const query = `
SELECT ` + tutorialColumns + `
FROM tutorials
WHERE published = $1
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query, published)
	if err != nil {
		return nil, fmt.Errorf("ListByPublished: %w", err)
	}
	list, err := scanTutorials(rows)
	if err != nil {
		return nil, fmt.Errorf("ListByPublished: %w", err)
	}
	return list, nil
}

// Create inserts t and sets t.ID from the generated key.
func (repo *TutorialRepo) Create(ctx context.Context, t *entity.Tutorial) (err error) {
	defer observe("create", time.Now(), &err)
	const query = `
INSERT INTO tutorials (title, description, published, created_at, updated_at)
VALUES ($1, $2, $3, NOW(), NOW())
RETURNING id`
	rows, err := repo.db.QueryContext(ctx, query, t.Title, t.Description, t.Published)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err = rows.Err(); err == nil {
			err = sql.ErrNoRows
		}
		return fmt.Errorf("Create: %w", err)
	}
	if err = rows.Scan(&t.ID); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// Update overwrites the mutable columns of the row with t.ID.
// A missing row is not an error.
func (repo *TutorialRepo) Update(ctx context.Context, t *entity.Tutorial) (err error) {
	defer observe("update", time.Now(), &err)
	const query = `
UPDATE tutorials
SET title = $1, description = $2, published = $3, updated_at = NOW()
WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, query, t.Title, t.Description, t.Published, t.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Update: id %d: %w", t.ID, entity.ErrNotFound)
	}
	return nil
}

func (repo *TutorialRepo) Delete(ctx context.Context, id int64) (err error) {
	defer observe("delete", time.Now(), &err)
	if _, err = repo.db.ExecContext(ctx, `DELETE FROM tutorials WHERE id = $1`, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (repo *TutorialRepo) DeleteAll(ctx context.Context) (_ int64, err error) {
	defer observe("delete_all", time.Now(), &err)
	res, err := repo.db.ExecContext(ctx, `DELETE FROM tutorials`)
	if err != nil {
		return 0, fmt.Errorf("DeleteAll: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteAll: %w", err)
	}
	return n, nil
}

func (repo *TutorialRepo) Count(ctx context.Context) (_ int64, err error) {
	defer observe("count", time.Now(), &err)
	rows, err := repo.db.QueryContext(ctx, `SELECT COUNT(*) FROM tutorials`)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var n int64
	if rows.Next() {
		if err = rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("Count: %w", err)
		}
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}
