package sqlite

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
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type TutorialRepo struct{ db DBTX }

func NewTutorialRepo(db DBTX) repository.TutorialRepository {
	return &TutorialRepo{db: db}
}

func observe(op string, start time.Time, errp *error) {
	metrics.ObserveDBQuery("tutorial_"+op, start, *errp)
}

func (repo *TutorialRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Tutorial, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tutorials := make([]*entity.Tutorial, 0, 16)
	for rows.Next() {
		var t entity.Tutorial
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Published); err != nil {
			return nil, fmt.Errorf("Scan: %w", err)
		}
		tutorials = append(tutorials, &t)
	}
	return tutorials, rows.Err()
}

func (repo *TutorialRepo) Get(ctx context.Context, id int64) (_ *entity.Tutorial, err error) {
	defer observe("get", time.Now(), &err)
	const query = `
SELECT id, title, description, published
FROM tutorials
WHERE id = ?
LIMIT 1`
	list, err := repo.query(ctx, query, id)
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
SELECT id, title, description, published
FROM tutorials
ORDER BY id ASC`
	list, err := repo.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return list, nil
}

// SearchByTitle matches title as a case-insensitive substring.
// fold is registered by db.Open and lower-cases with Unicode rules.
func (repo *TutorialRepo) SearchByTitle(ctx context.Context, title string) (_ []*entity.Tutorial, err error) {
	defer observe("search", time.Now(), &err)
	const query = `
SELECT id, title, description, published
FROM tutorials
WHERE fold(title) LIKE fold(?) ESCAPE '\'
ORDER BY id ASC`
	list, err := repo.query(ctx, query, search.ContainsPattern(title))
	if err != nil {
		return nil, fmt.Errorf("SearchByTitle: %w", err)
	}
	return list, nil
}

func (repo *TutorialRepo) ListByPublished(ctx context.Context, published bool) (_ []*entity.Tutorial, err error) {
	defer observe("list_published", time.Now(), &err)
	const query = `
SELECT id, title, description, published
FROM tutorials
WHERE published = ?
ORDER BY id ASC`
	list, err := repo.query(ctx, query, published)
	if err != nil {
		return nil, fmt.Errorf("ListByPublished: %w", err)
	}
	return list, nil
}

func (repo *TutorialRepo) Create(ctx context.Context, t *entity.Tutorial) (err error) {
	defer observe("create", time.Now(), &err)
	const query = `
INSERT INTO tutorials (title, description, published, created_at, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`
	res, err := repo.db.ExecContext(ctx, query, t.Title, t.Description, t.Published)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	t.ID = id
	return nil
}

func (repo *TutorialRepo) Update(ctx context.Context, t *entity.Tutorial) (err error) {
	defer observe("update", time.Now(), &err)
	const query = `
UPDATE tutorials
SET title = ?, description = ?, published = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query, t.Title, t.Description, t.Published, t.ID)
	if err != nil {
		return fmt.Errorf("Update: ExecContext: %w", err)
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
	if _, err = repo.db.ExecContext(ctx, `DELETE FROM tutorials WHERE id = ?`, id); err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	return nil
}

func (repo *TutorialRepo) DeleteAll(ctx context.Context) (_ int64, err error) {
	defer observe("delete_all", time.Now(), &err)
	res, err := repo.db.ExecContext(ctx, `DELETE FROM tutorials`)
	if err != nil {
		return 0, fmt.Errorf("DeleteAll: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteAll: RowsAffected: %w", err)
	}
	return n, nil
}

func (repo *TutorialRepo) Count(ctx context.Context) (_ int64, err error) {
	defer observe("count", time.Now(), &err)
	rows, err := repo.db.QueryContext(ctx, `SELECT COUNT(*) FROM tutorials`)
	if err != nil {
		return 0, fmt.Errorf("Count: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var n int64
	if rows.Next() {
		if err = rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("Count: Scan: %w", err)
		}
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}
