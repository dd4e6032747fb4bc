package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
)

type menuQueries struct {
	insert string
	update string
	delete string
}

// Table names never come from the request: every statement is built once
// from the closed category set.
var (
	menuStatements = buildMenuStatements()
	menuListQuery  = buildMenuListQuery()
	menuCountQuery = buildMenuCountQuery()
)

func buildMenuStatements() map[domain.Category]menuQueries {
	stmts := make(map[domain.Category]menuQueries, len(domain.Categories))
	for _, c := range domain.Categories {
		t := c.Table()
		stmts[c] = menuQueries{
			insert: fmt.Sprintf(`INSERT INTO %s (name, price) VALUES ($1, $2) RETURNING id`, t),
			update: fmt.Sprintf(`UPDATE %s SET name = $1, price = $2 WHERE id = $3`, t),
			delete: fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t),
		}
	}
	return stmts
}

func buildMenuListQuery() string {
	parts := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		parts = append(parts, fmt.Sprintf(
			`SELECT %d AS category, id, name, price::float8 AS price FROM %s`, int(c), c.Table()))
	}
	return strings.Join(parts, " UNION ALL ") + " ORDER BY category, id"
}

func buildMenuCountQuery() string {
	parts := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		parts = append(parts, fmt.Sprintf(`(SELECT COUNT(*) FROM %s)`, c.Table()))
	}
	return "SELECT " + strings.Join(parts, " + ")
}

type MenuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// ListAll returns main, appetizers, sauces and beverages in that order.
func (r *MenuRepository) ListAll(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, menuListQuery)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		var (
			item     domain.MenuItem
			category int
		)
		if err := rows.Scan(&category, &item.ID, &item.Name, &item.Price); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		item.Category = domain.Category(category)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return items, nil
}

func (r *MenuRepository) Create(ctx context.Context, category domain.Category, name string, price float64) (int64, error) {
	q, err := statementsFor(category)
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, q.insert, name, price).Scan(&id); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *MenuRepository) Update(ctx context.Context, category domain.Category, id int64, name string, price float64) (int64, error) {
	q, err := statementsFor(category)
	if err != nil {
		return 0, err
	}
	return execAffected(ctx, r.db, q.update, name, price, id)
}

func (r *MenuRepository) Delete(ctx context.Context, category domain.Category, id int64) (int64, error) {
	q, err := statementsFor(category)
	if err != nil {
		return 0, err
	}
	return execAffected(ctx, r.db, q.delete, id)
}

func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, menuCountQuery).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func statementsFor(category domain.Category) (menuQueries, error) {
	q, ok := menuStatements[category]
	if !ok {
		return menuQueries{}, domain.ErrInvalidCategory
	}
	return q, nil
}

// execAffected runs a single-row mutation and reports how many rows it touched.
func execAffected(ctx context.Context, db *sql.DB, query string, args ...any) (int64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
