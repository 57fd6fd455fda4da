package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"itemdesk/internal/models"
	"itemdesk/internal/repository/db"
)

type ItemRepository struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewItemRepository(conn *sql.DB, dialect db.Dialect) *ItemRepository {
	return &ItemRepository{db: conn, dialect: dialect}
}

var _ Items = (*ItemRepository)(nil)

// description is nullable; reads coalesce it to the empty string.
const (
	schemaItemsSQLite = `
CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT
);
`
	schemaItemsPostgres = `
CREATE TABLE IF NOT EXISTS items (
    id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT
);
`

	selectItemsSQL    = `SELECT id, name, COALESCE(description, '') FROM items ORDER BY id`
	selectItemByIDSQL = `SELECT id, name, COALESCE(description, '') FROM items WHERE id = ?`
	insertItemSQL     = `INSERT INTO items (name, description) VALUES (?, ?) RETURNING id`
	updateItemSQL     = `UPDATE items SET name = ?, description = ? WHERE id = ?`
	countItemsSQL     = `SELECT COUNT(*) FROM items`
	searchItemsSQL    = `SELECT id, name, COALESCE(description, '') FROM items WHERE LOWER(name) LIKE LOWER(?) ESCAPE '\' ORDER BY id`
)

// Init creates the items table when it does not exist yet.
func (r *ItemRepository) Init(ctx context.Context) error {
	schema := schemaItemsSQLite
	if r.dialect == db.Postgres {
		schema = schemaItemsPostgres
	}
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply items schema: %w", err)
	}
	return nil
}

// List returns all items in insertion (id) order.
func (r *ItemRepository) List(ctx context.Context) ([]models.Item, error) {
	items, err := r.query(ctx, selectItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// GetByID returns the item or (nil, nil) if there is none with that id.
func (r *ItemRepository) GetByID(ctx context.Context, id int) (*models.Item, error) {
	var it models.Item
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(selectItemByIDSQL), id).
		Scan(&it.ID, &it.Name, &it.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select item %d: %w", id, err)
	}
	return &it, nil
}

// Create inserts an item; the store assigns the id.
func (r *ItemRepository) Create(ctx context.Context, name, description string) (models.Item, error) {
	it := models.Item{Name: name, Description: description}
	if err := r.db.QueryRowContext(ctx, r.dialect.Rebind(insertItemSQL), name, description).Scan(&it.ID); err != nil {
		return models.Item{}, fmt.Errorf("insert item %q: %w", name, err)
	}
	return it, nil
}

// Update replaces name and description in place.
func (r *ItemRepository) Update(ctx context.Context, id int, name, description string) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(updateItemSQL), name, description, id)
	if err != nil {
		return fmt.Errorf("update item %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for item %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("update item %d: %w", id, ErrItemNotFound)
	}
	return nil
}

// SearchByName matches query as a case-insensitive substring of the name.
// LIKE wildcards in query are matched literally. Both sides are folded by the
// database's LOWER, so SQLite ignores case for ASCII letters only.
func (r *ItemRepository) SearchByName(ctx context.Context, query string) ([]models.Item, error) {
	if query == "" {
		return r.List(ctx)
	}
	pattern := "%" + escapeLike(query) + "%"
	items, err := r.query(ctx, searchItemsSQL, pattern)
	if err != nil {
		return nil, fmt.Errorf("search items %q: %w", query, err)
	}
	return items, nil
}

// Count returns the total number of items.
func (r *ItemRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countItemsSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func (r *ItemRepository) query(ctx context.Context, q string, args ...any) ([]models.Item, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Item, 0, 16)
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
