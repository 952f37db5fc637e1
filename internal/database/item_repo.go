package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"stockroom-backend/internal/models"
)

var ErrItemNotFound = errors.New("item not found")

// ItemRepo handles item database operations
type ItemRepo struct {
	db *sql.DB
}

// NewItemRepo creates a new item repository
func NewItemRepo(db *sql.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

// Create creates a new item
func (r *ItemRepo) Create(name string) (*models.Item, error) {
	item := &models.Item{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}

	_, err := r.db.Exec(`
		INSERT INTO items (id, name, created_at) VALUES (?, ?, ?)
	`, item.ID, item.Name, item.CreatedAt)
	if err != nil {
		return nil, err
	}

	return item, nil
}

// GetByID retrieves an item by ID
func (r *ItemRepo) GetByID(id string) (*models.Item, error) {
	item := &models.Item{}

	err := r.db.QueryRow(`
		SELECT id, name, created_at FROM items WHERE id = ?
	`, id).Scan(&item.ID, &item.Name, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	return item, nil
}

// List retrieves all items
func (r *ItemRepo) List() ([]*models.Item, error) {
	rows, err := r.db.Query(`
		SELECT id, name, created_at FROM items ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item := &models.Item{}
		if err := rows.Scan(&item.ID, &item.Name, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Update renames an item
func (r *ItemRepo) Update(id, name string) error {
	result, err := r.db.Exec("UPDATE items SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrItemNotFound
	}

	return nil
}

// Delete deletes an item
func (r *ItemRepo) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrItemNotFound
	}

	return nil
}
