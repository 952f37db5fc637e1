package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"stockroom-backend/internal/models"
)

var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepo handles category database operations
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo creates a new category repository
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create creates a new category
func (r *CategoryRepo) Create(name string) (*models.Category, error) {
	category := &models.Category{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}

	_, err := r.db.Exec(`
		INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)
	`, category.ID, category.Name, category.CreatedAt)
	if err != nil {
		return nil, err
	}

	return category, nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepo) GetByID(id string) (*models.Category, error) {
	category := &models.Category{}

	err := r.db.QueryRow(`
		SELECT id, name, created_at FROM categories WHERE id = ?
	`, id).Scan(&category.ID, &category.Name, &category.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	return category, nil
}

// List retrieves all categories
func (r *CategoryRepo) List() ([]*models.Category, error) {
	rows, err := r.db.Query(`
		SELECT id, name, created_at FROM categories ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		category := &models.Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

// Update renames a category
func (r *CategoryRepo) Update(id, name string) error {
	result, err := r.db.Exec("UPDATE categories SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// Delete deletes a category
func (r *CategoryRepo) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
