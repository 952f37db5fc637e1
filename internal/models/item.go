package models

import "time"

// Item represents a catalog item
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Category represents an item category
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NameRequest is the shared request body for item and category writes.
type NameRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}
