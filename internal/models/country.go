package models

// Country represents a country record in the database
type Country struct {
	ID   int64  `json:"id" db:"id"`     // Primary key
	Name string `json:"name" db:"name"` // Country name
}
