package models

// Item represents a catalog item record in the database
type Item struct {
	ID        int64   `json:"id" db:"id"`                 // Primary key
	Title     string  `json:"title" db:"title"`           // Item title
	Price     float64 `json:"price" db:"price"`           // Price, pass-through attribute
	CountryID int64   `json:"country_id" db:"country_id"` // Foreign key to countries
}

// ItemFilter holds optional criteria for filtering catalog items.
// A nil CountryID means no country restriction; an empty Search means
// no title restriction.
type ItemFilter struct {
	Search    string // Case-insensitive partial match on title
	CountryID *int64 // Exact match on country_id
}
