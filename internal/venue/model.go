package venue

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("venue not found")
)

// Venue represents a barbershop.
type Venue struct {
	ID        string // UUID
	Name      string
	Address   string
	Phone     string
	IsActive  bool
	CreatedAt time.Time
}

// Filter defines parameters for listing venues.
type Filter struct {
	Keyword  string // search in name or address
	Page     int
	PageSize int
}
