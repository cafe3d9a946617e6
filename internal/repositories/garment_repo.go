package repositories

import (
	"errors"

	"wardrobe/internal/models"
)

// ErrNotFound signals that an update or delete referenced an id with no
// backing row. It is a no-op signal, not a storage fault: callers decide
// whether to report it or ignore it.
var ErrNotFound = errors.New("garment not found")

// Filter narrows a Fetch. An empty string means the criterion is not
// applied; supplied criteria are combined with AND.
//
// Matching is intentionally asymmetric (exact-name, substring-rest): Name
// must match a record's name exactly, while Size, Color and Style match as
// substrings anywhere within the corresponding field. This mirrors the
// behavior the application has always had; do not "fix" it into uniform
// matching.
type Filter struct {
	Name  string
	Size  string
	Color string
	Style string
}

// Empty reports whether no criterion is supplied.
func (f *Filter) Empty() bool {
	return f == nil || (f.Name == "" && f.Size == "" && f.Color == "" && f.Style == "")
}

// GarmentRepository defines the interface for garment data access.
type GarmentRepository interface {
	// Init ensures the garments table exists with the current schema.
	// Idempotent; safe to call on every startup.
	Init() error
	// Create inserts a new garment and assigns its ID.
	Create(garment *models.Garment) error
	// Update replaces every non-id field of the row with garment.ID.
	// Returns ErrNotFound if no such row exists.
	Update(garment *models.Garment) error
	// Delete removes the row with the given id. Returns ErrNotFound if no
	// such row exists.
	Delete(id uint) error
	// Fetch returns garments matching the filter, or all garments when the
	// filter is nil or empty. Ordering is deterministic across repeated
	// identical queries.
	Fetch(filter *Filter) ([]models.Garment, error)
}
